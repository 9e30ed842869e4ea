package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/relayform/pkg/config"
)

type httpConfig struct {
	Address string        `env:"RELAYFORM_TEST_ADDRESS" envDefault:":8080"`
	Timeout time.Duration `env:"RELAYFORM_TEST_TIMEOUT" envDefault:"10s"`
}

type requiredConfig struct {
	Secret string `env:"RELAYFORM_TEST_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("RELAYFORM_TEST_ADDRESS", "")
		os.Unsetenv("RELAYFORM_TEST_ADDRESS")

		var cfg httpConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Address)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("RELAYFORM_TEST_ADDRESS", ":9090")
		t.Setenv("RELAYFORM_TEST_TIMEOUT", "3s")

		var cfg httpConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9090", cfg.Address)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("RELAYFORM_TEST_TIMEOUT", "soon")

		var cfg httpConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("missing required value", func(t *testing.T) {
		t.Setenv("RELAYFORM_TEST_SECRET", "")
		os.Unsetenv("RELAYFORM_TEST_SECRET")

		var cfg requiredConfig
		require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *httpConfig
		require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Setenv("RELAYFORM_TEST_TIMEOUT", "soon")

	assert.Panics(t, func() {
		var cfg httpConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		t.Setenv("RELAYFORM_TEST_SECRET", "")
		os.Unsetenv("RELAYFORM_TEST_SECRET")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("RELAYFORM_TEST_SECRET=from-file\n"), 0o600))
		require.NoError(t, config.LoadEnv(path))
		t.Cleanup(func() { os.Unsetenv("RELAYFORM_TEST_SECRET") })

		var cfg requiredConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-file", cfg.Secret)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
		require.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("no files", func(t *testing.T) {
		require.NoError(t, config.LoadEnv())
	})
}
