package htmx_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/relayform/pkg/htmx"
)

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		headers map[string]string
		name    string
		want    bool
	}{
		{name: "plain request", want: false},
		{name: "htmx request", headers: map[string]string{"HX-Request": "true"}, want: true},
		{name: "boosted", headers: map[string]string{"HX-Request": "true", "HX-Boosted": "true"}, want: false},
		{name: "wrong value", headers: map[string]string{"HX-Request": "1"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/contact", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, htmx.IsHTMX(r))
		})
	}
}

func TestTarget(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/contact", nil)
	r.Header.Set("HX-Target", "contact-form")
	assert.Equal(t, "contact-form", htmx.Target(r))
}

func TestConfig_ApplyHeaders(t *testing.T) {
	t.Parallel()

	t.Run("all options", func(t *testing.T) {
		t.Parallel()

		cfg := htmx.NewConfig(
			htmx.WithRetarget("#contact-form"),
			htmx.WithReswap(htmx.SwapOuterHTML),
			htmx.WithTrigger("contact:sent"),
			htmx.WithTrigger("contact:done"),
			htmx.WithRefresh(),
		)
		rec := httptest.NewRecorder()
		cfg.ApplyHeaders(rec)

		h := rec.Header()
		assert.Equal(t, "#contact-form", h.Get("HX-Retarget"))
		assert.Equal(t, "outerHTML", h.Get("HX-Reswap"))
		assert.Equal(t, "contact:sent, contact:done", h.Get("HX-Trigger"))
		assert.Equal(t, "true", h.Get("HX-Refresh"))
		assert.Equal(t, "HX-Request", h.Get("Vary"))
	})

	t.Run("nil config only sets vary", func(t *testing.T) {
		t.Parallel()

		var cfg *htmx.Config
		rec := httptest.NewRecorder()
		cfg.ApplyHeaders(rec)

		assert.Equal(t, "HX-Request", rec.Header().Get("Vary"))
		assert.Empty(t, rec.Header().Get("HX-Reswap"))
	})
}

type staticComponent string

func (s staticComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(s))
	return err
}

type failingComponent struct{}

func (failingComponent) Render(context.Context, io.Writer) error { return errors.New("render failed") }

func TestConfig_RenderOOB(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := htmx.NewConfig(htmx.WithOOB(staticComponent("<a>"), staticComponent("<b>")))
	require.NoError(t, cfg.RenderOOB(context.Background(), &buf))
	assert.Equal(t, "<a><b>", buf.String())

	var nilCfg *htmx.Config
	require.NoError(t, nilCfg.RenderOOB(context.Background(), &buf))

	cfg = htmx.NewConfig(htmx.WithOOB(failingComponent{}))
	require.Error(t, cfg.RenderOOB(context.Background(), &buf))
}
