package emailjs

import (
	"errors"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the four EmailJS values a contact form needs.
// Embed this in your app config for env parsing with caarlos0/env.
//
// None of the fields are required at load time. A missing value stays empty
// and Valid reports false, which defers the failure to submission time.
type Config struct {
	ServiceID  string `env:"EMAILJS_SERVICE_ID"`
	TemplateID string `env:"EMAILJS_TEMPLATE_ID"`
	PublicKey  string `env:"EMAILJS_PUBLIC_KEY"`
	ToEmail    string `env:"EMAILJS_TO_EMAIL"`
}

// legacyConfig accepts the variable names exposed to the static site build.
type legacyConfig struct {
	ServiceID  string `env:"PUBLIC_EMAILJS_SERVICE_ID"`
	TemplateID string `env:"PUBLIC_EMAILJS_TEMPLATE_ID"`
	PublicKey  string `env:"PUBLIC_EMAILJS_PUBLIC_KEY"`
	ToEmail    string `env:"PUBLIC_EMAILJS_TO_EMAIL"`
}

// LoadConfig reads the EmailJS values from the process environment.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment win over the file.
// EMAILJS_* names take precedence over their PUBLIC_EMAILJS_* fallbacks.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParseConfig, err)
	}

	var legacy legacyConfig
	if err := env.Parse(&legacy); err != nil {
		return Config{}, errors.Join(ErrParseConfig, err)
	}

	return cfg.WithFallback(Config(legacy)), nil
}

// Valid reports whether every value needed to send a template is set.
func (c Config) Valid() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != "" && c.ToEmail != ""
}

// WithFallback returns a copy of c where each empty field is taken from fb.
func (c Config) WithFallback(fb Config) Config {
	if c.ServiceID == "" {
		c.ServiceID = fb.ServiceID
	}
	if c.TemplateID == "" {
		c.TemplateID = fb.TemplateID
	}
	if c.PublicKey == "" {
		c.PublicKey = fb.PublicKey
	}
	if c.ToEmail == "" {
		c.ToEmail = fb.ToEmail
	}
	return c
}

// LogValue implements slog.LogValuer. The public key is truncated so logs
// can identify the account without carrying the full key.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("service_id", c.ServiceID),
		slog.String("template_id", c.TemplateID),
		slog.String("public_key", redact(c.PublicKey)),
		slog.Bool("to_email_set", c.ToEmail != ""),
	)
}

func redact(key string) string {
	if key == "" {
		return ""
	}
	return key[:min(5, len(key))] + "..."
}
