package htmx

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Renderable is satisfied by templ.Component.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

// Config holds htmx response settings for a fragment render.
type Config struct {
	OOBComponents []Renderable
	Retarget      string
	Reswap        SwapStrategy
	Triggers      []string
	Refresh       bool
}

// RenderOption configures Config.
type RenderOption func(*Config)

// NewConfig creates a Config from options.
func NewConfig(opts ...RenderOption) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ApplyHeaders sets the htmx response headers. It must run before the
// status line is written.
func (c *Config) ApplyHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Add(HeaderVary, HeaderHXRequest)

	if c == nil {
		return
	}
	if c.Retarget != "" {
		h.Set(HeaderHXRetarget, c.Retarget)
	}
	if c.Reswap != "" {
		h.Set(HeaderHXReswap, string(c.Reswap))
	}
	if len(c.Triggers) > 0 {
		h.Set(HeaderHXTrigger, strings.Join(c.Triggers, ", "))
	}
	if c.Refresh {
		h.Set(HeaderHXRefresh, "true")
	}
}

// RenderOOB writes the out-of-band components after the main fragment.
func (c *Config) RenderOOB(ctx context.Context, w io.Writer) error {
	if c == nil {
		return nil
	}
	for _, comp := range c.OOBComponents {
		if err := comp.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

// WithOOB appends out-of-band components. Each must carry an id and
// hx-swap-oob.
func WithOOB(components ...Renderable) RenderOption {
	return func(c *Config) {
		c.OOBComponents = append(c.OOBComponents, components...)
	}
}

// WithRetarget changes the element the response is swapped into.
func WithRetarget(selector string) RenderOption {
	return func(c *Config) {
		c.Retarget = selector
	}
}

// WithReswap changes the swap strategy.
func WithReswap(strategy SwapStrategy) RenderOption {
	return func(c *Config) {
		c.Reswap = strategy
	}
}

// WithTrigger fires client-side events once the response arrives.
func WithTrigger(events ...string) RenderOption {
	return func(c *Config) {
		c.Triggers = append(c.Triggers, events...)
	}
}

// WithRefresh forces a full page refresh.
func WithRefresh() RenderOption {
	return func(c *Config) {
		c.Refresh = true
	}
}
