package handlers

import (
	"context"

	"github.com/dmitrymomot/relayform/pkg/contactform"
	"github.com/dmitrymomot/relayform/pkg/emailjs"
	"github.com/dmitrymomot/relayform/pkg/health"
)

// EmailJSCheck reports the relay as not ready while its configuration is
// incomplete. Submissions would all fail with the configuration message.
func EmailJSCheck(cfg emailjs.Config) health.CheckFunc {
	return func(context.Context) error {
		if !cfg.Valid() {
			return contactform.ErrConfigIncomplete
		}
		return nil
	}
}
