package contactform

import "log/slog"

// Defaults for the controller labels.
const (
	DefaultSenderLabel  = "4DVista Team"
	DefaultButtonLabel  = "Contact us"
	DefaultSendingLabel = "Sending..."
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for submission diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSenderLabel sets the to_name template variable.
// Defaults to "4DVista Team".
func WithSenderLabel(label string) Option {
	return func(c *Controller) {
		if label != "" {
			c.senderLabel = label
		}
	}
}

// WithButtonLabel sets the label given to an unlabelled submit control.
// Defaults to "Contact us".
func WithButtonLabel(label string) Option {
	return func(c *Controller) {
		if label != "" {
			c.buttonLabel = label
		}
	}
}

// WithSendingLabel sets the submit control label while a send is pending.
// Defaults to "Sending...".
func WithSendingLabel(label string) Option {
	return func(c *Controller) {
		if label != "" {
			c.sendingLabel = label
		}
	}
}

// WithSenderCopy appends the submitter's address to the email template
// variable so the template can copy them in. Disabled by default.
func WithSenderCopy(enabled bool) Option {
	return func(c *Controller) {
		c.senderCopy = enabled
	}
}
