package contactform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/relayform/pkg/emailjs"
	"github.com/dmitrymomot/relayform/pkg/logger"
)

// Controller binds contact forms to the relay.
// A single Controller serves any number of independent forms.
type Controller struct {
	sender       Sender
	logger       *slog.Logger
	config       emailjs.Config
	senderLabel  string
	buttonLabel  string
	sendingLabel string
	senderCopy   bool
}

// New creates a Controller. cfg is loaded once at startup and not re-read.
func New(cfg emailjs.Config, sender Sender, opts ...Option) *Controller {
	c := &Controller{
		sender:       sender,
		config:       cfg,
		logger:       logger.NewNope(),
		senderLabel:  DefaultSenderLabel,
		buttonLabel:  DefaultButtonLabel,
		sendingLabel: DefaultSendingLabel,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Config returns the relay configuration the controller was built with.
func (c *Controller) Config() emailjs.Config {
	return c.config
}

// Bind attaches submission behavior to f.
//
// Existing listeners are removed first, so binding the same form again
// never results in more than one send per submit event. When f has a
// consent checkbox, the submit control follows its checked state.
func (c *Controller) Bind(f *Form) {
	f.RemoveListeners()
	f.prepare(c.buttonLabel)

	if f.HasConsent() {
		f.OnConsentChange(func(f *Form, checked bool) {
			f.gate(checked)
		})
	}
	f.OnSubmit(c.handleSubmit)
}

func (c *Controller) handleSubmit(ctx context.Context, f *Form) error {
	label, err := f.beginSubmit(c.sendingLabel)
	if err != nil {
		return err
	}

	outcome := failed(FailureTransport, ErrTransport)
	defer func() {
		if err := f.finishSubmit(outcome, label); err != nil {
			c.logger.ErrorContext(ctx, "failed to finish contact submission",
				slog.String("form_id", f.ID()),
				slog.String("error", err.Error()),
			)
		}
	}()

	input := f.Input()
	c.logger.DebugContext(ctx, "contact form submitted",
		slog.String("form_id", f.ID()),
		slog.Bool("disclaimer_accepted", input.DisclaimerAccepted),
	)

	outcome = c.deliver(ctx, input)
	c.logOutcome(ctx, f.ID(), outcome)
	return nil
}

// deliver validates configuration and calls the relay.
func (c *Controller) deliver(ctx context.Context, in ContactInput) Outcome {
	if !c.config.Valid() {
		return failed(FailureConfigIncomplete, ErrConfigIncomplete)
	}

	params := BuildTemplateParameters(in, c.senderLabel, c.config.ToEmail, c.senderCopy)

	resp, err := c.send(ctx, params.Map())
	if err != nil {
		return failed(FailureTransport, errors.Join(ErrTransport, err))
	}
	if resp.Status != http.StatusOK {
		o := failed(FailureRemoteRejection, fmt.Errorf("%w: status %d: %s", ErrRemoteRejection, resp.Status, resp.Text))
		o.Status = resp.Status
		return o
	}
	return succeeded(resp.Status)
}

// send calls the relay and turns a panic into an error.
func (c *Controller) send(ctx context.Context, params map[string]string) (resp emailjs.Response, err error) {
	if c.sender == nil {
		return emailjs.Response{}, errors.New("no sender configured")
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sender panicked: %v", r)
		}
	}()

	return c.sender.Send(ctx, c.config.ServiceID, c.config.TemplateID, params, c.config.PublicKey)
}

func (c *Controller) logOutcome(ctx context.Context, formID string, o Outcome) {
	attrs := []any{
		slog.String("form_id", formID),
		slog.String("kind", o.Kind.String()),
	}

	switch o.Kind {
	case FailureNone:
		c.logger.InfoContext(ctx, "contact message sent", attrs...)
	case FailureConfigIncomplete:
		c.logger.ErrorContext(ctx, "email relay configuration is incomplete",
			append(attrs, slog.Any("emailjs", c.config))...)
	case FailureRemoteRejection:
		c.logger.WarnContext(ctx, "email relay rejected contact message",
			append(attrs, slog.Int("status", o.Status), slog.String("error", o.Err.Error()))...)
	default:
		c.logger.ErrorContext(ctx, "failed to send contact message",
			append(attrs, slog.String("error", o.Err.Error()))...)
	}
}
