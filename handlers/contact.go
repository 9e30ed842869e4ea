package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/dmitrymomot/relayform"
	"github.com/dmitrymomot/relayform/middlewares"
	"github.com/dmitrymomot/relayform/pkg/contactform"
	"github.com/dmitrymomot/relayform/pkg/htmx"
	"github.com/dmitrymomot/relayform/pkg/inflight"
	"github.com/dmitrymomot/relayform/views"
)

// ContactHandler serves the contact page and relays submissions.
// Every request rebuilds the form from the posted values, so the handler
// keeps no per-form state. Concurrent posts of one form instance are
// serialized through the in-flight locker.
type ContactHandler struct {
	controller *contactform.Controller
	locker     inflight.Locker
	newID      func() string
	title      string
	consent    bool
}

// ContactOption configures a ContactHandler.
type ContactOption func(*ContactHandler)

// WithConsentRequired renders the disclaimer checkbox that gates submission.
func WithConsentRequired(required bool) ContactOption {
	return func(h *ContactHandler) {
		h.consent = required
	}
}

// WithPageTitle sets the page title and heading.
func WithPageTitle(title string) ContactOption {
	return func(h *ContactHandler) {
		h.title = title
	}
}

// WithFormIDGenerator overrides how new form instances are identified.
func WithFormIDGenerator(fn func() string) ContactOption {
	return func(h *ContactHandler) {
		if fn != nil {
			h.newID = fn
		}
	}
}

// NewContactHandler creates the handler. A nil locker falls back to an
// in-process one.
func NewContactHandler(ctrl *contactform.Controller, locker inflight.Locker, opts ...ContactOption) *ContactHandler {
	h := &ContactHandler{
		controller: ctrl,
		locker:     locker,
		newID:      newFormID,
	}
	if h.locker == nil {
		h.locker = inflight.NewMemory()
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Routes implements relayform.Handler.
func (h *ContactHandler) Routes(r relayform.Router) {
	r.GET("/", h.page)
	r.POST(views.ConsentPath, h.toggleConsent)
	r.POST(views.SubmitPath, h.submit)
}

func (h *ContactHandler) page(c relayform.Context) error {
	form := h.buildForm(h.newID(), nil)
	return c.Render(http.StatusOK, views.Page(h.pageProps(form)))
}

// toggleConsent answers the checkbox change with the re-gated button.
func (h *ContactHandler) toggleConsent(c relayform.Context) error {
	values, formID, err := h.parse(c)
	if err != nil {
		return err
	}

	form := h.buildForm(formID, values)
	if err := form.ToggleConsent(values.Get(contactform.FieldDisclaimer) == contactform.CheckboxOn); err != nil {
		return c.Error(http.StatusBadRequest, "This form has no consent checkbox.", relayform.WithError(err))
	}

	return c.RenderPartial(http.StatusOK,
		views.Page(h.pageProps(form)),
		views.SubmitButton(form.Snapshot()),
	)
}

func (h *ContactHandler) submit(c relayform.Context) error {
	values, formID, err := h.parse(c)
	if err != nil {
		return err
	}

	ctx := middlewares.TimeoutContext(c)

	release, err := h.locker.Acquire(ctx, formID)
	switch {
	case errors.Is(err, inflight.ErrLocked):
		// The pending request renders the outcome; htmx keeps the page as is.
		c.SetHeader(htmx.HeaderHXReswap, string(htmx.SwapNone))
		return c.Error(http.StatusConflict, "This message is already being sent.", relayform.WithError(err))
	case err != nil:
		return c.Error(http.StatusServiceUnavailable, "Please try again in a moment.", relayform.WithError(err))
	}
	defer h.release(c, release, formID)

	form := h.buildForm(formID, values)
	status := http.StatusOK
	if err := form.Submit(ctx); err != nil {
		if !errors.Is(err, contactform.ErrSubmitDisabled) {
			return err
		}
		status = http.StatusUnprocessableEntity
	}

	return c.RenderPartial(status,
		views.Page(h.pageProps(form)),
		views.ContactForm(form.Snapshot()),
		htmx.WithRetarget("#"+views.FormID(formID)),
		htmx.WithReswap(htmx.SwapOuterHTML),
	)
}

func (h *ContactHandler) parse(c relayform.Context) (url.Values, string, error) {
	values, err := c.FormValues()
	if err != nil {
		return nil, "", c.Error(http.StatusBadRequest, "Malformed form submission.", relayform.WithError(err))
	}

	formID := values.Get(views.FieldFormID)
	if formID == "" {
		return nil, "", c.Error(http.StatusBadRequest, "Missing form identifier.")
	}
	return values, formID, nil
}

func (h *ContactHandler) buildForm(formID string, values url.Values) *contactform.Form {
	opts := []contactform.FormOption{
		contactform.WithSubmitButton(""),
		contactform.WithValues(values),
	}
	if h.consent {
		opts = append(opts, contactform.WithConsentCheckbox())
	}

	form := contactform.NewForm(formID, opts...)
	h.controller.Bind(form)
	return form
}

func (h *ContactHandler) pageProps(form *contactform.Form) views.PageProps {
	return views.PageProps{Title: h.title, Form: form.Snapshot()}
}

// release runs on a fresh context so a timed-out request still unlocks.
func (h *ContactHandler) release(c relayform.Context, release inflight.Release, formID string) {
	if err := release(context.WithoutCancel(c)); err != nil {
		c.LogWarn("failed to release contact form lock",
			slog.String("form_id", formID),
			slog.String("error", err.Error()),
		)
	}
}

func newFormID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
