package contactform_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/relayform/pkg/contactform"
	"github.com/dmitrymomot/relayform/pkg/emailjs"
)

var validConfig = emailjs.Config{
	ServiceID:  "s1",
	TemplateID: "t1",
	PublicKey:  "p1",
	ToEmail:    "dest@example.com",
}

type sendCall struct {
	Params     map[string]string
	ServiceID  string
	TemplateID string
	PublicKey  string
}

type fakeSender struct {
	err    error
	calls  []sendCall
	status int
	mu     sync.Mutex
}

func (s *fakeSender) Send(_ context.Context, serviceID, templateID string, params map[string]string, publicKey string) (emailjs.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, sendCall{
		ServiceID:  serviceID,
		TemplateID: templateID,
		Params:     params,
		PublicKey:  publicKey,
	})
	if s.err != nil {
		return emailjs.Response{}, s.err
	}
	return emailjs.Response{Status: s.status, Text: http.StatusText(s.status)}, nil
}

func (s *fakeSender) Calls() []sendCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sendCall(nil), s.calls...)
}

func filledForm(opts ...contactform.FormOption) *contactform.Form {
	values := url.Values{}
	values.Set("name", "Ann")
	values.Set("email", "ann@x.com")
	values.Set("message", "Hi")

	opts = append([]contactform.FormOption{
		contactform.WithSubmitButton(""),
		contactform.WithValues(values),
	}, opts...)
	return contactform.NewForm("form-1", opts...)
}

func TestController_Submit(t *testing.T) {
	t.Parallel()

	t.Run("success sends parameters and resets the form", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{status: http.StatusOK}
		ctrl := contactform.New(validConfig, sender)
		form := filledForm()
		ctrl.Bind(form)

		require.NoError(t, form.Submit(context.Background()))

		calls := sender.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "s1", calls[0].ServiceID)
		assert.Equal(t, "t1", calls[0].TemplateID)
		assert.Equal(t, "p1", calls[0].PublicKey)
		assert.Equal(t, map[string]string{
			"from_name":  "Ann",
			"from_email": "ann@x.com",
			"message":    "Hi",
			"to_name":    "4DVista Team",
			"email":      "dest@example.com",
		}, calls[0].Params)

		snap := form.Snapshot()
		assert.Equal(t, contactform.StateIdle, snap.State)
		assert.Empty(t, snap.Values)
		require.NotNil(t, snap.Message)
		assert.Equal(t, contactform.MessageSent, snap.Message.Text)
		assert.False(t, snap.Message.Hidden())
		assert.True(t, snap.Message.Classes.Has("bg-green-100"))
		assert.False(t, snap.Button.Disabled)
		assert.Equal(t, contactform.DefaultButtonLabel, snap.Button.Label)

		outcome, ok := form.Outcome()
		require.True(t, ok)
		assert.True(t, outcome.Success)
		assert.Equal(t, contactform.FailureNone, outcome.Kind)
	})

	t.Run("remote rejection keeps values", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{status: http.StatusInternalServerError}
		ctrl := contactform.New(validConfig, sender)
		form := filledForm()
		ctrl.Bind(form)

		require.NoError(t, form.Submit(context.Background()))

		require.Len(t, sender.Calls(), 1)
		snap := form.Snapshot()
		assert.Equal(t, "Ann", snap.Values["name"])
		assert.Equal(t, "ann@x.com", snap.Values["email"])
		assert.Equal(t, "Hi", snap.Values["message"])
		assert.Equal(t, contactform.MessageRejected, snap.Message.Text)
		assert.True(t, snap.Message.Classes.Has("bg-red-100"))
		assert.False(t, snap.Message.Classes.Has("bg-green-100"))
		assert.False(t, snap.Button.Disabled)

		outcome, ok := form.Outcome()
		require.True(t, ok)
		assert.False(t, outcome.Success)
		assert.Equal(t, contactform.FailureRemoteRejection, outcome.Kind)
		assert.Equal(t, http.StatusInternalServerError, outcome.Status)
		assert.ErrorIs(t, outcome.Err, contactform.ErrRemoteRejection)
	})

	t.Run("incomplete config never calls the relay", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig
		cfg.ServiceID = ""
		sender := &fakeSender{status: http.StatusOK}
		ctrl := contactform.New(cfg, sender)
		form := filledForm()
		ctrl.Bind(form)

		require.NoError(t, form.Submit(context.Background()))

		assert.Empty(t, sender.Calls())
		snap := form.Snapshot()
		assert.Equal(t, contactform.MessageConfigIncomplete, snap.Message.Text)
		assert.Equal(t, "Ann", snap.Values["name"])
		assert.False(t, snap.Button.Disabled)

		outcome, _ := form.Outcome()
		assert.Equal(t, contactform.FailureConfigIncomplete, outcome.Kind)
		assert.ErrorIs(t, outcome.Err, contactform.ErrConfigIncomplete)
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{err: errors.New("dial tcp: connection refused")}
		ctrl := contactform.New(validConfig, sender)
		form := filledForm()
		ctrl.Bind(form)

		require.NoError(t, form.Submit(context.Background()))

		snap := form.Snapshot()
		assert.Equal(t, contactform.MessageTransportFailed, snap.Message.Text)
		assert.Equal(t, "Hi", snap.Values["message"])

		outcome, _ := form.Outcome()
		assert.Equal(t, contactform.FailureTransport, outcome.Kind)
		assert.ErrorIs(t, outcome.Err, contactform.ErrTransport)
	})

	t.Run("sender panic is a transport failure", func(t *testing.T) {
		t.Parallel()

		sender := contactform.SenderFunc(func(context.Context, string, string, map[string]string, string) (emailjs.Response, error) {
			panic("boom")
		})
		ctrl := contactform.New(validConfig, sender)
		form := filledForm()
		ctrl.Bind(form)

		require.NoError(t, form.Submit(context.Background()))

		outcome, _ := form.Outcome()
		assert.Equal(t, contactform.FailureTransport, outcome.Kind)
		assert.Equal(t, contactform.StateIdle, form.State())
		assert.False(t, form.Snapshot().Button.Disabled)
	})

	t.Run("sender copy appends submitter address", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{status: http.StatusOK}
		ctrl := contactform.New(validConfig, sender,
			contactform.WithSenderCopy(true),
			contactform.WithSenderLabel("Support"),
		)
		form := filledForm()
		ctrl.Bind(form)

		require.NoError(t, form.Submit(context.Background()))

		calls := sender.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "dest@example.com, ann@x.com", calls[0].Params["email"])
		assert.Equal(t, "Support", calls[0].Params["to_name"])
	})

	t.Run("every outcome message is distinct", func(t *testing.T) {
		t.Parallel()

		msgs := map[string]struct{}{
			contactform.MessageSent:             {},
			contactform.MessageRejected:         {},
			contactform.MessageTransportFailed:  {},
			contactform.MessageConfigIncomplete: {},
		}
		assert.Len(t, msgs, 4)
	})
}

func TestController_SendingState(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	entered := make(chan struct{})
	sender := contactform.SenderFunc(func(context.Context, string, string, map[string]string, string) (emailjs.Response, error) {
		close(entered)
		<-release
		return emailjs.Response{Status: http.StatusOK, Text: "OK"}, nil
	})

	ctrl := contactform.New(validConfig, sender, contactform.WithButtonLabel("Send"))
	form := filledForm()
	ctrl.Bind(form)

	done := make(chan error, 1)
	go func() { done <- form.Submit(context.Background()) }()
	<-entered

	snap := form.Snapshot()
	assert.Equal(t, contactform.StateSending, snap.State)
	assert.True(t, snap.Button.Disabled)
	assert.Equal(t, contactform.DefaultSendingLabel, snap.Button.Label)
	assert.True(t, snap.Message.Hidden())

	assert.ErrorIs(t, form.Submit(context.Background()), contactform.ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)

	snap = form.Snapshot()
	assert.Equal(t, contactform.StateIdle, snap.State)
	assert.False(t, snap.Button.Disabled)
	assert.Equal(t, "Send", snap.Button.Label)
}

func TestController_Bind(t *testing.T) {
	t.Parallel()

	t.Run("rebinding yields one send per submit", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{status: http.StatusOK}
		ctrl := contactform.New(validConfig, sender)
		form := filledForm()
		ctrl.Bind(form)
		ctrl.Bind(form)

		require.NoError(t, form.Submit(context.Background()))
		assert.Len(t, sender.Calls(), 1)
	})

	t.Run("creates a hidden message region", func(t *testing.T) {
		t.Parallel()

		ctrl := contactform.New(validConfig, &fakeSender{status: http.StatusOK})
		form := contactform.NewForm("f", contactform.WithSubmitButton("Go"))
		ctrl.Bind(form)

		snap := form.Snapshot()
		require.NotNil(t, snap.Message)
		assert.True(t, snap.Message.Hidden())
		assert.Equal(t, "form-message mt-4 p-3 rounded-md hidden", snap.Message.Classes.String())
		assert.Equal(t, "Go", snap.Button.Label)
	})

	t.Run("keeps an existing message region", func(t *testing.T) {
		t.Parallel()

		ctrl := contactform.New(validConfig, &fakeSender{status: http.StatusOK})
		form := contactform.NewForm("f",
			contactform.WithSubmitButton("Go"),
			contactform.WithMessageRegion("", "form-message", "custom"),
		)
		ctrl.Bind(form)

		assert.True(t, form.Snapshot().Message.Classes.Has("custom"))
	})

	t.Run("consent gate follows the checkbox", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{status: http.StatusOK}
		ctrl := contactform.New(validConfig, sender)
		form := filledForm(contactform.WithConsentCheckbox())
		ctrl.Bind(form)

		snap := form.Snapshot()
		assert.True(t, snap.Button.Disabled)
		assert.True(t, snap.Button.Classes.Has("opacity-50"))
		assert.True(t, snap.Button.Classes.Has("cursor-not-allowed"))
		assert.ErrorIs(t, form.Submit(context.Background()), contactform.ErrSubmitDisabled)

		require.NoError(t, form.ToggleConsent(true))
		snap = form.Snapshot()
		assert.False(t, snap.Button.Disabled)
		assert.False(t, snap.Button.Classes.Has("opacity-50"))
		assert.Empty(t, sender.Calls())

		require.NoError(t, form.ToggleConsent(false))
		assert.True(t, form.Snapshot().Button.Disabled)
		assert.Empty(t, sender.Calls())
	})

	t.Run("consent gate is not duplicated by rebinding", func(t *testing.T) {
		t.Parallel()

		var changes atomic.Int32
		ctrl := contactform.New(validConfig, &fakeSender{status: http.StatusOK})
		form := filledForm(contactform.WithConsentCheckbox())
		ctrl.Bind(form)
		ctrl.Bind(form)
		form.OnConsentChange(func(*contactform.Form, bool) { changes.Add(1) })

		require.NoError(t, form.ToggleConsent(true))
		assert.Equal(t, int32(1), changes.Load())
		assert.False(t, form.Snapshot().Button.Disabled)
	})

	t.Run("disclaimer accepted is reported and reset on success", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{status: http.StatusOK}
		ctrl := contactform.New(validConfig, sender)
		values := url.Values{"name": {"Ann"}, "disclaimer": {"on"}}
		form := contactform.NewForm("f",
			contactform.WithSubmitButton("Go"),
			contactform.WithConsentCheckbox(),
			contactform.WithValues(values),
		)
		ctrl.Bind(form)

		assert.True(t, form.Input().DisclaimerAccepted)
		assert.False(t, form.Snapshot().Button.Disabled)

		require.NoError(t, form.Submit(context.Background()))

		snap := form.Snapshot()
		assert.False(t, snap.Consent.Checked)
		// re-enabled after the outcome even though consent was cleared
		assert.False(t, snap.Button.Disabled)
	})
}

func TestController_ConcurrentForms(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{status: http.StatusOK}
	ctrl := contactform.New(validConfig, sender)

	const n = 20
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			form := filledForm()
			ctrl.Bind(form)
			assert.NoError(t, form.Submit(context.Background()))
		}()
	}
	wg.Wait()

	assert.Len(t, sender.Calls(), n)
}
