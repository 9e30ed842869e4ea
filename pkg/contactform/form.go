package contactform

import (
	"context"
	"errors"
	"maps"
	"net/url"
	"slices"
	"sync"
)

// Field names of the contact form.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldMessage    = "message"
	FieldDisclaimer = "disclaimer"
)

// CheckboxOn is the submitted value of a checked checkbox.
const CheckboxOn = "on"

var textFields = []string{FieldName, FieldEmail, FieldMessage}

// SubmitHandler reacts to a submit event on a form.
type SubmitHandler func(ctx context.Context, f *Form) error

// ChangeHandler reacts to the consent checkbox changing.
type ChangeHandler func(f *Form, checked bool)

// SubmitButton is the form's submit control.
type SubmitButton struct {
	Label    string
	Classes  ClassList
	Disabled bool
}

// Checkbox is the optional consent checkbox.
type Checkbox struct {
	Name    string
	Checked bool
}

// MessageRegion displays the outcome of the last submission.
type MessageRegion struct {
	Text    string
	Classes ClassList
}

// Hidden reports whether the region is hidden.
func (m MessageRegion) Hidden() bool {
	return m.Classes.Has(ClassHidden)
}

// Form is one contact form instance: its field values, its controls and the
// listeners attached to it. All methods are safe for concurrent use.
type Form struct {
	values   map[string]string
	button   *SubmitButton
	consent  *Checkbox
	message  *MessageRegion
	outcome  *Outcome
	onSubmit []SubmitHandler
	onChange []ChangeHandler
	id       string
	state    State
	mu       sync.Mutex
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithSubmitButton adds a submit control with the given label.
func WithSubmitButton(label string) FormOption {
	return func(f *Form) {
		f.button = &SubmitButton{Label: label}
	}
}

// WithConsentCheckbox adds the disclaimer checkbox.
func WithConsentCheckbox() FormOption {
	return func(f *Form) {
		f.consent = &Checkbox{Name: FieldDisclaimer}
	}
}

// WithMessageRegion adds an existing message region.
func WithMessageRegion(text string, classes ...string) FormOption {
	return func(f *Form) {
		f.message = &MessageRegion{Text: text, Classes: NewClassList(classes...)}
	}
}

// WithValues populates fields from submitted form values.
// A disclaimer value of "on" checks the consent checkbox when present.
func WithValues(values url.Values) FormOption {
	return func(f *Form) {
		for _, name := range textFields {
			if v := values.Get(name); v != "" {
				f.values[name] = v
			}
		}
		if values.Get(FieldDisclaimer) == CheckboxOn {
			f.values[FieldDisclaimer] = CheckboxOn
		}
	}
}

// NewForm creates a form identified by id.
func NewForm(id string, opts ...FormOption) *Form {
	f := &Form{
		id:     id,
		values: make(map[string]string),
		state:  StateIdle,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.consent != nil && f.values[FieldDisclaimer] == CheckboxOn {
		f.consent.Checked = true
	} else {
		delete(f.values, FieldDisclaimer)
	}

	return f
}

// ID returns the form identifier.
func (f *Form) ID() string {
	return f.id
}

// Value returns the current value of a field.
func (f *Form) Value(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[name]
}

// SetValue updates a text field.
func (f *Form) SetValue(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name] = value
}

// Input extracts the contact data from the current field values.
func (f *Form) Input() ContactInput {
	f.mu.Lock()
	defer f.mu.Unlock()

	return ContactInput{
		Name:               f.values[FieldName],
		Email:              f.values[FieldEmail],
		Message:            f.values[FieldMessage],
		DisclaimerAccepted: f.consent != nil && f.consent.Checked,
	}
}

// Reset clears every field and unchecks the consent checkbox.
// Controls and the message region are left untouched.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

func (f *Form) resetLocked() {
	clear(f.values)
	if f.consent != nil {
		f.consent.Checked = false
	}
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Outcome returns the result of the last completed submission.
func (f *Form) Outcome() (Outcome, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.outcome == nil {
		return Outcome{}, false
	}
	return *f.outcome, true
}

// HasConsent reports whether the form carries a consent checkbox.
func (f *Form) HasConsent() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.consent != nil
}

// OnSubmit attaches a submit listener.
func (f *Form) OnSubmit(h SubmitHandler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onSubmit = append(f.onSubmit, h)
}

// OnConsentChange attaches a consent checkbox listener.
func (f *Form) OnConsentChange(h ChangeHandler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChange = append(f.onChange, h)
}

// RemoveListeners detaches every submit and change listener.
func (f *Form) RemoveListeners() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onSubmit = nil
	f.onChange = nil
}

// Submit fires a submit event. The event never navigates: listeners decide
// what happens. A disabled submit control swallows the event.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateSending {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	if f.button != nil && f.button.Disabled {
		f.mu.Unlock()
		return ErrSubmitDisabled
	}
	handlers := slices.Clone(f.onSubmit)
	f.mu.Unlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ToggleConsent sets the consent checkbox and fires change listeners
// synchronously.
func (f *Form) ToggleConsent(checked bool) error {
	f.mu.Lock()
	if f.consent == nil {
		f.mu.Unlock()
		return ErrNoConsentCheckbox
	}
	f.consent.Checked = checked
	if checked {
		f.values[FieldDisclaimer] = CheckboxOn
	} else {
		delete(f.values, FieldDisclaimer)
	}
	handlers := slices.Clone(f.onChange)
	f.mu.Unlock()

	for _, h := range handlers {
		h(f, checked)
	}
	return nil
}

// prepare makes sure a hidden message region exists, gives an unlabelled
// button its default label and applies the consent gate.
func (f *Form) prepare(defaultLabel string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.message == nil {
		classes := NewClassList(messageBaseClasses...)
		classes.Add(ClassHidden)
		f.message = &MessageRegion{Classes: classes}
	}
	if f.button != nil && f.button.Label == "" {
		f.button.Label = defaultLabel
	}
	if f.consent != nil {
		f.gateLocked(f.consent.Checked)
	}
}

// gate enables the submit control only while consent is given.
// A pending submission keeps the control disabled.
func (f *Form) gate(checked bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSending {
		return
	}
	f.gateLocked(checked)
}

func (f *Form) gateLocked(checked bool) {
	if f.button == nil {
		return
	}
	f.button.Disabled = !checked
	if checked {
		f.button.Classes.Remove(buttonDisabledClasses...)
	} else {
		f.button.Classes.Add(buttonDisabledClasses...)
	}
}

// beginSubmit moves the form into Sending: the control is disabled and
// relabelled, the previous message hidden. It returns the label to restore.
func (f *Form) beginSubmit(sendingLabel string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.state.CanTransition(StateSending) {
		return "", ErrSubmitInFlight
	}
	f.state = StateSending

	var label string
	if f.button != nil {
		label = f.button.Label
		f.button.Disabled = true
		f.button.Label = sendingLabel
	}
	if f.message != nil {
		f.message.Classes.Add(ClassHidden)
	}
	return label, nil
}

// finishSubmit reflects o into the form and returns it to Idle.
// The submit control is always re-enabled with label restored.
func (f *Form) finishSubmit(o Outcome, label string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := StateFailed
	if o.Success {
		next = StateSucceeded
	}
	if !f.state.CanTransition(next) {
		return &InvalidTransitionError{From: f.state, To: next}
	}
	f.state = next
	f.outcome = &o

	if f.message != nil {
		f.message.Text = o.Message
		f.message.Classes = o.classes()
	}
	if o.Success {
		f.resetLocked()
	}
	if f.button != nil {
		f.button.Disabled = false
		f.button.Label = label
		f.button.Classes.Remove(buttonDisabledClasses...)
	}

	f.state = StateIdle
	return nil
}

// Snapshot is a point-in-time copy of a form, safe to render.
type Snapshot struct {
	Values  map[string]string
	Button  *SubmitButton
	Consent *Checkbox
	Message *MessageRegion
	Outcome *Outcome
	ID      string
	State   State
}

// Snapshot copies the form state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := Snapshot{
		ID:     f.id,
		State:  f.state,
		Values: maps.Clone(f.values),
	}
	if f.button != nil {
		b := *f.button
		b.Classes = b.Classes.Clone()
		s.Button = &b
	}
	if f.consent != nil {
		c := *f.consent
		s.Consent = &c
	}
	if f.message != nil {
		m := *f.message
		m.Classes = m.Classes.Clone()
		s.Message = &m
	}
	if f.outcome != nil {
		o := *f.outcome
		s.Outcome = &o
	}
	return s
}
