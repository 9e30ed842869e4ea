package contactform

import "errors"

var (
	// ErrConfigIncomplete indicates one or more relay settings are empty.
	ErrConfigIncomplete = errors.New("contactform: relay configuration is incomplete")

	// ErrRemoteRejection indicates the relay answered with a non-200 status.
	ErrRemoteRejection = errors.New("contactform: relay rejected the message")

	// ErrTransport indicates the send operation failed without an answer.
	ErrTransport = errors.New("contactform: failed to reach the relay")

	// ErrSubmitDisabled indicates a submit event was fired while the submit
	// control is disabled (consent not given, or a send is pending).
	ErrSubmitDisabled = errors.New("contactform: submit control is disabled")

	// ErrSubmitInFlight indicates another submission of the same form is pending.
	ErrSubmitInFlight = errors.New("contactform: submission already in progress")

	// ErrNoConsentCheckbox indicates a consent toggle on a form without one.
	ErrNoConsentCheckbox = errors.New("contactform: form has no consent checkbox")
)
