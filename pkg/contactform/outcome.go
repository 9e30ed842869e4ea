package contactform

// User-facing outcome messages.
const (
	MessageSent             = "Your message has been sent successfully! We will get back to you soon."
	MessageRejected         = "Failed to send message. Please try again later."
	MessageTransportFailed  = "An error occurred while sending your message. Please try again later."
	MessageConfigIncomplete = "EmailJS configuration is incomplete. Please check your environment variables."
)

// FailureKind classifies why a submission did not succeed.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureConfigIncomplete
	FailureRemoteRejection
	FailureTransport
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureConfigIncomplete:
		return "config_incomplete"
	case FailureRemoteRejection:
		return "remote_rejection"
	case FailureTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Outcome is the result of one submission attempt.
// Err carries the diagnostic cause and is never shown to the user.
type Outcome struct {
	Err     error
	Message string
	Kind    FailureKind
	Status  int // relay status, 0 when no answer was received
	Success bool
}

func succeeded(status int) Outcome {
	return Outcome{Success: true, Message: MessageSent, Status: status}
}

func failed(kind FailureKind, err error) Outcome {
	o := Outcome{Kind: kind, Err: err}
	switch kind {
	case FailureConfigIncomplete:
		o.Message = MessageConfigIncomplete
	case FailureRemoteRejection:
		o.Message = MessageRejected
	default:
		o.Message = MessageTransportFailed
	}
	return o
}

// classes returns the message region classes for this outcome.
func (o Outcome) classes() ClassList {
	l := NewClassList(messageBaseClasses...)
	if o.Success {
		l.Add(messageSuccessClasses...)
	} else {
		l.Add(messageFailureClasses...)
	}
	return l
}
