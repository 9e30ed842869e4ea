package contactform

// Template parameter keys understood by the contact template.
const (
	ParamFromName  = "from_name"
	ParamFromEmail = "from_email"
	ParamMessage   = "message"
	ParamToName    = "to_name"
	ParamEmail     = "email"
)

// ContactInput is the data extracted from a form on submit.
type ContactInput struct {
	Name               string
	Email              string
	Message            string
	DisclaimerAccepted bool
}

// TemplateParameters is the payload handed to the relay template.
type TemplateParameters struct {
	FromName  string
	FromEmail string
	Message   string
	ToName    string
	Email     string
}

// Map returns the parameters keyed by template variable name.
func (p TemplateParameters) Map() map[string]string {
	return map[string]string{
		ParamFromName:  p.FromName,
		ParamFromEmail: p.FromEmail,
		ParamMessage:   p.Message,
		ParamToName:    p.ToName,
		ParamEmail:     p.Email,
	}
}

// BuildTemplateParameters maps form input onto template variables.
// The email variable addresses toEmail; with senderCopy the submitter's
// address is appended so the template can copy them in.
func BuildTemplateParameters(in ContactInput, toName, toEmail string, senderCopy bool) TemplateParameters {
	recipient := toEmail
	if senderCopy && in.Email != "" {
		recipient = toEmail + ", " + in.Email
	}

	return TemplateParameters{
		FromName:  in.Name,
		FromEmail: in.Email,
		Message:   in.Message,
		ToName:    toName,
		Email:     recipient,
	}
}
