package views

// Element ids derived from the form id so several forms can share a page.

func FormID(formID string) string    { return "contact-form-" + formID }
func ButtonID(formID string) string  { return "contact-submit-" + formID }
func MessageID(formID string) string { return "contact-message-" + formID }
