package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/relayform/pkg/contactform"
)

// Routes the contact form posts to.
const (
	SubmitPath  = "/contact"
	ConsentPath = "/contact/consent"
)

// FieldFormID is the hidden field carrying the form instance id.
const FieldFormID = "form_id"

// ContactForm renders the whole form. The response to a submission swaps
// it in place.
func ContactForm(s contactform.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw("<form")
		h.attr("id", FormID(s.ID))
		h.attr("class", "contact-form space-y-4")
		h.attr("method", "post")
		h.attr("action", SubmitPath)
		h.attr("hx-post", SubmitPath)
		h.attr("hx-swap", "outerHTML")
		h.attr("hx-disabled-elt", "find button[type='submit']")
		h.attr("data-state", string(s.State))
		h.raw(">")

		h.raw("<input type=\"hidden\"")
		h.attr("name", FieldFormID)
		h.attr("value", s.ID)
		h.raw(">")

		field(h, s, contactform.FieldName, "Name", "text", "name")
		field(h, s, contactform.FieldEmail, "Email", "email", "email")

		h.raw("<label class=\"block\"><span>Message</span><textarea")
		h.attr("name", contactform.FieldMessage)
		h.attr("rows", "5")
		h.raw(" required>")
		h.text(s.Values[contactform.FieldMessage])
		h.raw("</textarea></label>")

		if s.Consent != nil {
			consent(h, s)
		}
		if h.err != nil {
			return h.err
		}

		if err := SubmitButton(s).Render(ctx, w); err != nil {
			return err
		}
		if err := MessageRegion(s).Render(ctx, w); err != nil {
			return err
		}

		h.raw("</form>")
		return h.err
	})
}

func field(h *htmlWriter, s contactform.Snapshot, name, label, typ, autocomplete string) {
	h.raw("<label class=\"block\"><span>")
	h.text(label)
	h.raw("</span><input")
	h.attr("type", typ)
	h.attr("name", name)
	h.attr("autocomplete", autocomplete)
	h.attr("value", s.Values[name])
	h.raw(" required></label>")
}

func consent(h *htmlWriter, s contactform.Snapshot) {
	h.raw("<label class=\"flex items-center gap-2\"><input type=\"checkbox\"")
	h.attr("name", s.Consent.Name)
	h.attr("value", contactform.CheckboxOn)
	h.attr("hx-post", ConsentPath)
	h.attr("hx-trigger", "change")
	h.attr("hx-target", "#"+ButtonID(s.ID))
	h.attr("hx-swap", "outerHTML")
	h.attr("hx-include", "#"+FormID(s.ID))
	h.boolAttr("checked", s.Consent.Checked)
	h.raw("><span>I agree to be contacted about my request.</span></label>")
}

// SubmitButton renders the submit control. It is also the fragment
// returned when the consent checkbox changes.
func SubmitButton(s contactform.Snapshot) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if s.Button == nil {
			return nil
		}
		h := &htmlWriter{w: w}

		classes := contactform.NewClassList("btn btn-primary")
		classes.Add(s.Button.Classes...)

		h.raw("<button type=\"submit\"")
		h.attr("id", ButtonID(s.ID))
		h.attr("class", classes.String())
		h.boolAttr("disabled", s.Button.Disabled)
		h.raw(">")
		h.text(s.Button.Label)
		h.raw("</button>")
		return h.err
	})
}

// MessageRegion renders the outcome message region.
func MessageRegion(s contactform.Snapshot) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if s.Message == nil {
			return nil
		}
		h := &htmlWriter{w: w}

		h.raw("<div")
		h.attr("id", MessageID(s.ID))
		h.attr("class", s.Message.Classes.String())
		h.attr("role", "status")
		h.attr("aria-live", "polite")
		h.raw(">")
		h.text(s.Message.Text)
		h.raw("</div>")
		return h.err
	})
}
