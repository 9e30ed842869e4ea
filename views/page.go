package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/relayform/pkg/contactform"
)

// HTMXScript is the htmx build loaded by the page.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// PageProps configures the full page.
type PageProps struct {
	Title   string
	Heading string
	Form    contactform.Snapshot
}

// Page renders a complete HTML document around the contact form.
func Page(p PageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := p.Title
		if title == "" {
			title = "Contact us"
		}
		heading := p.Heading
		if heading == "" {
			heading = title
		}

		h := &htmlWriter{w: w}
		h.raw("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		h.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		h.raw("<title>")
		h.text(title)
		h.raw("</title><script")
		h.attr("src", HTMXScript)
		h.raw(" defer></script></head><body><main class=\"mx-auto max-w-xl p-6\"><h1>")
		h.text(heading)
		h.raw("</h1>")
		if h.err != nil {
			return h.err
		}

		if err := ContactForm(p.Form).Render(ctx, w); err != nil {
			return err
		}

		h.raw("</main></body></html>")
		return h.err
	})
}
