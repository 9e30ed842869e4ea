// Package internal holds the application core re-exported by the root
// relayform package: App, Router, Context, Handler, Middleware and the
// server runtime.
//
// Handlers declare routes and receive a Context that also implements
// context.Context, so it can be passed straight to the contact controller
// or the relay client:
//
//	func (h *Contact) submit(c relayform.Context) error {
//		values, err := c.FormValues()
//		if err != nil {
//			return c.Error(http.StatusBadRequest, "invalid form", relayform.WithError(err))
//		}
//		...
//		return c.RenderPartial(http.StatusOK, views.Page(snap), views.ContactForm(snap))
//	}
//
// For htmx requests the ResponseWriter sends 4xx statuses as 200 so htmx
// swaps the returned fragment.
package internal
