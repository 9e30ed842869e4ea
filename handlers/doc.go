// Package handlers exposes the contact form over HTTP.
//
// GET / renders the page with a fresh form. POST /contact/consent returns
// the submit button re-gated by the disclaimer checkbox, and POST /contact
// relays the message and returns the form with its outcome.
package handlers
