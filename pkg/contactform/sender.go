package contactform

import (
	"context"

	"github.com/dmitrymomot/relayform/pkg/emailjs"
)

// Sender is the remote send operation. *emailjs.Client implements it.
//
// Only a Response with status 200 counts as delivered. A returned error
// means the relay was not reached.
type Sender interface {
	Send(ctx context.Context, serviceID, templateID string, params map[string]string, publicKey string) (emailjs.Response, error)
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, serviceID, templateID string, params map[string]string, publicKey string) (emailjs.Response, error)

// Send implements Sender.
func (fn SenderFunc) Send(ctx context.Context, serviceID, templateID string, params map[string]string, publicKey string) (emailjs.Response, error) {
	return fn(ctx, serviceID, templateID, params, publicKey)
}
