// Package email provides the outbound notification transport. Providers are
// hidden behind the Sender interface so the environment resolver can swap
// them without touching dispatch logic.
package email

import "context"

// Message is one rendered email to a single recipient.
type Message struct {
	To       string
	From     string // sender address
	FromName string // display name for the sender
	Subject  string
	HTML     string
	Text     string
}

// Sender delivers a message through one concrete provider. Implementations
// return the provider-assigned message id on success.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
	// Name identifies the transport in logs and dispatch results.
	Name() string
}
