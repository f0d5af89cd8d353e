// Package email provides outbound transactional email with a pluggable
// provider, so business logic and tests never hit the real network.
package email

import "context"

// Message is a single outbound email, fully composed by the caller.
type Message struct {
	From    string // display form, e.g. "Portfolio Contact <noreply@example.com>"
	To      []string
	ReplyTo string // optional; lets the recipient answer the visitor directly
	Subject string
	Text    string // plain-text body
	HTML    string // optional HTML body
}

// Sender delivers a message through an email provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
