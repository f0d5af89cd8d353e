package domain

import (
	"context"
	"errors"
)

// ErrInvalidContact marks a contact message that failed validation. Handlers
// map it to a client error; nothing is relayed upstream for these.
var ErrInvalidContact = errors.New("invalid contact message")

// ContactMessage is one contact form submission. It exists for the duration
// of a single request and is never stored.
type ContactMessage struct {
	Sender    string `json:"sender" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// ContactUsecase relays a validated contact message to the site owner.
type ContactUsecase interface {
	SendContactMessage(ctx context.Context, msg *ContactMessage) error
}
