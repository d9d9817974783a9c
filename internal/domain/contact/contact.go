package contact

import (
	"errors"
	"strings"
	"time"
)

// Request is a demo/sales inquiry submitted from the CTA or pricing section.
type Request struct {
	ID        string
	Name      string
	Email     string
	Company   string
	Message   string
	CreatedAt time.Time
}

var (
	// ErrMissingName is returned when the sender's name is empty.
	ErrMissingName = errors.New("contact name cannot be empty")
	// ErrInvalidEmail is returned when the reply address is missing or malformed.
	ErrInvalidEmail = errors.New("contact email is missing or invalid")
	// ErrMissingMessage is returned when the message body is empty.
	ErrMissingMessage = errors.New("contact message cannot be empty")
)

// Validate checks the request's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (r Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	email := strings.TrimSpace(r.Email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(r.Message) == "" {
		return ErrMissingMessage
	}
	return nil
}
