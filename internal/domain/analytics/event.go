package analytics

import (
	"errors"
	"time"
)

// Kind distinguishes the two tracked event shapes.
type Kind string

const (
	// KindPageView records a single page render.
	KindPageView Kind = "page_view"
	// KindEvent records a custom interaction (button click, form submit...).
	KindEvent Kind = "event"
)

// Event is one first-party analytics record. Events exist only for visitors
// who granted analytics consent; the gate enforces that before anything
// reaches storage.
type Event struct {
	ID         string
	Kind       Kind
	Path       string // page path for page views
	Action     string // custom event action, e.g. "cta_click"
	Category   string
	Label      string
	Value      int
	OccurredAt time.Time
}

var (
	// ErrMissingPath is returned for a page view without a path.
	ErrMissingPath = errors.New("page view requires a path")
	// ErrMissingAction is returned for a custom event without an action.
	ErrMissingAction = errors.New("event requires an action")
	// ErrUnknownKind is returned for an unrecognized event kind.
	ErrUnknownKind = errors.New("unknown event kind")
)

// Validate checks the event's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (e Event) Validate() error {
	switch e.Kind {
	case KindPageView:
		if e.Path == "" {
			return ErrMissingPath
		}
	case KindEvent:
		if e.Action == "" {
			return ErrMissingAction
		}
	default:
		return ErrUnknownKind
	}
	return nil
}
