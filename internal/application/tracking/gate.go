package tracking

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "bigrock/internal/domain/analytics"
	"bigrock/internal/domain/consent"
)

// EventSink receives events that passed the consent gate.
type EventSink interface {
	Insert(ctx context.Context, e domain.Event) error
}

// Gate guards every tracking side effect behind the visitor's consent.
// A tracking call with any consent other than "all" is a silent no-op; no
// event ever reaches the sink before consent is granted.
type Gate struct {
	Sink       EventSink
	GenerateID func() string
	Now        func() time.Time

	mu          sync.Mutex
	initialized bool
}

// NewGate creates a gate writing to the given sink.
func NewGate(sink EventSink) *Gate {
	return &Gate{
		Sink:       sink,
		GenerateID: func() string { return uuid.New().String() },
		Now:        time.Now,
	}
}

// Init prepares the analytics pipeline once consent allows it.
// POST: no effect unless c is "all"; repeated calls are harmless
func (g *Gate) Init(c consent.Type) {
	if !c.AllowsAnalytics() {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.initialized {
		return
	}
	g.initialized = true
	slog.Info("analytics_initialized")
}

// Initialized reports whether Init has taken effect.
func (g *Gate) Initialized() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.initialized
}

// SetupConsentListener performs one immediate consent check and subscribes
// to future grants so analytics initializes as soon as consent arrives.
// PRE: b is non-nil
func (g *Gate) SetupConsentListener(b *consent.Broadcaster, current consent.Type) {
	g.Init(current)
	b.Subscribe(func(t consent.Type) {
		g.Init(t)
	})
}

// TrackPageView records a page render.
// POST: with consent "all" exactly one event reaches the sink; otherwise
// nothing happens and nil is returned
func (g *Gate) TrackPageView(ctx context.Context, c consent.Type, path string) error {
	if !c.AllowsAnalytics() {
		return nil
	}
	return g.record(ctx, domain.Event{
		Kind: domain.KindPageView,
		Path: path,
	})
}

// TrackEvent records a custom interaction under the same gate as TrackPageView.
func (g *Gate) TrackEvent(ctx context.Context, c consent.Type, action, category, label string, value int) error {
	if !c.AllowsAnalytics() {
		return nil
	}
	return g.record(ctx, domain.Event{
		Kind:     domain.KindEvent,
		Action:   action,
		Category: category,
		Label:    label,
		Value:    value,
	})
}

func (g *Gate) record(ctx context.Context, e domain.Event) error {
	e.ID = g.GenerateID()
	e.OccurredAt = g.Now()
	if err := e.Validate(); err != nil {
		return err
	}
	if err := g.Sink.Insert(ctx, e); err != nil {
		slog.Error("analytics_insert_failed", "error", err.Error(), "kind", string(e.Kind))
		return err
	}
	return nil
}
