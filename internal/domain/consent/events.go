package consent

import "sync"

// Broadcaster is a process-wide publish/subscribe channel for consent grants.
// Subscribers are notified synchronously, in registration order, each time a
// visitor action grants analytics consent. Delivery is at-most-once per grant
// action; there is no replay for late subscribers.
type Broadcaster struct {
	mu   sync.Mutex
	subs []func(Type)
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers a callback invoked on every future grant.
// PRE: fn is non-nil
// POST: fn is appended after all previously registered callbacks
func (b *Broadcaster) Subscribe(fn func(Type)) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// publish notifies all subscribers in registration order.
func (b *Broadcaster) publish(t Type) {
	b.mu.Lock()
	subs := make([]func(Type), len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(t)
	}
}
