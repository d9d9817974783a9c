package consent

import "sync"

// Controller mediates a single visitor's consent state and the visibility of
// the consent UI. One controller is constructed per session from the
// persisted cookie value; it is never shared between visitors.
//
// INVARIANT: exactly one consent type holds at any time.
// INVARIANT: once the state is TypeEssential or TypeAll, ShowBanner is false
// and stays false.
// INVARIANT: ShowModal is toggled only by OpenSettings/CloseSettings; it is
// never derived from the consent state.
type Controller struct {
	mu          sync.Mutex
	state       Type
	ready       bool
	showModal   bool
	broadcaster *Broadcaster
}

// NewController builds a controller from a persisted cookie value.
// Invalid or absent values start the controller in TypeUnset.
// PRE: broadcaster may be nil (grants are then not announced)
// POST: state equals Parse(persisted); readiness is false
func NewController(persisted string, broadcaster *Broadcaster) *Controller {
	return &Controller{
		state:       Parse(persisted),
		broadcaster: broadcaster,
	}
}

// MarkReady flips the readiness flag. Until this is called ShowBanner reads
// false, so a render pass that cannot yet observe the persisted cookie never
// flashes the banner. Calling it more than once has no further effect.
func (c *Controller) MarkReady() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ready = true
}

// State returns the current consent type.
func (c *Controller) State() Type {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ShowBanner reports whether the consent banner should render.
// POST: true only when the state is TypeUnset and readiness has been reached
func (c *Controller) ShowBanner() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready && c.state == TypeUnset
}

// ShowModal reports whether the settings modal should render.
func (c *Controller) ShowModal() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showModal
}

// ScrollLocked reports whether background scrolling is suspended. It is
// derived from the modal state so that every exit path releases the lock.
func (c *Controller) ScrollLocked() bool {
	return c.ShowModal()
}

// OpenSettings shows the settings modal. Does not touch the consent state.
func (c *Controller) OpenSettings() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showModal = true
}

// CloseSettings hides the settings modal without committing anything.
// PRE: none (closing an already closed modal is a no-op)
// POST: ShowModal is false; the consent state is unchanged
func (c *Controller) CloseSettings() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showModal = false
}

// AcceptAll grants analytics consent.
// POST: state is TypeAll, banner and modal are hidden, and one grant
// notification is published per call
func (c *Controller) AcceptAll() {
	c.accept(TypeAll)
}

// AcceptEssential declines analytics consent.
// POST: state is TypeEssential, banner and modal are hidden, no
// notification is published
func (c *Controller) AcceptEssential() {
	c.accept(TypeEssential)
}

// SaveSettings commits the modal's analytics toggle.
// POST: state is TypeAll when the toggle is on, TypeEssential otherwise
func (c *Controller) SaveSettings(analyticsEnabled bool) {
	if analyticsEnabled {
		c.AcceptAll()
		return
	}
	c.AcceptEssential()
}

func (c *Controller) accept(t Type) {
	c.mu.Lock()
	c.state = t
	c.showModal = false
	b := c.broadcaster
	c.mu.Unlock()

	if t == TypeAll && b != nil {
		b.publish(t)
	}
}
