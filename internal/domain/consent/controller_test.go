package consent

import "testing"

// TestController_BannerHiddenBeforeReadiness tests the hydration-safety
// contract: the banner never shows during a render pass that cannot yet
// observe the persisted cookie.
func TestController_BannerHiddenBeforeReadiness(t *testing.T) {
	c := NewController("", nil)
	if c.ShowBanner() {
		t.Error("banner must be hidden before readiness")
	}
	c.MarkReady()
	if !c.ShowBanner() {
		t.Error("banner must show once readiness is reached and consent is unset")
	}
}

// TestController_BannerNeverReappears tests that both banner actions are terminal.
func TestController_BannerNeverReappears(t *testing.T) {
	for name, accept := range map[string]func(*Controller){
		"accept_all":       (*Controller).AcceptAll,
		"accept_essential": (*Controller).AcceptEssential,
	} {
		c := NewController("", nil)
		c.MarkReady()
		accept(c)
		if c.ShowBanner() {
			t.Errorf("%s: banner reappeared after accept", name)
		}
		c.MarkReady()
		if c.ShowBanner() {
			t.Errorf("%s: banner reappeared after repeated MarkReady", name)
		}
	}
}

// TestController_PersistedConsentSkipsBanner tests init from a saved cookie.
func TestController_PersistedConsentSkipsBanner(t *testing.T) {
	for _, raw := range []string{"all", "essential"} {
		c := NewController(raw, nil)
		c.MarkReady()
		if c.ShowBanner() {
			t.Errorf("banner shown despite persisted consent %q", raw)
		}
	}
	c := NewController("garbage", nil)
	c.MarkReady()
	if !c.ShowBanner() {
		t.Error("invalid persisted value must be treated as unset")
	}
}

// TestController_LastCallWins tests that state equals the most recent accept call.
func TestController_LastCallWins(t *testing.T) {
	c := NewController("", NewBroadcaster())
	c.AcceptAll()
	c.AcceptEssential()
	c.AcceptAll()
	c.AcceptEssential()
	if got := c.State(); got != TypeEssential {
		t.Errorf("got %q, want essential after last call", got)
	}
	c.AcceptAll()
	if got := c.State(); got != TypeAll {
		t.Errorf("got %q, want all after last call", got)
	}
}

// TestController_GrantNotification tests that only transitions into "all"
// publish, one notification per grant action, in registration order.
func TestController_GrantNotification(t *testing.T) {
	b := NewBroadcaster()
	var order []string
	b.Subscribe(func(ty Type) { order = append(order, "first:"+string(ty)) })
	b.Subscribe(func(ty Type) { order = append(order, "second:"+string(ty)) })

	c := NewController("", b)
	c.AcceptEssential()
	if len(order) != 0 {
		t.Fatalf("essential must not publish, got %v", order)
	}
	c.AcceptAll()
	if len(order) != 2 || order[0] != "first:all" || order[1] != "second:all" {
		t.Fatalf("expected registration-order delivery, got %v", order)
	}
	c.AcceptAll()
	if len(order) != 4 {
		t.Fatalf("each grant action publishes once, got %d deliveries", len(order))
	}
}

// TestController_ModalIndependentOfConsent tests that the modal is driven
// only by open/close actions.
func TestController_ModalIndependentOfConsent(t *testing.T) {
	c := NewController("all", nil)
	if c.ShowModal() {
		t.Error("modal must start closed regardless of consent")
	}
	c.OpenSettings()
	if !c.ShowModal() {
		t.Error("modal should open on OpenSettings")
	}
	c.CloseSettings()
	if c.ShowModal() {
		t.Error("modal should close on CloseSettings")
	}
	if got := c.State(); got != TypeAll {
		t.Errorf("open/close must not touch consent, got %q", got)
	}
}

// TestController_SaveSettingsCommitsToggle tests the modal save semantics.
func TestController_SaveSettingsCommitsToggle(t *testing.T) {
	c := NewController("", NewBroadcaster())
	c.OpenSettings()
	c.SaveSettings(true)
	if got := c.State(); got != TypeAll {
		t.Errorf("toggle on must commit all, got %q", got)
	}
	if c.ShowModal() {
		t.Error("save must close the modal")
	}

	c.OpenSettings()
	c.SaveSettings(false)
	if got := c.State(); got != TypeEssential {
		t.Errorf("toggle off must commit essential, got %q", got)
	}
}

// TestController_ScrollLockReleasedOnEveryExit tests that the scroll lock
// state always matches the modal state.
func TestController_ScrollLockReleasedOnEveryExit(t *testing.T) {
	exits := map[string]func(*Controller){
		"cancel": (*Controller).CloseSettings,
		"save":   func(c *Controller) { c.SaveSettings(true) },
		"accept": (*Controller).AcceptEssential,
	}
	for name, exit := range exits {
		c := NewController("", nil)
		c.OpenSettings()
		if !c.ScrollLocked() {
			t.Errorf("%s: scroll must be locked while modal is open", name)
		}
		exit(c)
		if c.ScrollLocked() {
			t.Errorf("%s: scroll lock must be released on exit", name)
		}
		if c.ShowModal() {
			t.Errorf("%s: modal must be closed on exit", name)
		}
	}
}
