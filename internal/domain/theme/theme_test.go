package theme

import "testing"

// TestParse_RoundTrip tests that every valid theme survives persistence.
func TestParse_RoundTrip(t *testing.T) {
	for _, th := range All() {
		if got := Parse(string(th)); got != th {
			t.Errorf("Parse(%q) = %q, want %q", th, got, th)
		}
	}
}

// TestParse_InvalidFallsBackToDefault tests the defensive no-op for
// unrecognized persisted values.
func TestParse_InvalidFallsBackToDefault(t *testing.T) {
	for _, raw := range []string{"", "solarized", "DARK", "dark ", "blue"} {
		if got := Parse(raw); got != Default {
			t.Errorf("Parse(%q) = %q, want default %q", raw, got, Default)
		}
	}
}

// TestValid tests the enumeration boundary.
func TestValid(t *testing.T) {
	if Theme("neon").Valid() {
		t.Error("unknown theme reported valid")
	}
	if !MintDark.Valid() {
		t.Error("mint-dark should be valid")
	}
}

// TestLabel tests that every theme has a picker label.
func TestLabel(t *testing.T) {
	for _, th := range All() {
		if th.Label() == "" {
			t.Errorf("theme %q has no label", th)
		}
	}
}
