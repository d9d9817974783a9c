package theme

// Theme is a site-wide color scheme applied as the document's data-theme
// attribute for CSS targeting.
type Theme string

const (
	Light         Theme = "light"
	Dark          Theme = "dark"
	BlueHighlight Theme = "blue-highlights"
	MintCondition Theme = "mint-condition"
	MintDark      Theme = "mint-dark"
)

// Default is used when no preference is persisted.
const Default = Dark

// CookieName is the cookie the selection is persisted in.
const CookieName = "theme"

// CookieMaxAge is one year, in seconds.
const CookieMaxAge = 365 * 24 * 60 * 60

// All lists every selectable theme, in the order the picker shows them.
func All() []Theme {
	return []Theme{Light, Dark, BlueHighlight, MintCondition, MintDark}
}

// Valid reports whether t is one of the enumerated themes.
func (t Theme) Valid() bool {
	switch t {
	case Light, Dark, BlueHighlight, MintCondition, MintDark:
		return true
	}
	return false
}

// Parse maps a persisted value to a theme, falling back to Default for
// anything unrecognized.
// PRE: none
// POST: returned theme is always valid
func Parse(raw string) Theme {
	if t := Theme(raw); t.Valid() {
		return t
	}
	return Default
}

// Label returns a human-readable name for the theme picker.
func (t Theme) Label() string {
	switch t {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	case BlueHighlight:
		return "Blue Highlights"
	case MintCondition:
		return "Mint Condition"
	case MintDark:
		return "Mint Dark"
	}
	return string(t)
}
