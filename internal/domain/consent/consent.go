package consent

// Type is the visitor's cookie consent choice.
type Type string

const (
	// TypeUnset means the visitor has not made a choice yet.
	TypeUnset Type = ""
	// TypeEssential allows only cookies the site needs to function.
	TypeEssential Type = "essential"
	// TypeAll additionally allows analytics cookies.
	TypeAll Type = "all"
)

// CookieName is the cookie the consent choice is persisted in.
const CookieName = "cookie_consent"

// CookieMaxAge is how long a consent choice persists before the visitor is
// asked again, in seconds (one year).
const CookieMaxAge = 365 * 24 * 60 * 60

// Parse maps a persisted cookie value to a consent type.
// PRE: none
// POST: returns TypeAll or TypeEssential for their exact string values,
// TypeUnset for anything else (absent, empty, or corrupted values)
func Parse(raw string) Type {
	switch Type(raw) {
	case TypeAll:
		return TypeAll
	case TypeEssential:
		return TypeEssential
	default:
		return TypeUnset
	}
}

// IsSet reports whether the visitor has made an explicit choice.
func (t Type) IsSet() bool {
	return t == TypeAll || t == TypeEssential
}

// AllowsAnalytics reports whether analytics side effects may run.
func (t Type) AllowsAnalytics() bool {
	return t == TypeAll
}
