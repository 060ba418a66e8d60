// internal/locale/locale.go
//
// Language set and parsing.
//
// Context
// -------
// Every localized record in the platform carries exactly one language
// value from a closed three-element set: Portuguese, English, and
// Spanish.  The set is compile-time-known; adding a language means a
// schema review, new fallback copy, and a deploy, so there is no dynamic
// registration path.
//
// The admin UI and the public front end always submit a validated value.
// Parse therefore treats anything outside the set as a programmer error
// surfaced as ErrUnknownLanguage, never as a value to coerce.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
package locale

import "errors"

// Language is a lowercase ISO 639-1 code from the supported set.
type Language string

const (
	Portuguese Language = "pt"
	English    Language = "en"
	Spanish    Language = "es"
)

// ErrUnknownLanguage is returned by Parse for any value outside the set.
var ErrUnknownLanguage = errors.New("locale: unknown language")

// All returns the supported languages in canonical order.  The slice is
// freshly allocated; callers may mutate it.
func All() []Language {
	return []Language{Portuguese, English, Spanish}
}

// Parse validates a raw language code.  Comparison is exact: callers are
// expected to lowercase and trim upstream (the HTTP layer does both).
func Parse(raw string) (Language, error) {
	switch Language(raw) {
	case Portuguese, English, Spanish:
		return Language(raw), nil
	}
	return "", ErrUnknownLanguage
}

// Valid reports whether l is a member of the supported set.
func Valid(l Language) bool {
	_, err := Parse(string(l))
	return err == nil
}

// ForCountry maps an ISO 3166-1 alpha-2 country code to the language a
// first-time visitor from that country most likely wants.  This is a
// detection hint only; it never widens the supported set.
func ForCountry(iso string) Language {
	switch iso {
	case "BR", "PT", "AO", "MZ":
		return Portuguese
	case "ES", "MX", "AR", "CO", "CL", "PE", "VE", "EC", "UY", "PY", "BO",
		"CR", "PA", "DO", "GT", "HN", "SV", "NI", "CU":
		return Spanish
	}
	return English
}
