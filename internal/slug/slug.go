// internal/slug/slug.go
//
// Slug helper for job and news URLs.
//
// Rules
// -----
// 1. Lower-case everything.
// 2. Transliterate the accented letters common in pt/es copy (á→a, ç→c,
//    ñ→n, …) so "São Paulo" becomes "sao-paulo", not "s-o-paulo".
// 3. Convert any remaining run of non-[a-z0-9] characters to one "-".
// 4. Collapse consecutive "-" and trim the ends.
// 5. Empty result falls back to "item"; slugs cap at 100 bytes.
package slug

import "strings"

// translit maps the accented runes that appear in Portuguese and Spanish
// titles onto ASCII.  Anything absent here falls through to the dash rule.
var translit = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n',
}

// Make converts title → lower-kebab ASCII.
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastWasDash := false
	for _, r := range strings.ToLower(title) {
		if t, ok := translit[r]; ok {
			r = t
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasDash = false
		default:
			if !lastWasDash {
				b.WriteRune('-')
				lastWasDash = true
			}
		}
	}

	s := strings.Trim(b.String(), "-")
	if s == "" {
		return "item"
	}
	if len(s) > 100 {
		s = s[:100]
		s = strings.TrimRight(s, "-")
	}
	return s
}
