// internal/api/lang.go
//
// Visitor language detection.
//
// Order of precedence
// -------------------
//   1. Explicit ?lang= query parameter.
//   2. The "webcore_lang" cookie (set by the site's language switcher).
//   3. First Accept-Language tag.
//   4. GeoIP country of the client address.
//   5. The resolved site's default language.
//
// Every step yields one of the three supported languages or passes to
// the next; detection can therefore never fail.
package api

import (
	"net/http"
	"strings"

	"github.com/nessdigital/webcore/internal/locale"
	"github.com/nessdigital/webcore/internal/requestinfo"
	"github.com/nessdigital/webcore/internal/site"
)

const langCookie = "webcore_lang"

// detectLanguage picks the language for an unqualified request.
func detectLanguage(r *http.Request, rec *site.Record) locale.Language {
	if l, err := locale.Parse(r.URL.Query().Get("lang")); err == nil {
		return l
	}

	if c, err := r.Cookie(langCookie); err == nil {
		if l, err := locale.Parse(c.Value); err == nil {
			return l
		}
	}

	if info := requestinfo.FromContext(r.Context()); info != nil {
		// "pt-br" and friends reduce to the base subtag.
		if tag := info.UA.PrimaryLang; tag != "" {
			base, _, _ := strings.Cut(tag, "-")
			if l, err := locale.Parse(base); err == nil {
				return l
			}
		}
		if iso := info.Geo.CountryISO; iso != "" {
			return locale.ForCountry(iso)
		}
	}

	if rec != nil && locale.Valid(rec.DefaultLanguage) {
		return rec.DefaultLanguage
	}
	return locale.English
}
