// internal/locale/bundle.go
//
// Fallback-content bundle.
//
// Context
// -------
// Pages with no matching database row must still render something
// sensible, so the platform ships default copy for every page in every
// language.  Historically those strings were compiled-in map literals;
// they are now a YAML resource file loaded once at startup, so copy fixes
// ship without a rebuild.
//
// File shape (conf/fallback.yaml):
//
//	pt:
//	  _generic:
//	    title: "ness."
//	    description: "…"
//	  home:
//	    title: "Segurança digital de ponta a ponta"
//	    body: "…"
//	en:
//	  …
//
// The "_generic" entry is required per language and is returned for any
// page the file does not name, so Lookup never fails.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
package locale

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
)

// genericKey names the per-language catch-all entry.
const genericKey = "_generic"

// Fallback is one bundled default-content entry.
type Fallback struct {
	Title       string `koanf:"title"`
	Description string `koanf:"description"`
	Body        string `koanf:"body"`
}

// Bundle holds the parsed fallback file.  It is immutable after
// LoadBundle, so concurrent reads need no locking.
type Bundle struct {
	pages map[Language]map[string]Fallback
}

// LoadBundle parses the YAML file at path and verifies that every
// supported language carries a "_generic" entry.
func LoadBundle(path string) (*Bundle, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("locale: load bundle %s: %w", path, err)
	}

	b := &Bundle{pages: make(map[Language]map[string]Fallback, 3)}
	for _, lang := range All() {
		var pages map[string]Fallback
		if err := k.Unmarshal(string(lang), &pages); err != nil {
			return nil, fmt.Errorf("locale: bundle section %q: %w", lang, err)
		}
		if _, ok := pages[genericKey]; !ok {
			return nil, fmt.Errorf("locale: bundle section %q missing %q entry", lang, genericKey)
		}
		b.pages[lang] = pages
	}
	return b, nil
}

// Lookup returns the bundled default for (pageID, lang).  A page the file
// does not name degrades to the language's generic entry; Lookup never
// returns a zero Fallback for a supported language.
func (b *Bundle) Lookup(pageID string, lang Language) Fallback {
	pages, ok := b.pages[lang]
	if !ok {
		// Unsupported language should be rejected upstream; degrade to
		// English rather than serving empty copy.
		pages = b.pages[English]
	}
	if fb, ok := pages[pageID]; ok {
		return fb
	}
	return pages[genericKey]
}

// Pages returns the page IDs the bundle names for lang, generic entry
// excluded.  Used by the admin dashboard to list translatable slots.
func (b *Bundle) Pages(lang Language) []string {
	pages := b.pages[lang]
	out := make([]string, 0, len(pages))
	for id := range pages {
		if id != genericKey {
			out = append(out, id)
		}
	}
	return out
}
