// internal/content/resolver.go
//
// Content resolution: (site, page, language) → best-matching copy.
//
// Context
// -------
// Every public page asks the same question—"what copy do I show for this
// slot in this language?"—and the answer must never be an error.  The
// Resolver centralises the lookup-or-fallback pattern in one place and
// returns a typed Resolution instead of letting every view re-derive
// `row.field || default.field`.
//
// Resolution order:
//
//  1. Published `contents` row for (page, language[, site]).
//  2. Bundled default copy for (page, language) from the locale bundle.
//
// There is deliberately no pt→en cascade: a missing translation reads as
// default copy in the *requested* language, which product prefers over
// silently switching languages.
//
// Caching
// -------
// Hot slots are kept in an LRU keyed (site, page, language) with a short
// TTL; concurrent misses for one key collapse into a single query via
// singleflight, the same shape the platform uses for site loads.  Admin
// mutations call Invalidate so edits are visible immediately.
//
// Notes
// -----
// • Storage errors are logged, counted, and degrade to Fallback.  The
//   end user sees default copy, never a 5xx (loading/error UI states are
//   the front end's concern for transport failures only).
// • Oxford commas, two spaces after periods.
package content

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/nessdigital/webcore/internal/cache"
	"github.com/nessdigital/webcore/internal/locale"
	"github.com/nessdigital/webcore/internal/metrics"
)

// Static defaults.  Override via ResolverOptions if desired.
const (
	DefaultCacheTTL     = 1 * time.Minute
	DefaultCacheEntries = 512
)

// Source tells the caller which branch of the union it holds.
type Source string

const (
	SourceFound    Source = "found"    // published database row
	SourceFallback Source = "fallback" // bundled default copy
)

// Resolution is the typed union returned by Resolve: either a found
// database record or bundled fallback copy, never neither.
type Resolution struct {
	Source   Source          `json:"source"`
	PageID   string          `json:"pageId"`
	Language locale.Language `json:"language"`

	// Record is non-nil iff Source == SourceFound.
	Record *Record `json:"record,omitempty"`
	// Fallback is the bundled copy, set iff Source == SourceFallback.
	Fallback *locale.Fallback `json:"fallback,omitempty"`
}

// FallbackUsed reports whether the bundled default was served.
func (r Resolution) FallbackUsed() bool { return r.Source == SourceFallback }

type cacheKey struct {
	site string
	page string
	lang locale.Language
}

type cacheEntry struct {
	res     Resolution
	expires time.Time
}

// ResolverOptions tunes cache behaviour.
type ResolverOptions struct {
	CacheTTL     time.Duration
	CacheEntries int
}

// Resolver answers content lookups with cached, fallback-safe results.
type Resolver struct {
	db     *sqlx.DB
	bundle *locale.Bundle
	ttl    time.Duration

	sfg singleflight.Group

	mu  sync.Mutex
	lru *cache.LRU[cacheKey, cacheEntry]
}

// NewResolver constructs a Resolver over db with bundle as the fallback
// source.  Zero-value options take the package defaults.
func NewResolver(db *sqlx.DB, bundle *locale.Bundle, opts ResolverOptions) *Resolver {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.CacheEntries <= 0 {
		opts.CacheEntries = DefaultCacheEntries
	}
	return &Resolver{
		db:     db,
		bundle: bundle,
		ttl:    opts.CacheTTL,
		lru:    cache.New[cacheKey, cacheEntry](opts.CacheEntries),
	}
}

// Resolve returns the best-matching copy for (pageID, lang) scoped to
// siteCode ("" means no site filter).  lang must already be validated;
// an unsupported language here is a programmer error and panics in
// development via the locale check below.
func (r *Resolver) Resolve(ctx context.Context, pageID string, lang locale.Language, siteCode string) Resolution {
	if !locale.Valid(lang) {
		// Upstream validates; reaching this line is a bug.  Serve English
		// fallback rather than crash in production.
		zap.S().Errorw("resolver called with unsupported language",
			"page", pageID, "lang", lang)
		lang = locale.English
	}

	key := cacheKey{site: siteCode, page: pageID, lang: lang}

	r.mu.Lock()
	if ent, ok := r.lru.Get(key); ok && time.Now().Before(ent.expires) {
		r.mu.Unlock()
		metrics.ContentResolveTotal.WithLabelValues(string(ent.res.Source)).Inc()
		return ent.res
	}
	r.mu.Unlock()

	v, _, _ := r.sfg.Do(sfKey(key), func() (interface{}, error) {
		res := r.lookup(ctx, pageID, lang, siteCode)
		r.mu.Lock()
		r.lru.Add(key, cacheEntry{res: res, expires: time.Now().Add(r.ttl)})
		r.mu.Unlock()
		return res, nil
	})

	res := v.(Resolution)
	metrics.ContentResolveTotal.WithLabelValues(string(res.Source)).Inc()
	return res
}

// lookup performs the uncached resolution.
func (r *Resolver) lookup(ctx context.Context, pageID string, lang locale.Language, siteCode string) Resolution {
	rec, err := GetPublished(ctx, r.db, pageID, lang, siteCode)
	switch {
	case err == nil:
		return Resolution{
			Source:   SourceFound,
			PageID:   pageID,
			Language: lang,
			Record:   rec,
		}
	case errors.Is(err, ErrNotFound):
		// Expected: translation missing or slot never authored.
	default:
		// Storage trouble degrades to fallback copy; it must never become
		// a hard error for the end user.
		metrics.ContentResolveErrorsTotal.Inc()
		zap.S().Errorw("content lookup failed, serving fallback",
			"page", pageID, "lang", lang, "site", siteCode, "err", err)
	}

	fb := r.bundle.Lookup(pageID, lang)
	return Resolution{
		Source:   SourceFallback,
		PageID:   pageID,
		Language: lang,
		Fallback: &fb,
	}
}

// Invalidate empties the cache.  Called after each admin content
// mutation: the LRU has no iterator, and a full purge at this size is
// cheaper than tracking which site scopes hold the edited slot.
// BundlePages lists the page IDs the fallback bundle names for lang.
// The admin translation overview shows these as editable slots.
func (r *Resolver) BundlePages(lang locale.Language) []string {
	return r.bundle.Pages(lang)
}

func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lru.Purge()
}

func sfKey(k cacheKey) string {
	return k.site + "\x00" + k.page + "\x00" + string(k.lang)
}
