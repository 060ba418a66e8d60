// internal/site/registry.go
//
// In-memory site registry.
//
// Context
// -------
// The brand set is a closed three-element enum sharing one database, so
// the registry loads every row eagerly at boot and serves lookups from
// an atomic snapshot—no lazy loading, no eviction.  A background ticker
// re-reads the table so admin settings edits become visible without a
// restart.
//
// Unknown hosts have no defined fallback: they are a deploy-time
// configuration error (DNS pointed at us before the seed ran), so ByHost
// returns ErrUnknownHost and the HTTP layer answers 404.
//
// Notes
// -----
// • Snapshot reads are lock-free via atomic.Pointer.
// • Oxford commas, two spaces after periods.
package site

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/nessdigital/webcore/internal/metrics"
)

// DefaultRefreshInterval is used when config leaves the interval unset.
const DefaultRefreshInterval = 5 * time.Minute

var (
	// ErrUnknownHost means no site row claims the requesting domain.
	ErrUnknownHost = errors.New("site: unknown host")
	// ErrUnknownSite means a code outside the seeded set was supplied.
	ErrUnknownSite = errors.New("site: unknown site code")
)

type snapshot struct {
	byHost map[string]*Record
	byCode map[string]*Record
	all    []Record
}

// Registry resolves hosts and codes to site records.
type Registry struct {
	db   *sqlx.DB
	snap atomic.Pointer[snapshot]
}

// NewRegistry loads all sites and fails if the table is empty—an empty
// registry can serve nothing and means the seed never ran.
func NewRegistry(ctx context.Context, db *sqlx.DB) (*Registry, error) {
	r := &Registry{db: db}
	if err := r.refresh(ctx); err != nil {
		return nil, err
	}
	if len(r.snap.Load().all) == 0 {
		return nil, errors.New("site: sites table is empty, seed the registry")
	}
	return r, nil
}

// StartRefresh re-reads the table every interval until ctx is cancelled.
func (r *Registry) StartRefresh(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := r.refresh(ctx); err != nil {
					zap.S().Warnw("site registry refresh failed", "err", err)
					continue
				}
				metrics.SiteRegistryRefreshTotal.Inc()
			}
		}
	}()
}

// Reload refetches the snapshot immediately, for use after a settings
// write so the admin UI sees its own change.
func (r *Registry) Reload(ctx context.Context) error {
	return r.refresh(ctx)
}

func (r *Registry) refresh(ctx context.Context) error {
	rows, err := All(ctx, r.db)
	if err != nil {
		return err
	}

	snap := &snapshot{
		byHost: make(map[string]*Record, len(rows)),
		byCode: make(map[string]*Record, len(rows)),
		all:    rows,
	}
	for i := range rows {
		rec := &snap.all[i]
		if !KnownCode(rec.Code) {
			zap.S().Warnw("site row with unknown code ignored", "code", rec.Code)
			continue
		}
		snap.byHost[rec.Domain] = rec
		snap.byCode[rec.Code] = rec
	}
	r.snap.Store(snap)
	return nil
}

// ByHost returns the site claiming host (port already stripped).  The
// bare domain and its "www." alias both match.
func (r *Registry) ByHost(host string) (*Record, error) {
	snap := r.snap.Load()
	if rec, ok := snap.byHost[host]; ok {
		return rec, nil
	}
	if after, ok := cutWWW(host); ok {
		if rec, ok := snap.byHost[after]; ok {
			return rec, nil
		}
	}
	return nil, ErrUnknownHost
}

// ByCode returns the site for an explicit code.
func (r *Registry) ByCode(code string) (*Record, error) {
	if rec, ok := r.snap.Load().byCode[code]; ok {
		return rec, nil
	}
	return nil, ErrUnknownSite
}

// AllRecords returns the current snapshot's rows.  Callers must treat
// the slice as read-only.
func (r *Registry) AllRecords() []Record {
	return r.snap.Load().all
}

func cutWWW(host string) (string, bool) {
	const p = "www."
	if len(host) > len(p) && host[:len(p)] == p {
		return host[len(p):], true
	}
	return "", false
}
