// context.go stores the resolved site in the request context so handlers
// and middleware can retrieve it without re-resolving the Host header.
package site

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey struct{}

// WithRecord returns a new context carrying the resolved site.
func WithRecord(ctx context.Context, rec *Record) context.Context {
	return context.WithValue(ctx, ctxKey{}, rec)
}

// FromContext returns the site stored by Resolve middleware, or nil.
func FromContext(ctx context.Context) *Record {
	rec, _ := ctx.Value(ctxKey{}).(*Record)
	return rec
}

// Resolve is middleware that binds each request to its tenant site.  An
// explicit override (X-Site-Code header or ?site= query, used by the
// admin UI which runs on a shared dashboard domain) wins over the Host
// header.  Unknown hosts get 404: configuration errors are fixed at
// deploy time, not papered over with a default brand.
func (r *Registry) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var rec *Record
		var err error

		if code := overrideCode(req); code != "" {
			rec, err = r.ByCode(code)
		} else {
			rec, err = r.ByHost(stripPort(req.Host))
		}
		if err != nil {
			http.NotFound(w, req)
			return
		}
		next.ServeHTTP(w, req.WithContext(WithRecord(req.Context(), rec)))
	})
}

func overrideCode(req *http.Request) string {
	if c := req.Header.Get("X-Site-Code"); c != "" {
		return c
	}
	return req.URL.Query().Get("site")
}

// stripPort removes any ":port" suffix from the Host header.
func stripPort(h string) string {
	if i := strings.IndexByte(h, ':'); i != -1 {
		return h[:i]
	}
	return h
}
