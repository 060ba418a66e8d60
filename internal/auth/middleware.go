// internal/auth/middleware.go
//
// HTTP middleware guarding the admin surface.
//
// Context
// -------
// Attach verifies the session cookie when present and stores the
// decoded session in the request context.  RequireAdmin layers on top
// and rejects requests without an authenticated admin session:
// 401 when no valid session exists, 403 when the session lacks the
// admin flag.
package auth

import "net/http"

// Attach decodes the session cookie, if any, and stores the result in
// the request context.  Requests without a session pass through
// unchanged.
func (s *Sessions) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.Verify(r)
		if err == nil {
			r = r.WithContext(WithSession(r.Context(), sess))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests lacking an authenticated admin
// session.  It expects Attach (or an equivalent) to have run earlier
// in the chain.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := FromContext(r.Context())
		if !ok {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		if !sess.Admin {
			http.Error(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
