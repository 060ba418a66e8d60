// internal/auth/context.go
//
// Request-context plumbing for the verified session.
//
// Usage
// -----
//     // Middleware attaches the verified session.
//     ctx = auth.WithSession(ctx, sess)
//
//     // Downstream handlers retrieve it.
//     sess, ok := auth.FromContext(ctx)
package auth

import "context"

// sessionKey is unexported to avoid context-key collisions.
type sessionKey struct{}

// WithSession returns a new context carrying the verified session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext extracts the session from ctx.  ok == false when no
// middleware has attached one.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok
}

// UserID is a convenience accessor; 0, false without a session.
func UserID(ctx context.Context) (int64, bool) {
	s, ok := FromContext(ctx)
	if !ok {
		return 0, false
	}
	return s.UserID, true
}
