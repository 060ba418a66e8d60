// internal/auth/session.go
//
// Cookie-based admin sessions.
//
// Context
// -------
// A logged-in admin carries a signed, stateless token in an HttpOnly
// cookie named "webcore_session".  The token is an HMAC-SHA256 JWT with
// subject, username, and admin claims and a 14-day expiry, so the server
// keeps no session table and multiple instances verify independently.
//
// Notes
// -----
// • SameSite=Lax plus the cookie-only transport is the CSRF stance for
//   this JSON API: cross-site POSTs do not carry the cookie.
// • Oxford commas, two spaces after periods.
package auth

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	cookieName  = "webcore_session"
	sessionTTL  = 14 * 24 * time.Hour
	tokenIssuer = "webcore"
)

// ErrNoSession means the cookie is absent, expired, or fails verification.
var ErrNoSession = errors.New("auth: no valid session")

// Sessions signs and verifies admin session cookies.
type Sessions struct {
	key []byte
}

// NewSessions wraps the HMAC key from config.
func NewSessions(key string) *Sessions {
	return &Sessions{key: []byte(key)}
}

type claims struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
	jwt.RegisteredClaims
}

// Issue sets the session cookie for u.
func (s *Sessions) Issue(w http.ResponseWriter, r *http.Request, u *User) error {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: u.Username,
		Admin:    u.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   formatID(u.ID), // numeric user ID
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	})

	signed, err := tok.SignedString(s.key)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  now.Add(sessionTTL),
	})
	return nil
}

// Clear expires the session cookie.
func (s *Sessions) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// Session is the verified identity extracted from a request.
type Session struct {
	UserID   int64
	Username string
	Admin    bool
}

// Verify parses and checks the cookie, returning the session identity.
func (s *Sessions) Verify(r *http.Request) (*Session, error) {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return nil, ErrNoSession
	}

	var cl claims
	tok, err := jwt.ParseWithClaims(c.Value, &cl, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("auth: unexpected signing method")
		}
		return s.key, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return nil, ErrNoSession
	}

	id, err := parseID(cl.Subject)
	if err != nil {
		return nil, ErrNoSession
	}
	return &Session{UserID: id, Username: cl.Username, Admin: cl.Admin}, nil
}

func formatID(id int64) string { return strconv.FormatInt(id, 10) }

func parseID(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }
