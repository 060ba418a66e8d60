// internal/auth/session_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef"

func issueCookie(t *testing.T, s *Sessions, u *User) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	if err := s.Issue(rec, req, u); err != nil {
		t.Fatalf("Issue: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	return cookies[0]
}

func TestSessionRoundTrip(t *testing.T) {
	s := NewSessions(testKey)
	u := &User{ID: 7, Username: "editor", IsAdmin: true}

	c := issueCookie(t, s, u)
	if c.Name != "webcore_session" {
		t.Fatalf("cookie name = %q", c.Name)
	}
	if !c.HttpOnly {
		t.Fatal("cookie should be HttpOnly")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/counts", nil)
	req.AddCookie(c)

	sess, err := s.Verify(req)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if sess.UserID != 7 || sess.Username != "editor" || !sess.Admin {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestVerifyMissingCookie(t *testing.T) {
	s := NewSessions(testKey)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := s.Verify(req); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	s := NewSessions(testKey)
	c := issueCookie(t, s, &User{ID: 1, Username: "root", IsAdmin: true})

	// Flip a character in the signature segment.
	parts := strings.Split(c.Value, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	c.Value = parts[0] + "." + parts[1] + "." + string(sig)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	if _, err := s.Verify(req); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession for tampered token, got %v", err)
	}
}

func TestVerifyWrongKey(t *testing.T) {
	issuer := NewSessions(testKey)
	verifier := NewSessions("ffffffffffffffffffffffffffffffff")

	c := issueCookie(t, issuer, &User{ID: 2, Username: "ops", IsAdmin: true})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	if _, err := verifier.Verify(req); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession for foreign key, got %v", err)
	}
}

func TestRequireAdmin(t *testing.T) {
	s := NewSessions(testKey)

	okBody := "granted"
	handler := s.Attach(RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(okBody))
	})))

	// No session at all.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no session: status = %d, want 401", rec.Code)
	}

	// Valid session without the admin flag.
	c := issueCookie(t, s, &User{ID: 3, Username: "viewer", IsAdmin: false})
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(c)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin: status = %d, want 403", rec.Code)
	}

	// Admin session passes through.
	c = issueCookie(t, s, &User{ID: 4, Username: "admin", IsAdmin: true})
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(c)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != okBody {
		t.Fatalf("admin: status = %d body = %q", rec.Code, rec.Body.String())
	}
}
