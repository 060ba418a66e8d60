// internal/middleware/middleware_test.go
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/nessdigital/webcore/internal/site"
)

func testRegistry(t *testing.T) *site.Registry {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	now := time.Now()
	mock.ExpectQuery("SELECT code, name, domain").
		WillReturnRows(sqlmock.NewRows([]string{
		"code", "name", "domain", "default_language", "primary_color",
		"secondary_color", "linkedin_url", "instagram_url", "contact_email",
		"created_at", "updated_at",
	}).
		AddRow("ness", "ness.", "ness.com.br", "pt", "#0a0a0a", "#ffffff", "", "", "", now, now))
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT site_code, legal_type, body FROM site_legal`)).
		WillReturnRows(sqlmock.NewRows([]string{"site_code", "legal_type", "body"}))

	reg, err := site.NewRegistry(context.Background(), sqlx.NewDb(db, "sqlmock"))
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func TestForceHTTPSRedirectsKnownHost(t *testing.T) {
	h := ForceHTTPS(testRegistry(t), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run on redirect")
	}))

	req := httptest.NewRequest(http.MethodGet, "http://ness.com.br/api/jobs?lang=pt", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusPermanentRedirect {
		t.Fatalf("status = %d, want 308", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "https://ness.com.br/api/jobs?lang=pt" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestForceHTTPSPassesLocalhostAndUnknownHosts(t *testing.T) {
	reg := testRegistry(t)
	for _, host := range []string{"localhost:8080", "unknown.example"} {
		called := false
		h := ForceHTTPS(reg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest(http.MethodGet, "http://"+host+"/", nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if !called {
			t.Errorf("host %q: next handler not called", host)
		}
	}
}

func TestSecurityHeaders(t *testing.T) {
	h := Security(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "SAMEORIGIN") // handler wins
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rr.Header().Get("Strict-Transport-Security"); got == "" {
		t.Error("Strict-Transport-Security missing")
	}
	if got := rr.Header().Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Errorf("existing X-Frame-Options overwritten: %q", got)
	}
}
