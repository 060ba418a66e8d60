// internal/site/registry_test.go
//
// Unit-tests for the site registry using sqlmock.
//
// Run: go test ./internal/site -v

package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func expectSiteLoad(mock sqlmock.Sqlmock) {
	now := time.Now()
	mock.ExpectQuery("SELECT code, name, domain").
		WillReturnRows(sqlmock.NewRows([]string{
		"code", "name", "domain", "default_language", "primary_color",
		"secondary_color", "linkedin_url", "instagram_url", "contact_email",
		"created_at", "updated_at",
	}).
		AddRow("ness", "ness.", "ness.com.br", "pt", "#0a0a0a", "#ffffff", "", "", "contato@ness.com.br", now, now).
		AddRow("trustness", "trustness.", "trustness.com.br", "pt", "#101820", "#f2f2f2", "", "", "", now, now).
		AddRow("forense", "forense.io", "forense.io", "en", "#111111", "#eeeeee", "", "", "", now, now))

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT site_code, legal_type, body FROM site_legal`)).
		WillReturnRows(sqlmock.NewRows([]string{"site_code", "legal_type", "body"}).
		AddRow("ness", "privacy", "Política de privacidade."))
}

func TestNewRegistry_ByHostAndCode(t *testing.T) {
	db, mock := newMockDB(t)
	expectSiteLoad(mock)

	reg, err := NewRegistry(context.Background(), db)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	rec, err := reg.ByHost("ness.com.br")
	if err != nil {
		t.Fatalf("ByHost: %v", err)
	}
	if rec.Code != CodeNess {
		t.Fatalf("ByHost code = %q, want ness", rec.Code)
	}
	if rec.Legal["privacy"] == "" {
		t.Fatal("legal text not attached to ness record")
	}

	// www. alias resolves to the bare domain.
	if _, err := reg.ByHost("www.trustness.com.br"); err != nil {
		t.Fatalf("ByHost www alias: %v", err)
	}

	if _, err := reg.ByHost("unknown.example"); err != ErrUnknownHost {
		t.Fatalf("ByHost unknown = %v, want ErrUnknownHost", err)
	}
	if _, err := reg.ByCode("forense"); err != nil {
		t.Fatalf("ByCode forense: %v", err)
	}
	if _, err := reg.ByCode("acme"); err != ErrUnknownSite {
		t.Fatalf("ByCode acme = %v, want ErrUnknownSite", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestResolveMiddleware(t *testing.T) {
	db, mock := newMockDB(t)
	expectSiteLoad(mock)

	reg, err := NewRegistry(context.Background(), db)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rec := FromContext(r.Context()); rec != nil {
			got = rec.Code
		}
		w.WriteHeader(http.StatusOK)
	})

	// Host-based resolution.
	req := httptest.NewRequest(http.MethodGet, "http://forense.io/api/content/home", nil)
	rr := httptest.NewRecorder()
	reg.Resolve(next).ServeHTTP(rr, req)
	if rr.Code != http.StatusOK || got != CodeForense {
		t.Fatalf("host resolve: status=%d site=%q", rr.Code, got)
	}

	// Explicit override beats Host.
	req = httptest.NewRequest(http.MethodGet, "http://forense.io/api/content/home", nil)
	req.Header.Set("X-Site-Code", "ness")
	rr = httptest.NewRecorder()
	reg.Resolve(next).ServeHTTP(rr, req)
	if got != CodeNess {
		t.Fatalf("override resolve: site=%q, want ness", got)
	}

	// Unknown host is a 404, not a default brand.
	req = httptest.NewRequest(http.MethodGet, "http://stranger.example/", nil)
	rr = httptest.NewRecorder()
	reg.Resolve(next).ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown host status = %d, want 404", rr.Code)
	}
}
