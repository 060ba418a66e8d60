// internal/api/api_test.go
//
// Handler tests over httptest with sqlmock.  Each test spins up the
// full chi router so routing, site resolution, session checks, and the
// JSON envelope are all exercised together.
//
// Run: go test ./internal/api -v

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/nessdigital/webcore/internal/activity"
	"github.com/nessdigital/webcore/internal/auth"
	"github.com/nessdigital/webcore/internal/content"
	"github.com/nessdigital/webcore/internal/locale"
	"github.com/nessdigital/webcore/internal/site"
	"github.com/nessdigital/webcore/internal/translate"
)

const testBundle = `
pt:
  _generic:
    title: "ness."
    description: "Segurança digital."
en:
  _generic:
    title: "ness."
    description: "Digital security."
es:
  _generic:
    title: "ness."
    description: "Seguridad digital."
`

const sessionKey = "0123456789abcdef0123456789abcdef"

func expectSiteLoad(mock sqlmock.Sqlmock) {
	now := time.Now()
	mock.ExpectQuery("SELECT code, name, domain").
		WillReturnRows(sqlmock.NewRows([]string{
		"code", "name", "domain", "default_language", "primary_color",
		"secondary_color", "linkedin_url", "instagram_url", "contact_email",
		"created_at", "updated_at",
	}).
		AddRow("ness", "ness.", "ness.com.br", "pt", "#0a0a0a", "#ffffff", "", "", "contato@ness.com.br", now, now).
		AddRow("forense", "forense.io", "forense.io", "en", "#111111", "#eeeeee", "", "", "", now, now))
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT site_code, legal_type, body FROM site_legal`)).
		WillReturnRows(sqlmock.NewRows([]string{"site_code", "legal_type", "body"}))
}

// newTestHandler wires a Handler over sqlmock with a temp fallback
// bundle and a disabled translate provider.
func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()

	rawDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { rawDB.Close() })
	db := sqlx.NewDb(rawDB, "sqlmock")

	path := filepath.Join(t.TempDir(), "fallback.yaml")
	if err := os.WriteFile(path, []byte(testBundle), 0o644); err != nil {
		t.Fatalf("write bundle: %v", err)
	}
	bundle, err := locale.LoadBundle(path)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}

	expectSiteLoad(mock)
	reg, err := site.NewRegistry(context.Background(), db)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	return &Handler{
		DB:        db,
		Registry:  reg,
		Resolver:  content.NewResolver(db, bundle, content.ResolverOptions{}),
		Sessions:  auth.NewSessions(sessionKey),
		Recorder:  activity.NewRecorder(db),
		Translate: translate.New(nil),
	}, mock
}

// adminCookie issues a session cookie for an admin user.
func adminCookie(t *testing.T, h *Handler) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	if err := h.Sessions.Issue(rec, req, &auth.User{ID: 1, Username: "admin", IsAdmin: true}); err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return rec.Result().Cookies()[0]
}

func TestGetContentFallsBackForUnknownPage(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("SELECT id, page_id, language").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest(http.MethodGet, "http://ness.com.br/api/content/ethics?lang=pt", nil)
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var res content.Resolution
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Source != content.SourceFallback {
		t.Fatalf("source = %q, want fallback", res.Source)
	}
	if res.Fallback == nil || res.Fallback.Title != "ness." {
		t.Fatalf("fallback = %+v", res.Fallback)
	}
}

func TestGetContentUsesSiteDefaultLanguage(t *testing.T) {
	h, mock := newTestHandler(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, page_id, language").
		WithArgs("home", "en", "content", "content", "forense").
		WillReturnRows(sqlmock.NewRows([]string{
		"id", "page_id", "language", "title", "description", "body",
		"seo_title", "seo_description", "published", "created_at", "updated_at",
	}).AddRow(1, "home", "en", "Forensics", "d", "b", "", "", true, now, now))

	// No ?lang, no cookie, no Accept-Language: forense defaults to en.
	req := httptest.NewRequest(http.MethodGet, "http://forense.io/api/content/home", nil)
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	var res content.Resolution
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Source != content.SourceFound || res.Record.Title != "Forensics" {
		t.Fatalf("resolution = %+v", res)
	}
}

func TestPutContentRequiresAdmin(t *testing.T) {
	h, _ := newTestHandler(t)

	body := strings.NewReader(`{"title":"t","body":"b","published":true}`)
	req := httptest.NewRequest(http.MethodPut, "http://ness.com.br/api/content/home?lang=pt", body)
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}

func TestPutContentUpsertsAndAudits(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectExec("INSERT INTO contents").
		WithArgs("home", "pt", "Início", "desc", "corpo", "", "", true).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO activity_logs").
		WillReturnResult(sqlmock.NewResult(1, 1))

	body := strings.NewReader(`{"title":"Início","description":"desc","body":"corpo","published":true}`)
	req := httptest.NewRequest(http.MethodPut, "http://ness.com.br/api/content/home?lang=pt", body)
	req.AddCookie(adminCookie(t, h))
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestPutContentRejectsInvalidDraft(t *testing.T) {
	h, _ := newTestHandler(t)

	// Missing required body field.
	body := strings.NewReader(`{"title":"Início"}`)
	req := httptest.NewRequest(http.MethodPut, "http://ness.com.br/api/content/home?lang=pt", body)
	req.AddCookie(adminCookie(t, h))
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rr.Code)
	}
}

func TestListJobsPublic(t *testing.T) {
	h, mock := newTestHandler(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, title, slug").
		WillReturnRows(sqlmock.NewRows([]string{
		"id", "title", "slug", "location", "location_type", "type", "summary",
		"description", "requirements", "language", "active", "seo_title",
		"seo_description", "created_at", "updated_at",
	}).AddRow(3, "Analista SOC", "analista-soc", "São Paulo", "hybrid", "full-time",
		"s", "d", "r", "pt", true, "", "", now, now))
	mock.ExpectQuery("SELECT name FROM job_tags").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("soc"))

	req := httptest.NewRequest(http.MethodGet, "http://ness.com.br/api/jobs?lang=pt", nil)
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var out []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0]["slug"] != "analista-soc" {
		t.Fatalf("jobs = %+v", out)
	}
}

func TestUnknownHost404s(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "http://acme.example/api/jobs", nil)
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestLoginIssuesCookie(t *testing.T) {
	h, mock := newTestHandler(t)

	hash, err := auth.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	mock.ExpectQuery("SELECT id, username, password").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{
		"id", "username", "password", "is_admin", "created_at",
	}).AddRow(1, "admin", hash, true, time.Now()))
	mock.ExpectExec("INSERT INTO activity_logs").
		WillReturnResult(sqlmock.NewResult(1, 1))

	body := strings.NewReader(`{"username":"admin","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "http://ness.com.br/api/login", body)
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "webcore_session" {
		t.Fatalf("cookies = %+v", cookies)
	}
}

func TestLoginBadPassword(t *testing.T) {
	h, mock := newTestHandler(t)

	hash, _ := auth.HashPassword("right")
	mock.ExpectQuery("SELECT id, username, password").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{
		"id", "username", "password", "is_admin", "created_at",
	}).AddRow(1, "admin", hash, true, time.Now()))
	mock.ExpectExec("INSERT INTO activity_logs").
		WillReturnResult(sqlmock.NewResult(1, 1))

	body := strings.NewReader(`{"username":"admin","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "http://ness.com.br/api/login", body)
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}

func TestTranslateAssistReturnsOriginalWithoutProvider(t *testing.T) {
	h, _ := newTestHandler(t)

	body := strings.NewReader(`{"text":"Sobre nós","from":"pt"}`)
	req := httptest.NewRequest(http.MethodPost, "http://ness.com.br/api/translate?lang=en", body)
	req.AddCookie(adminCookie(t, h))
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var out translateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Text != "Sobre nós" || out.Suggested {
		t.Fatalf("response = %+v", out)
	}
}

func TestCurrentSite(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "http://ness.com.br/api/sites/current", nil)
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var rec site.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Code != site.CodeNess || rec.ContactEmail != "contato@ness.com.br" {
		t.Fatalf("record = %+v", rec)
	}
}

func TestAdminContentOverview(t *testing.T) {
	h, mock := newTestHandler(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, page_id, language").
		WithArgs("pt").
		WillReturnRows(sqlmock.NewRows([]string{
		"id", "page_id", "language", "title", "description", "body",
		"seo_title", "seo_description", "published", "created_at", "updated_at",
	}).AddRow(1, "home", "pt", "Início", "d", "b", "", "", true, now, now))

	req := httptest.NewRequest(http.MethodGet, "http://ness.com.br/api/admin/content?lang=pt", nil)
	req.AddCookie(adminCookie(t, h))
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var out contentOverview
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Rows) != 1 || out.Rows[0].PageID != "home" {
		t.Fatalf("rows = %+v", out.Rows)
	}
	// The test bundle names no pt pages beyond _generic.
	if len(out.Pages) != 0 {
		t.Fatalf("pages = %+v", out.Pages)
	}
}

func TestPutContentSites(t *testing.T) {
	h, mock := newTestHandler(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, page_id, language").
		WithArgs("home", "pt").
		WillReturnRows(sqlmock.NewRows([]string{
		"id", "page_id", "language", "title", "description", "body",
		"seo_title", "seo_description", "published", "created_at", "updated_at",
	}).AddRow(7, "home", "pt", "Início", "d", "b", "", "", true, now, now))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM content_sites").
		WithArgs(7, "content").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO content_sites").
		WithArgs(7, "content", "ness").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectExec("INSERT INTO activity_logs").
		WillReturnResult(sqlmock.NewResult(1, 1))

	body := strings.NewReader(`{"sites":["ness"]}`)
	req := httptest.NewRequest(http.MethodPut, "http://ness.com.br/api/content/home/sites?lang=pt", body)
	req.AddCookie(adminCookie(t, h))
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestAdminCounts(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(12))
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(4))
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(9))
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(31))

	req := httptest.NewRequest(http.MethodGet, "http://ness.com.br/api/admin/counts", nil)
	req.AddCookie(adminCookie(t, h))
	rr := httptest.NewRecorder()
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var out countsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := countsResponse{Contents: 12, Jobs: 4, News: 9, Activity: 31}
	if out != want {
		t.Fatalf("counts = %+v, want %+v", out, want)
	}
}
