// internal/requestinfo/requestinfo_test.go
package requestinfo

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const chromeUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

func TestPrimaryLang(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"pt-PT,pt;q=0.9,en;q=0.8", "pt-pt"},
		{"en-US", "en-us"},
		{"es;q=0.5", "es"},
		{"  FR-fr , en ", "fr-fr"},
	}
	for _, tc := range cases {
		if got := primaryLang(tc.in); got != tc.want {
			t.Errorf("primaryLang(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:4444"
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	if got := clientIP(r); got.String() != "203.0.113.9" {
		t.Fatalf("clientIP = %v", got)
	}
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "198.51.100.7:1234"

	if got := clientIP(r); got.String() != "198.51.100.7" {
		t.Fatalf("clientIP = %v", got)
	}
}

func TestEnrichAttachesInfo(t *testing.T) {
	var got *Info
	h := Enrich(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/pt/jobs", nil)
	r.Header.Set("User-Agent", chromeUA)
	r.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")
	h.ServeHTTP(httptest.NewRecorder(), r)

	if got == nil {
		t.Fatal("Info missing from context")
	}
	if got.UA.Browser != "Chrome" {
		t.Errorf("Browser = %q", got.UA.Browser)
	}
	if got.UA.PrimaryLang != "pt-br" {
		t.Errorf("PrimaryLang = %q", got.UA.PrimaryLang)
	}
	if got.UA.IsBot {
		t.Error("IsBot should be false for a desktop browser UA")
	}
}
