// internal/requestinfo/requestinfo.go
//
// Per-request metadata: user-agent fingerprint, client IP with
// best-effort geolocation, and the first Accept-Language tag.
//
// Context
// -------
// Language detection consults this data when a visitor carries neither
// a ?lang override nor a language cookie: the Accept-Language tag is
// tried first, then the GeoIP country.  The UA fields only feed the
// debug log, but bot detection is cheap and occasionally useful when
// reading traffic.
//
// Dependencies
// • github.com/avct/uasurfer        (UA parsing)
// • github.com/oschwald/geoip2-golang (MaxMind lookup)
package requestinfo

import (
	"context"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/avct/uasurfer"
	"github.com/oschwald/geoip2-golang"
)

// UA holds the parsed user-agent properties.
type UA struct {
	Raw         string // entire User-Agent header
	Browser     string // "Chrome", "Firefox", "Safari", ...
	Version     string // "124.0.6367"
	OS          string // "macOS", "Windows", "Android", ...
	Device      string // "Desktop", "Phone", "Tablet", ...
	IsBot       bool
	PrimaryLang string // first tag from Accept-Language ("pt", "en-gb", ...)
}

// Geo holds IP-based hints.  Best-effort; empty when the database has
// no match or is not loaded.
type Geo struct {
	IP         net.IP
	CountryISO string // "BR", "PT", "US", ...
	City       string
}

// Info is attached to the request context by the Enrich middleware.
type Info struct {
	UA        UA
	Geo       Geo
	Timestamp time.Time
}

// geoReader is a singleton MaxMind handle, safe for concurrent reads.
var geoReader *geoip2.Reader

// InitGeo opens the GeoLite2 database.  Call once from main; when the
// path is empty geolocation stays disabled and lookups return only the
// raw IP.
func InitGeo(dbPath string) error {
	if dbPath == "" {
		return nil
	}
	r, err := geoip2.Open(dbPath)
	if err != nil {
		return err
	}
	geoReader = r
	return nil
}

type ctxKey struct{}

// FromContext returns the *Info stored by Enrich, or nil when the
// middleware has not run.
func FromContext(ctx context.Context) *Info {
	v, _ := ctx.Value(ctxKey{}).(*Info)
	return v
}

// parseUA converts the raw header into our UA struct using uasurfer.
func parseUA(uaHeader, acceptLang string) UA {
	u := uasurfer.Parse(uaHeader)

	osName := strings.TrimPrefix(u.OS.Name.String(), "OS")
	if osName == "MacOSX" {
		osName = "macOS"
	}

	return UA{
		Raw:         uaHeader,
		Browser:     strings.TrimPrefix(u.Browser.Name.String(), "Browser"),
		Version:     trimVersion(u.Browser.Version),
		OS:          osName,
		Device:      deviceTypeToString(u.DeviceType),
		IsBot:       u.IsBot(),
		PrimaryLang: primaryLang(acceptLang),
	}
}

// trimVersion builds "major.minor.patch" and removes trailing ".0".
func trimVersion(v uasurfer.Version) string {
	out := strings.Join([]string{
		strconv.Itoa(v.Major),
		strconv.Itoa(v.Minor),
		strconv.Itoa(v.Patch),
	}, ".")
	for strings.HasSuffix(out, ".0") {
		out = strings.TrimSuffix(out, ".0")
	}
	if out == "" {
		return "0"
	}
	return out
}

func deviceTypeToString(dt uasurfer.DeviceType) string {
	switch dt {
	case uasurfer.DeviceComputer:
		return "Desktop"
	case uasurfer.DevicePhone:
		return "Phone"
	case uasurfer.DeviceTablet:
		return "Tablet"
	case uasurfer.DeviceTV:
		return "TV"
	default:
		return "Unknown"
	}
}

// primaryLang extracts the first language subtag before any ";q=" rule.
func primaryLang(al string) string {
	if al == "" {
		return ""
	}
	tag := strings.TrimSpace(strings.Split(al, ",")[0])
	if i := strings.Index(tag, ";"); i != -1 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}

// lookupGeo returns best-effort Geo data using the global reader.
func lookupGeo(ip net.IP) Geo {
	if geoReader == nil || ip == nil {
		return Geo{IP: ip}
	}
	rec, err := geoReader.City(ip)
	if err != nil {
		return Geo{IP: ip}
	}
	return Geo{
		IP:         ip,
		CountryISO: rec.Country.IsoCode,
		City:       rec.City.Names["en"],
	}
}
