// internal/config/model.go
//
// Typed configuration model.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `conf/.env`                      – dotenv values,
//   • `conf/global.yaml`                        – primary static file,
//   • `WEBCORE_`-prefixed environment overrides – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved
// through the Vault client after unmarshalling, so the cached Config
// never stores Vault URIs—only plain strings.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.

package config

import "time"

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
}

//
// Database section
//

// Database holds the DSN template and its secret.
//
// The *template* (`DSN`) is kept in YAML so operators can tweak host,
// port, or flags without touching Vault; it must contain exactly one
// `%s` verb where the password is spliced in.  The *secret* (`Password`)
// is normally a `vault:` reference resolved at boot.
type Database struct {
	DSN      string `koanf:"dsn"      validate:"required,contains=%s"`
	Password string `koanf:"password" validate:"required"`
}

//
// Logging section
//

// Logging controls the optional file sink.  Console output follows TTY
// detection.
type Logging struct {
	FileEnabled bool `koanf:"file_enabled"`
}

//
// Session section
//

// Session holds the HMAC key that signs admin session tokens.  Normally
// a `vault:` reference.
type Session struct {
	Key string `koanf:"key" validate:"required,min=32"`
}

//
// Translate section
//

// Translate configures the external translation-assist provider.  An
// empty APIKey disables the adapter; saves still succeed and the
// original text is returned unchanged.
type Translate struct {
	BaseURL string        `koanf:"base_url" validate:"omitempty,url"`
	APIKey  string        `koanf:"api_key"`
	Model   string        `koanf:"model"`
	Timeout time.Duration `koanf:"timeout"`
}

//
// Locale section
//

// Locale names the fallback-content bundle and the optional GeoLite2
// database used for first-visit language hints.
type Locale struct {
	BundlePath string `koanf:"bundle_path" validate:"required"`
	GeoIPPath  string `koanf:"geoip_path"`
}

//
// Sites section
//

// Sites tunes the registry refresh cadence.
type Sites struct {
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or WEBCORE_ROOT override) so later code
// can build absolute file paths.
type Paths struct {
	Root string
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP      HTTP      `koanf:"http"`
	Database  Database  `koanf:"database"`
	Logging   Logging   `koanf:"logging"`
	Session   Session   `koanf:"session"`
	Translate Translate `koanf:"translate"`
	Locale    Locale    `koanf:"locale"`
	Sites     Sites     `koanf:"sites"`
	Paths     Paths     `koanf:"-"` // not loaded from config files
}
