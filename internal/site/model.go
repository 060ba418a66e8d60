// internal/site/model.go
//
// `sites` table row model.
//
// Context
// -------
// The Record struct mirrors one row in the persistent **sites** table:
// one row per brand, keyed by a closed, compile-time-known code.  Rows
// are created by migration/seed and rarely mutated; the admin settings
// screen may touch branding and contact fields, never the code or
// domain.
//
// Schema reference (2026-08)
//
//	CREATE TABLE sites (
//	    code             VARCHAR(16)  PRIMARY KEY,
//	    name             VARCHAR(64)  NOT NULL,
//	    domain           VARCHAR(256) NOT NULL UNIQUE,
//	    default_language VARCHAR(2)   NOT NULL DEFAULT 'pt',
//	    primary_color    VARCHAR(7)   NOT NULL DEFAULT '#000000',
//	    secondary_color  VARCHAR(7)   NOT NULL DEFAULT '#ffffff',
//	    linkedin_url     VARCHAR(256) NOT NULL DEFAULT '',
//	    instagram_url    VARCHAR(256) NOT NULL DEFAULT '',
//	    contact_email    VARCHAR(128) NOT NULL DEFAULT '',
//	    created_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    updated_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
//
//	CREATE TABLE site_legal (
//	    site_code  VARCHAR(16)  NOT NULL,
//	    legal_type VARCHAR(32)  NOT NULL,
//	    body       TEXT         NOT NULL,
//	    PRIMARY KEY (site_code, legal_type)
//	);
//
// Notes
// -----
// • This struct contains no behaviour—pure data model for sqlx scans.
// • Legal is populated by a second query at registry load, not by sqlx.
package site

import (
	"time"

	"github.com/nessdigital/webcore/internal/locale"
)

// Known site codes.  The set is closed; an unknown code is a deploy-time
// configuration error, not a runtime condition to recover from.
const (
	CodeNess      = "ness"
	CodeTrustness = "trustness"
	CodeForense   = "forense"
)

// KnownCode reports membership in the closed code set.
func KnownCode(code string) bool {
	switch code {
	case CodeNess, CodeTrustness, CodeForense:
		return true
	}
	return false
}

// Record mirrors one row in the `sites` table plus its legal texts.
type Record struct {
	Code            string          `db:"code"             json:"code"`
	Name            string          `db:"name"             json:"name"`
	Domain          string          `db:"domain"           json:"domain"`
	DefaultLanguage locale.Language `db:"default_language" json:"defaultLanguage"`
	PrimaryColor    string          `db:"primary_color"    json:"primaryColor"`
	SecondaryColor  string          `db:"secondary_color"  json:"secondaryColor"`
	LinkedinURL     string          `db:"linkedin_url"     json:"linkedinUrl"`
	InstagramURL    string          `db:"instagram_url"    json:"instagramUrl"`
	ContactEmail    string          `db:"contact_email"    json:"contactEmail"`
	CreatedAt       time.Time       `db:"created_at"       json:"-"`
	UpdatedAt       time.Time       `db:"updated_at"       json:"-"`

	// Legal maps legal_type ("privacy", "terms", "ethics") to its
	// localized body for this brand.
	Legal map[string]string `db:"-" json:"legal"`
}
