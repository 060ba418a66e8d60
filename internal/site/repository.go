// internal/site/repository.go
//
// Query helpers for the `sites` and `site_legal` tables.
//
// Context
// -------
// The registry calls All once at boot and again on every refresh tick;
// the admin settings screen calls UpdateSettings.  Errors are returned
// verbatim so the caller can wrap or log them with the project logger.
//
// Notes
// -----
//   - Column list matches the fields in `Record`; update both together.
//   - Oxford commas, two spaces after periods.
package site

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// All returns every site row with legal texts attached.  The platform
// serves a closed three-brand set, so the result is expected to be small
// and complete.
func All(ctx context.Context, db *sqlx.DB) ([]Record, error) {
	const q = `
        SELECT code, name, domain, default_language, primary_color,
               secondary_color, linkedin_url, instagram_url, contact_email,
               created_at, updated_at
        FROM   sites`
	var rows []Record
	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}

	legal, err := allLegal(ctx, db)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Legal = legal[rows[i].Code]
		if rows[i].Legal == nil {
			rows[i].Legal = map[string]string{}
		}
	}
	return rows, nil
}

// allLegal folds site_legal into map[site_code]map[legal_type]body.
func allLegal(ctx context.Context, db *sqlx.DB) (map[string]map[string]string, error) {
	const q = `SELECT site_code, legal_type, body FROM site_legal`
	rows := make([]struct {
		SiteCode  string `db:"site_code"`
		LegalType string `db:"legal_type"`
		Body      string `db:"body"`
	}, 0, 8)

	if err := db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}

	out := make(map[string]map[string]string, 4)
	for _, r := range rows {
		m, ok := out[r.SiteCode]
		if !ok {
			m = make(map[string]string, 4)
			out[r.SiteCode] = m
		}
		m[r.LegalType] = r.Body
	}
	return out, nil
}

// Settings carries the admin-editable subset of a site row.  Code and
// domain are deliberately absent.
type Settings struct {
	Name           string `json:"name"           validate:"required,max=64"`
	PrimaryColor   string `json:"primaryColor"   validate:"required,hexcolor"`
	SecondaryColor string `json:"secondaryColor" validate:"required,hexcolor"`
	LinkedinURL    string `json:"linkedinUrl"    validate:"omitempty,url,max=256"`
	InstagramURL   string `json:"instagramUrl"   validate:"omitempty,url,max=256"`
	ContactEmail   string `json:"contactEmail"   validate:"omitempty,email,max=128"`
}

// UpdateSettings writes the editable fields of one site row.
// Last-write-wins; the settings screen is single-organization tooling.
func UpdateSettings(ctx context.Context, db *sqlx.DB, code string, s Settings) error {
	const q = `
        UPDATE sites
        SET    name = ?, primary_color = ?, secondary_color = ?,
               linkedin_url = ?, instagram_url = ?, contact_email = ?,
               updated_at = NOW()
        WHERE  code = ?`
	_, err := db.ExecContext(ctx, q,
		s.Name, s.PrimaryColor, s.SecondaryColor,
		s.LinkedinURL, s.InstagramURL, s.ContactEmail, code)
	return err
}
