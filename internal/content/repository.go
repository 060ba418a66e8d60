// internal/content/repository.go
//
// Query helpers for the `contents` table.
//
// Context
// -------
// The resolver reads through GetPublished; the admin CRUD layer writes
// through Upsert and Unpublish.  The (page_id, language) UNIQUE KEY makes
// Upsert the only write path—duplicate logical slots cannot exist, so
// "which row wins" is never a question.
//
// Site scoping is optional: a row with no content_sites association is
// shared by all brands, an associated row is served only to its sites.
//
// Notes
// -----
//   - Column list matches the fields in `Record`; update both together.
//   - Oxford commas, two spaces after periods.
package content

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/nessdigital/webcore/internal/locale"
)

// ErrNotFound is returned when no row matches a lookup.
var ErrNotFound = errors.New("content: not found")

const columns = `id, page_id, language, title, description, body,
               seo_title, seo_description, published, created_at, updated_at`

// GetPublished fetches the published row for (pageID, lang), optionally
// restricted to siteCode via content_sites.  Rows with no site
// association are visible to every brand.
func GetPublished(ctx context.Context, db *sqlx.DB, pageID string, lang locale.Language, siteCode string) (*Record, error) {
	q := `
        SELECT ` + columns + `
        FROM   contents c
        WHERE  c.page_id = ? AND c.language = ? AND c.published = 1`
	args := []any{pageID, lang}

	if siteCode != "" {
		q += `
          AND (NOT EXISTS (SELECT 1 FROM content_sites cs
                           WHERE cs.content_id = c.id AND cs.content_type = ?)
               OR EXISTS (SELECT 1 FROM content_sites cs
                          WHERE cs.content_id = c.id AND cs.content_type = ?
                            AND cs.site_code = ?))`
		args = append(args, EntityType, EntityType, siteCode)
	}
	q += `
        LIMIT  1`

	var rec Record
	if err := db.GetContext(ctx, &rec, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// GetByPage fetches the row for (pageID, lang) regardless of published
// state.  Admin editors need to see unpublished drafts.
func GetByPage(ctx context.Context, db *sqlx.DB, pageID string, lang locale.Language) (*Record, error) {
	q := `
        SELECT ` + columns + `
        FROM   contents c
        WHERE  c.page_id = ? AND c.language = ?
        LIMIT  1`
	var rec Record
	if err := db.GetContext(ctx, &rec, q, pageID, lang); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// ListByLanguage returns every row for one language, drafts included.
// Used by the admin translation overview.
func ListByLanguage(ctx context.Context, db *sqlx.DB, lang locale.Language) ([]Record, error) {
	q := `
        SELECT ` + columns + `
        FROM   contents c
        WHERE  c.language = ?
        ORDER  BY c.page_id`
	var rows []Record
	if err := db.SelectContext(ctx, &rows, q, lang); err != nil {
		return nil, err
	}
	return rows, nil
}

// Draft carries the admin-editable fields of one content slot.
type Draft struct {
	Title          string `json:"title"          validate:"required,max=256"`
	Description    string `json:"description"    validate:"max=2048"`
	Body           string `json:"body"           validate:"required"`
	SEOTitle       string `json:"seoTitle"       validate:"max=256"`
	SEODescription string `json:"seoDescription" validate:"max=512"`
	Published      bool   `json:"published"`
}

// Upsert writes the slot (pageID, lang).  The UNIQUE KEY turns the
// second concurrent write into an update of the first—last write wins,
// by design for this low-concurrency internal CMS.
func Upsert(ctx context.Context, db *sqlx.DB, pageID string, lang locale.Language, d Draft) error {
	const q = `
        INSERT INTO contents
               (page_id, language, title, description, body,
                seo_title, seo_description, published)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        ON DUPLICATE KEY UPDATE
               title = VALUES(title), description = VALUES(description),
               body = VALUES(body), seo_title = VALUES(seo_title),
               seo_description = VALUES(seo_description),
               published = VALUES(published), updated_at = NOW()`
	_, err := db.ExecContext(ctx, q,
		pageID, lang, d.Title, d.Description, d.Body,
		d.SEOTitle, d.SEODescription, d.Published)
	return err
}

// Unpublish clears the published flag.  Content is never hard-deleted.
func Unpublish(ctx context.Context, db *sqlx.DB, pageID string, lang locale.Language) error {
	const q = `
        UPDATE contents SET published = 0, updated_at = NOW()
        WHERE  page_id = ? AND language = ?`
	res, err := db.ExecContext(ctx, q, pageID, lang)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// AssociateSites replaces the site associations of one content row.
// An empty codes slice removes all associations, making the row shared.
func AssociateSites(ctx context.Context, db *sqlx.DB, contentID uint64, codes []string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM content_sites WHERE content_id = ? AND content_type = ?`,
		contentID, EntityType); err != nil {
		return err
	}
	for _, code := range codes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO content_sites (content_id, content_type, site_code) VALUES (?, ?, ?)`,
			contentID, EntityType, code); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Count returns the total number of content rows.  Dashboard aggregate.
func Count(ctx context.Context, db *sqlx.DB) (int, error) {
	var n int
	err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM contents`)
	return n, err
}
