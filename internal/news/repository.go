// internal/news/repository.go
//
// Query helpers for the `news` table.  Same lifecycle as jobs: admin
// CRUD, language-scoped public listing, hard delete, category and
// featured flag round-trip unchanged.
package news

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nessdigital/webcore/internal/locale"
	"github.com/nessdigital/webcore/internal/slug"
)

// ErrNotFound is returned when no row matches a lookup.
var ErrNotFound = errors.New("news: not found")

const columns = `id, title, slug, summary, content, image, date, category,
               language, featured, seo_title, seo_description,
               created_at, updated_at`

// Draft carries the admin-editable fields of one news item.
type Draft struct {
	Title          string    `json:"title"          validate:"required,max=256"`
	Summary        string    `json:"summary"        validate:"required"`
	Content        string    `json:"content"        validate:"required"`
	Image          string    `json:"image"          validate:"omitempty,url,max=512"`
	Date           time.Time `json:"date"           validate:"required"`
	Category       string    `json:"category"       validate:"max=64"`
	Language       string    `json:"language"       validate:"required,oneof=pt en es"`
	Featured       bool      `json:"featured"`
	SEOTitle       string    `json:"seoTitle"       validate:"max=256"`
	SEODescription string    `json:"seoDescription" validate:"max=512"`
}

// Create inserts a news item, returning the new ID.
func Create(ctx context.Context, db *sqlx.DB, d Draft) (uint64, error) {
	const q = `
        INSERT INTO news
               (title, slug, summary, content, image, date, category,
                language, featured, seo_title, seo_description)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, q,
		d.Title, slug.Make(d.Title), d.Summary, d.Content, d.Image,
		d.Date, d.Category, d.Language, d.Featured,
		d.SEOTitle, d.SEODescription)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites a news item.  Last-write-wins.
func Update(ctx context.Context, db *sqlx.DB, id uint64, d Draft) error {
	const q = `
        UPDATE news
        SET    title = ?, slug = ?, summary = ?, content = ?, image = ?,
               date = ?, category = ?, language = ?, featured = ?,
               seo_title = ?, seo_description = ?, updated_at = NOW()
        WHERE  id = ?`
	res, err := db.ExecContext(ctx, q,
		d.Title, slug.Make(d.Title), d.Summary, d.Content, d.Image,
		d.Date, d.Category, d.Language, d.Featured,
		d.SEOTitle, d.SEODescription, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a news item.
func Delete(ctx context.Context, db *sqlx.DB, id uint64) error {
	res, err := db.ExecContext(ctx, `DELETE FROM news WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID fetches one item.
func GetByID(ctx context.Context, db *sqlx.DB, id uint64) (*Record, error) {
	q := `
        SELECT ` + columns + `
        FROM   news
        WHERE  id = ?
        LIMIT  1`
	var rec Record
	if err := db.GetContext(ctx, &rec, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// GetBySlug fetches one item by slug and language.
func GetBySlug(ctx context.Context, db *sqlx.DB, s string, lang locale.Language) (*Record, error) {
	q := `
        SELECT ` + columns + `
        FROM   news
        WHERE  slug = ? AND language = ?
        LIMIT  1`
	var rec Record
	if err := db.GetContext(ctx, &rec, q, s, lang); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List returns items for one language, newest date first.  featuredOnly
// narrows to the home-page strip.
func List(ctx context.Context, db *sqlx.DB, lang locale.Language, featuredOnly bool) ([]Record, error) {
	q := `
        SELECT ` + columns + `
        FROM   news
        WHERE  language = ?`
	if featuredOnly {
		q += ` AND featured = 1`
	}
	q += `
        ORDER  BY date DESC, id DESC`

	var rows []Record
	if err := db.SelectContext(ctx, &rows, q, lang); err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the total number of news rows.  Dashboard aggregate.
func Count(ctx context.Context, db *sqlx.DB) (int, error) {
	var n int
	err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM news`)
	return n, err
}
