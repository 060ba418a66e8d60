// internal/job/repository.go
//
// Query helpers for the `jobs` and `job_tags` tables.
//
// Context
// -------
// Jobs are created and edited by admins; the public site lists active
// rows per language.  Unlike page content, jobs are hard-deleted: a
// withdrawn opening has no archival value and the activity log keeps the
// audit trail.
//
// Tags are stored in a child table with an explicit position column and
// rewritten wholesale on every update, which keeps order round-trips
// exact without diffing.
//
// Notes
// -----
//   - Column list matches the fields in `Record`; update both together.
//   - Oxford commas, two spaces after periods.
package job

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/nessdigital/webcore/internal/locale"
	"github.com/nessdigital/webcore/internal/slug"
)

// ErrNotFound is returned when no row matches a lookup.
var ErrNotFound = errors.New("job: not found")

const columns = `id, title, slug, location, location_type, type, summary,
               description, requirements, language, active,
               seo_title, seo_description, created_at, updated_at`

// Draft carries the admin-editable fields of one job posting.
type Draft struct {
	Title          string   `json:"title"          validate:"required,max=256"`
	Location       string   `json:"location"       validate:"max=128"`
	LocationType   string   `json:"locationType"   validate:"max=32"`
	Type           string   `json:"type"           validate:"max=32"`
	Summary        string   `json:"summary"        validate:"required"`
	Description    string   `json:"description"`
	Requirements   string   `json:"requirements"`
	Language       string   `json:"language"       validate:"required,oneof=pt en es"`
	Active         *bool    `json:"active"`
	Tags           []string `json:"tags"           validate:"dive,required,max=64"`
	SEOTitle       string   `json:"seoTitle"       validate:"max=256"`
	SEODescription string   `json:"seoDescription" validate:"max=512"`
}

// active defaulting: absent flag means visible, per schema default.
func (d Draft) activeOrDefault() bool {
	if d.Active == nil {
		return true
	}
	return *d.Active
}

// Create inserts a posting and its tags, returning the new ID.  The slug
// derives from the title.
func Create(ctx context.Context, db *sqlx.DB, d Draft) (uint64, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	const q = `
        INSERT INTO jobs
               (title, slug, location, location_type, type, summary,
                description, requirements, language, active,
                seo_title, seo_description)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		d.Title, slug.Make(d.Title), d.Location, d.LocationType, d.Type,
		d.Summary, d.Description, d.Requirements, d.Language,
		d.activeOrDefault(), d.SEOTitle, d.SEODescription)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := writeTags(ctx, tx, uint64(id), d.Tags); err != nil {
		return 0, err
	}
	return uint64(id), tx.Commit()
}

// Update rewrites a posting and replaces its tags.  Last-write-wins.
func Update(ctx context.Context, db *sqlx.DB, id uint64, d Draft) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `
        UPDATE jobs
        SET    title = ?, slug = ?, location = ?, location_type = ?, type = ?,
               summary = ?, description = ?, requirements = ?, language = ?,
               active = ?, seo_title = ?, seo_description = ?, updated_at = NOW()
        WHERE  id = ?`
	res, err := tx.ExecContext(ctx, q,
		d.Title, slug.Make(d.Title), d.Location, d.LocationType, d.Type,
		d.Summary, d.Description, d.Requirements, d.Language,
		d.activeOrDefault(), d.SEOTitle, d.SEODescription, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM job_tags WHERE job_id = ?`, id); err != nil {
		return err
	}
	if err := writeTags(ctx, tx, id, d.Tags); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes a posting and its tags.
func Delete(ctx context.Context, db *sqlx.DB, id uint64) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM job_tags WHERE job_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// GetByID fetches one posting with tags, drafts included.
func GetByID(ctx context.Context, db *sqlx.DB, id uint64) (*Record, error) {
	q := `
        SELECT ` + columns + `
        FROM   jobs
        WHERE  id = ?
        LIMIT  1`
	var rec Record
	if err := db.GetContext(ctx, &rec, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := attachTags(ctx, db, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetBySlug fetches one active posting by slug and language.
func GetBySlug(ctx context.Context, db *sqlx.DB, s string, lang locale.Language) (*Record, error) {
	q := `
        SELECT ` + columns + `
        FROM   jobs
        WHERE  slug = ? AND language = ? AND active = 1
        LIMIT  1`
	var rec Record
	if err := db.GetContext(ctx, &rec, q, s, lang); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := attachTags(ctx, db, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns postings for one language, newest first.  activeOnly is
// true on the public site and false in the admin list.
func List(ctx context.Context, db *sqlx.DB, lang locale.Language, activeOnly bool) ([]Record, error) {
	q := `
        SELECT ` + columns + `
        FROM   jobs
        WHERE  language = ?`
	if activeOnly {
		q += ` AND active = 1`
	}
	q += `
        ORDER  BY created_at DESC`

	var rows []Record
	if err := db.SelectContext(ctx, &rows, q, lang); err != nil {
		return nil, err
	}
	for i := range rows {
		if err := attachTags(ctx, db, &rows[i]); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// Count returns the total number of postings.  Dashboard aggregate.
func Count(ctx context.Context, db *sqlx.DB) (int, error) {
	var n int
	err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM jobs`)
	return n, err
}

//
// tag helpers
//

func writeTags(ctx context.Context, tx *sqlx.Tx, jobID uint64, tags []string) error {
	for i, name := range tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO job_tags (job_id, position, name) VALUES (?, ?, ?)`,
			jobID, i, name); err != nil {
			return err
		}
	}
	return nil
}

func attachTags(ctx context.Context, db *sqlx.DB, rec *Record) error {
	rec.Tags = []string{}
	return db.SelectContext(ctx, &rec.Tags,
		`SELECT name FROM job_tags WHERE job_id = ? ORDER BY position`, rec.ID)
}
