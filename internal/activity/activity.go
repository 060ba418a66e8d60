// internal/activity/activity.go
//
// Append-only audit trail of admin mutations.
//
// Context
// -------
// Every successful create, update, delete, unpublish, and login attempt
// appends one row to `activity_logs`.  The table is never updated or
// pruned by the application.  A failed append is logged and swallowed:
// the audit trail must never veto the mutation it describes.
//
// Schema reference (2026-08)
//
//	CREATE TABLE activity_logs (
//	    id          BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    user_id     BIGINT UNSIGNED NOT NULL,
//	    action      VARCHAR(32)     NOT NULL,
//	    entity_type VARCHAR(32)     NOT NULL,
//	    entity_id   VARCHAR(128)    NOT NULL,
//	    details     TEXT            NOT NULL,
//	    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
//
// Notes
// -----
// • entity_id is a string: jobs and news use numeric IDs, content slots
//   use "pageId/language".
// • Oxford commas, two spaces after periods.
package activity

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Actions recorded by the admin layer.
const (
	ActionCreate    = "create"
	ActionUpdate    = "update"
	ActionDelete    = "delete"
	ActionUnpublish = "unpublish"
	ActionLogin     = "login"
)

// Entry mirrors one row in `activity_logs`.
type Entry struct {
	ID         uint64    `db:"id"          json:"id"`
	UserID     int64     `db:"user_id"     json:"userId"`
	Action     string    `db:"action"      json:"action"`
	EntityType string    `db:"entity_type" json:"entityType"`
	EntityID   string    `db:"entity_id"   json:"entityId"`
	Details    string    `db:"details"     json:"details"`
	CreatedAt  time.Time `db:"created_at"  json:"createdAt"`
}

// Recorder appends audit entries.
type Recorder struct {
	db *sqlx.DB
}

// NewRecorder wraps db.
func NewRecorder(db *sqlx.DB) *Recorder { return &Recorder{db: db} }

// Record appends one entry.  Errors are logged, never returned: callers
// have already committed the mutation being described.
func (r *Recorder) Record(ctx context.Context, userID int64, action, entityType, entityID, details string) {
	const q = `
        INSERT INTO activity_logs (user_id, action, entity_type, entity_id, details)
        VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, userID, action, entityType, entityID, details); err != nil {
		zap.S().Errorw("activity append failed",
			"action", action, "entity", entityType, "entity_id", entityID, "err", err)
	}
}

// Recent returns the newest limit entries for the dashboard feed.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const q = `
        SELECT id, user_id, action, entity_type, entity_id, details, created_at
        FROM   activity_logs
        ORDER  BY id DESC
        LIMIT  ?`
	var rows []Entry
	if err := r.db.SelectContext(ctx, &rows, q, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

// CountSince returns the number of entries newer than t.  Dashboard
// aggregate ("edits this week").
func (r *Recorder) CountSince(ctx context.Context, t time.Time) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM activity_logs WHERE created_at >= ?`, t)
	return n, err
}
