// internal/content/model.go
//
// `contents` table row model.
//
// Context
// -------
// One row per (page_id, language) pair.  The pair is a real UNIQUE KEY,
// not a convention: writes go through an upsert, so two rows can never
// claim the same logical slot.  Rows are never hard-deleted—unpublishing
// clears the published flag and the resolver stops serving the row.
//
// Schema reference (2026-08)
//
//	CREATE TABLE contents (
//	    id               BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    page_id          VARCHAR(64)  NOT NULL,
//	    language         VARCHAR(2)   NOT NULL,
//	    title            VARCHAR(256) NOT NULL,
//	    description      TEXT         NOT NULL,
//	    body             MEDIUMTEXT   NOT NULL,
//	    seo_title        VARCHAR(256) NOT NULL DEFAULT '',
//	    seo_description  VARCHAR(512) NOT NULL DEFAULT '',
//	    published        TINYINT(1)   NOT NULL DEFAULT 1,
//	    created_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    updated_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    UNIQUE KEY uq_page_language (page_id, language)
//	);
//
//	CREATE TABLE content_sites (
//	    content_id   BIGINT UNSIGNED NOT NULL,
//	    content_type VARCHAR(16)     NOT NULL,
//	    site_code    VARCHAR(16)     NOT NULL,
//	    PRIMARY KEY (content_id, content_type, site_code)
//	);
//
// Notes
// -----
// • This struct contains no behaviour—pure data model for sqlx scans.
package content

import (
	"time"

	"github.com/nessdigital/webcore/internal/locale"
)

// Record mirrors one row in the `contents` table.
type Record struct {
	ID             uint64          `db:"id"              json:"id"`
	PageID         string          `db:"page_id"         json:"pageId"`
	Language       locale.Language `db:"language"        json:"language"`
	Title          string          `db:"title"           json:"title"`
	Description    string          `db:"description"     json:"description"`
	Body           string          `db:"body"            json:"body"`
	SEOTitle       string          `db:"seo_title"       json:"seoTitle"`
	SEODescription string          `db:"seo_description" json:"seoDescription"`
	Published      bool            `db:"published"       json:"published"`
	CreatedAt      time.Time       `db:"created_at"      json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at"      json:"updatedAt"`
}

// EntityType tags content_sites rows written by this package.
const EntityType = "content"
