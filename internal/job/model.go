// internal/job/model.go
//
// `jobs` table row model.
//
// Schema reference (2026-08)
//
//	CREATE TABLE jobs (
//	    id            BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    title         VARCHAR(256) NOT NULL,
//	    slug          VARCHAR(128) NOT NULL,
//	    location      VARCHAR(128) NOT NULL DEFAULT '',
//	    location_type VARCHAR(32)  NOT NULL DEFAULT '',
//	    type          VARCHAR(32)  NOT NULL DEFAULT '',
//	    summary       TEXT         NOT NULL,
//	    description   MEDIUMTEXT   NOT NULL,
//	    requirements  MEDIUMTEXT   NOT NULL,
//	    language      VARCHAR(2)   NOT NULL,
//	    active        TINYINT(1)   NOT NULL DEFAULT 1,
//	    seo_title        VARCHAR(256) NOT NULL DEFAULT '',
//	    seo_description  VARCHAR(512) NOT NULL DEFAULT '',
//	    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
//
//	CREATE TABLE job_tags (
//	    job_id   BIGINT UNSIGNED NOT NULL,
//	    position INT             NOT NULL,
//	    name     VARCHAR(64)     NOT NULL,
//	    PRIMARY KEY (job_id, position)
//	);
//
// Tags are ordered: position preserves the sequence the admin typed, and
// reads return them in that order.
package job

import (
	"time"

	"github.com/nessdigital/webcore/internal/locale"
)

// Record mirrors one row in the `jobs` table plus its ordered tags.
type Record struct {
	ID             uint64          `db:"id"              json:"id"`
	Title          string          `db:"title"           json:"title"`
	Slug           string          `db:"slug"            json:"slug"`
	Location       string          `db:"location"        json:"location"`
	LocationType   string          `db:"location_type"   json:"locationType"`
	Type           string          `db:"type"            json:"type"`
	Summary        string          `db:"summary"         json:"summary"`
	Description    string          `db:"description"     json:"description"`
	Requirements   string          `db:"requirements"    json:"requirements"`
	Language       locale.Language `db:"language"        json:"language"`
	Active         bool            `db:"active"          json:"active"`
	SEOTitle       string          `db:"seo_title"       json:"seoTitle"`
	SEODescription string          `db:"seo_description" json:"seoDescription"`
	CreatedAt      time.Time       `db:"created_at"      json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at"      json:"updatedAt"`

	Tags []string `db:"-" json:"tags"`
}

// EntityType tags activity-log and content_sites rows for jobs.
const EntityType = "job"
