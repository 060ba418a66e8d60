// internal/news/model.go
//
// `news` table row model.
//
// Schema reference (2026-08)
//
//	CREATE TABLE news (
//	    id              BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    title           VARCHAR(256) NOT NULL,
//	    slug            VARCHAR(128) NOT NULL,
//	    summary         TEXT         NOT NULL,
//	    content         MEDIUMTEXT   NOT NULL,
//	    image           VARCHAR(512) NOT NULL DEFAULT '',
//	    date            DATE         NOT NULL,
//	    category        VARCHAR(64)  NOT NULL DEFAULT '',
//	    language        VARCHAR(2)   NOT NULL,
//	    featured        TINYINT(1)   NOT NULL DEFAULT 0,
//	    seo_title       VARCHAR(256) NOT NULL DEFAULT '',
//	    seo_description VARCHAR(512) NOT NULL DEFAULT '',
//	    created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    updated_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
package news

import (
	"time"

	"github.com/nessdigital/webcore/internal/locale"
)

// Record mirrors one row in the `news` table.
type Record struct {
	ID             uint64          `db:"id"              json:"id"`
	Title          string          `db:"title"           json:"title"`
	Slug           string          `db:"slug"            json:"slug"`
	Summary        string          `db:"summary"         json:"summary"`
	Content        string          `db:"content"         json:"content"`
	Image          string          `db:"image"           json:"image"`
	Date           time.Time       `db:"date"            json:"date"`
	Category       string          `db:"category"        json:"category"`
	Language       locale.Language `db:"language"        json:"language"`
	Featured       bool            `db:"featured"        json:"featured"`
	SEOTitle       string          `db:"seo_title"       json:"seoTitle"`
	SEODescription string          `db:"seo_description" json:"seoDescription"`
	CreatedAt      time.Time       `db:"created_at"      json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at"      json:"updatedAt"`
}

// EntityType tags activity-log rows for news.
const EntityType = "news"
