// internal/content/repository_test.go
//
// Unit-tests for contents-table helpers using sqlmock.

package content

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/nessdigital/webcore/internal/locale"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUpsert(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO contents").
		WithArgs("home", "pt", "Título", "Descrição", "Corpo", "SEO", "SEO desc", true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := Upsert(context.Background(), db, "home", locale.Portuguese, Draft{
		Title:          "Título",
		Description:    "Descrição",
		Body:           "Corpo",
		SEOTitle:       "SEO",
		SEODescription: "SEO desc",
		Published:      true,
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestUnpublish_MissingSlot(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("UPDATE contents SET published = 0").
		WithArgs("ghost", "en").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := Unpublish(context.Background(), db, "ghost", locale.English); err != ErrNotFound {
		t.Fatalf("Unpublish missing = %v, want ErrNotFound", err)
	}
}

func TestAssociateSites_ReplacesInTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM content_sites").
		WithArgs(uint64(7), EntityType).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO content_sites").
		WithArgs(uint64(7), EntityType, "ness").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO content_sites").
		WithArgs(uint64(7), EntityType, "forense").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := AssociateSites(context.Background(), db, 7, []string{"ness", "forense"})
	if err != nil {
		t.Fatalf("AssociateSites: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}
