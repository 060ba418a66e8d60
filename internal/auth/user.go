// internal/auth/user.go
//
// `users` table model and credential verification.
//
// Context
// -------
// Authentication exists only to gate the admin API; public GETs never
// touch this package.  Passwords are bcrypt hashes, compared in constant
// time by the library.  Credential failures collapse into one
// ErrInvalidCredentials so responses cannot distinguish "no such user"
// from "wrong password".
//
// Schema reference (2026-08)
//
//	CREATE TABLE users (
//	    id         BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    username   VARCHAR(64)  NOT NULL UNIQUE,
//	    password   VARCHAR(128) NOT NULL,
//	    is_admin   TINYINT(1)   NOT NULL DEFAULT 0,
//	    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers unknown username and wrong password alike.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// User mirrors one row in the `users` table.
type User struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Password  string    `db:"password"` // bcrypt hash
	IsAdmin   bool      `db:"is_admin"`
	CreatedAt time.Time `db:"created_at"`
}

// Verify checks username/password against the users table and returns
// the matching row.
func Verify(ctx context.Context, db *sqlx.DB, username, password string) (*User, error) {
	const q = `
        SELECT id, username, password, is_admin, created_at
        FROM   users
        WHERE  username = ?
        LIMIT  1`
	var u User
	if err := db.GetContext(ctx, &u, q, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// HashPassword produces a bcrypt hash for seeding and password changes.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}
