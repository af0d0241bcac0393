package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// EnsureAdminUser seeds the single admin account from configuration when
// the table is still empty, so a fresh deployment can sign in.
func EnsureAdminUser(db *sqlx.DB, tokens TokenService, email, password string) error {
	var count int
	if err := db.Get(&count, `SELECT count(*) FROM admin_users`); err != nil {
		return WrapError(err, "count admin users")
	}
	if count > 0 {
		return nil
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		return errors.New("admin seed requires ADMIN_EMAIL and ADMIN_PASSWORD")
	}
	hash, err := tokens.HashPassword(password)
	if err != nil {
		return WrapError(err, "hash admin password")
	}
	_, err = db.Exec(`
INSERT INTO admin_users (id, email, password_hash, created_at)
VALUES ($1,$2,$3,$4)`, uuid.NewString(), email, hash, time.Now().UTC())
	return WrapError(err, "insert admin user")
}

// AdminByEmail returns nil without error when no such admin exists.
func AdminByEmail(db *sqlx.DB, email string) (*models.AdminUser, error) {
	var row models.AdminUser
	err := db.Get(&row, `
SELECT id, email, password_hash, created_at, last_login_at
FROM admin_users
WHERE lower(email) = $1`, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, WrapError(err, "fetch admin user")
	}
	return &row, nil
}

func AdminByID(db *sqlx.DB, id string) (*models.AdminUser, error) {
	var row models.AdminUser
	err := db.Get(&row, `
SELECT id, email, password_hash, created_at, last_login_at
FROM admin_users
WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, WrapError(err, "fetch admin user")
	}
	return &row, nil
}

func SetAdminLastLogin(db *sqlx.DB, id string) error {
	_, err := db.Exec(`UPDATE admin_users SET last_login_at = $1 WHERE id = $2`, time.Now().UTC(), id)
	return err
}

func SetAdminPassword(db *sqlx.DB, tokens TokenService, id, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return ErrBadRequest("Password must not be empty")
	}
	hash, err := tokens.HashPassword(newPassword)
	if err != nil {
		return WrapError(err, "hash password")
	}
	_, err = db.Exec(`UPDATE admin_users SET password_hash = $1 WHERE id = $2`, hash, id)
	return WrapError(err, "update admin password")
}
