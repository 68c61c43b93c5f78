package models

import (
	"database/sql"
	"time"
)

// User is the row model for the users table. PasswordHash and GoogleID are
// nullable: password accounts have no Google ID and vice versa.
type User struct {
	ID           string         `db:"id"`
	Email        string         `db:"email"`
	PasswordHash sql.NullString `db:"password_hash"`
	GoogleID     sql.NullString `db:"google_id"`
	Name         string         `db:"name"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    sql.NullTime   `db:"deleted_at"`
}

func (User) TableName() string {
	return "users"
}
