package models

import (
	"database/sql"
	"time"
)

// User represents a user row, including authentication columns.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Name         string `json:"name"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
	GoogleID               sql.NullString `db:"google_id"`
}
