package entities

import (
	"time"

	"flightline/opsdeck/internal/constants"
)

// User is the sqlx-mapped row of the users table, used by the auth path.
type User struct {
	ID          string            `db:"id"`
	Email       string            `db:"email"`
	DisplayName *string           `db:"display_name"`
	Role        constants.OpsRole `db:"role"`
	IsActive    bool              `db:"is_active"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
}

// APIKey is the sqlx-mapped row of the api_keys table.
type APIKey struct {
	ID        string    `db:"id"`
	Key       string    `db:"key"`
	UserID    string    `db:"user_id"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

// APIKeyStatus is the narrow projection the auth middleware needs.
type APIKeyStatus struct {
	Key    string `db:"key"`
	Status bool   `db:"is_active"`
	UserID string `db:"user_id"`
}
