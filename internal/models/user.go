package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database. The password hash
// never leaves the repository layer except inside this struct, which is
// not serialized to clients.
type UserDB struct {
	ID           uuid.UUID `db:"id"`            // Primary key, assigned at creation
	Username     string    `db:"username"`      // Unique username
	Email        *string   `db:"email"`         // Optional email, unique when present
	PasswordHash string    `db:"password_hash"` // bcrypt digest
	IsAdmin      bool      `db:"is_admin"`      // Admin flag, false at creation
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
}

// User is the projection of a user safe to return to clients.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     *string   `json:"email" db:"email"`
	IsAdmin   bool      `json:"isAdmin" db:"is_admin"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Public returns the client-safe projection of the record.
func (u *UserDB) Public() *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
