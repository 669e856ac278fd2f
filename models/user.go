package models

import "time"

// User represents an account entity used for authentication and ownership
// checks. Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique user identifier used during authentication.
	// Uniqueness is case-insensitive and enforced at the persistence layer.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized into API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the client-facing projection of the user with all
// credential material stripped.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
