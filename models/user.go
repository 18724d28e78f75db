package models

import "time"

// User represents a registered end user of the key service.
// Each user owns exactly one API key; the key string stored here is the
// canonical reference into the api_keys table.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// FirstName is the user's given name. Non-sensitive, shown on the dashboard.
	FirstName string `json:"first_name"`

	// LastName is the user's family name.
	LastName string `json:"last_name"`

	// Email is the unique contact address used to detect duplicate registrations.
	Email string `json:"email"`

	// APIKey is the opaque bearer token issued at registration
	// ("sk-" followed by 32 hex characters).
	APIKey string `json:"api_key"`

	// RegisteredAt is the timestamp when the account was created.
	RegisteredAt time.Time `json:"registered_at"`

	// LastLogin is the time of the most recent successful key login.
	// Nil until the user logs in for the first time.
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
