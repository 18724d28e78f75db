package models

import "time"

// Admin represents a dashboard administrator account.
// Sensitive fields must never be exposed outside trusted boundaries.
type Admin struct {
	// AdminID is the internal unique identifier of the admin.
	// It is not exposed via JSON and is used only at the persistence layer.
	AdminID int64 `json:"-"`

	// Email is the unique admin login identifier.
	Email string `json:"email"`

	// PasswordHash stores the argon2id digest of the admin credential in
	// PHC string format. This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Password carries the plaintext credential inbound from a register or
	// login request. It is never persisted and never serialized back out.
	Password string `json:"password,omitempty"`

	// CreatedAt is the timestamp when the admin account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Admin model.
func (a Admin) TableName() string {
	return "admins"
}
