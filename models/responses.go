package models

import "time"

// RegisterUserResponse is returned after a successful user registration.
// The issued key is shown exactly once; only its lifecycle metadata is
// retrievable afterwards.
type RegisterUserResponse struct {
	Success bool   `json:"success"`
	APIKey  string `json:"api_key"`
}

// UserLoginResponse identifies the owner of a presented key after a
// successful key login.
type UserLoginResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// ValidationResult is the compact answer of the simple validation endpoint.
// Message carries the human-readable reason when Valid is false.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Name    string `json:"name,omitempty"`
}

// DetailedValidationResult is the extended answer of the detailed validation
// endpoint. Timestamps are omitted when the key is unknown.
type DetailedValidationResult struct {
	Valid     bool       `json:"valid"`
	Active    bool       `json:"active"`
	Status    KeyStatus  `json:"status,omitempty"`
	UserID    int64      `json:"user_id,omitempty"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	LastUsed  *time.Time `json:"last_used,omitempty"`
}

// DashboardUser is one row of the admin dashboard listing: the user record
// flattened with its key lifecycle metadata and the resolved status.
type DashboardUser struct {
	UserID       int64      `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	APIKey       string     `json:"api_key"`
	RegisteredAt time.Time  `json:"registered_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Active       bool       `json:"active"`
	Status       KeyStatus  `json:"status"`
}

// ConfirmationResponse is the generic success acknowledgement for admin
// registration, deletion, and key toggling.
type ConfirmationResponse struct {
	Success bool `json:"success"`
}
