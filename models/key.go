package models

import "time"

// KeyStatus is the read-time classification of a user/key pair.
// It is derived from the stored active flag and expiry timestamp and is
// never persisted.
type KeyStatus string

const (
	// StatusActive means the key may be used: the active flag is set and
	// the expiry (if any) has not passed.
	StatusActive KeyStatus = "Active"

	// StatusInactive means the key was switched off by an admin.
	// Inactive takes precedence over Expired.
	StatusInactive KeyStatus = "Inactive"

	// StatusExpired means the key's expiry timestamp is in the past.
	StatusExpired KeyStatus = "Expired"
)

// APIKey represents the lifecycle record of an issued key.
type APIKey struct {
	// Key is the opaque token string and the primary reference to this record.
	Key string `json:"api_key"`

	// CreatedAt is the time the key was minted.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is the time after which the key resolves as Expired.
	// Nil means the key never expires.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// Active is the admin-controlled kill switch. Defaults to true at issuance.
	Active bool `json:"active"`

	// LastUsed is the time of the most recent successful validation.
	// Nil until the key is used for the first time.
	LastUsed *time.Time `json:"last_used,omitempty"`
}

// TableName returns the name of the database table
// associated with the APIKey model.
func (k APIKey) TableName() string {
	return "api_keys"
}

// UserWithKey is the joined projection of a user and its key record used by
// the dashboard listing and by key validation.
type UserWithKey struct {
	User User `json:"user"`
	Key  APIKey `json:"key"`

	// Status is the resolved classification of the pair. Populated by the
	// service layer, never read from the database.
	Status KeyStatus `json:"status"`
}
