package store

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

// UserRepository is the persistence contract for end users and their joined
// key records.
type UserRepository interface {
	// CreateUserWithKey inserts the user row and its key row in a single
	// transaction. Either both rows are persisted or neither is.
	CreateUserWithKey(ctx context.Context, user models.User, key models.APIKey) (models.User, error)

	// FindUserByKey returns the user joined with its key record for the
	// presented API key string.
	FindUserByKey(ctx context.Context, apiKey string) (models.UserWithKey, error)

	// ListUsersWithKeys returns every user joined with its key metadata,
	// ordered by registration time descending.
	ListUsersWithKeys(ctx context.Context) ([]models.UserWithKey, error)

	// DeleteUser removes the user row by identifier. The key row is removed
	// by the schema's cascade rule.
	DeleteUser(ctx context.Context, userID int64) error

	// TouchLastLogin sets the user's last_login timestamp to now.
	TouchLastLogin(ctx context.Context, apiKey string) error
}

// KeyRepository is the persistence contract for API key lifecycle updates.
type KeyRepository interface {
	// TouchLastUsed sets the key's last_used timestamp to now.
	TouchLastUsed(ctx context.Context, apiKey string) error

	// SetActive toggles the key's admin-controlled active flag.
	SetActive(ctx context.Context, apiKey string, active bool) error
}

// AdminRepository is the persistence contract for dashboard admin accounts.
type AdminRepository interface {
	// CreateAdmin persists a new admin record with an already-hashed credential.
	CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)

	// FindAdminByEmail returns the admin record for the given email.
	FindAdminByEmail(ctx context.Context, email string) (models.Admin, error)
}

// ErrorClassificator tells transient database failures apart from permanent
// ones for logging purposes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
