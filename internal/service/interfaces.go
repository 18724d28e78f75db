package service

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

// KeyService covers the end-user side of the system: key issuance, key
// validation, and the admin dashboard operations over users and keys.
type KeyService interface {
	// IssueKey registers a new user and mints its API key in one atomic step.
	// The returned user carries the freshly issued key string.
	IssueKey(ctx context.Context, user models.User) (models.User, error)

	// LoginByKey resolves the owning user of a presented key and touches the
	// user's last_login timestamp.
	LoginByKey(ctx context.Context, apiKey string) (models.User, error)

	// Validate classifies a presented key and returns the compact
	// valid/reason result. A usable key gets its last_used touched.
	Validate(ctx context.Context, apiKey string) (models.ValidationResult, error)

	// ValidateDetailed classifies a presented key and returns the full
	// lifecycle metadata alongside the owning user identity.
	ValidateDetailed(ctx context.Context, apiKey string) (models.DetailedValidationResult, error)

	// ListUsers returns every registered user with resolved key status,
	// newest registration first.
	ListUsers(ctx context.Context) ([]models.DashboardUser, error)

	// DeleteUser removes a user (and, via the schema, its key) by identifier.
	DeleteUser(ctx context.Context, userID int64) error

	// SetKeyActive toggles the admin-controlled active flag of a key.
	SetKeyActive(ctx context.Context, apiKey string, active bool) error
}

// AdminService covers dashboard admin accounts and their session tokens.
type AdminService interface {
	// Register creates a new admin account from a plaintext credential.
	Register(ctx context.Context, admin models.Admin) (models.Admin, error)

	// Login verifies an admin credential and returns the stored account.
	Login(ctx context.Context, admin models.Admin) (models.Admin, error)

	// CreateToken issues a signed session JWT for the given admin.
	CreateToken(ctx context.Context, admin models.Admin) (models.Token, error)

	// ParseToken validates and parses a raw session JWT string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
