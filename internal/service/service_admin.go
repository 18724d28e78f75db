package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
)

// adminService is the concrete implementation of AdminService.
// It handles admin registration, credential verification, and session token
// lifecycle, using an AdminRepository for persistence and Argon2id for
// credential hashing.
type adminService struct {
	// adminRepository is the data-access layer used to create and look up admins.
	adminRepository store.AdminRepository

	// hasher derives and verifies the salted credential digests.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued session JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAdminService constructs an AdminService wired to the given
// AdminRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAdminService(adminRepository store.AdminRepository, cfg config.App, logger *logger.Logger) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		hasher:          crypto.NewPasswordHasher(),
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// Register creates a new admin account.
//
// It validates that both Email and Password are non-empty, hashes the
// credential with Argon2id and a fresh per-record salt, and delegates
// persistence to the AdminRepository. The plaintext never leaves this method.
//
// Returns the persisted admin (with a server-assigned AdminID) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrAdminAlreadyExists).
func (a *adminService) Register(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if admin.Email == "" || admin.Password == "" {
		log.Error().Str("email", admin.Email).Msg("invalid admin data provided")
		return models.Admin{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.HashPassword(admin.Password)
	if err != nil {
		log.Err(err).Msg("credential hashing failed")
		return models.Admin{}, fmt.Errorf("credential hashing failed: %w", err)
	}
	admin.PasswordHash = hash
	admin.Password = ""

	registeredAdmin, err := a.adminRepository.CreateAdmin(ctx, admin)
	if err != nil {
		log.Err(err).Str("email", admin.Email).Msg("admin creation ended with error")
		return models.Admin{}, fmt.Errorf("admin creation ended with error: %w", err)
	}

	return registeredAdmin, nil
}

// Login authenticates an existing admin.
//
// It validates that both Email and Password are non-empty, looks up the
// account by email, and verifies the credential against the stored Argon2id
// digest in constant time.
//
// Returns the authenticated admin record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. admin not
//     found — see store.ErrAdminNotFound).
//   - ErrWrongPassword if the credential does not match.
func (a *adminService) Login(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if admin.Email == "" || admin.Password == "" {
		log.Error().Str("email", admin.Email).Msg("invalid admin data provided")
		return models.Admin{}, ErrInvalidDataProvided
	}

	foundAdmin, err := a.adminRepository.FindAdminByEmail(ctx, admin.Email)
	if err != nil {
		log.Err(err).Str("email", admin.Email).Msg("admin search by email failed")
		return models.Admin{}, fmt.Errorf("admin search by email failed: %w", err)
	}

	ok, err := a.hasher.VerifyPassword(admin.Password, foundAdmin.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", foundAdmin.AdminID).Msg("credential verification failed")
		return models.Admin{}, fmt.Errorf("credential verification failed: %w", err)
	}
	if !ok {
		log.Error().
			Int64("id", foundAdmin.AdminID).
			Str("email", foundAdmin.Email).
			Msg("wrong password")
		return models.Admin{}, ErrWrongPassword
	}

	return foundAdmin, nil
}

// CreateToken issues a signed session JWT for the given admin.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *adminService) CreateToken(ctx context.Context, admin models.Admin) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, admin.AdminID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *adminService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
