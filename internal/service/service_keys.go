package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/models"
)

// keyService is the concrete implementation of KeyService.
// It owns key issuance, status resolution, validation, and the dashboard
// operations, delegating persistence to the user and key repositories.
type keyService struct {
	// userRepository is the data-access layer for users and the user/key join.
	userRepository store.UserRepository

	// keyRepository is the data-access layer for key lifecycle updates.
	keyRepository store.KeyRepository

	// keyTTL controls the expiry of newly issued keys. A negative duration
	// disables expiry entirely.
	keyTTL time.Duration

	// now returns the current time; swappable in tests.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewKeyService constructs a KeyService wired to the given repositories and
// populated with the expiry policy from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewKeyService(storages *store.Storages, cfg config.App, logger *logger.Logger) KeyService {
	return &keyService{
		userRepository: storages.UserRepository,
		keyRepository:  storages.KeyRepository,
		keyTTL:         cfg.KeyTTL,
		now:            time.Now,
		logger:         logger,
	}
}

// IssueKey registers a new user and mints its API key.
//
// It validates that first name, last name, and email are non-empty, generates
// the opaque key, computes the expiry from the configured TTL, and persists
// user and key in a single transaction. The caller receives the persisted
// user carrying the issued key string.
//
// Returns:
//   - ErrInvalidDataProvided if a required field is empty.
//   - A wrapped storage error if persistence fails (e.g. duplicate email —
//     see store.ErrEmailAlreadyExists).
func (s *keyService) IssueKey(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.FirstName == "" || user.LastName == "" || user.Email == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	apiKey, err := GenerateAPIKey()
	if err != nil {
		log.Err(err).Msg("api key generation failed")
		return models.User{}, fmt.Errorf("api key generation failed: %w", err)
	}
	user.APIKey = apiKey

	key := models.APIKey{Key: apiKey, Active: true}
	if s.keyTTL > 0 {
		expiresAt := s.now().Add(s.keyTTL)
		key.ExpiresAt = &expiresAt
	}

	registeredUser, err := s.userRepository.CreateUserWithKey(ctx, user, key)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user registration ended with error")
		return models.User{}, fmt.Errorf("user registration ended with error: %w", err)
	}

	return registeredUser, nil
}

// LoginByKey resolves the owner of a presented key.
//
// The last_login timestamp is updated fire-and-forget: a failed update is
// logged but does not fail the login.
//
// Returns:
//   - ErrInvalidDataProvided if the key string is empty.
//   - A wrapped storage error if the lookup fails (e.g. store.ErrKeyNotFound).
func (s *keyService) LoginByKey(ctx context.Context, apiKey string) (models.User, error) {
	log := logger.FromContext(ctx)

	if apiKey == "" {
		log.Error().Msg("empty api key provided")
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := s.userRepository.FindUserByKey(ctx, apiKey)
	if err != nil {
		log.Err(err).Msg("user search by key failed")
		return models.User{}, fmt.Errorf("user search by key failed: %w", err)
	}

	if err := s.userRepository.TouchLastLogin(ctx, apiKey); err != nil {
		log.Err(err).Int64("id", found.User.UserID).Msg("failed to update last_login")
	}

	return found.User, nil
}

// Validate classifies a presented key and returns the compact result.
//
// An unknown key and a non-Active key both produce valid=false with the
// corresponding reason and a nil error; errors are reserved for storage
// failures. On a usable key the last_used timestamp is updated
// fire-and-forget before returning valid=true with the owner's name.
func (s *keyService) Validate(ctx context.Context, apiKey string) (models.ValidationResult, error) {
	log := logger.FromContext(ctx)

	found, err := s.userRepository.FindUserByKey(ctx, apiKey)
	if err != nil {
		if isNotFound(err) {
			return models.ValidationResult{Valid: false, Message: ReasonKeyNotFound}, nil
		}
		log.Err(err).Msg("key lookup failed")
		return models.ValidationResult{}, fmt.Errorf("key lookup failed: %w", err)
	}

	status := ResolveStatus(found.Key, s.now())
	if status != models.StatusActive {
		return models.ValidationResult{Valid: false, Message: statusReason(status)}, nil
	}

	s.touchLastUsed(ctx, apiKey)

	return models.ValidationResult{
		Valid:   true,
		Message: ReasonKeyValid,
		Name:    found.User.FirstName,
	}, nil
}

// ValidateDetailed classifies a presented key and returns the full lifecycle
// metadata alongside the owning user identity. Unknown keys produce a bare
// valid=false result with a nil error.
func (s *keyService) ValidateDetailed(ctx context.Context, apiKey string) (models.DetailedValidationResult, error) {
	log := logger.FromContext(ctx)

	found, err := s.userRepository.FindUserByKey(ctx, apiKey)
	if err != nil {
		if isNotFound(err) {
			return models.DetailedValidationResult{Valid: false}, nil
		}
		log.Err(err).Msg("key lookup failed")
		return models.DetailedValidationResult{}, fmt.Errorf("key lookup failed: %w", err)
	}

	status := ResolveStatus(found.Key, s.now())
	result := models.DetailedValidationResult{
		Valid:     status == models.StatusActive,
		Active:    found.Key.Active,
		Status:    status,
		UserID:    found.User.UserID,
		Name:      found.User.FirstName + " " + found.User.LastName,
		Email:     found.User.Email,
		CreatedAt: &found.Key.CreatedAt,
		ExpiresAt: found.Key.ExpiresAt,
		LastUsed:  found.Key.LastUsed,
	}

	if result.Valid {
		s.touchLastUsed(ctx, apiKey)
	}

	return result, nil
}

// ListUsers returns every registered user annotated with its resolved key
// status, ordered by registration time descending.
func (s *keyService) ListUsers(ctx context.Context) ([]models.DashboardUser, error) {
	log := logger.FromContext(ctx)

	entries, err := s.userRepository.ListUsersWithKeys(ctx)
	if err != nil {
		log.Err(err).Msg("dashboard listing failed")
		return nil, fmt.Errorf("dashboard listing failed: %w", err)
	}

	now := s.now()
	list := make([]models.DashboardUser, 0, len(entries))
	for _, entry := range entries {
		list = append(list, models.DashboardUser{
			UserID:       entry.User.UserID,
			FirstName:    entry.User.FirstName,
			LastName:     entry.User.LastName,
			Email:        entry.User.Email,
			APIKey:       entry.User.APIKey,
			RegisteredAt: entry.User.RegisteredAt,
			LastLogin:    entry.User.LastLogin,
			ExpiresAt:    entry.Key.ExpiresAt,
			Active:       entry.Key.Active,
			Status:       ResolveStatus(entry.Key, now),
		})
	}

	return list, nil
}

// DeleteUser removes a user by identifier; the key row follows via the
// schema's cascade rule.
func (s *keyService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

// SetKeyActive toggles the admin-controlled active flag of a key.
// Reactivation does not clear the expiry.
func (s *keyService) SetKeyActive(ctx context.Context, apiKey string, active bool) error {
	log := logger.FromContext(ctx)

	if err := s.keyRepository.SetActive(ctx, apiKey, active); err != nil {
		log.Err(err).Bool("active", active).Msg("key toggle failed")
		return fmt.Errorf("key toggle failed: %w", err)
	}

	return nil
}

// touchLastUsed updates the key's last_used timestamp fire-and-forget:
// a failure is logged and never surfaces to the validation caller.
func (s *keyService) touchLastUsed(ctx context.Context, apiKey string) {
	if err := s.keyRepository.TouchLastUsed(ctx, apiKey); err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to update last_used")
	}
}

// isNotFound reports whether err signals an unknown key rather than a
// storage failure.
func isNotFound(err error) bool {
	return errors.Is(err, store.ErrKeyNotFound) || errors.Is(err, store.ErrUserNotFound)
}
