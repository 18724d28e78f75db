package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user registration, key lookups, the dashboard listing, and user
// deletion against the "users" and "api_keys" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUserWithKey persists the user row and its key row in one transaction
// and returns the fully populated [models.User] with server-assigned fields
// (UserID, RegisteredAt). If either insert fails, the whole registration
// fails and no row survives.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the user insert → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped with the failing stage sentinel.
func (r *userRepository) CreateUserWithKey(ctx context.Context, user models.User, key models.APIKey) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithKey").Msg("error: failed to begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	row := tx.QueryRowContext(ctx, createUser, user.FirstName, user.LastName, user.Email, user.APIKey)
	if err := row.Scan(&user.UserID, &user.FirstName, &user.LastName, &user.Email, &user.APIKey, &user.RegisteredAt, &user.LastLogin); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*userRepository.CreateUserWithKey").Str("email", user.Email).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		default:
			log.Err(err).
				Str("func", "*userRepository.CreateUserWithKey").
				Str("classification", r.db.errorClassificator.Classify(err).String()).
				Msg("error: user insert failed")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	keyRow := tx.QueryRowContext(ctx, createKey, key.Key, key.ExpiresAt)
	if err := keyRow.Scan(&key.Key, &key.CreatedAt, &key.ExpiresAt, &key.Active, &key.LastUsed); err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUserWithKey").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error: key insert failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithKey").Msg("error: failed to commit transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

// FindUserByKey retrieves the user joined with its key record by the
// presented API key string.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrKeyNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByKey(ctx context.Context, apiKey string) (models.UserWithKey, error) {
	log := logger.FromContext(ctx)

	var found models.UserWithKey
	row := r.db.QueryRowContext(ctx, findUserByKey, apiKey)

	err := row.Scan(
		&found.User.UserID, &found.User.FirstName, &found.User.LastName, &found.User.Email,
		&found.User.APIKey, &found.User.RegisteredAt, &found.User.LastLogin,
		&found.Key.CreatedAt, &found.Key.ExpiresAt, &found.Key.Active, &found.Key.LastUsed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserWithKey{}, ErrKeyNotFound
		}
		log.Err(err).
			Str("func", "*userRepository.FindUserByKey").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error: key lookup failed")
		return models.UserWithKey{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	found.Key.Key = found.User.APIKey

	return found, nil
}

// ListUsersWithKeys returns every user joined with its key metadata, newest
// registration first. Key columns are scanned through nullable wrappers so
// that a user row without a key record (pre-cascade data) does not break the
// listing; such rows surface with Active=true and no expiry.
func (r *userRepository) ListUsersWithKeys(ctx context.Context) ([]models.UserWithKey, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsersWithKeys").Msg("error: building listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.ListUsersWithKeys").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error: listing query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var list []models.UserWithKey
	for rows.Next() {
		var entry models.UserWithKey
		var keyCreatedAt, keyExpiresAt, keyLastUsed sql.NullTime
		var keyActive sql.NullBool

		err := rows.Scan(
			&entry.User.UserID, &entry.User.FirstName, &entry.User.LastName, &entry.User.Email,
			&entry.User.APIKey, &entry.User.RegisteredAt, &entry.User.LastLogin,
			&keyCreatedAt, &keyExpiresAt, &keyActive, &keyLastUsed,
		)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsersWithKeys").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		entry.Key.Key = entry.User.APIKey
		entry.Key.CreatedAt = keyCreatedAt.Time
		entry.Key.Active = !keyActive.Valid || keyActive.Bool
		if keyExpiresAt.Valid {
			expiresAt := keyExpiresAt.Time
			entry.Key.ExpiresAt = &expiresAt
		}
		if keyLastUsed.Valid {
			lastUsed := keyLastUsed.Time
			entry.Key.LastUsed = &lastUsed
		}

		list = append(list, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsersWithKeys").Msg("error: rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return list, nil
}

// DeleteUser removes the user row by identifier. The key row goes with it
// via the schema's ON DELETE CASCADE rule.
//
// Returns [ErrUserNotFound] if no row matched the identifier.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.DeleteUser").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// TouchLastLogin sets the user's last_login timestamp to the current time.
func (r *userRepository) TouchLastLogin(ctx context.Context, apiKey string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildTouchLastLoginQuery(apiKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLastLogin").Msg("error: update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrKeyNotFound
	}

	return nil
}
