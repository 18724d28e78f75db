package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
)

// keyRepository is the PostgreSQL-backed implementation of [KeyRepository].
// It owns the lifecycle updates of the "api_keys" table: the last_used
// timestamp and the admin-controlled active flag.
type keyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewKeyRepository constructs a [KeyRepository] backed by the provided
// database connection and logger.
func NewKeyRepository(db *DB, logger *logger.Logger) KeyRepository {
	logger.Debug().Msg("creating key repository")
	return &keyRepository{
		db:     db,
		logger: logger,
	}
}

// TouchLastUsed sets the key's last_used timestamp to the current time.
//
// Returns [ErrKeyNotFound] if no key row matched; callers on the validation
// path treat any error here as non-fatal.
func (r *keyRepository) TouchLastUsed(ctx context.Context, apiKey string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildTouchLastUsedQuery(apiKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*keyRepository.TouchLastUsed").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error: update failed")
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

// SetActive toggles the key's active flag. Reactivating a key does not clear
// its expiry: an expired key stays Expired until the expiry itself changes.
//
// Returns [ErrKeyNotFound] if no key row matched.
func (r *keyRepository) SetActive(ctx context.Context, apiKey string, active bool) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetActiveQuery(apiKey, active)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*keyRepository.SetActive").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error: update failed")
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
