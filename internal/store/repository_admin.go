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

// adminRepository is the PostgreSQL-backed implementation of [AdminRepository].
// It handles dashboard admin account creation and lookup against the
// "admins" table. Credentials arrive already hashed; this layer never sees
// plaintext.
type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] backed by the provided
// database connection and logger.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAdmin persists a new admin record and returns the fully populated
// [models.Admin] with server-assigned fields (AdminID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAdminAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *adminRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAdmin, admin.Email, admin.PasswordHash)

	if err := row.Scan(&admin.AdminID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*adminRepository.CreateAdmin").Str("email", admin.Email).Msg("admin email already registered")
			return models.Admin{}, ErrAdminAlreadyExists
		default:
			log.Err(err).
				Str("func", "*adminRepository.CreateAdmin").
				Str("classification", r.db.errorClassificator.Classify(err).String()).
				Msg("error: admin insert failed")
			return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	admin.Password = ""

	return admin, nil
}

// FindAdminByEmail retrieves an admin record by its unique email.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrAdminNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *adminRepository) FindAdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	var found models.Admin
	row := r.db.QueryRowContext(ctx, findAdminByEmail, email)

	if err := row.Scan(&found.AdminID, &found.Email, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrAdminNotFound
		}
		log.Err(err).
			Str("func", "*adminRepository.FindAdminByEmail").
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("error: admin lookup failed")
		return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
