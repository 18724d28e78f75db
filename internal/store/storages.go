package store

import (
	"github.com/MKhiriev/go-key-keeper/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository  UserRepository
	KeyRepository   KeyRepository
	AdminRepository AdminRepository
}

// NewStorages wires all repositories onto one database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		KeyRepository:   NewKeyRepository(db, logger),
		AdminRepository: NewAdminRepository(db, logger),
	}
}
