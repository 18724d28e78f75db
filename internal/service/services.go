package service

import (
	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
)

type Services struct {
	KeyService   KeyService
	AdminService AdminService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		KeyService:   NewKeyService(storages, cfg, logger),
		AdminService: NewAdminService(storages.AdminRepository, cfg, logger),
	}
}
