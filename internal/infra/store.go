package infra

import (
	"fmt"

	"github.com/JavierVixer/OCCHIAPP/internal/config"
	"github.com/JavierVixer/OCCHIAPP/internal/storage"
)

// NewStore builds the record store selected by STORAGE_DRIVER.
// memory is for tests and demos, file is the single-workstation default,
// redis backs multi-process deployments.
func NewStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "memory":
		return storage.NewMemory(), nil
	case "file":
		return storage.NewFile(cfg.DataDir)
	case "redis":
		rdb, err := NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return storage.NewRedis(rdb), nil
	default:
		return nil, fmt.Errorf("storage driver desconocido: %q", cfg.StorageDriver)
	}
}
