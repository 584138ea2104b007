package storage

import (
	"fmt"

	"tutorstate/backend/config"
	"tutorstate/backend/utils"
)

// Open builds the KV selected by cfg.StorageDriver. The "none" driver
// returns a nil KV.
func Open(cfg *config.Config) (KV, error) {
	switch cfg.StorageDriver {
	case config.DriverNone:
		return nil, nil
	case config.DriverMemory:
		return NewMemory(), nil
	case config.DriverFile:
		f, err := NewFile(cfg.StoragePath)
		if err != nil {
			return nil, err
		}
		return f, nil
	case config.DriverSQLite, config.DriverPostgres:
		db, err := utils.InitDB(cfg)
		if err != nil {
			return nil, err
		}
		g, err := NewGorm(db)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
