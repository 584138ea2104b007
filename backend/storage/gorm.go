package storage

import (
	"fmt"

	"tutorstate/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Gorm struct {
	db *gorm.DB
}

// NewGorm migrates the kv_entries table and returns a store over it.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return &Gorm{db: db}, nil
}

func (s *Gorm) Read(key string) ([]byte, error) {
	var entry models.KVEntry
	// Find rather than First: a missing key is not an error here.
	result := s.db.Where("key = ?", key).Limit(1).Find(&entry)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return entry.Value, nil
}

func (s *Gorm) Write(key string, data []byte) error {
	entry := models.KVEntry{Key: key, Value: data}
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry)
	if result.Error != nil {
		return fmt.Errorf("failed to write key %s: %w", key, result.Error)
	}
	return nil
}
