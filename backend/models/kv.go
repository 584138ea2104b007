package models

import "time"

// KVEntry maps to the kv_entries table backing durable storage.
type KVEntry struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
