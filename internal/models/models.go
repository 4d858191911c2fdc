package models

import (
	"time"
)

// StorageEntry is one namespaced value in the persistent key/value store.
// Palette history and saved palettes each live in a single entry.
type StorageEntry struct {
	Name      string `gorm:"primaryKey;size:128"` // e.g. "cs_history_v1"
	Value     string `gorm:"type:text;not null"`  // JSON payload
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides for consistent naming
func (StorageEntry) TableName() string {
	return "storage_entries"
}

// AllModels lists every model for auto-migration
func AllModels() []interface{} {
	return []interface{}{&StorageEntry{}}
}
