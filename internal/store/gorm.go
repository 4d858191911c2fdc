// SPDX-License-Identifier: MIT
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/thatcatcamp/colorstudio/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBackend stores values as rows in the storage_entries table
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend creates a backend over an already migrated database
func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

// Get returns the stored value or ErrNotFound
func (b *GormBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.StorageEntry
	err := b.db.WithContext(ctx).Where("name = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load entry: %w", err)
	}
	return []byte(entry.Value), nil
}

// Set inserts or replaces the value for key
func (b *GormBackend) Set(ctx context.Context, key string, value []byte) error {
	entry := models.StorageEntry{Name: key, Value: string(value)}
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}

// Delete removes key
func (b *GormBackend) Delete(ctx context.Context, key string) error {
	if err := b.db.WithContext(ctx).Where("name = ?", key).Delete(&models.StorageEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}
