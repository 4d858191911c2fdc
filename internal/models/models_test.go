package models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(AllModels()...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func TestCreateStorageEntry(t *testing.T) {
	db := setupTestDB(t)

	entry := StorageEntry{
		Name:  "cs_history_v1",
		Value: `[["#ff0000"]]`,
	}

	result := db.Create(&entry)
	if result.Error != nil {
		t.Fatalf("Failed to create entry: %v", result.Error)
	}

	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set after creation")
	}
}

func TestStorageEntryNameIsUnique(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&StorageEntry{Name: "cs_palettes_v1", Value: "[]"})
	result := db.Create(&StorageEntry{Name: "cs_palettes_v1", Value: "[]"})
	if result.Error == nil {
		t.Error("Expected duplicate name to be rejected")
	}
}

func TestStorageEntryLookup(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&StorageEntry{Name: "a", Value: "1"})
	db.Create(&StorageEntry{Name: "b", Value: "2"})

	var retrieved StorageEntry
	result := db.Where("name = ?", "b").First(&retrieved)
	if result.Error != nil {
		t.Fatalf("Failed to retrieve entry: %v", result.Error)
	}

	if retrieved.Value != "2" {
		t.Errorf("Expected value '2', got '%s'", retrieved.Value)
	}
}
