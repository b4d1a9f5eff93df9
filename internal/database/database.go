package database

import (
	"bildpdf/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Initialize opens the sqlite database and migrates the schema
func Initialize(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.UserPreferences{}); err != nil {
		return nil, err
	}

	return db, nil
}
