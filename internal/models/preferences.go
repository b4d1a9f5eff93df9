package models

import (
	"encoding/json"
	"time"

	"bildpdf/internal/common"

	"gorm.io/gorm"
)

// UserPreferences database model
type UserPreferences struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PreferencesJSON string    `gorm:"type:text" json:"preferences_json"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserPreferencesData represents user preferences data
type UserPreferencesData struct {
	DefaultDownloadFolder string  `json:"default_download_folder"`
	DefaultJPEGQuality    int     `json:"default_jpeg_quality"`
	PageSize              string  `json:"page_size"`
	MarginMm              float64 `json:"margin_mm"`
	AutoDownloadEnabled   bool    `json:"auto_download_enabled"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() UserPreferencesData {
	return UserPreferencesData{
		DefaultDownloadFolder: "",
		DefaultJPEGQuality:    common.DefaultJPEGQuality,
		PageSize:              "A4",
		MarginMm:              common.DefaultMarginMm,
		AutoDownloadEnabled:   true,
	}
}

// GetPreferences returns the user preferences data
func (up *UserPreferences) GetPreferences() UserPreferencesData {
	if up.PreferencesJSON == "" {
		return DefaultPreferences()
	}

	var prefs UserPreferencesData
	if err := json.Unmarshal([]byte(up.PreferencesJSON), &prefs); err != nil {
		return DefaultPreferences()
	}

	return prefs
}

// SetPreferences sets the user preferences data
func (up *UserPreferences) SetPreferences(prefs UserPreferencesData) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	up.PreferencesJSON = string(data)
	return nil
}

// GetOrCreatePreferences gets existing preferences or creates default ones
func GetOrCreatePreferences(db *gorm.DB) (*UserPreferences, error) {
	var prefs UserPreferences

	// Preferences live in a single row with ID = 1
	result := db.First(&prefs, 1)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			prefs = UserPreferences{ID: 1}

			if err := prefs.SetPreferences(DefaultPreferences()); err != nil {
				return nil, err
			}

			if err := db.Create(&prefs).Error; err != nil {
				return nil, err
			}
		} else {
			return nil, result.Error
		}
	}

	return &prefs, nil
}
