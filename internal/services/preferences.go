package services

import (
	"os"
	"path/filepath"

	"bildpdf/internal/models"

	"gorm.io/gorm"
)

// PreferencesService handles user preferences operations
type PreferencesService struct {
	db *gorm.DB
}

// NewPreferencesService creates a new preferences service
func NewPreferencesService(db *gorm.DB) *PreferencesService {
	return &PreferencesService{db: db}
}

// GetPreferences gets the current user preferences
func (s *PreferencesService) GetPreferences() (*models.UserPreferencesData, error) {
	prefs, err := models.GetOrCreatePreferences(s.db)
	if err != nil {
		return nil, err
	}

	prefsData := prefs.GetPreferences()
	return &prefsData, nil
}

// UpdatePreferences updates user preferences
func (s *PreferencesService) UpdatePreferences(data map[string]interface{}) error {
	prefs, err := models.GetOrCreatePreferences(s.db)
	if err != nil {
		return err
	}

	currentPrefs := prefs.GetPreferences()

	// Update fields from request data
	if val, ok := data["default_download_folder"]; ok {
		if folder, ok := val.(string); ok {
			currentPrefs.DefaultDownloadFolder = folder
		}
	}

	if val, ok := data["default_jpeg_quality"]; ok {
		if quality, ok := val.(float64); ok {
			currentPrefs.DefaultJPEGQuality = int(quality)
		}
	}

	if val, ok := data["page_size"]; ok {
		if size, ok := val.(string); ok {
			currentPrefs.PageSize = size
		}
	}

	if val, ok := data["margin_mm"]; ok {
		if margin, ok := val.(float64); ok {
			currentPrefs.MarginMm = margin
		}
	}

	if val, ok := data["auto_download_enabled"]; ok {
		if enabled, ok := val.(bool); ok {
			currentPrefs.AutoDownloadEnabled = enabled
		}
	}

	// Save updated preferences
	if err := prefs.SetPreferences(currentPrefs); err != nil {
		return err
	}

	return s.db.Save(prefs).Error
}

// GetDownloadFolder resolves the folder results are written to: the saved
// preference if set, the platform Downloads directory otherwise.
func (s *PreferencesService) GetDownloadFolder() (string, error) {
	prefs, err := s.GetPreferences()
	if err != nil {
		return "", err
	}

	if prefs.DefaultDownloadFolder != "" {
		return prefs.DefaultDownloadFolder, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, "Downloads"), nil
}
