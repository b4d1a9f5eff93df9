package preferences

// UserPreferencesData represents user preferences data
type UserPreferencesData struct {
	DefaultDownloadFolder string  `json:"default_download_folder"`
	DefaultJPEGQuality    int     `json:"default_jpeg_quality"`
	PageSize              string  `json:"page_size"`
	MarginMm              float64 `json:"margin_mm"`
	AutoDownloadEnabled   bool    `json:"auto_download_enabled"`
}
