package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds application configuration
type Config struct {
	WorkingDir   string
	AppDataDir   string
	DatabasePath string
	Logger       *slog.Logger
}

// New creates a new configuration instance
func New() *Config {
	cfg := &Config{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	cfg.setupDirectories()

	return cfg
}

func (c *Config) setupDirectories() {
	// Set up working directory (temp files)
	tempDir := os.TempDir()
	c.WorkingDir = filepath.Join(tempDir, "bildpdf")

	// Ensure working directory exists
	os.MkdirAll(c.WorkingDir, 0755)

	// Set up app data directory (database, settings)
	c.AppDataDir = getAppDataDir()
	os.MkdirAll(c.AppDataDir, 0755)

	// Database path
	c.DatabasePath = filepath.Join(c.AppDataDir, "database.sqlite3")
}

func getAppDataDir() string {
	homeDir, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "BildPDF")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "BildPDF")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "BildPDF")
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "bildpdf")
		}
		return filepath.Join(homeDir, ".local", "share", "bildpdf")
	}
}
