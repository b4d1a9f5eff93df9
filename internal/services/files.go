package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bildpdf/internal/common"
)

// FileSaver writes result bytes into the resolved download folder.
type FileSaver struct {
	prefs *PreferencesService
}

// NewFileSaver creates a new file saver
func NewFileSaver(prefs *PreferencesService) *FileSaver {
	return &FileSaver{prefs: prefs}
}

// Save writes data under filename inside folder, falling back to the
// preferred download folder when folder is empty. An existing file is never
// overwritten; a numbered suffix is appended instead. Returns the final path.
func (s *FileSaver) Save(data []byte, filename, folder string) (string, error) {
	var err error
	if folder == "" {
		folder, err = s.prefs.GetDownloadFolder()
		if err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(folder, common.DefaultFilePermissions); err != nil {
		return "", err
	}

	path := uniquePath(filepath.Join(folder, filename))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	return path, nil
}

func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
