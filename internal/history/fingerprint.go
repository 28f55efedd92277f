package history

import (
	"os"
	"path/filepath"
	"time"
)

// FileFingerprint holds stat-based identity for a file.
type FileFingerprint struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// StatFile creates a FileFingerprint from an on-disk file. The path is
// made absolute so the same file matches regardless of working directory.
func StatFile(path string) (FileFingerprint, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return FileFingerprint{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return FileFingerprint{}, err
	}
	return FileFingerprint{
		Path:    abs,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}
