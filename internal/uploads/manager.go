// Package uploads owns the managed upload directory: validating incoming
// image files, storing them under collision-resistant names and cleaning up
// files a listing no longer references.
package uploads

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// RemovalResult reports the outcome of one best-effort file removal.
// A missing file counts as removed.
type RemovalResult struct {
	Path string
	Err  error
}

type Manager struct {
	dir    string
	logger *logrus.Logger

	// saveFile is swappable for tests
	saveFile func(fh *multipart.FileHeader, dst string) error
}

func NewManager(dir string, logger *logrus.Logger) *Manager {
	return &Manager{
		dir:      dir,
		logger:   logger,
		saveFile: writeMultipartFile,
	}
}

// Dir returns the managed upload directory.
func (m *Manager) Dir() string {
	return m.dir
}

// EnsureDir creates the managed directory if it does not exist yet.
func (m *Manager) EnsureDir() error {
	return os.MkdirAll(m.dir, 0o755)
}

// Allowed reports whether the filename carries an accepted image extension.
// The name must contain a dot; matching is case-insensitive.
func Allowed(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[idx+1:])]
}

// Save stores an uploaded file in the managed directory under a fresh
// UUID-based name with the lowercased original extension, and returns the
// relative path to record on the listing. Disallowed filenames are rejected.
func (m *Manager) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", fmt.Errorf("no file provided")
	}
	if !Allowed(fh.Filename) {
		return "", fmt.Errorf("file type not allowed: %s", fh.Filename)
	}

	ext := strings.ToLower(fh.Filename[strings.LastIndex(fh.Filename, ".")+1:])
	name := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	path := filepath.Join(m.dir, name)

	if err := m.saveFile(fh, path); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	m.logger.WithField("path", path).Info("Stored uploaded image")
	return filepath.ToSlash(path), nil
}

// Owns reports whether a stored image path points into the managed
// directory. Pre-seeded static paths are not owned and never deleted.
func (m *Manager) Owns(path string) bool {
	if path == "" {
		return false
	}
	return strings.HasPrefix(filepath.ToSlash(path), filepath.ToSlash(m.dir)+"/")
}

// Remove deletes the given paths on a best-effort basis. Only paths inside
// the managed directory are touched; anything else is skipped silently.
// Failures are reported per path so the caller can log them, but removal is
// never a user-facing error. Already-missing files are treated as removed.
func (m *Manager) Remove(paths ...string) []RemovalResult {
	var results []RemovalResult
	for _, p := range paths {
		if !m.Owns(p) {
			continue
		}
		err := os.Remove(filepath.FromSlash(p))
		if err != nil && os.IsNotExist(err) {
			err = nil
		}
		if err != nil {
			m.logger.WithError(err).WithField("path", p).Warn("Failed to remove uploaded image")
		}
		results = append(results, RemovalResult{Path: p, Err: err})
	}
	return results
}

func writeMultipartFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		return err
	}
	return out.Close()
}
