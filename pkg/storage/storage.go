package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidFileType is returned when the uploaded file's extension is
	// not in the allowed set.
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrNotFound is returned when no file with the given name is stored.
	ErrNotFound = errors.New("file not found")
)

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// Store persists uploaded image files under generated unique names.
type Store interface {
	// Save validates the declared extension, stores the file under a
	// generated unique name and returns that name.
	Save(r io.Reader, filename string) (string, error)
	// Delete removes the stored file.
	Delete(name string) error
	// Path resolves a stored name to a retrievable filesystem path.
	Path(name string) (string, error)
}

// DiskStore is a Store backed by a local directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the directory if needed and returns a store over it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save stores the file under "<uuid-hex>.<ext>". The extension check is
// case-insensitive; the stored name always carries the lowercased form.
func (s *DiskStore) Save(r io.Reader, filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !allowedExtensions[ext] {
		return "", ErrInvalidFileType
	}

	name := strings.ReplaceAll(uuid.New().String(), "-", "") + "." + ext
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	return name, nil
}

// Delete removes the stored file by name.
func (s *DiskStore) Delete(name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// Path resolves a stored name to its filesystem path.
func (s *DiskStore) Path(name string) (string, error) {
	p := filepath.Join(s.dir, filepath.Base(name))
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return p, nil
}
