// Package uploads stores user-submitted node images on local disk. Files
// that fail the size or extension filter are dropped without failing the
// surrounding request.
package uploads

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/epstein-graph/graph-backend/internal/graph"
)

// MaxImageSize caps uploads at 2 MB.
const MaxImageSize = 2 << 20

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Allowed reports whether the filename passes the extension allow-list.
func Allowed(filename string) bool {
	return allowedExts[strings.ToLower(filepath.Ext(filename))]
}

// Store writes accepted images into a single directory served statically.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save filters and stores one uploaded image. ok is false when the file
// was dropped by the filter (too large or disallowed extension); err is
// reserved for actual I/O failures.
func (s *Store) Save(fh *multipart.FileHeader) (filename string, ok bool, err error) {
	if fh == nil {
		return "", false, nil
	}
	if fh.Size > MaxImageSize || !Allowed(fh.Filename) {
		log.Printf("[uploads] dropped %q (size=%d)", fh.Filename, fh.Size)
		return "", false, nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", false, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := graph.NewUploadName(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", false, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", false, fmt.Errorf("write upload: %w", err)
	}
	return name, true, nil
}

// Remove deletes a stored image. Used as the compensating action when the
// row insert fails after the file was written.
func (s *Store) Remove(filename string) {
	if filename == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil && !os.IsNotExist(err) {
		log.Printf("[uploads] failed to remove %q: %v", filename, err)
	}
}
