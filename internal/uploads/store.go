package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxCreateAttempts = 5

var ErrOutsideUploadDir = errors.New("path is outside the upload directory")

// Store writes uploaded documents to a local directory. Stored files are
// named <unix-millis>-<original file name>.
type Store struct {
	dir string
	now func() time.Time
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("NewStore(): failed to create upload directory: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save copies the uploaded file into the upload directory and returns the
// stored path. An existing file is never overwritten: on a name clash the
// stored name gets a random suffix.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("Store.Save(): failed to open upload: %w", err)
	}
	defer src.Close()

	dst, dstPath, err := s.create(cleanFilename(fh.Filename))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dstPath)
		return "", fmt.Errorf("Store.Save(): failed to write %s: %w", dstPath, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("Store.Save(): failed to close %s: %w", dstPath, err)
	}
	return dstPath, nil
}

// create exclusively creates <unix-millis>-<name>, falling back to
// <unix-millis>-<uuid>-<name> when that path is taken.
func (s *Store) create(name string) (*os.File, string, error) {
	stamp := s.now().UnixMilli()
	dstPath := filepath.Join(s.dir, fmt.Sprintf("%d-%s", stamp, name))
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		if attempt > 0 {
			dstPath = filepath.Join(s.dir, fmt.Sprintf("%d-%s-%s", stamp, uuid.NewString(), name))
		}
		dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return dst, dstPath, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("Store.Save(): failed to create %s: %w", dstPath, err)
		}
	}
	return nil, "", fmt.Errorf("Store.Save(): no free file name for %s", name)
}

// Remove deletes a stored file. Paths outside the upload directory are
// refused and a file that is already gone is not an error.
func (s *Store) Remove(path string) error {
	if !s.contains(path) {
		return ErrOutsideUploadDir
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) contains(path string) bool {
	dir, err := filepath.Abs(s.dir)
	if err != nil {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(dir, abs)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func cleanFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "upload"
	}
	return name
}
