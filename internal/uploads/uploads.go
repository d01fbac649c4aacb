// Package uploads is the filesystem store for payment-confirmation
// screenshots. Filenames come verbatim from the client and a repeated
// name overwrites the earlier file; see DESIGN.md for the security notes
// on this contract.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no stored file matches the name, or the
// name does not resolve to a file inside the upload directory.
var ErrNotFound = errors.New("file not found")

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// Store is a single flat directory of uploaded files.
type Store struct {
	dir string
}

// New creates the upload directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the backing directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the file under the client-supplied name. Last write wins
// on a name collision.
func (s *Store) Save(name string, r io.Reader) error {
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("create %q: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("write %q: %w", name, err)
	}
	return nil
}

// List returns every stored filename, sorted by name.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read upload dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Images returns the stored filenames carrying an allowed image
// extension, case-insensitive, sorted by name.
func (s *Store) Images() ([]string, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}
	images := names[:0]
	for _, name := range names {
		if imageExts[strings.ToLower(filepath.Ext(name))] {
			images = append(images, name)
		}
	}
	return images, nil
}

// Resolve maps a requested name to its on-disk path. Names containing
// path separators or otherwise escaping the directory are reported as
// not found.
func (s *Store) Resolve(name string) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", ErrNotFound
	}
	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return path, nil
}
