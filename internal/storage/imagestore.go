package storage

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore keeps uploaded product photos on disk under a single root
// directory and hands out public URLs for them. Filenames are generated
// uuids, so concurrent uploads never collide.
type ImageStore struct {
	root    string
	baseURL string
}

// NewImageStore creates the root directory if needed.
func NewImageStore(root, baseURL string) (*ImageStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("imagestore: create %s: %w", root, err)
	}
	return &ImageStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Store writes data to <root>/<uuid>.<ext> and returns the public URL.
// On error nothing is kept; the caller must abort before touching the
// database.
func (s *ImageStore) Store(data []byte, ext string) (string, error) {
	name := uuid.NewString()
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		name += "." + ext
	}
	if err := os.WriteFile(filepath.Join(s.root, name), data, 0o644); err != nil {
		return "", fmt.Errorf("imagestore: write %s: %w", name, err)
	}
	return s.baseURL + "/" + name, nil
}

// Delete removes the file a stored URL points at. An already-missing file is
// fine; only real filesystem errors are reported.
func (s *ImageStore) Delete(url string) error {
	name := path.Base(url)
	if name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("imagestore: remove %s: %w", name, err)
	}
	return nil
}

// Root is the on-disk directory, exposed so the router can serve it
// statically.
func (s *ImageStore) Root() string { return s.root }
