package iconstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DiskStore is the default icon store: one file per entry under a root
// directory, named by a hash of the URL. Entries are never expired or
// evicted; an entry is only ever replaced by an explicit overwrite.
type DiskStore struct {
	root   string
	logger zerolog.Logger
}

// NewDiskStore creates a store rooted at dir, creating the directory if
// needed.
func NewDiskStore(dir string, logger zerolog.Logger) (*DiskStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("disk store directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create icon store directory: %w", err)
	}

	return &DiskStore{
		root:   dir,
		logger: logger.With().Str("component", "DiskStore").Logger(),
	}, nil
}

// Fetch reads the entry for the URL from disk.
func (s *DiskStore) Fetch(_ context.Context, url string) ([]byte, error) {
	data, err := os.ReadFile(s.path(url))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read icon store entry: %w", err)
	}

	s.logger.Debug().Str("url", url).Msg("Disk store hit.")
	return data, nil
}

// Write persists the entry atomically: the bytes land in a uniquely named
// temp file first, then rename into place. Concurrent writers racing on the
// same URL write identical content, so last-rename-wins is benign.
func (s *DiskStore) Write(_ context.Context, url string, data []byte) error {
	target := s.path(url)
	tmp := target + "." + uuid.NewString() + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp icon file: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp icon file: %w", err)
	}

	s.logger.Debug().Str("url", url).Int("bytes", len(data)).Msg("Stored icon on disk.")
	return nil
}

// Close is a no-op for the disk store but satisfies the Store interface.
func (s *DiskStore) Close() error {
	return nil
}

func (s *DiskStore) path(url string) string {
	return filepath.Join(s.root, objectKey(url)+".svg")
}
