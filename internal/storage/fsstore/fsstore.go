// Package fsstore implements storage.Storage as one file per key on an
// afero filesystem.
package fsstore

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const fileExt = ".json"

// Store keeps each key in its own file under dir.
type Store struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// New returns a store rooted at dir on fs. The directory is created with
// mode 0700 if it does not exist.
func New(fs afero.Fs, dir string) (*Store, error) {
	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat directory %s", dir)
	}
	if !exists {
		if err := fs.MkdirAll(dir, 0700); err != nil {
			return nil, errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}
	return &Store{fs: fs, dir: dir}, nil
}

// NewOS returns a store on the host filesystem.
func NewOS(dir string) (*Store, error) {
	return New(afero.NewOsFs(), dir)
}

// Dir returns the root directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+fileExt)
}

// Get implements storage.Storage.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to read %q", key)
	}
	return string(data), true, nil
}

// Set implements storage.Storage. The value is written to a temp file and
// renamed into place.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.path(key)
	tmp := target + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, []byte(value), 0600); err != nil {
		return errors.Wrapf(err, "failed to write %q", key)
	}
	if err := s.fs.Rename(tmp, target); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, "failed to commit %q", key)
	}
	return nil
}

// Remove implements storage.Storage.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.fs.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "failed to remove %q", key)
	}
	return nil
}

// Close implements storage.Storage.
func (s *Store) Close() error {
	return nil
}
