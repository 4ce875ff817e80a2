package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one <key>.json file per document under dir. Writes go
// through a tmp file and rename so a crash mid-write leaves the previous
// document intact; the prior version survives as <key>.json.bak.
type FileStore struct {
	dir string
}

func OpenFile(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read document %q: %w", key, err)
	}
	return b, nil
}

func (s *FileStore) Put(_ context.Context, key string, value []byte) error {
	path := s.path(key)
	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("write document %q: %w", key, err)
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit document %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
