package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked means another engine instance owns the data dir. Two live
// processes would each hold their own in-memory copy and silently clobber
// each other's writes, so we refuse to start instead.
var ErrLocked = errors.New("data dir is locked by another instance")

type InstanceLock struct {
	fl *flock.Flock
}

func AcquireLock(dataDir string) (*InstanceLock, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	fl := flock.New(filepath.Join(dataDir, "engine.lock"))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire instance lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return &InstanceLock{fl: fl}, nil
}

func (l *InstanceLock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
