// SPDX-License-Identifier: Apache-2.0

// Package runlock provides a host-wide mutual exclusion lock so that two
// provisioning runs cannot interleave their host mutations.
package runlock

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/joomcode/errorx"
)

var (
	ErrNamespace = errorx.NewNamespace("runlock")
	LockError    = ErrNamespace.NewType("lock")
)

// RunLock wraps a file lock guarding a provisioning run.
type RunLock struct {
	fl *flock.Flock
}

// New prepares a lock at the given path. The parent directory is created if
// it does not exist; the lock itself is not acquired yet.
func New(path string) (*RunLock, error) {
	if path == "" {
		return nil, LockError.New("lock path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, LockError.Wrap(err, "failed to create lock directory for %q", path)
	}

	return &RunLock{fl: flock.New(path)}, nil
}

// Acquire takes the lock without blocking. A held lock from another process
// results in an error naming the lock file so the operator can find the
// competing run.
func (l *RunLock) Acquire() error {
	ok, err := l.fl.TryLock()
	if err != nil {
		return LockError.Wrap(err, "failed to acquire run lock %q", l.fl.Path())
	}

	if !ok {
		return LockError.New("another provisioning run holds the lock %q", l.fl.Path())
	}

	return nil
}

// Release drops the lock. Safe to call when the lock was never acquired.
func (l *RunLock) Release() error {
	if err := l.fl.Unlock(); err != nil {
		return LockError.Wrap(err, "failed to release run lock %q", l.fl.Path())
	}

	return nil
}
