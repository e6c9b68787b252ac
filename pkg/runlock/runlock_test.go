// SPDX-License-Identifier: Apache-2.0

package runlock

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunLock_AcquireRelease(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "run", "test.lock")

	lock, err := New(lockPath)
	require.NoError(t, err)

	require.NoError(t, lock.Acquire())
	require.NoError(t, lock.Release())

	// can be re-acquired after release
	require.NoError(t, lock.Acquire())
	require.NoError(t, lock.Release())
}

func TestRunLock_SecondAcquireFails(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "test.lock")

	first, err := New(lockPath)
	require.NoError(t, err)
	require.NoError(t, first.Acquire())
	defer func() { _ = first.Release() }()

	second, err := New(lockPath)
	require.NoError(t, err)
	require.Error(t, second.Acquire())
}
