// SPDX-License-Identifier: Apache-2.0

package hostcheck

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfile_MissingDataDirUsesNearestAncestor(t *testing.T) {
	// on a fresh host the base directory is created much later in the
	// pipeline, the disk check must look at the filesystem it will live on
	hp, err := Profile(filepath.Join(t.TempDir(), "opt", "ethereum"))
	require.NoError(t, err)
	require.NotZero(t, hp.FreeDiskBytes)
}

func TestProfile_ExistingDataDir(t *testing.T) {
	hp, err := Profile(t.TempDir())
	require.NoError(t, err)
	require.NotZero(t, hp.FreeDiskBytes)
}

func TestCheckOS(t *testing.T) {
	require.NoError(t, HostProfile{OSVendor: "ubuntu"}.CheckOS())
	require.NoError(t, HostProfile{OSVendor: "debian"}.CheckOS())

	require.Error(t, HostProfile{OSVendor: "fedora"}.CheckOS())
	require.Error(t, HostProfile{OSVendor: ""}.CheckOS())
}

func TestCheckMemory(t *testing.T) {
	require.NoError(t, HostProfile{MemoryBytes: MinMemoryBytes}.CheckMemory())
	require.NoError(t, HostProfile{MemoryBytes: 32 * GiB}.CheckMemory())

	require.Error(t, HostProfile{MemoryBytes: MinMemoryBytes - 1}.CheckMemory())
	require.Error(t, HostProfile{MemoryBytes: 0}.CheckMemory())
}

func TestCheckDisk(t *testing.T) {
	require.NoError(t, HostProfile{FreeDiskBytes: MinFreeDiskBytes}.CheckDisk())

	require.Error(t, HostProfile{FreeDiskBytes: MinFreeDiskBytes - 1}.CheckDisk())
}

func TestMeetsRecommended(t *testing.T) {
	require.True(t, HostProfile{
		MemoryBytes:   RecommendedMemoryBytes,
		FreeDiskBytes: RecommendedFreeDiskBytes,
	}.MeetsRecommended())

	require.False(t, HostProfile{
		MemoryBytes:   RecommendedMemoryBytes - 1,
		FreeDiskBytes: RecommendedFreeDiskBytes,
	}.MeetsRecommended())

	require.False(t, HostProfile{
		MemoryBytes:   RecommendedMemoryBytes,
		FreeDiskBytes: MinFreeDiskBytes,
	}.MeetsRecommended())
}
