// SPDX-License-Identifier: Apache-2.0

// Package hostcheck inspects the host before any mutation happens: a node
// that cannot hold the chain data or runs an unsupported OS should fail
// fast, not halfway through provisioning.
package hostcheck

import (
	"path/filepath"

	"github.com/jaypipes/ghw"
	"github.com/joomcode/errorx"
	"github.com/zcalusic/sysinfo"
	"golang.org/x/sys/unix"
)

var (
	ErrNamespace     = errorx.NewNamespace("hostcheck")
	RequirementError = ErrNamespace.NewType("requirement")
)

const (
	GiB = 1 << 30

	// MinMemoryBytes is the hard floor; below it the clients will OOM during sync.
	MinMemoryBytes = 4 * GiB
	// RecommendedMemoryBytes is what a healthy node should have.
	RecommendedMemoryBytes = 16 * GiB

	// MinFreeDiskBytes covers a Sepolia execution+consensus pair with headroom.
	MinFreeDiskBytes = 100 * GiB
	// RecommendedFreeDiskBytes leaves room for state growth.
	RecommendedFreeDiskBytes = 500 * GiB
)

// HostProfile is the subset of host facts the preflight checks evaluate.
type HostProfile struct {
	OSVendor      string
	OSName        string
	OSVersion     string
	Architecture  string
	MemoryBytes   int64
	FreeDiskBytes uint64
}

// Profile gathers OS, memory and free-disk facts. dataPath is the mount the
// node data directories will live on.
func Profile(dataPath string) (HostProfile, error) {
	var si sysinfo.SysInfo
	si.GetSysInfo()

	hp := HostProfile{
		OSVendor:     si.OS.Vendor,
		OSName:       si.OS.Name,
		OSVersion:    si.OS.Version,
		Architecture: si.OS.Architecture,
	}

	mem, err := ghw.Memory()
	if err != nil {
		return hp, RequirementError.Wrap(err, "failed to read memory info")
	}
	hp.MemoryBytes = mem.TotalPhysicalBytes

	var stat unix.Statfs_t
	if err := statfsNearest(dataPath, &stat); err != nil {
		return hp, RequirementError.Wrap(err, "failed to stat filesystem for %q", dataPath)
	}
	hp.FreeDiskBytes = stat.Bavail * uint64(stat.Bsize)

	return hp, nil
}

// statfsNearest stats the filesystem path lives, or will live, on. On a
// fresh host the data directory does not exist yet, so missing segments are
// skipped by walking up to the nearest existing ancestor.
func statfsNearest(path string, stat *unix.Statfs_t) error {
	for {
		err := unix.Statfs(path, stat)
		if err == nil {
			return nil
		}
		if err != unix.ENOENT {
			return err
		}

		parent := filepath.Dir(path)
		if parent == path {
			return err
		}
		path = parent
	}
}

// SupportedOSVendors lists the distributions the package steps know how to drive.
func SupportedOSVendors() []string {
	return []string{"ubuntu", "debian"}
}

// CheckOS verifies the host runs a Debian-family distribution.
func (hp HostProfile) CheckOS() error {
	for _, vendor := range SupportedOSVendors() {
		if hp.OSVendor == vendor {
			return nil
		}
	}

	return RequirementError.New("unsupported OS vendor %q, supported: %v",
		hp.OSVendor, SupportedOSVendors())
}

// CheckMemory fails below the hard memory floor.
func (hp HostProfile) CheckMemory() error {
	if hp.MemoryBytes < MinMemoryBytes {
		return RequirementError.New("host has %d GiB memory, minimum is %d GiB",
			hp.MemoryBytes/GiB, MinMemoryBytes/GiB)
	}

	return nil
}

// CheckDisk fails below the hard free-disk floor.
func (hp HostProfile) CheckDisk() error {
	if hp.FreeDiskBytes < MinFreeDiskBytes {
		return RequirementError.New("host has %d GiB free disk, minimum is %d GiB",
			hp.FreeDiskBytes/GiB, MinFreeDiskBytes/GiB)
	}

	return nil
}

// MeetsRecommended reports whether the host clears the recommended sizing.
// Falling short is a warning, not an error.
func (hp HostProfile) MeetsRecommended() bool {
	return hp.MemoryBytes >= RecommendedMemoryBytes && hp.FreeDiskBytes >= RecommendedFreeDiskBytes
}
