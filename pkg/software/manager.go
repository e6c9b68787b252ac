// SPDX-License-Identifier: Apache-2.0

package software

import (
	"sync"

	"github.com/bluet/syspkg"
	"github.com/bluet/syspkg/manager"
)

var (
	pkgManager syspkg.PackageManager
	once       sync.Once
)

// GetPackageManager returns the host's package manager, detected once.
func GetPackageManager() (syspkg.PackageManager, error) {
	var initErr error
	once.Do(func() {
		includeOptions := syspkg.IncludeOptions{AllAvailable: true}
		sysPackageManager, err := syspkg.New(includeOptions)
		if err != nil {
			initErr = NewInstallationError(err, "package-manager", "detection failed")
			return
		}

		// Let syspkg automatically detect the best available package manager
		pm, err := sysPackageManager.GetPackageManager("")
		if err != nil {
			initErr = NewInstallationError(err, "package-manager", "detection failed")
			return
		}

		pkgManager = pm
	})

	return pkgManager, initErr
}

// RefreshPackageIndex refreshes the system package index.
// Essentially this is equivalent to running `apt-get update` on Debian-based systems
func RefreshPackageIndex() error {
	pm, err := GetPackageManager()
	if err != nil {
		return err
	}

	return pm.Refresh(&manager.Options{DryRun: false, Interactive: false, AssumeYes: true})
}

// SystemUpgrader is an interface for package managers that support a
// full-system upgrade.
type SystemUpgrader interface {
	UpgradeAll(opts *manager.Options) ([]manager.PackageInfo, error)
}

// UpgradeAllPackages upgrades every installed package to its candidate
// version. Equivalent to `apt-get upgrade -y` on Debian-based systems.
// Falls back to invoking apt-get directly when the detected package manager
// does not expose a full upgrade.
func UpgradeAllPackages(fallback func(name string, args ...string) error) error {
	pm, err := GetPackageManager()
	if err != nil {
		return err
	}

	if upgrader, ok := pm.(SystemUpgrader); ok {
		_, err = upgrader.UpgradeAll(&manager.Options{DryRun: false, Interactive: false, AssumeYes: true})
		if err != nil {
			return NewInstallationError(err, "system-upgrade", "")
		}
		return nil
	}

	if fallback == nil {
		return NewInstallationError(nil, "system-upgrade", "package manager does not support full upgrade")
	}

	if err := fallback("apt-get", "upgrade", "-y"); err != nil {
		return NewInstallationError(err, "system-upgrade", "")
	}

	return nil
}

// AutoRemover is an interface for package managers that support autoremove.
type AutoRemover interface {
	AutoRemove(opts *manager.Options) ([]manager.PackageInfo, error)
}

// AutoRemove removes orphaned dependencies to free disk space.
// This is equivalent to running `apt autoremove -y` on Debian-based systems
func AutoRemove() error {
	pm, err := GetPackageManager()
	if err != nil {
		return err
	}

	autoRemover, ok := pm.(AutoRemover)
	if !ok {
		return NewInstallationError(nil, "autoremove", "package manager does not support autoremove")
	}

	_, err = autoRemover.AutoRemove(&manager.Options{DryRun: false, Interactive: false, AssumeYes: true})
	if err != nil {
		return NewInstallationError(err, "autoremove", "")
	}

	return nil
}
