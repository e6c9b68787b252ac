// SPDX-License-Identifier: Apache-2.0

package software

import (
	"github.com/bluet/syspkg"
	"github.com/bluet/syspkg/manager"
)

// Package abstracts a system package that knows how to install, remove and
// describe itself.
type Package interface {
	Name() string
	Install() (*syspkg.PackageInfo, error)
	Uninstall() (*syspkg.PackageInfo, error)
	IsInstalled() bool
	Info() (*syspkg.PackageInfo, error)
}

type option func(*PackageInstaller)

// PackageInstaller is the default implementation of the Package interface that uses the standard
// system package manager to manage a system package
type PackageInstaller struct {
	pkgName    string
	pkgOptions manager.Options
	pkgManager syspkg.PackageManager
}

func (p *PackageInstaller) Name() string {
	return p.pkgName
}

func (p *PackageInstaller) Install() (*syspkg.PackageInfo, error) {
	_, err := p.pkgManager.Install([]string{p.pkgName}, &p.pkgOptions)
	if err != nil {
		return nil, NewInstallationError(err, p.pkgName, "install failed")
	}

	return p.Info()
}

func (p *PackageInstaller) Uninstall() (*syspkg.PackageInfo, error) {
	_, err := p.pkgManager.Delete([]string{p.pkgName}, &p.pkgOptions)
	if err != nil {
		return nil, NewInstallationError(err, p.pkgName, "uninstall failed")
	}

	return p.Info()
}

func (p *PackageInstaller) IsInstalled() bool {
	info, err := p.Info()
	if err != nil {
		return false
	}

	return info.Status == manager.PackageStatusInstalled
}

func (p *PackageInstaller) Info() (*syspkg.PackageInfo, error) {
	// Find is more reliable than ListInstalled here: the apt ListInstalled
	// implementation does not distinguish a fully installed package from one
	// with only its config files left behind.
	resp, err := p.pkgManager.Find([]string{p.pkgName}, &p.pkgOptions)
	if err != nil {
		return nil, NewInstallationError(err, p.pkgName, "lookup failed")
	}

	for i := range resp {
		if resp[i].Name == p.pkgName {
			return &resp[i], nil
		}
	}

	return nil, NewInstallationError(nil, p.pkgName, "package not found")
}

func WithPackageName(name string) option {
	return func(p *PackageInstaller) {
		p.pkgName = name
	}
}

func WithPackageOptions(opts manager.Options) option {
	return func(p *PackageInstaller) {
		p.pkgOptions = opts
	}
}

// NewPackageInstaller builds a PackageInstaller bound to the detected system
// package manager.
func NewPackageInstaller(opts ...option) (Package, error) {
	pm, err := GetPackageManager()
	if err != nil {
		return nil, err
	}

	p := &PackageInstaller{pkgManager: pm}
	for _, opt := range opts {
		opt(p)
	}

	if p.pkgName == "" {
		return nil, NewInstallationError(nil, "", "package name cannot be empty")
	}

	return p, nil
}
