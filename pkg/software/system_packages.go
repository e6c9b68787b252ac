// SPDX-License-Identifier: Apache-2.0

package software

import "github.com/bluet/syspkg/manager"

func newAssumeYes(name string) (Package, error) {
	return NewPackageInstaller(WithPackageName(name), WithPackageOptions(manager.Options{AssumeYes: true}))
}

func NewCaCertificates() (Package, error) { return newAssumeYes("ca-certificates") }

func NewCurl() (Package, error) { return newAssumeYes("curl") }

// NewGpg creates a GPG package installer that works across different distributions.
// The "gpg" package name resolves on both newer Debian/Ubuntu and RHEL-family systems.
func NewGpg() (Package, error) { return newAssumeYes("gpg") }

func NewUfw() (Package, error) { return newAssumeYes("ufw") }

// NewNetTools provides netstat for the informational port report.
func NewNetTools() (Package, error) { return newAssumeYes("net-tools") }

func NewDockerCe() (Package, error) { return newAssumeYes("docker-ce") }

func NewDockerCeCli() (Package, error) { return newAssumeYes("docker-ce-cli") }

func NewContainerdIo() (Package, error) { return newAssumeYes("containerd.io") }

func NewDockerBuildxPlugin() (Package, error) { return newAssumeYes("docker-buildx-plugin") }

func NewDockerComposePlugin() (Package, error) { return newAssumeYes("docker-compose-plugin") }

// Packages that conflict with the vendor Docker engine and must be removed
// before installing it.
func NewDockerIo() (Package, error) { return newAssumeYes("docker.io") }

func NewDockerDoc() (Package, error) { return newAssumeYes("docker-doc") }

func NewDockerComposeLegacy() (Package, error) { return newAssumeYes("docker-compose") }

func NewPodmanDocker() (Package, error) { return newAssumeYes("podman-docker") }

func NewContainerd() (Package, error) { return newAssumeYes("containerd") }

func NewRunc() (Package, error) { return newAssumeYes("runc") }
