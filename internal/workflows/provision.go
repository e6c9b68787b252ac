// SPDX-License-Identifier: Apache-2.0

// Package workflows assembles the provisioning pipeline. Steps run in order
// and the workflow halts at the first failure; everything provisioned up to
// that point is left in place so a re-run can pick up where it stopped.
package workflows

import (
	"github.com/automa-saga/automa"
	"github.com/ethforge/ethforge/internal/config"
	"github.com/ethforge/ethforge/internal/core"
	"github.com/ethforge/ethforge/internal/workflows/steps"
	"github.com/ethforge/ethforge/pkg/software"
)

// NewProvisionWorkflow builds the end-to-end node provisioning workflow:
// preflight, system packages, Docker engine, node artifacts (directories,
// JWT secret, compose file), kernel tuning, firewall, and finally service
// startup. The firewall is raised before the services start so the node is
// never reachable unfiltered.
func NewProvisionWorkflow(cfg config.Config, paths core.NodePaths) *automa.WorkflowBuilder {
	return automa.NewWorkflowBuilder().
		WithId("provision-ethereum-node").
		Steps(
			NewPreflightWorkflow(paths.BaseDir),

			// base system
			steps.RefreshSystemPackageIndex(),
			steps.UpgradeSystemPackages(),
			steps.InstallSystemPackage("ca-certificates", software.NewCaCertificates),
			steps.InstallSystemPackage("curl", software.NewCurl),
			steps.InstallSystemPackage("gpg", software.NewGpg),
			steps.InstallSystemPackage("ufw", software.NewUfw),
			steps.InstallSystemPackage("net-tools", software.NewNetTools),

			// Docker engine from the vendor repository; distribution packages
			// conflict with it and are removed first
			steps.RemoveSystemPackage("docker.io", software.NewDockerIo),
			steps.RemoveSystemPackage("docker-doc", software.NewDockerDoc),
			steps.RemoveSystemPackage("docker-compose", software.NewDockerComposeLegacy),
			steps.RemoveSystemPackage("podman-docker", software.NewPodmanDocker),
			steps.RemoveSystemPackage("containerd", software.NewContainerd),
			steps.RemoveSystemPackage("runc", software.NewRunc),
			steps.SetupDockerAptRepository(),
			steps.InstallSystemPackage("docker-ce", software.NewDockerCe),
			steps.InstallSystemPackage("docker-ce-cli", software.NewDockerCeCli),
			steps.InstallSystemPackage("containerd.io", software.NewContainerdIo),
			steps.InstallSystemPackage("docker-buildx-plugin", software.NewDockerBuildxPlugin),
			steps.InstallSystemPackage("docker-compose-plugin", software.NewDockerComposePlugin),
			steps.EnableDockerService(),
			steps.VerifyDockerEngine(),

			// node artifacts
			steps.SetupDataDirectories(paths),
			steps.EnsureJwtSecret(paths.JwtSecretFile),
			steps.WriteComposeFile(cfg, paths),

			// host tuning and network posture
			steps.CheckServicePorts(cfg.ServicePorts()),
			steps.TuneKernelParameters(),
			steps.FirewallBaseline(cfg.Firewall),
			steps.FirewallServicePorts(cfg),

			// bring the node up
			steps.StartServices(paths.ComposeFile),
			steps.TailServiceLogs(paths.ComposeFile),

			// housekeeping and operator handoff
			steps.AutoRemoveOrphanedPackages(),
			steps.PrintOperatorGuidance(cfg, paths),
		)
}
