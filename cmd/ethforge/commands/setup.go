// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/ethforge/ethforge/cmd/ethforge/commands/common"
	"github.com/ethforge/ethforge/internal/config"
	"github.com/ethforge/ethforge/internal/core"
	"github.com/ethforge/ethforge/internal/doctor"
	"github.com/ethforge/ethforge/internal/workflows"
	"github.com/ethforge/ethforge/pkg/runlock"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Provision the host and start the node services",
	Long: "Provisions this host end to end: system packages, Docker engine, data directories, " +
		"JWT secret, compose file, kernel tuning and firewall, then starts the execution and " +
		"consensus clients. Safe to re-run; completed steps are skipped.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := config.Get()
		paths := core.NewNodePaths(cfg.BaseDir)

		// one provisioning run at a time per host
		lock, err := runlock.New(paths.RunLockFile)
		if err != nil {
			doctor.CheckErr(ctx, err)
		}
		if err = lock.Acquire(); err != nil {
			doctor.CheckErr(ctx, err,
				"Another provisioning run appears to be in progress.\n"+
					"Wait for it to finish, or remove the stale lock file if no other run exists: "+paths.RunLockFile)
		}
		defer func() { _ = lock.Release() }()

		common.RunWorkflow(ctx, workflows.NewProvisionWorkflow(cfg, paths))
	},
}

func getSetupCmd() *cobra.Command {
	return setupCmd
}
