// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/automa-saga/automa"
	"github.com/ethforge/ethforge/cmd/ethforge/commands/common"
	"github.com/ethforge/ethforge/internal/config"
	"github.com/ethforge/ethforge/internal/core"
	"github.com/ethforge/ethforge/internal/workflows"
	"github.com/ethforge/ethforge/internal/workflows/steps"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check host readiness without changing anything",
	Long: "Runs the preflight checks (privileges, OS, memory, disk) and probes the service " +
		"ports for existing listeners. No host state is modified.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		paths := core.NewNodePaths(cfg.BaseDir)

		wb := automa.NewWorkflowBuilder().
			WithId("check-host-readiness").
			Steps(
				workflows.NewPreflightWorkflow(paths.BaseDir),
				steps.CheckServicePorts(cfg.ServicePorts()),
			)

		common.RunWorkflow(cmd.Context(), wb)
	},
}

func getCheckCmd() *cobra.Command {
	return checkCmd
}
