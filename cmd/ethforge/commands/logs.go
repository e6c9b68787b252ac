// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/automa-saga/automa"
	"github.com/ethforge/ethforge/cmd/ethforge/commands/common"
	"github.com/ethforge/ethforge/internal/config"
	"github.com/ethforge/ethforge/internal/core"
	"github.com/ethforge/ethforge/internal/workflows/steps"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show a snapshot of the node service logs",
	Long:  "Prints the most recent log lines from the execution and consensus containers.",
	Run: func(cmd *cobra.Command, args []string) {
		paths := core.NewNodePaths(config.Get().BaseDir)

		wb := automa.NewWorkflowBuilder().
			WithId("show-service-logs").
			Steps(steps.TailServiceLogs(paths.ComposeFile))

		common.RunWorkflow(cmd.Context(), wb)
	},
}

func getLogsCmd() *cobra.Command {
	return logsCmd
}
