// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"fmt"

	"github.com/automa-saga/automa"
	"github.com/ethforge/ethforge/internal/config"
	"github.com/ethforge/ethforge/internal/core"
	"github.com/ethforge/ethforge/internal/network"
	"github.com/ethforge/ethforge/internal/workflows/notify"
)

const printOperatorGuidanceStepId = "print-operator-guidance"

// PrintOperatorGuidance prints what the operator should know now that the
// node is provisioned: where the data lives, how to follow sync progress and
// how to stop the services. Informational only, never fails the run.
func PrintOperatorGuidance(cfg config.Config, paths core.NodePaths) automa.Builder {
	return automa.NewStepBuilder().
		WithId(printOperatorGuidanceStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			fmt.Printf("\nYour %s node is provisioned and syncing.\n\n", cfg.Network)
			fmt.Printf("  Data directory:    %s\n", paths.BaseDir)
			fmt.Printf("  Compose file:      %s\n", paths.ComposeFile)
			fmt.Printf("  JWT secret:        %s\n", paths.JwtSecretFile)
			fmt.Printf("  Execution RPC:     http://localhost:%d (available after sync)\n", cfg.Execution.HTTPPort)
			fmt.Printf("  Consensus gateway: http://localhost:%d\n", cfg.Consensus.GatewayPort)
			if ip, err := network.GetMachineIP(); err == nil {
				fmt.Printf("  P2P endpoint:      %s:%d (ensure this is reachable from the internet)\n", ip, cfg.Execution.P2PPort)
			}
			fmt.Println()
			fmt.Println("Initial sync can take hours to days depending on hardware and network.")
			fmt.Println("Useful commands:")
			fmt.Printf("  docker compose -f %s logs -f execution\n", paths.ComposeFile)
			fmt.Printf("  docker compose -f %s logs -f consensus\n", paths.ComposeFile)
			fmt.Printf("  docker compose -f %s ps\n", paths.ComposeFile)
			fmt.Printf("  docker compose -f %s down\n\n", paths.ComposeFile)

			return automa.SuccessReport(stp)
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Operator guidance printed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to print operator guidance")
		})
}
