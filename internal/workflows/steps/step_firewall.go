// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"fmt"
	"strconv"

	"github.com/automa-saga/automa"
	"github.com/ethforge/ethforge/internal/config"
	"github.com/ethforge/ethforge/internal/firewall"
	"github.com/ethforge/ethforge/internal/workflows/notify"
)

const (
	firewallBaselineStepId     = "firewall-baseline"
	firewallServicePortsStepId = "firewall-service-ports"
)

// FirewallBaseline allows SSH and enables ufw. SSH is allowed before the
// firewall goes up, so the session driving the provisioning is never cut off.
// Rules run before the services start: a window where the node is reachable
// but unfiltered never exists.
func FirewallBaseline(cfg config.FirewallConfig) automa.Builder {
	return automa.NewStepBuilder().
		WithId(firewallBaselineStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			mgr := firewall.NewManager()

			added, err := mgr.Allow(cfg.SSHProfile)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			enabled, err := mgr.Enable()
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"sshRuleAdded":    strconv.FormatBool(added),
				"firewallEnabled": strconv.FormatBool(enabled),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Applying firewall baseline (allow %s, enable ufw)", cfg.SSHProfile)
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Firewall baseline applied")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to apply firewall baseline")
		})
}

// FirewallServicePorts opens the ports the clients need to be reachable on:
// the execution p2p port on both tcp and udp, the JSON-RPC port and the
// consensus gateway port. Rules already present are not duplicated.
func FirewallServicePorts(cfg config.Config) automa.Builder {
	return automa.NewStepBuilder().
		WithId(firewallServicePortsStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			mgr := firewall.NewManager()

			targets := []string{
				fmt.Sprintf("%d/tcp", cfg.Execution.P2PPort),
				fmt.Sprintf("%d/udp", cfg.Execution.P2PPort),
				fmt.Sprintf("%d/tcp", cfg.Execution.HTTPPort),
				fmt.Sprintf("%d/tcp", cfg.Consensus.GatewayPort),
			}

			metadata := map[string]string{}
			for _, target := range targets {
				added, err := mgr.Allow(target)
				if err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				}
				metadata[target] = strconv.FormatBool(added)
			}

			return automa.SuccessReport(stp, automa.WithMetadata(metadata))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Opening firewall ports for node services")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Firewall service ports opened")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to open firewall service ports")
		})
}
