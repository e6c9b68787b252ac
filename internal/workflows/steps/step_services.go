// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"fmt"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/ethforge/ethforge/internal/workflows/notify"
	"github.com/joomcode/errorx"
)

const (
	startServicesStepId   = "start-services"
	tailServiceLogsStepId = "tail-service-logs"

	// logTailLines bounds the startup log snapshot shown to the operator.
	logTailLines = 40
)

// StartServices brings both containers up detached via the compose plugin.
// `up -d` converges: already-running services with an unchanged definition
// are left alone, changed ones are recreated.
func StartServices(composeFile string) automa.Builder {
	return automa.NewStepBuilder().
		WithId(startServicesStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			err := RunCmd("docker", "compose", "-f", composeFile, "up", "-d")
			if err != nil {
				return automa.FailureReport(stp,
					automa.WithError(errorx.IllegalState.Wrap(err, "docker compose up failed for %s", composeFile)))
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"composeFile": composeFile,
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting node services from %s", composeFile)
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Node services started")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to start node services")
		})
}

// TailServiceLogs prints a bounded snapshot of the service logs so the
// operator sees the clients coming up. Failing to read logs is logged but
// never fails the run; the services are already started at this point.
func TailServiceLogs(composeFile string) automa.Builder {
	return automa.NewStepBuilder().
		WithId(tailServiceLogsStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			out, err := RunCmdOutput(fmt.Sprintf("docker compose -f %s logs --tail %d", composeFile, logTailLines))
			if err != nil {
				logx.As().Warn().Err(err).Msg("Could not read service logs, skipping log snapshot")
				return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
					"logsAvailable": "false",
				}))
			}

			fmt.Println(out)
			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"logsAvailable": "true",
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Capturing service log snapshot")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Service log snapshot captured")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to capture service logs")
		})
}
