// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"fmt"
	"strconv"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/ethforge/ethforge/internal/network"
	"github.com/ethforge/ethforge/internal/workflows/notify"
)

const checkServicePortsStepId = "check-service-ports"

// CheckServicePorts probes each service port for an existing listener and
// logs what it finds. A bound port is reported but never fails the run; the
// services themselves surface the conflict when they try to bind.
func CheckServicePorts(ports []int) automa.Builder {
	return automa.NewStepBuilder().
		WithId(checkServicePortsStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			boundCount := 0
			metadata := map[string]string{}
			for _, status := range network.ProbePorts(ports) {
				metadata[fmt.Sprintf("port-%d", status.Port)] = strconv.FormatBool(status.Bound)
				if status.Bound {
					boundCount++
					logx.As().Warn().Int("port", status.Port).
						Msg("Port is already in use, the service binding to it may fail to start")
				}
			}

			if boundCount == 0 {
				logx.As().Info().Ints("ports", ports).Msg("All service ports are free")
			}

			return automa.SuccessReport(stp, automa.WithMetadata(metadata))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Checking service ports for existing listeners")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Service port check completed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Service port check failed")
		})
}
