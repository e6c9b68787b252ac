// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"strconv"

	"github.com/automa-saga/automa"
	"github.com/ethforge/ethforge/internal/sysctl"
	"github.com/ethforge/ethforge/internal/workflows/notify"
)

const tuneKernelParametersStepId = "tune-kernel-parameters"

// TuneKernelParameters raises the UDP buffer sysctls the p2p discovery layer
// needs. Values already at or above the minimum are left alone.
func TuneKernelParameters() automa.Builder {
	return automa.NewStepBuilder().
		WithId(tuneKernelParametersStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			metadata := map[string]string{}
			for _, s := range sysctl.P2PSettings() {
				changed, err := sysctl.EnsureMinimum(s)
				if err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				}
				metadata[s.Key] = strconv.FormatBool(changed)
			}

			return automa.SuccessReport(stp, automa.WithMetadata(metadata))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Tuning kernel parameters for p2p networking")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Kernel parameters tuned successfully")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to tune kernel parameters")
		})
}
