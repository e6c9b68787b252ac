// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/ethforge/ethforge/internal/doctor"
	"github.com/ethforge/ethforge/internal/hostcheck"
	"github.com/ethforge/ethforge/internal/workflows/notify"
	"github.com/joomcode/errorx"
)

// CheckPrivilegesStep validates that the current user has superuser privileges
func CheckPrivilegesStep() automa.Builder {
	return automa.NewStepBuilder().WithId("validate-privileges").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			current, err := user.Current()
			if err != nil {
				return automa.FailureReport(stp,
					automa.WithError(errorx.IllegalState.Wrap(err, "failed to get current user")))
			}

			if current.Uid != "0" {
				return automa.FailureReport(stp,
					automa.WithError(
						errorx.IllegalState.New("requires superuser privilege").
							WithProperty(doctor.ErrPropertyResolution,
								fmt.Sprintf("Run the command with 'sudo' or as root user: `sudo %s`",
									strings.Join(os.Args, " ")))))
			}

			logx.As().Info().Msg("Superuser privilege validated")
			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting privilege validation")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Privilege validation failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Privilege validation step completed successfully")
		})
}

// CheckHostStep validates OS family, memory and free disk space against the
// minimums an Ethereum full node needs. Hosts below the recommended sizing
// still pass but are warned; initial sync will be slow on them.
func CheckHostStep(dataPath string) automa.Builder {
	return automa.NewStepBuilder().WithId("validate-host").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			profile, err := hostcheck.Profile(dataPath)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			logx.As().Info().
				Str("os", profile.OSVendor).
				Str("arch", profile.Architecture).
				Int64("memory_bytes", profile.MemoryBytes).
				Uint64("free_disk_bytes", profile.FreeDiskBytes).
				Msg("Retrieved host profile")

			if err := profile.CheckOS(); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if err := profile.CheckMemory(); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if err := profile.CheckDisk(); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if !profile.MeetsRecommended() {
				logx.As().Warn().
					Msg("Host is below the recommended sizing, initial sync may take significantly longer")
			}

			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting host validation")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Host validation failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Host validation step completed successfully")
		})
}

// NewPreflightWorkflow bundles the checks that must pass before the pipeline
// is allowed to mutate the host.
func NewPreflightWorkflow(dataPath string) *automa.WorkflowBuilder {
	return automa.NewWorkflowBuilder().
		WithId("node-preflight").Steps(
		CheckPrivilegesStep(),
		CheckHostStep(dataPath),
	).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting node preflight checks")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Node preflight checks failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Node preflight checks completed successfully")
		})
}
