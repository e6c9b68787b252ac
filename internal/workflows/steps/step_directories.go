// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"os"
	"strings"

	"github.com/automa-saga/automa"
	"github.com/ethforge/ethforge/internal/core"
	"github.com/ethforge/ethforge/internal/workflows/notify"
	"github.com/joomcode/errorx"
)

const setupDataDirectoriesStepId = "setup-data-directories"

// SetupDataDirectories creates the per-client data directories and the logs
// directory. Existing directories are left untouched, so re-running never
// disturbs chain data already on disk.
func SetupDataDirectories(paths core.NodePaths) automa.Builder {
	return automa.NewStepBuilder().
		WithId(setupDataDirectoriesStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			dirs := append(paths.DataDirectories(), paths.LogsDir)
			for _, dir := range dirs {
				if err := os.MkdirAll(dir, core.DefaultDirPerm); err != nil {
					return automa.FailureReport(stp,
						automa.WithError(errorx.IllegalState.Wrap(err, "failed to create directory %s", dir)))
				}
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"directories": strings.Join(dirs, ","),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Creating data directories under %s", paths.BaseDir)
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Data directories are in place")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to create data directories")
		})
}
