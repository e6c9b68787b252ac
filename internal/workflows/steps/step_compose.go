// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"bytes"
	"context"
	"os"

	"github.com/automa-saga/automa"
	"github.com/ethforge/ethforge/internal/compose"
	"github.com/ethforge/ethforge/internal/config"
	"github.com/ethforge/ethforge/internal/core"
	"github.com/ethforge/ethforge/internal/workflows/notify"
	"github.com/ethforge/ethforge/pkg/fsx"
	"github.com/joomcode/errorx"
)

const writeComposeFileStepId = "write-compose-file"

// WriteComposeFile renders the two-service compose document and writes it to
// disk. The rendering is deterministic, so an unchanged document is detected
// by comparing bytes and the file is only rewritten when parameters changed.
func WriteComposeFile(cfg config.Config, paths core.NodePaths) automa.Builder {
	return automa.NewStepBuilder().
		WithId(writeComposeFileStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			doc := compose.NewDocument(cfg, paths)
			rendered, err := compose.Render(doc)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			existing, err := os.ReadFile(paths.ComposeFile)
			if err == nil && bytes.Equal(existing, rendered) {
				return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
					"path":    paths.ComposeFile,
					"changed": "false",
				}))
			}

			if err = fsx.WriteFileAtomic(paths.ComposeFile, rendered, core.DefaultFilePerm); err != nil {
				return automa.FailureReport(stp,
					automa.WithError(errorx.IllegalState.Wrap(err, "failed to write compose file %s", paths.ComposeFile)))
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"path":    paths.ComposeFile,
				"changed": "true",
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Writing compose file to %s", paths.ComposeFile)
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Compose file is up to date")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to write compose file")
		})
}
