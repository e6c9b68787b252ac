// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"strconv"

	"github.com/automa-saga/automa"
	"github.com/ethforge/ethforge/internal/secret"
	"github.com/ethforge/ethforge/internal/workflows/notify"
)

const ensureJwtSecretStepId = "ensure-jwt-secret"

// EnsureJwtSecret generates the shared JWT secret both clients authenticate
// the engine API with. An existing valid secret is kept as-is; rotating it
// would break the already-running pair.
func EnsureJwtSecret(path string) automa.Builder {
	return automa.NewStepBuilder().
		WithId(ensureJwtSecretStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			created, err := secret.Ensure(path)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"path":    path,
				"created": strconv.FormatBool(created),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Ensuring JWT secret at %s", path)
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "JWT secret is in place")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to ensure JWT secret")
		})
}
