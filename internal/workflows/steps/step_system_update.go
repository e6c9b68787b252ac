// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/ethforge/ethforge/internal/workflows/notify"
	"github.com/ethforge/ethforge/pkg/software"
)

const (
	refreshSystemPackageStepId       = "refresh-system-package-index"
	upgradeSystemPackagesStepId      = "upgrade-system-packages"
	autoRemoveOrphanedPackagesStepId = "autoremove-orphaned-packages"
)

// RefreshSystemPackageIndex refreshes the system package index.
// Essentially this is equivalent to running `apt-get update` on Debian-based systems
func RefreshSystemPackageIndex() automa.Builder {
	return automa.NewStepBuilder().
		WithId(refreshSystemPackageStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			err := software.RefreshPackageIndex()
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			return automa.SuccessReport(stp)
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Package index refreshed successfully")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to refresh package index")
		})
}

// UpgradeSystemPackages upgrades all installed packages to their latest
// available versions, equivalent to `apt-get upgrade -y`.
func UpgradeSystemPackages() automa.Builder {
	return automa.NewStepBuilder().
		WithId(upgradeSystemPackagesStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			err := software.UpgradeAllPackages(RunCmd)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Upgrading installed packages, this may take a while")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Installed packages upgraded successfully")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to upgrade installed packages")
		})
}

// AutoRemoveOrphanedPackages removes orphaned dependencies and frees disk space.
// Essentially this is equivalent to running `apt autoremove -y` on Debian-based systems
func AutoRemoveOrphanedPackages() automa.Builder {
	return automa.NewStepBuilder().
		WithId(autoRemoveOrphanedPackagesStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			err := software.AutoRemove()
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}
			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Removing orphaned packages")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Orphaned packages removed successfully")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to remove orphaned packages")
		})
}
