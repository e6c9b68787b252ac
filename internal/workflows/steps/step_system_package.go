// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"fmt"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/bluet/syspkg"
	"github.com/ethforge/ethforge/internal/workflows/notify"
	"github.com/ethforge/ethforge/pkg/software"
	"github.com/joomcode/errorx"
)

func validateInstaller(name string, installer func() (software.Package, error)) (software.Package, error) {
	if name == "" {
		return nil, errorx.IllegalArgument.New("package name cannot be empty")
	}

	if installer == nil {
		return nil, errorx.IllegalArgument.New("installer function cannot be nil")
	}

	pkg, err := installer()
	if err != nil {
		return nil, errorx.IllegalArgument.Wrap(err, "failed to get package from installer")
	}

	if pkg.Name() != name {
		return nil, errorx.IllegalArgument.New("installer returned package with unexpected name: got %q, want %q",
			pkg.Name(), name)
	}

	return pkg, nil
}

// InstallSystemPackage installs a system package using the provided installer function.
// The installer function should return a software.Package instance that knows how to install the package.
// If the package is already installed, it will skip the installation.
func InstallSystemPackage(name string, installer func() (software.Package, error)) automa.Builder {
	stepId := fmt.Sprintf("install-%s", name)

	return automa.NewStepBuilder().
		WithId(stepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			pkg, err := validateInstaller(name, installer)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			var info *syspkg.PackageInfo
			if !pkg.IsInstalled() {
				logx.As().Debug().Msgf("Installing %s...", pkg.Name())

				info, err = pkg.Install()
				if err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				}

				logx.As().Info().
					Str("name", info.Name).
					Str("version", info.Version).
					Str("status", string(info.Status)).
					Msgf("Package %q is installed by this step successfully", pkg.Name())
			} else {
				info, err = pkg.Info()
				if err != nil {
					return automa.FailureReport(stp,
						automa.WithError(errorx.IllegalState.Wrap(err, "failed to get package info")))
				}

				logx.As().Info().Msgf("Package %q is already installed, skipping installation", pkg.Name())
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"packageName":    info.Name,
				"packageVersion": info.Version,
				"packageStatus":  string(info.Status),
				"packageManager": info.PackageManager,
				"packageArch":    info.Arch,
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Installing package %q", name)
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report,
				"Package %q installation step completed successfully", name)
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report,
				"Package %q installation step failed", name)
		})
}

// RemoveSystemPackage removes a system package using the provided installer function.
// If the package is not installed, it will skip the removal.
func RemoveSystemPackage(name string, installer func() (software.Package, error)) automa.Builder {
	stepId := fmt.Sprintf("remove-%s", name)
	return automa.NewStepBuilder().
		WithId(stepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			pkg, err := validateInstaller(name, installer)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if pkg.IsInstalled() {
				logx.As().Debug().Msgf("Removing %s...", pkg.Name())

				info, err := pkg.Uninstall()
				if err != nil {
					return automa.FailureReport(stp, automa.WithError(err))
				}

				logx.As().Info().
					Str("name", info.Name).
					Str("version", info.Version).
					Str("status", string(info.Status)).
					Msgf("Package %q is uninstalled successfully", pkg.Name())
			} else {
				logx.As().Info().Msgf("Package %q is not installed, skipping removal", pkg.Name())
			}

			return automa.SuccessReport(stp)
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report,
				"Package %q removal step completed successfully", name)
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report,
				"Package %q removal step failed: %v", name, report.Error)
		})
}
