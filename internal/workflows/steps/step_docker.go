// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/automa/automa_steps"
	"github.com/ethforge/ethforge/internal/workflows/notify"
	hostos "github.com/ethforge/ethforge/pkg/os"
	"github.com/ethforge/ethforge/pkg/software"
	"github.com/joomcode/errorx"
)

const (
	setupDockerAptRepositoryStepId = "setup-docker-apt-repository"
	verifyDockerEngineStepId       = "verify-docker-engine"
	enableDockerServiceStepId      = "enable-docker-service"

	dockerServiceName = "docker"
)

// dockerAptRepositoryCommands builds the shell commands that register
// Docker's official apt repository. Docker publishes separate repos under
// linux/debian and linux/ubuntu, so the distribution id and its codename are
// both read from os-release rather than hardcoded.
func dockerAptRepositoryCommands() []string {
	return []string{
		"sudo install -m 0755 -d /etc/apt/keyrings",
		`sudo curl -fsSL "https://download.docker.com/linux/$(. /etc/os-release && echo "$ID")/gpg" -o /etc/apt/keyrings/docker.asc`,
		"sudo chmod a+r /etc/apt/keyrings/docker.asc",
		`echo "deb [arch=$(dpkg --print-architecture) signed-by=/etc/apt/keyrings/docker.asc] ` +
			`https://download.docker.com/linux/$(. /etc/os-release && echo "$ID") ` +
			`$(. /etc/os-release && echo "$VERSION_CODENAME") stable" | ` +
			`sudo tee /etc/apt/sources.list.d/docker.list > /dev/null`,
		"sudo apt-get update -y",
	}
}

// SetupDockerAptRepository configures Docker's official apt repository and
// refreshes the package index so the docker-ce packages become installable.
// Re-running overwrites the keyring and source list with identical content.
func SetupDockerAptRepository() automa.Builder {
	return automa_steps.BashScriptStep(setupDockerAptRepositoryStepId, dockerAptRepositoryCommands(), "")
}

// VerifyDockerEngine checks the installed engine version against the minimum
// supported release and runs a hello-world container as a smoke test.
func VerifyDockerEngine() automa.Builder {
	return automa.NewStepBuilder().
		WithId(verifyDockerEngineStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			out, err := RunCmdOutput("docker --version")
			if err != nil {
				return automa.FailureReport(stp,
					automa.WithError(errorx.IllegalState.Wrap(err, "docker binary is not available")))
			}

			ver, err := software.CheckDockerVersion(out)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if err = RunCmd("docker", "run", "--rm", "hello-world"); err != nil {
				return automa.FailureReport(stp,
					automa.WithError(errorx.IllegalState.Wrap(err, "docker hello-world smoke test failed")))
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"dockerVersion": ver.String(),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Verifying Docker engine")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Docker engine verified successfully")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Docker engine verification failed")
		})
}

// EnableDockerService enables the docker systemd unit so the engine survives
// reboots, and restarts it to pick up a freshly installed or upgraded engine.
func EnableDockerService() automa.Builder {
	return automa.NewStepBuilder().
		WithId(enableDockerServiceStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if err := hostos.EnableService(ctx, dockerServiceName); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if err := hostos.RestartService(ctx, dockerServiceName); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Enabling and restarting the docker service")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Docker service is enabled and running")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to enable the docker service")
		})
}
