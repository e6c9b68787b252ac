// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"testing"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/require"
)

func stubRunCmd(t *testing.T, fn func(name string, args ...string) error) {
	t.Helper()

	orig := RunCmd
	RunCmd = fn
	t.Cleanup(func() { RunCmd = orig })
}

func stubRunCmdOutput(t *testing.T, fn func(script string) (string, error)) {
	t.Helper()

	orig := RunCmdOutput
	RunCmdOutput = fn
	t.Cleanup(func() { RunCmdOutput = orig })
}

func TestStartServices(t *testing.T) {
	var gotName string
	var gotArgs []string
	stubRunCmd(t, func(name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	})

	step, err := StartServices("/opt/ethereum/docker-compose.yml").Build()
	require.NoError(t, err)

	report := step.Execute(context.Background())
	require.Equal(t, automa.StatusSuccess, report.Status)

	require.Equal(t, "docker", gotName)
	require.Equal(t, []string{"compose", "-f", "/opt/ethereum/docker-compose.yml", "up", "-d"}, gotArgs)
}

func TestStartServices_FailureHaltsWorkflow(t *testing.T) {
	stubRunCmd(t, func(name string, args ...string) error {
		return errorx.IllegalState.New("compose failed")
	})

	step, err := StartServices("/opt/ethereum/docker-compose.yml").Build()
	require.NoError(t, err)

	report := step.Execute(context.Background())
	require.Error(t, report.Error)
}

func TestTailServiceLogs(t *testing.T) {
	stubRunCmdOutput(t, func(script string) (string, error) {
		require.Contains(t, script, "docker compose -f /opt/ethereum/docker-compose.yml logs")
		return "execution  | started", nil
	})

	step, err := TailServiceLogs("/opt/ethereum/docker-compose.yml").Build()
	require.NoError(t, err)

	report := step.Execute(context.Background())
	require.Equal(t, automa.StatusSuccess, report.Status)
}

func TestTailServiceLogs_LogFailureIsNotFatal(t *testing.T) {
	stubRunCmdOutput(t, func(script string) (string, error) {
		return "", errorx.IllegalState.New("no such service")
	})

	step, err := TailServiceLogs("/opt/ethereum/docker-compose.yml").Build()
	require.NoError(t, err)

	report := step.Execute(context.Background())
	require.Equal(t, automa.StatusSuccess, report.Status)
	require.NoError(t, report.Error)
}
