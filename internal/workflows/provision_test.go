// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/automa-saga/automa"
	"github.com/ethforge/ethforge/internal/config"
	"github.com/ethforge/ethforge/internal/core"
	"github.com/ethforge/ethforge/internal/workflows/steps"
	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/require"
)

func TestNewProvisionWorkflow_Builds(t *testing.T) {
	cfg := config.Default()
	paths := core.NewNodePaths(cfg.BaseDir)

	wb, err := NewProvisionWorkflow(cfg, paths).Build()
	require.NoError(t, err)
	require.NotNil(t, wb)
}

func TestNewPreflightWorkflow_Builds(t *testing.T) {
	wb, err := NewPreflightWorkflow("/opt/ethereum").Build()
	require.NoError(t, err)
	require.NotNil(t, wb)
}

// A failed step must halt the workflow before any artifact step runs: a
// broken host is left without half-written directories, secrets or compose
// files.
func TestWorkflow_FailedStepLeavesNoArtifactsBehind(t *testing.T) {
	cfg := config.Default()
	base := t.TempDir()
	paths := core.NewNodePaths(filepath.Join(base, "ethereum"))
	paths.LogsDir = filepath.Join(base, "logs")

	origRunCmd := steps.RunCmd
	steps.RunCmd = func(name string, args ...string) error {
		return errorx.IllegalState.New("docker is unavailable")
	}
	t.Cleanup(func() { steps.RunCmd = origRunCmd })

	wb, err := automa.NewWorkflowBuilder().
		WithId("provision-node-artifacts").
		Steps(
			steps.StartServices(paths.ComposeFile),
			steps.SetupDataDirectories(paths),
			steps.EnsureJwtSecret(paths.JwtSecretFile),
			steps.WriteComposeFile(cfg, paths),
		).Build()
	require.NoError(t, err)

	report := wb.Execute(context.Background())
	require.Equal(t, automa.StatusFailed, report.Status)

	// steps after the failure never executed
	for _, artifact := range []string{paths.ExecutionDir, paths.JwtSecretFile, paths.ComposeFile} {
		_, err := os.Stat(artifact)
		require.Truef(t, os.IsNotExist(err), "artifact %s must not exist after an aborted run", artifact)
	}
}
