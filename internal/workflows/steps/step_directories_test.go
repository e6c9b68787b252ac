// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"os"
	"testing"

	"github.com/automa-saga/automa"
	"github.com/ethforge/ethforge/internal/core"
	"github.com/stretchr/testify/require"
)

func testNodePaths(t *testing.T) core.NodePaths {
	t.Helper()

	paths := core.NewNodePaths(t.TempDir())
	// keep log output inside the sandbox too
	paths.LogsDir = paths.BaseDir + "/logs"
	return paths
}

func TestSetupDataDirectories(t *testing.T) {
	paths := testNodePaths(t)

	step, err := SetupDataDirectories(paths).Build()
	require.NoError(t, err)

	report := step.Execute(context.Background())
	require.Equal(t, automa.StatusSuccess, report.Status)
	require.NoError(t, report.Error)

	for _, dir := range append(paths.DataDirectories(), paths.LogsDir) {
		info, err := os.Stat(dir)
		require.NoErrorf(t, err, "directory %s should exist", dir)
		require.Truef(t, info.IsDir(), "%s should be a directory", dir)
	}
}

func TestSetupDataDirectories_Idempotent(t *testing.T) {
	paths := testNodePaths(t)

	// pre-existing data must survive a re-run
	require.NoError(t, os.MkdirAll(paths.ExecutionDir, 0o755))
	marker := paths.ExecutionDir + "/chaindata"
	require.NoError(t, os.WriteFile(marker, []byte("keep"), 0o644))

	step, err := SetupDataDirectories(paths).Build()
	require.NoError(t, err)

	report := step.Execute(context.Background())
	require.Equal(t, automa.StatusSuccess, report.Status)

	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	require.Equal(t, "keep", string(data))
}
