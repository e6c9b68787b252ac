// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintWorkflowReport_SavesCopy(t *testing.T) {
	paths := testNodePaths(t)

	step, err := SetupDataDirectories(paths).Build()
	require.NoError(t, err)
	report := step.Execute(context.Background())

	reportPath := filepath.Join(t.TempDir(), "report.yaml")
	PrintWorkflowReport(report, reportPath)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	require.Contains(t, string(data), setupDataDirectoriesStepId)
}
