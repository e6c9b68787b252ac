// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"fmt"
	"os"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/ethforge/ethforge/internal/core"
	"gopkg.in/yaml.v3"
)

// PrintWorkflowReport prints the workflow execution report in YAML format and
// saves a copy at reportPath for later inspection.
var PrintWorkflowReport = func(report *automa.Report, reportPath string) {
	b, err := yaml.Marshal(report)
	if err != nil {
		fmt.Printf("Failed to marshal report: %v\n", err)
		return
	}
	fmt.Printf("Workflow Execution Report:\n%s\n", b)

	if reportPath == "" {
		return
	}

	if err = os.WriteFile(reportPath, b, core.DefaultFilePerm); err != nil {
		logx.As().Warn().Err(err).Str("report_path", reportPath).Msg("Failed to save workflow report")
	}
}
