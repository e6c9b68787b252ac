// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/ethforge/ethforge/internal/config"
	"github.com/ethforge/ethforge/internal/version"
	"github.com/joomcode/errorx"
)

// ErrPropertyResolution carries an operator-facing resolution hint on an error.
var ErrPropertyResolution = errorx.RegisterProperty("resolution")

type ErrorDiagnosis struct {
	Error      error    `yaml:"error" json:"error"`
	Message    string   `yaml:"message" json:"message"`
	Cause      string   `yaml:"cause" json:"cause"`
	ErrorType  string   `yaml:"errorType" json:"errorType"`
	Step       string   `yaml:"step" json:"step"`
	TraceId    string   `yaml:"traceId" json:"traceId"`
	Commit     string   `yaml:"commit" json:"commit"`
	Version    string   `yaml:"version" json:"version"`
	Pid        int      `yaml:"pid" json:"pid"`
	Code       int      `yaml:"code" json:"code"`
	Logfile    string   `yaml:"log" json:"log"`
	Resolution []string `yaml:"steps" json:"steps"`
}

func toErrorCode(err error) int {
	switch {
	case errorx.IsOfType(err, errorx.IllegalArgument):
		return 10400
	default:
		if errorx.HasTrait(err, errorx.NotFound()) {
			return 10404
		}
		return 10500
	}
}

func toErrorMessage(err error) (string, string) {
	e := errorx.Cast(err)
	if e == nil {
		return err.Error(), ""
	}

	return e.Message(), fmt.Sprintf("%s", e.Cause())
}

func findResolution(err error) []string {
	if hint, ok := errorx.ExtractProperty(err, ErrPropertyResolution); ok {
		return []string{hint.(string)}
	}

	switch {
	case errorx.IsOfType(err, errorx.IllegalArgument):
		if arg, ok := errorx.ExtractProperty(err, errorx.PropertyPayload()); ok {
			return []string{fmt.Sprintf("Ensure %q is provided and valid.", arg.(string))}
		}
		return []string{"Ensure all required configuration values are provided and valid."}
	case errorx.IsOfType(err, errorx.IllegalFormat):
		return []string{"Ensure provided data is in correct format."}
	case errorx.IsOfType(err, config.NotFoundError):
		if arg, ok := errorx.ExtractProperty(err, errorx.PropertyPayload()); ok {
			return []string{fmt.Sprintf("Ensure configuration file %q exists, is correctly formatted and accessible", arg.(string))}
		}
		return []string{"Ensure configuration file exists and is accessible."}
	default:
		return []string{"Check error message for details; the host is left as-is, re-run setup after fixing the cause."}
	}
}

// Diagnose builds a human friendly error response for a failed run.
func Diagnose(ctx context.Context, ex error, step string) *ErrorDiagnosis {
	var traceId string
	if ctx.Value("traceId") != nil {
		traceId = ctx.Value("traceId").(string)
	}

	msg, cause := toErrorMessage(ex)
	return &ErrorDiagnosis{
		Error:      ex,
		ErrorType:  errorx.GetTypeName(ex),
		Message:    msg,
		Cause:      cause,
		Step:       step,
		TraceId:    traceId,
		Code:       toErrorCode(ex),
		Commit:     version.Commit(),
		Version:    version.Number(),
		Pid:        os.Getpid(),
		Logfile:    config.Get().Log.Filename,
		Resolution: findResolution(ex),
	}
}

// CheckErr prints diagnosis and exits with error code 1.
// Optional instructions can be provided to give additional context to the user.
func CheckErr(ctx context.Context, err error, instructions ...string) {
	checkErr(ctx, err, "", instructions...)
}

// CheckReportErr prints diagnosis for a failed workflow report, naming the
// step that failed, and exits with error code 1.
func CheckReportErr(ctx context.Context, report *automa.Report) {
	// find the root cause by walking the step reports
	failed := report
	for _, stepReport := range report.StepReports {
		if stepReport.HasError() {
			failed = stepReport
			break
		}
	}

	err := failed.Error
	if err == nil {
		err = report.Error
	}

	checkErr(ctx, err, failed.Id)
}

func checkErr(ctx context.Context, err error, step string, instructions ...string) {
	logx.As().Error().Err(err).Str("step_id", step).Msg("error occurred")
	resp := Diagnose(ctx, err, step)

	fmt.Printf("\n%s%s*********************************** Error Diagnostics ***********************************%s\n", Bold, Red, Reset)
	if resp.Step != "" {
		fmt.Printf("%s*%s\t%sFailed Step:%s %s\n", Red, Reset, Bold+White, Reset, resp.Step)
	}
	fmt.Printf("%s*%s\t%sError:%s %s\n", Red, Reset, Bold+White, Reset, resp.Message)
	if resp.Cause != "" && resp.Cause != "<nil>" {
		fmt.Printf("%s*%s\t%sCause:%s %s\n", Red, Reset, Bold+White, Reset, resp.Cause)
	}
	fmt.Printf("%s*%s\t%sError Type:%s %s\n", Red, Reset, Bold+White, Reset, resp.ErrorType)
	fmt.Printf("%s*%s\t%sError Code:%s %d\n", Red, Reset, Bold+White, Reset, resp.Code)
	fmt.Printf("%s*%s\t%sCommit:%s %s\n", Red, Reset, Gray, Reset, resp.Commit)
	fmt.Printf("%s*%s\t%sPid:%s %d\n", Red, Reset, Gray, Reset, resp.Pid)
	fmt.Printf("%s*%s\t%sTraceId:%s %s\n", Red, Reset, Gray, Reset, resp.TraceId)
	fmt.Printf("%s*%s\t%sVersion:%s %s\n", Red, Reset, Gray, Reset, resp.Version)
	if resp.Logfile != "" {
		fmt.Printf("%s*%s\t%sLogfile:%s %s\n", Red, Reset, Cyan, Reset, resp.Logfile)
	}
	fmt.Printf("%s%s******************************************************************************************%s\n", Bold, Red, Reset)
	fmt.Printf("\n%s%s************************************** Resolution ***************************************%s\n", Bold, Yellow, Reset)

	// Print custom instructions first if provided
	if len(instructions) > 0 && instructions[0] != "" {
		for _, line := range strings.Split(instructions[0], "\n") {
			if line == "" {
				fmt.Printf("%s*%s\n", Yellow, Reset)
			} else {
				fmt.Printf("%s*%s\t%s\n", Yellow, Reset, Bold+White+line+Reset)
			}
		}
		if len(resp.Resolution) > 0 {
			fmt.Printf("%s*%s\n", Yellow, Reset)
		}
	}

	for _, r := range resp.Resolution {
		fmt.Printf("%s*%s\t%s\n", Yellow, Reset, White+r+Reset)
	}

	fmt.Printf("%s%s******************************************************************************************%s\n", Bold, Yellow, Reset)

	os.Exit(1)
}
