// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/ethforge/ethforge/cmd/ethforge/commands/version"
	"github.com/ethforge/ethforge/internal/config"
	"github.com/ethforge/ethforge/internal/doctor"
	"github.com/ethforge/ethforge/pkg/logx"
	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"
)

// examples:
// ./ethforge check
// ./ethforge setup --config ./config.yaml
// ./ethforge logs

// rootCmd represents the base command when called without any subcommands
var (
	// Used for flags.
	flagConfig       string
	flagVersion      bool
	flagOutputFormat string

	rootCmd = &cobra.Command{
		Use:   "ethforge",
		Short: "Provision a single host to run an Ethereum execution and consensus client pair",
		Long:  "EthForge - provisions a Debian/Ubuntu host to run an Ethereum execution and consensus client pair under Docker Compose",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagVersion {
				version.PrintVersion(cmd, flagOutputFormat)
				return nil
			}

			return cmd.Help()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file path")

	// support '--version', '-v' to show version information
	rootCmd.PersistentFlags().BoolVarP(&flagVersion, "version", "v", false, "Show version")
	rootCmd.PersistentFlags().StringVarP(&flagOutputFormat, "output", "o", "yaml", "Output format (yaml|json)")

	// disable command sorting to keep the order of commands as added
	cobra.EnableCommandSorting = false

	// add subcommands
	rootCmd.AddCommand(getSetupCmd())
	rootCmd.AddCommand(getCheckCmd())
	rootCmd.AddCommand(getLogsCmd())
	rootCmd.AddCommand(version.GetCmd())
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	if ctx == nil {
		return errorx.IllegalArgument.New("context is required")
	}

	cobra.OnInitialize(func() {
		initConfig(ctx)
	})

	// execute the root command
	_, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		return errorx.IllegalState.Wrap(err, "failed to execute command")
	}

	return nil
}

func initConfig(ctx context.Context) {
	var err error
	err = config.Initialize(flagConfig)
	if err != nil {
		doctor.CheckErr(ctx, err)
	}

	logConfig := config.Get().Log
	err = logx.WithConfig(&logConfig, nil)
	if err != nil {
		doctor.CheckErr(ctx, err)
	}
}
