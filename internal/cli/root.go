package cli

import (
	"context"

	"github.com/example/phonetrace/internal/config"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

type rootOptions struct {
	ConfigPath string
	Verbose    bool
}

// Execute builds the root command tree and runs the CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	loader := &config.Loader{}
	rootOpts := &rootOptions{}
	flags := &runtimeFlagSet{}

	rootCmd := &cobra.Command{
		Use:           "phonetrace [phone_number]",
		Short:         "OSINT tool for phone number intelligence",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd, args, loader, rootOpts, flags)
		},
	}
	rootCmd.SetVersionTemplate("phonetrace version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&rootOpts.ConfigPath, "config", "c", "", "Path to phonetrace.config.yml (optional)")
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		loader.ConfigPath = rootOpts.ConfigPath
	}

	bindRuntimeFlags(rootCmd, flags)
	rootCmd.AddCommand(newSocialCmd(loader, rootOpts))

	return rootCmd
}
