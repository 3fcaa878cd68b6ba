package cli

import (
	"github.com/example/phonetrace/internal/config"
	"github.com/spf13/cobra"
)

// runtimeFlagSet tracks trace flags before they reach the tracer.
type runtimeFlagSet struct {
	modules string
	output  string
	format  string
	batch   string
}

func bindRuntimeFlags(cmd *cobra.Command, flags *runtimeFlagSet) {
	cmd.Flags().StringVarP(&flags.modules, "modules", "m", "", "Comma-separated modules to run (carrier, location, spam, validator)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (stdout when empty)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format: json, csv, or html")
	cmd.Flags().StringVarP(&flags.batch, "batch", "b", "", "Batch process from file (one phone number per line)")
}

// overridesFor converts flags that shadow config settings into overrides.
// Only flags the user actually changed may override file or env values.
func overridesFor(cmd *cobra.Command, opts *rootOptions) config.Overrides {
	ov := config.Overrides{}
	if cmd.Flags().Changed("verbose") {
		ov.Verbose = &opts.Verbose
	}
	return ov
}
