package cli

import (
	"github.com/apex/log"
	"github.com/example/phonetrace/internal/config"
	"github.com/example/phonetrace/internal/export"
	"github.com/example/phonetrace/internal/socialmedia"
	"github.com/spf13/cobra"
)

func newSocialCmd(loader *config.Loader, opts *rootOptions) *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "social <phone_number>",
		Short: "Check phone number associations across social media platforms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := export.ValidateFormat(format); err != nil {
				return err
			}

			cfg := loader.Load(overridesFor(cmd, opts))
			if cfg.Verbose {
				log.SetLevel(log.DebugLevel)
			}

			log.Debugf("checking %d platforms", len(socialmedia.Platforms))
			report := socialmedia.NewDetector().CheckAllPlatforms(args[0])
			return export.Results(cmd.OutOrStdout(), report, format, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (stdout when empty)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, csv, or html")

	return cmd
}
