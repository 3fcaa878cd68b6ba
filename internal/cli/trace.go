package cli

import (
	"context"
	"errors"
	"time"

	"github.com/apex/log"
	"github.com/example/phonetrace/internal/config"
	"github.com/example/phonetrace/internal/events"
	"github.com/example/phonetrace/internal/export"
	"github.com/example/phonetrace/internal/tracer"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func runTrace(cmd *cobra.Command, args []string, loader *config.Loader, opts *rootOptions, flags *runtimeFlagSet) error {
	if err := export.ValidateFormat(flags.format); err != nil {
		return err
	}

	printBanner(cmd.OutOrStdout())

	if len(args) == 0 && flags.batch == "" {
		_ = cmd.Help()
		return errors.New("a phone number or --batch file is required")
	}

	cfg := loader.Load(overridesFor(cmd, opts))
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
		log.Debugf("settings: timeout=%ds rate_limit=%d cache_enabled=%t", cfg.Timeout, cfg.RateLimit, cfg.CacheEnabled)
	}

	modules := ParseModulesList(flags.modules)

	tr := tracer.New(cfg)
	if cfg.Verbose {
		tr.Emitter = events.NewEmitter(cmd.ErrOrStderr())
	}

	timeout := time.Duration(cfg.Timeout) * time.Second

	if flags.batch != "" {
		return runBatch(cmd, tr, flags, modules, timeout)
	}

	result := traceWithTimeout(cmd.Context(), tr, args[0], modules, timeout)
	if err := export.Results(cmd.OutOrStdout(), result, flags.format, flags.output); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout())
	return nil
}

// runBatch traces every number from the batch file sequentially, keeping
// input order in the exported records. A number that fails to parse still
// produces a (partial) record; only an interrupt stops the batch.
func runBatch(cmd *cobra.Command, tr *tracer.Tracer, flags *runtimeFlagSet, modules []string, timeout time.Duration) error {
	numbers, err := readBatchFile(flags.batch)
	if err != nil {
		return err
	}
	log.Infof("batch processing from %s", flags.batch)

	processing := color.New(color.FgGreen)
	results := make([]tracer.Result, 0, len(numbers))
	for _, number := range numbers {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		processing.Fprintf(cmd.OutOrStdout(), "\n[*] Processing: %s\n", number)
		results = append(results, traceWithTimeout(cmd.Context(), tr, number, modules, timeout))
	}

	if err := tr.Emitter.Emit(events.Event{Type: "batch-finished", Fields: map[string]interface{}{"numbers": len(results)}}); err != nil {
		log.WithError(err).Warn("failed to emit progress event")
	}

	if err := export.Results(cmd.OutOrStdout(), results, flags.format, flags.output); err != nil {
		return err
	}

	printSuccess(cmd.OutOrStdout())
	return nil
}

func traceWithTimeout(ctx context.Context, tr *tracer.Tracer, number string, modules []string, timeout time.Duration) tracer.Result {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return tr.Trace(ctx, number, modules)
}
