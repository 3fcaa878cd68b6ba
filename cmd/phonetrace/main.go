package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/apex/log"
	logcli "github.com/apex/log/handlers/cli"
	"github.com/example/phonetrace/internal/cli"
	"github.com/fatih/color"
)

func main() {
	log.SetHandler(logcli.New(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			color.New(color.FgYellow).Fprintln(os.Stderr, "[!] Operation cancelled by user")
			os.Exit(130)
		}
		log.WithError(err).Error("trace failed")
		color.New(color.FgRed).Fprintln(os.Stderr, "[✗] An error occurred. Check logs for details.")
		os.Exit(1)
	}
}
