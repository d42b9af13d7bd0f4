package main

import (
	"errors"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type options struct {
	api     string
	natsURL string
	json    bool
	noColor bool
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	_ = godotenv.Load()

	opts := &options{}
	root := &cobra.Command{
		Use:   "specs",
		Short: "Look up and compare car specifications",
		Long: `specs queries an AutoSpecs API server for car specifications.

Lookups go over HTTP by default, or over NATS request/reply when --nats is set.
Use "specs watch" to follow searches served by the API as they happen.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.noColor {
				color.NoColor = true
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.api, "api", envOr("AUTOSPECS_API", "http://localhost:8080"), "API base URL")
	root.PersistentFlags().StringVar(&opts.natsURL, "nats", os.Getenv("NATS_URL"), "NATS URL (lookups use request/reply when set)")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print raw JSON")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 45*time.Second, "per-request timeout")

	root.AddCommand(newSearchCmd(opts), newCompareCmd(opts), newWatchCmd(opts))
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var errNoNATS = errors.New("--nats (or NATS_URL) is required")
