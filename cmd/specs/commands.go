package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search <model>...",
		Short: "Look up specifications for one or more models",
		Example: `  specs search "Honda Civic"
  specs search "Toyota Camry" "Ford Mustang" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s searcher = newAPIClient(opts.api, opts.timeout)
			if opts.natsURL != "" {
				nc, err := connectNATS(opts.natsURL)
				if err != nil {
					return err
				}
				defer nc.Close()
				s = &natsClient{nc: nc}
			}
			return runSearch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), s, args, opts)
		},
	}
}

func runSearch(ctx context.Context, out, progress io.Writer, s searcher, models []string, opts *options) error {
	var failed error
	for _, model := range models {
		rctx, cancel := context.WithTimeout(ctx, opts.timeout)
		stop := startSpinner(progress, "Looking up "+model)
		res, err := s.Search(rctx, model)
		stop()
		cancel()
		if err != nil {
			return err
		}
		if opts.json {
			if err := writeJSON(out, res); err != nil {
				return err
			}
			continue
		}
		if !res.Success || res.Data == nil {
			printFailure(out, model, res.Error)
			failed = errors.Join(failed, fmt.Errorf("%s: %s", model, res.Error))
			continue
		}
		printSpec(out, *res.Data)
	}
	return failed
}

func newCompareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "compare <model> <model>...",
		Short:   "Compare two to four models side by side",
		Example: `  specs compare "Honda Civic" "Toyota Camry" "Tesla Model 3"`,
		Args:    cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			stop := startSpinner(cmd.ErrOrStderr(), "Comparing")
			res, err := newAPIClient(opts.api, opts.timeout).Compare(ctx, args)
			stop()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(out, res)
			}
			if !res.Success || res.Data == nil {
				return fmt.Errorf("compare: %s", res.Error)
			}
			printComparison(out, *res.Data)
			return nil
		},
	}
}

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow searches served by the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.natsURL == "" {
				return errNoNATS
			}
			nc, err := connectNATS(opts.natsURL)
			if err != nil {
				return err
			}
			defer nc.Close()
			return runWatch(cmd.Context(), cmd.OutOrStdout(), nc, opts)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
