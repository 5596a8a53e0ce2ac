package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wifi-android-connect/wac-go/cmd/wac/commands"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Inspect authentication trace files",
		Long: `Inspect the CBOR authentication trace written with --event-log.

Each run gets its own attempt ID, so one file can hold many attempts.`,
	}

	cmd.AddCommand(newLogViewCmd(), newLogStatsCmd(), newLogExportCmd())
	return cmd
}

func addFilterFlags(cmd *cobra.Command, opts *commands.FilterOptions) {
	f := cmd.Flags()
	f.StringVar(&opts.AttemptID, "attempt", "", "Filter by attempt ID")
	f.StringVar(&opts.Stream, "stream", "", "Filter by stream (pairing, connect)")
	f.StringVar(&opts.Category, "category", "", "Filter by category (record, action, state, error)")
	f.StringVar(&opts.Action, "action", "", "Filter by action (pair, connect)")
	f.StringVar(&opts.Address, "address", "", "Filter by device address")
	f.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	f.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
}

func newLogViewCmd() *cobra.Command {
	var opts commands.FilterOptions

	cmd := &cobra.Command{
		Use:   "view [flags] <file.wlog>",
		Short: "View a trace file in human-readable format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := commands.BuildFilter(opts)
			if err != nil {
				return err
			}
			return commands.RunView(args[0], filter, cmd.OutOrStdout())
		},
	}
	addFilterFlags(cmd, &opts)
	return cmd
}

func newLogStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file.wlog>",
		Short: "Show statistics about a trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunStats(args[0], cmd.OutOrStdout())
		},
	}
}

func newLogExportCmd() *cobra.Command {
	var (
		opts   commands.FilterOptions
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [flags] <file.wlog>",
		Short: "Export a trace file to JSON lines or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := commands.BuildFilter(opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				w = f
			}
			return commands.RunExport(args[0], format, filter, w)
		},
	}
	addFilterFlags(cmd, &opts)
	cmd.Flags().StringVar(&format, "format", "jsonl", "Output format (jsonl, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}
