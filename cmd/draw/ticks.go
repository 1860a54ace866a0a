package main

import (
	"fmt"
	"time"

	"github.com/midbel/linecharts"
	"github.com/spf13/cobra"
)

type ticksOptions struct {
	min        float64
	max        float64
	width      float64
	labelWidth float64
	temporal   bool
	dateFormat string
}

func ticksCommand() *cobra.Command {
	var opts ticksOptions
	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Print the ticks computed for a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTicks(cmd, opts)
		},
	}
	cmd.Flags().Float64Var(&opts.min, "min", 0, "Lower bound of the range")
	cmd.Flags().Float64Var(&opts.max, "max", 100, "Upper bound of the range")
	cmd.Flags().Float64VarP(&opts.width, "width", "w", 800, "Available width in pixels")
	cmd.Flags().Float64VarP(&opts.labelWidth, "label-width", "l", 60, "Width of one label in pixels")
	cmd.Flags().BoolVarP(&opts.temporal, "temporal", "t", false, "Interpret bounds as seconds since the epoch")
	cmd.Flags().StringVar(&opts.dateFormat, "date-format", linecharts.DefaultDateFormat, "strftime pattern of temporal labels")
	return cmd
}

func runTicks(cmd *cobra.Command, opts ticksOptions) error {
	var format linecharts.Formatter
	if opts.temporal {
		df, err := linecharts.NewDateFormat(opts.dateFormat, time.UTC, linecharts.Second)
		if err != nil {
			return fmt.Errorf("invalid date format: %w", err)
		}
		format = df
	}
	ts := linecharts.ComputeTicks(opts.min, opts.max, opts.width, opts.labelWidth, format)
	if ts.Empty() {
		fmt.Fprintln(cmd.ErrOrStderr(), "no ticks")
		return nil
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "interval: %g\n", ts.Interval)
	for i, v := range ts.Values {
		fmt.Fprintf(w, "%g\t%s\n", v, ts.Labels[i])
	}
	return nil
}
