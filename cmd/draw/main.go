package main

import (
	"log/slog"
	"os"

	"github.com/midbel/linecharts"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:          "draw",
		Short:        "Draw line charts and inspect their axes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			linecharts.SetLogger(slog.New(h))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages on stderr")

	rootCmd.AddCommand(ticksCommand())
	rootCmd.AddCommand(renderCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
