package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagTab    string
	flagRange  string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "newsdeck",
	Short: "Terminal news feed with summaries",
	Long: `newsdeck shows a tabbed news feed (verified X posts and traditional media
articles) with incremental page loading, and a time-ranged summary view.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVar(&flagTab, "tab", "", "initial tab (x-news or traditional-media)")
	rootCmd.Flags().StringVar(&flagRange, "range", "", "initial summary range (1hr, 6hr, 12hr, 24hr)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(devserverCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "newsdeck %s (commit: %s, built: %s)\n", version, commit, date)
	},
}
