package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/glabrego/newsdeck/internal/config"
	"github.com/glabrego/newsdeck/internal/news"
	"github.com/glabrego/newsdeck/internal/storage"
)

var (
	flagArchiveTab   string
	flagArchiveLimit int
	flagOlderThan    string
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect the local archive of fetched items and summaries",
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recently archived items",
	RunE: func(cmd *cobra.Command, args []string) error {
		var tab news.TabID
		if flagArchiveTab != "" {
			parsed, err := news.ParseTabID(flagArchiveTab)
			if err != nil {
				return fmt.Errorf("invalid --tab value: %w", err)
			}
			tab = parsed
		}

		repo, path, err := openArchive(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		items, err := repo.ListItems(cmd.Context(), tab, flagArchiveLimit)
		if err != nil {
			return fmt.Errorf("listing archive: %w", err)
		}
		if len(items) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No archived items in %s.\n", path)
			return nil
		}
		printArchivedItems(cmd.OutOrStdout(), items)
		return nil
	},
}

var archivePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old entries from the archive",
	Long: `Delete archived items and summaries fetched before the cutoff.

The cutoff defaults to 30d and can be overridden with --older-than.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		retention, err := parseAge(flagOlderThan)
		if err != nil {
			return fmt.Errorf("invalid --older-than value: %w", err)
		}

		repo, _, err := openArchive(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		deleted, err := repo.Prune(cmd.Context(), retention)
		if err != nil {
			return fmt.Errorf("pruning: %w", err)
		}
		if deleted == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to prune.")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d row(s) older than %s.\n", deleted, formatAge(retention))
		}
		return nil
	},
}

var archiveStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show archive statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, path, err := openArchive(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		stats, err := repo.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}
		printStats(cmd.OutOrStdout(), path, stats)
		return nil
	},
}

func init() {
	archiveListCmd.Flags().StringVar(&flagArchiveTab, "tab", "", "only list items from this tab")
	archiveListCmd.Flags().IntVar(&flagArchiveLimit, "limit", 20, "maximum number of items")
	archivePruneCmd.Flags().StringVar(&flagOlderThan, "older-than", "30d", "retention period (e.g., 7d, 48h)")

	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archivePruneCmd)
	archiveCmd.AddCommand(archiveStatsCmd)
}

func openArchive(cmd *cobra.Command) (*storage.Repository, string, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}
	repo, err := storage.Open(cmd.Context(), cfg.ArchivePath)
	if err != nil {
		return nil, "", fmt.Errorf("opening archive: %w", err)
	}
	return repo, cfg.ArchivePath, nil
}

func printArchivedItems(w io.Writer, items []storage.ArchivedItem) {
	for _, it := range items {
		fmt.Fprintf(w, "[%s p%d] %s  %s\n", it.Tab, it.Page, it.DateLabel, it.Heading)
		if it.URL != "" {
			fmt.Fprintf(w, "    %s\n", it.URL)
		}
	}
}

func printStats(w io.Writer, path string, stats storage.Stats) {
	fmt.Fprintf(w, "Archive: %s\n", path)
	for _, tab := range news.Tabs() {
		fmt.Fprintf(w, "%s: %d item(s)\n", tab.Label, stats.ItemsByTab[tab.ID])
	}
	fmt.Fprintf(w, "Summaries: %d\n", stats.Summaries)
	if !stats.Oldest.IsZero() {
		fmt.Fprintf(w, "Oldest: %s\n", stats.Oldest.Local().Format(time.DateTime))
		fmt.Fprintf(w, "Newest: %s\n", stats.Newest.Local().Format(time.DateTime))
	}
}

// parseAge accepts time.ParseDuration values plus a whole-day "Nd" form.
func parseAge(s string) (time.Duration, error) {
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil {
			if days <= 0 {
				return 0, fmt.Errorf("age must be positive: %q", s)
			}
			return time.Duration(days) * 24 * time.Hour, nil
		}
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("age must be positive: %q", s)
	}
	return d, nil
}

func formatAge(d time.Duration) string {
	if days := int(d.Hours() / 24); days > 0 && d%(24*time.Hour) == 0 {
		return fmt.Sprintf("%dd", days)
	}
	return d.String()
}
