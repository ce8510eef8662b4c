package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/glabrego/newsdeck/internal/app"
	"github.com/glabrego/newsdeck/internal/config"
	"github.com/glabrego/newsdeck/internal/news"
	"github.com/glabrego/newsdeck/internal/newsapi"
	"github.com/glabrego/newsdeck/internal/storage"
	"github.com/glabrego/newsdeck/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	tab, rng, err := startupSelection(cfg, flagTab, flagRange)
	if err != nil {
		return err
	}

	logFile, err := setupLogging(cfg.LogPath, flagDebug)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer logFile.Close()

	var archive app.Archive
	if cfg.ArchiveEnabled {
		repo, err := storage.Open(cmd.Context(), cfg.ArchivePath)
		if err != nil {
			return fmt.Errorf("opening archive: %w", err)
		}
		defer repo.Close()
		archive = repo
	}

	client := newsapi.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.Timeout})
	service := app.NewService(client, archive)

	log.WithFields(log.Fields{
		"api":     cfg.APIBaseURL,
		"tab":     tab,
		"range":   rng,
		"archive": cfg.ArchiveEnabled,
	}).Info("Starting newsdeck")

	model := tui.NewModel(service, tui.Options{Tab: tab, Range: rng})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// startupSelection resolves the initial tab and range. Flags win over config.
func startupSelection(cfg config.Config, tabFlag, rangeFlag string) (news.TabID, news.Range, error) {
	tab, rng := cfg.DefaultTab, cfg.DefaultRange
	if tabFlag != "" {
		parsed, err := news.ParseTabID(tabFlag)
		if err != nil {
			return "", "", fmt.Errorf("invalid --tab value: %w", err)
		}
		tab = parsed
	}
	if rangeFlag != "" {
		parsed, err := news.ParseRange(rangeFlag)
		if err != nil {
			return "", "", fmt.Errorf("invalid --range value: %w", err)
		}
		rng = parsed
	}
	return tab, rng, nil
}

// setupLogging sends logrus output to a file; the terminal belongs to the TUI.
func setupLogging(path string, debug bool) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	return f, nil
}
