package view

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glabrego/newsdeck/internal/news"
	"github.com/glabrego/newsdeck/internal/tui/state"
	tuitheme "github.com/glabrego/newsdeck/internal/tui/theme"
)

var updateViewGolden = flag.Bool("update-view-golden", false, "update view golden files")

func TestFeedRendering_Golden(t *testing.T) {
	th := tuitheme.Default()

	feed := state.NewFeed(news.TabSocial)
	feed.ApplyFirstPage(feed.BeginFirstPage(), []news.Item{
		{
			Key:         "1",
			DisplayName: "Ada Lovelace",
			Handle:      "ada",
			Text:        "Analytical engines are back in fashion this season.",
			CreatedAt:   time.Date(2026, 2, 11, 9, 0, 0, 0, time.UTC),
		},
		{Key: "2"},
	})
	tok, page, _ := feed.BeginNextPage()
	feed.ApplyNextPage(tok, page, nil)

	body, _ := RenderFeed(FeedRenderInput{Feed: feed, Width: 40, Focus: 0}, th)

	article := RenderCard(CardParams{
		Tab: news.TabTraditional,
		Item: news.Item{
			Key:       "a",
			Title:     "Rates hold steady",
			Summary:   "<p>The central bank kept rates unchanged.</p>",
			URL:       "https://news.example.com/rates",
			CreatedAt: time.Date(2026, 2, 10, 18, 30, 0, 0, time.UTC),
		},
		Width: 40,
	}, th)

	got := stripANSI(body + "\n\n" + strings.Join(article, "\n"))
	assertViewGolden(t, "feed_cards.golden", got)
}

func assertViewGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	if *updateViewGolden {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got+"\n"), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}

	wantBytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	want := strings.TrimRight(string(wantBytes), "\n")
	got = strings.TrimRight(got, "\n")
	if got != want {
		t.Fatalf("golden mismatch for %s\n--- got ---\n%s\n--- want ---\n%s", name, got, want)
	}
}
