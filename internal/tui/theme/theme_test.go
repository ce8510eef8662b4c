package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestRenderTabAndRange_ActiveDiffers(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	active := th.RenderTab(true, "Verified X news")
	idle := th.RenderTab(false, "Verified X news")
	if !strings.Contains(active, "\x1b[") || !strings.Contains(idle, "\x1b[") {
		t.Fatalf("expected styled tabs, got %q / %q", active, idle)
	}
	if active == idle {
		t.Fatal("expected active tab to render differently")
	}

	if th.RenderRange(true, "1hr") == th.RenderRange(false, "1hr") {
		t.Fatal("expected active range to render differently")
	}
}

func TestRenderActiveLine(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	if got := th.RenderActiveLine(false, "│"); got != "│" {
		t.Fatalf("expected inactive line unchanged, got %q", got)
	}
	if got := th.RenderActiveLine(true, "│"); !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected styled active line, got %q", got)
	}
}
