package view

import (
	"strings"
	"testing"

	"github.com/glabrego/newsdeck/internal/news"
	"github.com/glabrego/newsdeck/internal/summary"
	"github.com/glabrego/newsdeck/internal/tui/state"
	tuitheme "github.com/glabrego/newsdeck/internal/tui/theme"
)

func TestRenderSummary_Bullets(t *testing.T) {
	th := tuitheme.Default()
	s := state.NewSummary(news.Range6h)
	s.Apply(s.Begin(), summary.Build("* **Markets:** Stocks rose. * **Weather:** Rain expected."))

	got := stripANSI(RenderSummary(SummaryRenderInput{Tab: news.TabSocial, Summary: s, Width: 60}, th))
	for _, want := range []string{"Summary · Verified X news", "• Markets", "  Stocks rose.", "• Weather", "  Rain expected."} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in summary, got:\n%s", want, got)
		}
	}
	if strings.Count(got, "• ") != 2 {
		t.Fatalf("expected 2 bullets, got:\n%s", got)
	}
}

func TestRenderSummary_RawTextWhenNoBullets(t *testing.T) {
	th := tuitheme.Default()
	s := state.NewSummary(news.Range1h)
	text := news.CannedSummary(news.SummaryKeyTraditional, news.Range1h)
	s.Apply(s.Begin(), summary.Build(text))

	got := stripANSI(RenderSummary(SummaryRenderInput{Tab: news.TabTraditional, Summary: s, Width: 200}, th))
	if !strings.Contains(got, text) {
		t.Fatalf("expected raw text, got:\n%s", got)
	}
	if strings.Contains(got, "• ") {
		t.Fatalf("unexpected bullets in raw summary:\n%s", got)
	}
}

func TestRenderSummary_LoadingAndError(t *testing.T) {
	th := tuitheme.Default()
	s := state.NewSummary(news.Range1h)
	tok := s.Begin()

	got := stripANSI(RenderSummary(SummaryRenderInput{Tab: news.TabSocial, Summary: s, Width: 60, Spinner: "*"}, th))
	if !strings.Contains(got, "* Loading summary...") {
		t.Fatalf("expected loading line, got:\n%s", got)
	}

	s.ApplyError(tok)
	got = stripANSI(RenderSummary(SummaryRenderInput{Tab: news.TabSocial, Summary: s, Width: 60}, th))
	if !strings.Contains(got, state.SummaryErrorMessage) {
		t.Fatalf("expected error line, got:\n%s", got)
	}
}
