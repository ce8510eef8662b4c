package view

import (
	"strings"

	"github.com/glabrego/newsdeck/internal/news"
	"github.com/glabrego/newsdeck/internal/render/text"
	"github.com/glabrego/newsdeck/internal/tui/state"
	tuitheme "github.com/glabrego/newsdeck/internal/tui/theme"
)

type SummaryRenderInput struct {
	Tab     news.TabID
	Summary *state.Summary
	Width   int
	Spinner string
}

// RenderSummary renders the summary view: range selector, then either the
// bullet list or the raw text.
func RenderSummary(in SummaryRenderInput, th tuitheme.Theme) string {
	s := in.Summary
	width := in.Width
	if width < 10 {
		width = 10
	}

	lines := []string{
		th.Section.Render("Summary · " + in.Tab.Label()),
		RangeBar(s.Range, th),
		"",
	}

	switch {
	case s.Loading:
		lines = append(lines, in.Spinner+" Loading summary...")
	case s.Err != "":
		lines = append(lines, th.Error.Render(s.Err))
	case len(s.Result.Bullets) > 0:
		for i, b := range s.Result.Bullets {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, "• "+th.BulletLabel.Render(b.Label))
			for _, line := range text.Wrap(b.Detail, width-gutterWidth) {
				lines = append(lines, "  "+th.Body.Render(line))
			}
		}
	case strings.TrimSpace(s.Result.Text) != "":
		for _, line := range text.Wrap(s.Result.Text, width) {
			lines = append(lines, th.Body.Render(line))
		}
	default:
		lines = append(lines, th.Notice.Render("No summary available."))
	}
	return strings.Join(lines, "\n")
}
