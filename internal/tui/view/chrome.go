package view

import (
	"fmt"
	"strings"

	"github.com/glabrego/newsdeck/internal/news"
	tuitheme "github.com/glabrego/newsdeck/internal/tui/theme"
)

func Toolbar(inSummary bool) string {
	if inSummary {
		return "←/→ or 1-4 range | j/k scroll | esc back | ? help | q quit"
	}
	return "tab switch | s summary | j/k scroll | o open | y copy | r refresh | ? help | q quit"
}

// TabBar renders one pill per tab, the active one highlighted.
func TabBar(active news.TabID, th tuitheme.Theme) string {
	tabs := news.Tabs()
	pills := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Label)
		pills = append(pills, th.RenderTab(tab.ID == active, label))
	}
	return strings.Join(pills, " ")
}

// RangeBar renders the summary time range selector.
func RangeBar(active news.Range, th tuitheme.Theme) string {
	ranges := news.Ranges()
	pills := make([]string, 0, len(ranges))
	for _, r := range ranges {
		pills = append(pills, th.RenderRange(r == active, string(r)))
	}
	return th.MetaLabel.Render("range") + " " + strings.Join(pills, " ")
}

func Footer(tab news.TabID, page, shown int, hasMore bool, th tuitheme.Theme) string {
	more := "no"
	if hasMore {
		more = "yes"
	}
	parts := []string{
		th.MetaLabel.Render("tab") + " " + th.MetaValue.Render(tab.Label()),
		th.MetaLabel.Render("page") + " " + th.MetaValue.Render(fmt.Sprintf("%d", page)),
		th.MetaValue.Render(fmt.Sprintf("%d shown", shown)),
		th.MetaLabel.Render("more") + " " + th.MetaValue.Render(more),
	}
	return strings.Join(parts, " • ")
}

func Message(loading bool, hasWarning bool, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	if loading {
		state = "loading"
	}
	if hasWarning {
		state = "warning"
	}
	main := "Ready"
	if status != "" {
		main = status
	} else if hasWarning {
		main = warning
	}
	stateLabel := th.StateIdle.Render("state")
	switch state {
	case "warning":
		stateLabel = th.StateWarn.Render("state")
	case "loading":
		stateLabel = th.StateLoad.Render("state")
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}

func HelpLines() []string {
	return []string{
		"Tabs:",
		"  tab, 1/2 or left/right switch between X news and traditional media",
		"Scrolling:",
		"  j/k or arrows scroll, pgup/pgdown jump, g/G top/bottom, mouse wheel",
		"  the next page loads when you reach the end of the list",
		"Summary:",
		"  s opens the summary, left/right or 1-4 pick the range, esc/b returns",
		"Actions:",
		"  o open the focused link, y copy it, r reload the tab",
		"  ? toggle help, q quit",
	}
}
