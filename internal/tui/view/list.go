package view

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/glabrego/newsdeck/internal/news"
	"github.com/glabrego/newsdeck/internal/render/text"
	"github.com/glabrego/newsdeck/internal/tui/state"
	tuitheme "github.com/glabrego/newsdeck/internal/tui/theme"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

const (
	EmptyFeedMessage = "No feed data found."
	gutterWidth      = 2
)

type CardParams struct {
	Tab    news.TabID
	Item   news.Item
	Width  int
	Active bool
}

// RenderCard lays out one item: heading and date, wrapped body and, for
// articles, the link.
func RenderCard(p CardParams, th tuitheme.Theme) []string {
	gutter := "  "
	if p.Active {
		gutter = th.RenderActiveLine(true, "▌") + " "
	}
	inner := p.Width - gutterWidth
	if inner < 10 {
		inner = 10
	}

	date := p.Item.DateLabel()
	heading := p.Item.Heading(p.Tab)
	handle := ""
	if p.Tab == news.TabSocial && strings.TrimSpace(p.Item.Handle) != "" {
		handle = "@" + strings.TrimPrefix(strings.TrimSpace(p.Item.Handle), "@")
	}

	available := inner - 1 - utf8.RuneCountInString(date)
	if handle != "" {
		available -= 1 + utf8.RuneCountInString(handle)
	}
	if available < 1 {
		available = 1
	}
	heading = truncateRunes(heading, available)
	left := th.Heading.Render(heading)
	if handle != "" {
		left += " " + th.Handle.Render(handle)
	}
	gap := inner - visibleLen(left) - utf8.RuneCountInString(date)
	if gap < 1 {
		gap = 1
	}

	lines := []string{gutter + left + strings.Repeat(" ", gap) + th.Date.Render(date)}
	if body := p.Item.Body(p.Tab); body != "" {
		for _, line := range text.Wrap(body, inner) {
			lines = append(lines, gutter+th.Body.Render(line))
		}
	}
	if p.Tab != news.TabSocial && strings.TrimSpace(p.Item.URL) != "" {
		link := truncateRunes(strings.TrimSpace(p.Item.URL), inner-5)
		lines = append(lines, gutter+th.MetaLabel.Render("link")+" "+th.MetaValue.Render(link))
	}
	return lines
}

type FeedRenderInput struct {
	Feed    *state.Feed
	Width   int
	Focus   int
	Spinner string
}

// RenderFeed renders the content area of the feed view. For a list it also
// returns the line at which each card starts.
func RenderFeed(in FeedRenderInput, th tuitheme.Theme) (string, []int) {
	feed := in.Feed
	switch {
	case feed == nil:
		return "", nil
	case feed.LoadingFirstPage() || !feed.Loaded:
		return in.Spinner + " " + feed.Tab.LoadingMessage(), nil
	case feed.Err != "":
		return th.Error.Render(feed.Err), nil
	case feed.Empty():
		return th.Notice.Render(EmptyFeedMessage), nil
	}

	lines := make([]string, 0, len(feed.Items)*4)
	offsets := make([]int, 0, len(feed.Items))
	for i, item := range feed.Items {
		if i > 0 {
			lines = append(lines, "")
		}
		offsets = append(offsets, len(lines))
		lines = append(lines, RenderCard(CardParams{
			Tab:    feed.Tab,
			Item:   item,
			Width:  in.Width,
			Active: i == in.Focus,
		}, th)...)
	}

	if feed.Loading {
		lines = append(lines, "", in.Spinner+" "+th.Notice.Render("Loading more..."))
	} else if !feed.HasMore {
		lines = append(lines, "", th.Notice.Render("End of feed."))
	}
	return strings.Join(lines, "\n"), offsets
}

func truncateRunes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(stripANSIText(s))
}

func stripANSIText(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}
