package state

import "github.com/glabrego/newsdeck/internal/news"

// UI is the top-level container: active tab, one feed per tab and the
// summary view.
type UI struct {
	Active  news.TabID
	Summary *Summary

	feeds map[news.TabID]*Feed
}

func NewUI(active news.TabID, r news.Range) *UI {
	if _, ok := news.LookupTab(active); !ok {
		active = news.TabSocial
	}
	feeds := make(map[news.TabID]*Feed)
	for _, tab := range news.Tabs() {
		feeds[tab.ID] = NewFeed(tab.ID)
	}
	return &UI{Active: active, Summary: NewSummary(r), feeds: feeds}
}

func (u *UI) Feed(id news.TabID) *Feed {
	return u.feeds[id]
}

func (u *UI) ActiveFeed() *Feed {
	return u.feeds[u.Active]
}

// SwitchTab activates id and hides the summary, even when id is already
// active. It reports whether the tab
// needs a first-page fetch: traditional media refreshes on every
// activation, X news only until it has been fetched once.
func (u *UI) SwitchTab(id news.TabID) bool {
	feed, ok := u.feeds[id]
	if !ok {
		return false
	}
	u.Summary.Close()
	if id == u.Active {
		return false
	}
	u.Active = id
	return NeedsFirstPage(feed)
}

func NeedsFirstPage(feed *Feed) bool {
	if feed.Tab == news.TabTraditional {
		return true
	}
	return !feed.Loaded && !feed.Loading
}
