// Package news holds the static tab and time-range tables and the
// normalized feed item shared by the client, the archive and the TUI.
package news

import "fmt"

type TabID string

const (
	TabSocial      TabID = "x-news"
	TabTraditional TabID = "traditional-media"
)

// SummaryKey selects a bucket in the canned summary table.
type SummaryKey string

const (
	SummaryKeySocial      SummaryKey = "x"
	SummaryKeyTraditional SummaryKey = "traditional"
)

type Tab struct {
	ID         TabID
	Label      string
	SummaryKey SummaryKey
}

var tabs = []Tab{
	{ID: TabSocial, Label: "Verified X news", SummaryKey: SummaryKeySocial},
	{ID: TabTraditional, Label: "Traditional media", SummaryKey: SummaryKeyTraditional},
}

// Tabs returns the tab table in display order.
func Tabs() []Tab {
	return append([]Tab(nil), tabs...)
}

func LookupTab(id TabID) (Tab, bool) {
	for _, tab := range tabs {
		if tab.ID == id {
			return tab, true
		}
	}
	return Tab{}, false
}

func ParseTabID(s string) (TabID, error) {
	if _, ok := LookupTab(TabID(s)); ok {
		return TabID(s), nil
	}
	return "", fmt.Errorf("unknown tab %q (valid: %s, %s)", s, TabSocial, TabTraditional)
}

// Next returns the tab after id, wrapping around.
func (id TabID) Next() TabID {
	for i, tab := range tabs {
		if tab.ID == id {
			return tabs[(i+1)%len(tabs)].ID
		}
	}
	return tabs[0].ID
}

// Prev returns the tab before id, wrapping around.
func (id TabID) Prev() TabID {
	for i, tab := range tabs {
		if tab.ID == id {
			return tabs[(i+len(tabs)-1)%len(tabs)].ID
		}
	}
	return tabs[0].ID
}

func (id TabID) Label() string {
	if tab, ok := LookupTab(id); ok {
		return tab.Label
	}
	return string(id)
}

// FeedErrorMessage is the fixed text shown when the first page of a tab
// cannot be loaded.
func (id TabID) FeedErrorMessage() string {
	if id == TabTraditional {
		return "Failed to load traditional media news."
	}
	return "Failed to load X news."
}

// LoadingMessage is shown while the first page of a tab is in flight.
func (id TabID) LoadingMessage() string {
	if id == TabTraditional {
		return "Loading traditional media news..."
	}
	return "Loading X news..."
}
