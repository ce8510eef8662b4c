package state

import "github.com/glabrego/newsdeck/internal/news"

// Feed is the list state of one tab.
type Feed struct {
	Tab     news.TabID
	Items   []news.Item
	Page    int
	HasMore bool
	Loading bool
	// Err is the fixed, user-facing error for a failed first page.
	Err string
	// Loaded is set once a first page request has completed, either way.
	Loaded bool

	generation Token
	firstPage  bool
}

func NewFeed(tab news.TabID) *Feed {
	return &Feed{Tab: tab}
}

// LoadingFirstPage reports whether the pending request replaces the list.
func (f *Feed) LoadingFirstPage() bool {
	return f.Loading && f.firstPage
}

// BeginFirstPage starts a page 1 fetch. Any request still in flight for
// this feed becomes stale.
func (f *Feed) BeginFirstPage() Token {
	f.generation++
	f.Loading = true
	f.firstPage = true
	f.Err = ""
	return f.generation
}

// ApplyFirstPage replaces the list. It returns false for a stale token.
func (f *Feed) ApplyFirstPage(token Token, items []news.Item) bool {
	if token != f.generation || !f.Loading {
		return false
	}
	f.Items = items
	f.Page = 1
	f.HasMore = len(items) > 0
	f.Loading = false
	f.firstPage = false
	f.Err = ""
	f.Loaded = true
	return true
}

func (f *Feed) ApplyFirstPageError(token Token) bool {
	if token != f.generation || !f.Loading {
		return false
	}
	f.Items = nil
	f.HasMore = false
	f.Loading = false
	f.firstPage = false
	f.Err = f.Tab.FeedErrorMessage()
	f.Loaded = true
	return true
}

func (f *Feed) CanLoadMore() bool {
	return !f.Loading && f.HasMore && f.Loaded
}

// BeginNextPage starts a fetch for the page after the cursor. ok is false
// when a request is already pending or the feed is exhausted.
func (f *Feed) BeginNextPage() (token Token, page int, ok bool) {
	if !f.CanLoadMore() {
		return 0, 0, false
	}
	f.generation++
	f.Loading = true
	f.firstPage = false
	return f.generation, f.Page + 1, true
}

// ApplyNextPage appends a fetched page. An empty page ends pagination.
func (f *Feed) ApplyNextPage(token Token, page int, items []news.Item) bool {
	if token != f.generation || !f.Loading || f.firstPage {
		return false
	}
	f.Loading = false
	if len(items) == 0 {
		f.HasMore = false
		return true
	}
	f.Items = append(f.Items, items...)
	f.Page = page
	return true
}

// ApplyNextPageError keeps the items and the cursor so the next scroll
// retries the same page.
func (f *Feed) ApplyNextPageError(token Token) bool {
	if token != f.generation || !f.Loading || f.firstPage {
		return false
	}
	f.Loading = false
	return true
}

// Empty reports whether the feed finished loading with nothing to show.
func (f *Feed) Empty() bool {
	return f.Loaded && !f.Loading && f.Err == "" && len(f.Items) == 0
}
