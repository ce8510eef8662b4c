package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glabrego/newsdeck/internal/news"
)

func items(keys ...string) []news.Item {
	out := make([]news.Item, 0, len(keys))
	for _, k := range keys {
		out = append(out, news.Item{Key: k})
	}
	return out
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, ClampCursor(-1, 3))
	assert.Equal(t, 2, ClampCursor(3, 3))
	assert.Equal(t, 1, ClampCursor(1, 3))
	assert.Equal(t, 0, ClampCursor(5, 0))
}

func TestScrollFraction(t *testing.T) {
	assert.Equal(t, 1.0, ScrollFraction(0, 10, 0))
	assert.Equal(t, 1.0, ScrollFraction(0, 20, 10))
	assert.InDelta(t, 0.5, ScrollFraction(0, 10, 20), 0.0001)
	assert.InDelta(t, 0.9, ScrollFraction(8, 10, 20), 0.0001)

	assert.False(t, NearBottom(7, 10, 20))
	assert.True(t, NearBottom(8, 10, 20))
	assert.True(t, NearBottom(0, 5, 3))
}

func TestFeed_FirstPage(t *testing.T) {
	f := NewFeed(news.TabSocial)
	tok := f.BeginFirstPage()
	assert.True(t, f.LoadingFirstPage())

	require.True(t, f.ApplyFirstPage(tok, items("a", "b", "c")))
	assert.Len(t, f.Items, 3)
	assert.Equal(t, 1, f.Page)
	assert.True(t, f.HasMore)
	assert.False(t, f.Loading)
	assert.True(t, f.Loaded)
	assert.False(t, f.Empty())
}

func TestFeed_FirstPageEmpty(t *testing.T) {
	f := NewFeed(news.TabTraditional)
	tok := f.BeginFirstPage()
	require.True(t, f.ApplyFirstPage(tok, nil))

	assert.False(t, f.HasMore)
	assert.True(t, f.Empty())
	assert.False(t, f.CanLoadMore())
}

func TestFeed_FirstPageError(t *testing.T) {
	f := NewFeed(news.TabSocial)
	tok := f.BeginFirstPage()
	require.True(t, f.ApplyFirstPage(tok, items("a")))

	tok = f.BeginFirstPage()
	require.True(t, f.ApplyFirstPageError(tok))
	assert.Empty(t, f.Items)
	assert.False(t, f.HasMore)
	assert.Equal(t, "Failed to load X news.", f.Err)
	assert.False(t, f.Empty())

	tf := NewFeed(news.TabTraditional)
	require.True(t, tf.ApplyFirstPageError(tf.BeginFirstPage()))
	assert.Equal(t, "Failed to load traditional media news.", tf.Err)
}

func TestFeed_NextPageIssuedOnceWhilePending(t *testing.T) {
	f := NewFeed(news.TabSocial)
	require.True(t, f.ApplyFirstPage(f.BeginFirstPage(), items("a", "b")))

	tok, page, ok := f.BeginNextPage()
	require.True(t, ok)
	assert.Equal(t, 2, page)

	for i := 0; i < 3; i++ {
		_, _, again := f.BeginNextPage()
		assert.False(t, again, "no second fetch while one is pending")
	}

	require.True(t, f.ApplyNextPage(tok, page, items("c", "d")))
	assert.Len(t, f.Items, 4)
	assert.Equal(t, 2, f.Page)
	assert.True(t, f.HasMore)
}

func TestFeed_EmptyNextPageStopsPagination(t *testing.T) {
	f := NewFeed(news.TabTraditional)
	require.True(t, f.ApplyFirstPage(f.BeginFirstPage(), items("a")))

	tok, page, ok := f.BeginNextPage()
	require.True(t, ok)
	require.True(t, f.ApplyNextPage(tok, page, nil))

	assert.False(t, f.HasMore)
	assert.Equal(t, 1, f.Page)
	assert.Len(t, f.Items, 1)
	_, _, ok = f.BeginNextPage()
	assert.False(t, ok)
}

func TestFeed_NextPageErrorKeepsItemsAndRetries(t *testing.T) {
	f := NewFeed(news.TabSocial)
	require.True(t, f.ApplyFirstPage(f.BeginFirstPage(), items("a", "b")))

	tok, page, ok := f.BeginNextPage()
	require.True(t, ok)
	require.True(t, f.ApplyNextPageError(tok))
	assert.Len(t, f.Items, 2)
	assert.True(t, f.HasMore)
	assert.Equal(t, "", f.Err)

	_, retryPage, ok := f.BeginNextPage()
	require.True(t, ok)
	assert.Equal(t, page, retryPage)
}

func TestFeed_StaleResponsesAreDropped(t *testing.T) {
	f := NewFeed(news.TabTraditional)
	require.True(t, f.ApplyFirstPage(f.BeginFirstPage(), items("a")))

	nextTok, page, ok := f.BeginNextPage()
	require.True(t, ok)

	// Re-activation restarts the list before the page 2 response arrives.
	firstTok := f.BeginFirstPage()
	assert.False(t, f.ApplyNextPage(nextTok, page, items("late")))

	oldFirst := firstTok
	newFirst := f.BeginFirstPage()
	assert.False(t, f.ApplyFirstPage(oldFirst, items("stale")))
	require.True(t, f.ApplyFirstPage(newFirst, items("fresh")))
	assert.Equal(t, "fresh", f.Items[0].Key)
	assert.Len(t, f.Items, 1)
}

func TestSummary_Transitions(t *testing.T) {
	s := NewSummary("bogus")
	assert.Equal(t, news.Range1h, s.Range)

	s.Open()
	assert.True(t, s.Visible)
	assert.True(t, s.SetRange(news.Range12h))
	assert.False(t, s.SetRange(news.Range12h))

	tok := s.Begin()
	require.True(t, s.Apply(tok, news.Summary{Text: "done"}))
	assert.Equal(t, "done", s.Result.Text)
	assert.False(t, s.Loading)

	tok = s.Begin()
	require.True(t, s.ApplyError(tok))
	assert.Equal(t, SummaryErrorMessage, s.Err)
	assert.Equal(t, "", s.Result.Text)
}

func TestSummary_StaleAfterRangeChangeOrClose(t *testing.T) {
	s := NewSummary(news.Range1h)
	s.Open()
	first := s.Begin()
	s.SetRange(news.Range6h)
	second := s.Begin()

	assert.False(t, s.Apply(first, news.Summary{Text: "1hr"}))
	require.True(t, s.Apply(second, news.Summary{Text: "6hr"}))
	assert.Equal(t, "6hr", s.Result.Text)

	third := s.Begin()
	s.Close()
	assert.False(t, s.Apply(third, news.Summary{Text: "late"}))
	assert.False(t, s.Loading)
}

func TestUI_SwitchTab(t *testing.T) {
	u := NewUI(news.TabSocial, news.Range1h)
	social := u.ActiveFeed()
	require.True(t, social.ApplyFirstPage(social.BeginFirstPage(), items("x1")))

	u.Summary.Open()
	assert.True(t, u.SwitchTab(news.TabTraditional))
	assert.False(t, u.Summary.Visible)
	assert.Equal(t, news.TabTraditional, u.Active)
	assert.NotSame(t, social, u.ActiveFeed())

	trad := u.ActiveFeed()
	require.True(t, trad.ApplyFirstPage(trad.BeginFirstPage(), items("t1")))

	assert.False(t, u.SwitchTab(news.TabSocial), "x news is fetched only once")
	assert.Equal(t, "x1", u.ActiveFeed().Items[0].Key)
	assert.True(t, u.SwitchTab(news.TabTraditional), "traditional media refetches on every activation")
	assert.False(t, u.SwitchTab(news.TabTraditional), "re-selecting the active tab is a no-op")
}

func TestUI_UnknownActiveFallsBackToSocial(t *testing.T) {
	u := NewUI("reddit", news.Range24h)
	assert.Equal(t, news.TabSocial, u.Active)
	assert.Equal(t, news.Range24h, u.Summary.Range)
}
