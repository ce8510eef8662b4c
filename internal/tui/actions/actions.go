package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/newsdeck/internal/news"
	"github.com/glabrego/newsdeck/internal/tui/state"
)

type Service interface {
	LoadPage(ctx context.Context, tab news.TabID, page int) ([]news.Item, error)
	Summary(ctx context.Context, tab news.TabID, r news.Range) (news.Summary, error)
}

type FirstPageSuccessMsg struct {
	Tab      news.TabID
	Token    state.Token
	Items    []news.Item
	Duration time.Duration
}

type FirstPageErrorMsg struct {
	Tab      news.TabID
	Token    state.Token
	Err      error
	Duration time.Duration
}

type NextPageSuccessMsg struct {
	Tab   news.TabID
	Token state.Token
	Page  int
	Items []news.Item
}

type NextPageErrorMsg struct {
	Tab   news.TabID
	Token state.Token
	Page  int
	Err   error
}

type SummarySuccessMsg struct {
	Tab     news.TabID
	Range   news.Range
	Token   state.Token
	Summary news.Summary
}

type SummaryErrorMsg struct {
	Tab   news.TabID
	Range news.Range
	Token state.Token
	Err   error
}

type OpenURLSuccessMsg struct {
	Status string
	Opened bool
}

type OpenURLErrorMsg struct {
	Err error
}

func LoadFirstPageCmd(service Service, tab news.TabID, token state.Token) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		start := time.Now()

		items, err := service.LoadPage(ctx, tab, 1)
		if err != nil {
			return FirstPageErrorMsg{Tab: tab, Token: token, Err: err, Duration: time.Since(start)}
		}
		return FirstPageSuccessMsg{Tab: tab, Token: token, Items: items, Duration: time.Since(start)}
	}
}

func LoadNextPageCmd(service Service, tab news.TabID, page int, token state.Token) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()

		items, err := service.LoadPage(ctx, tab, page)
		if err != nil {
			return NextPageErrorMsg{Tab: tab, Token: token, Page: page, Err: err}
		}
		return NextPageSuccessMsg{Tab: tab, Token: token, Page: page, Items: items}
	}
}

func LoadSummaryCmd(service Service, tab news.TabID, r news.Range, token state.Token) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		result, err := service.Summary(ctx, tab, r)
		if err != nil {
			return SummaryErrorMsg{Tab: tab, Range: r, Token: token, Err: err}
		}
		return SummarySuccessMsg{Tab: tab, Range: r, Token: token, Summary: result}
	}
}

func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Opened URL in browser", Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Could not open browser, URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not open URL or copy to clipboard")}
	}
}

func CopyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not copy URL to clipboard")}
	}
}
