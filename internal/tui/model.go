package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/glabrego/newsdeck/internal/news"
	"github.com/glabrego/newsdeck/internal/tui/actions"
	"github.com/glabrego/newsdeck/internal/tui/platform"
	"github.com/glabrego/newsdeck/internal/tui/state"
	tuitheme "github.com/glabrego/newsdeck/internal/tui/theme"
	"github.com/glabrego/newsdeck/internal/tui/view"
)

const (
	// title, tab bar, blank
	headerLines = 3
	// blank, message panel, footer, toolbar
	footerLines   = 4
	wheelStep     = 3
	defaultWidth  = 80
	defaultHeight = 24
)

type clearStatusMsg struct {
	id int
}

// Options seeds the initial tab and summary range and overrides the
// platform hooks used by o and y.
type Options struct {
	Tab     news.TabID
	Range   news.Range
	OpenURL func(string) error
	CopyURL func(string) error
}

type Model struct {
	service   actions.Service
	ui        *state.UI
	viewport  viewport.Model
	spinner   spinner.Model
	theme     tuitheme.Theme
	width     int
	height    int
	focus     int
	offsets   []int
	showHelp  bool
	status    string
	statusID  int
	statusTTL time.Duration
	err       error
	initToken state.Token
	openURLFn func(string) error
	copyURLFn func(string) error
}

func NewModel(service actions.Service, opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	vp := viewport.New(defaultWidth, defaultHeight-headerLines-footerLines)
	vp.MouseWheelEnabled = false

	m := Model{
		service:   service,
		ui:        state.NewUI(opts.Tab, opts.Range),
		viewport:  vp,
		spinner:   sp,
		theme:     tuitheme.Default(),
		statusTTL: 3 * time.Second,
		openURLFn: platform.OpenURLInBrowser,
		copyURLFn: platform.CopyURLToClipboard,
	}
	if opts.OpenURL != nil {
		m.openURLFn = opts.OpenURL
	}
	if opts.CopyURL != nil {
		m.copyURLFn = opts.CopyURL
	}
	m.initToken = m.ui.ActiveFeed().BeginFirstPage()
	m.syncContent()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.service == nil {
		return nil
	}
	return tea.Batch(
		actions.LoadFirstPageCmd(m.service, m.ui.Active, m.initToken),
		m.spinner.Tick,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.syncContent()
		return m, cmd
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.scroll(-wheelStep)
		case tea.MouseButtonWheelDown:
			return m.scroll(wheelStep)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)

	case actions.FirstPageSuccessMsg:
		feed := m.ui.Feed(msg.Tab)
		if feed == nil || !feed.ApplyFirstPage(msg.Token, msg.Items) {
			log.WithFields(log.Fields{"tab": msg.Tab, "page": 1}).Debug("Dropped stale page response")
			return m, nil
		}
		log.WithFields(log.Fields{
			"tab":      msg.Tab,
			"items":    len(msg.Items),
			"duration": msg.Duration,
		}).Debug("First page loaded")
		if msg.Tab == m.ui.Active {
			m.err = nil
			m.focus = 0
			m.syncContent()
			m.viewport.GotoTop()
		}
		return m, nil
	case actions.FirstPageErrorMsg:
		feed := m.ui.Feed(msg.Tab)
		if feed == nil || !feed.ApplyFirstPageError(msg.Token) {
			return m, nil
		}
		log.WithFields(log.Fields{"tab": msg.Tab, "page": 1, "error": msg.Err}).Error("Failed to load feed")
		if msg.Tab == m.ui.Active {
			m.err = msg.Err
			m.focus = 0
			m.syncContent()
			m.viewport.GotoTop()
		}
		return m, nil
	case actions.NextPageSuccessMsg:
		feed := m.ui.Feed(msg.Tab)
		if feed == nil || !feed.ApplyNextPage(msg.Token, msg.Page, msg.Items) {
			log.WithFields(log.Fields{"tab": msg.Tab, "page": msg.Page}).Debug("Dropped stale page response")
			return m, nil
		}
		log.WithFields(log.Fields{"tab": msg.Tab, "page": msg.Page, "items": len(msg.Items)}).Debug("Next page loaded")
		if msg.Tab != m.ui.Active {
			return m, nil
		}
		m.err = nil
		m.syncContent()
		if len(msg.Items) == 0 {
			return m, m.setStatus("No more items")
		}
		return m, m.setStatus(fmt.Sprintf("Loaded page %d", msg.Page))
	case actions.NextPageErrorMsg:
		feed := m.ui.Feed(msg.Tab)
		if feed == nil || !feed.ApplyNextPageError(msg.Token) {
			return m, nil
		}
		log.WithFields(log.Fields{"tab": msg.Tab, "page": msg.Page, "error": msg.Err}).Warn("Failed to load next page")
		if msg.Tab == m.ui.Active {
			m.err = fmt.Errorf("load page %d: %w", msg.Page, msg.Err)
			m.syncContent()
		}
		return m, nil
	case actions.SummarySuccessMsg:
		if msg.Tab != m.ui.Active || !m.ui.Summary.Apply(msg.Token, msg.Summary) {
			log.WithFields(log.Fields{"tab": msg.Tab, "range": msg.Range}).Debug("Dropped stale summary response")
			return m, nil
		}
		m.err = nil
		m.syncContent()
		m.viewport.GotoTop()
		return m, nil
	case actions.SummaryErrorMsg:
		if msg.Tab != m.ui.Active || !m.ui.Summary.ApplyError(msg.Token) {
			return m, nil
		}
		log.WithFields(log.Fields{"tab": msg.Tab, "range": msg.Range, "error": msg.Err}).Error("Failed to load summary")
		m.err = msg.Err
		m.syncContent()
		return m, nil
	case actions.OpenURLSuccessMsg:
		m.err = nil
		return m, m.setStatus(msg.Status)
	case actions.OpenURLErrorMsg:
		m.err = msg.Err
		return m, nil
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.showHelp {
		switch key {
		case "esc":
			m.showHelp = false
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "j", "down":
		return m.scroll(1)
	case "k", "up":
		return m.scroll(-1)
	case "pgdown", " ":
		return m.scroll(m.viewport.Height)
	case "pgup":
		return m.scroll(-m.viewport.Height)
	case "g", "home":
		m.viewport.GotoTop()
		return m.afterScroll(true)
	case "G", "end":
		m.viewport.GotoBottom()
		return m.afterScroll(true)
	case "tab":
		return m.switchTab(m.ui.Active.Next())
	case "shift+tab":
		return m.switchTab(m.ui.Active.Prev())
	}

	if m.ui.Summary.Visible {
		return m.handleSummaryKey(key)
	}
	return m.handleFeedKey(key)
}

func (m Model) handleFeedKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "right", "l":
		return m.switchTab(m.ui.Active.Next())
	case "left", "h":
		return m.switchTab(m.ui.Active.Prev())
	case "1", "2":
		tabs := news.Tabs()
		idx := int(key[0] - '1')
		if idx < len(tabs) {
			return m.switchTab(tabs[idx].ID)
		}
		return m, nil
	case "s":
		m.ui.Summary.Open()
		return m.loadSummary()
	case "r":
		return m.loadFirstPage()
	case "]", "n":
		return m.focusCard(m.focus + 1)
	case "[", "p":
		return m.focusCard(m.focus - 1)
	case "o":
		return m.openFocusedURL()
	case "y":
		return m.copyFocusedURL()
	}
	return m, nil
}

func (m Model) handleSummaryKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "b", "s":
		m.ui.Summary.Close()
		m.syncContent()
		m.viewport.GotoTop()
		m.viewport.SetYOffset(m.cardOffset(m.focus))
		return m, nil
	case "right", "l":
		return m.setRange(m.ui.Summary.Range.Next())
	case "left", "h":
		return m.setRange(m.ui.Summary.Range.Prev())
	case "1", "2", "3", "4":
		if r, ok := news.RangeAt(int(key[0] - '0')); ok {
			return m.setRange(r)
		}
		return m, nil
	case "r":
		return m.loadSummary()
	}
	return m, nil
}

func (m Model) switchTab(id news.TabID) (tea.Model, tea.Cmd) {
	previous := m.ui.Active
	needsFetch := m.ui.SwitchTab(id)
	if previous != m.ui.Active {
		m.focus = 0
		m.err = nil
	}
	if needsFetch {
		return m.loadFirstPage()
	}
	m.syncContent()
	m.viewport.GotoTop()
	if previous == m.ui.Active {
		m.viewport.SetYOffset(m.cardOffset(m.focus))
	}
	return m, nil
}

func (m Model) loadFirstPage() (tea.Model, tea.Cmd) {
	feed := m.ui.ActiveFeed()
	token := feed.BeginFirstPage()
	m.focus = 0
	m.syncContent()
	m.viewport.GotoTop()
	if m.service == nil {
		return m, nil
	}
	return m, tea.Batch(actions.LoadFirstPageCmd(m.service, feed.Tab, token), m.spinner.Tick)
}

func (m Model) loadSummary() (tea.Model, tea.Cmd) {
	token := m.ui.Summary.Begin()
	m.syncContent()
	m.viewport.GotoTop()
	if m.service == nil {
		return m, nil
	}
	return m, tea.Batch(
		actions.LoadSummaryCmd(m.service, m.ui.Active, m.ui.Summary.Range, token),
		m.spinner.Tick,
	)
}

func (m Model) setRange(r news.Range) (tea.Model, tea.Cmd) {
	if !m.ui.Summary.SetRange(r) {
		return m, nil
	}
	return m.loadSummary()
}

func (m Model) scroll(delta int) (tea.Model, tea.Cmd) {
	switch {
	case delta > 0:
		m.viewport.LineDown(delta)
	case delta < 0:
		m.viewport.LineUp(-delta)
	}
	return m.afterScroll(true)
}

// afterScroll runs after every scroll event. In the feed view it moves the
// focus to the top visible card and requests the next page once the
// viewport is near the bottom.
func (m Model) afterScroll(followFocus bool) (tea.Model, tea.Cmd) {
	if m.ui.Summary.Visible {
		return m, nil
	}
	if followFocus {
		m.syncFocus()
	}

	feed := m.ui.ActiveFeed()
	if !state.NearBottom(m.viewport.YOffset, m.viewport.Height, m.viewport.TotalLineCount()) {
		return m, nil
	}
	token, page, ok := feed.BeginNextPage()
	if !ok {
		return m, nil
	}
	log.WithFields(log.Fields{"tab": feed.Tab, "page": page}).Debug("Loading next page")
	m.syncContent()
	if m.service == nil {
		return m, nil
	}
	return m, tea.Batch(actions.LoadNextPageCmd(m.service, feed.Tab, page, token), m.spinner.Tick)
}

func (m Model) focusCard(idx int) (tea.Model, tea.Cmd) {
	if len(m.offsets) == 0 {
		return m, nil
	}
	m.focus = state.ClampCursor(idx, len(m.offsets))
	m.syncContent()
	m.viewport.SetYOffset(m.cardOffset(m.focus))
	return m.afterScroll(false)
}

func (m Model) focusedItem() (news.Item, error) {
	feed := m.ui.ActiveFeed()
	if len(feed.Items) == 0 {
		return news.Item{}, errors.New("no item selected")
	}
	return feed.Items[state.ClampCursor(m.focus, len(feed.Items))], nil
}

func (m Model) openFocusedURL() (tea.Model, tea.Cmd) {
	item, err := m.focusedItem()
	if err != nil {
		m.err = err
		return m, nil
	}
	url, err := platform.ValidateItemURL(item.URL)
	if err != nil {
		m.err = err
		return m, nil
	}
	return m, actions.OpenURLCmd(url, m.openURLFn, m.copyURLFn)
}

func (m Model) copyFocusedURL() (tea.Model, tea.Cmd) {
	item, err := m.focusedItem()
	if err != nil {
		m.err = err
		return m, nil
	}
	url, err := platform.ValidateItemURL(item.URL)
	if err != nil {
		m.err = err
		return m, nil
	}
	return m, actions.CopyURLCmd(url, m.copyURLFn)
}

func (m *Model) setStatus(status string) tea.Cmd {
	m.statusID++
	m.status = status
	return clearStatusCmd(m.statusID, m.statusTTL)
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

// syncFocus moves the focus to the first card starting at or above the top
// of the viewport.
func (m *Model) syncFocus() {
	if len(m.offsets) == 0 {
		return
	}
	focus := 0
	for i, off := range m.offsets {
		if off > m.viewport.YOffset {
			break
		}
		focus = i
	}
	if focus != m.focus {
		m.focus = focus
		m.syncContent()
	}
}

func (m Model) cardOffset(idx int) int {
	if idx < 0 || idx >= len(m.offsets) {
		return 0
	}
	return m.offsets[idx]
}

func (m Model) busy() bool {
	return m.ui.ActiveFeed().Loading || m.ui.Summary.Loading
}

func (m *Model) resize() {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	height := m.height
	if height <= 0 {
		height = defaultHeight
	}
	body := height - headerLines - footerLines
	if body < 3 {
		body = 3
	}
	m.viewport.Width = width
	m.viewport.Height = body
	m.syncContent()
}

// syncContent re-renders the content area from state. It must run after
// every state change that is visible on screen.
func (m *Model) syncContent() {
	width := m.viewport.Width
	spin := m.spinner.View()
	if m.ui.Summary.Visible {
		m.offsets = nil
		m.viewport.SetContent(view.RenderSummary(view.SummaryRenderInput{
			Tab:     m.ui.Active,
			Summary: m.ui.Summary,
			Width:   width,
			Spinner: spin,
		}, m.theme))
		return
	}

	feed := m.ui.ActiveFeed()
	m.focus = state.ClampCursor(m.focus, len(feed.Items))
	body, offsets := view.RenderFeed(view.FeedRenderInput{
		Feed:    feed,
		Width:   width,
		Focus:   m.focus,
		Spinner: spin,
	}, m.theme)
	m.offsets = offsets
	m.viewport.SetContent(body)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("newsdeck"))
	b.WriteString("\n")
	b.WriteString(view.TabBar(m.ui.Active, m.theme))
	b.WriteString("\n\n")
	if m.showHelp {
		b.WriteString(m.helpView())
	} else {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n\n")
	b.WriteString(m.messagePanel())
	b.WriteString("\n")
	b.WriteString(m.footer())
	b.WriteString("\n")
	b.WriteString(view.Toolbar(m.ui.Summary.Visible))
	return b.String()
}

func (m Model) helpView() string {
	lines := append([]string{"Help (? to close)", ""}, view.HelpLines()...)
	for len(lines) < m.viewport.Height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) messagePanel() string {
	warning := ""
	if m.err != nil {
		warning = m.err.Error()
	}
	return view.Message(m.busy(), m.err != nil, m.status, warning, m.theme)
}

func (m Model) footer() string {
	feed := m.ui.ActiveFeed()
	return view.Footer(m.ui.Active, feed.Page, len(feed.Items), feed.HasMore, m.theme)
}
