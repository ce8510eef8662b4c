package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabIdle     lipgloss.Style
	RangeActive lipgloss.Style
	RangeIdle   lipgloss.Style
	Section     lipgloss.Style
	ActiveLine  lipgloss.Style
	MetaLabel   lipgloss.Style
	MetaValue   lipgloss.Style
	StateIdle   lipgloss.Style
	StateWarn   lipgloss.Style
	StateLoad   lipgloss.Style

	Heading     lipgloss.Style
	Handle      lipgloss.Style
	Body        lipgloss.Style
	Date        lipgloss.Style
	BulletLabel lipgloss.Style
	Notice      lipgloss.Style
	Error       lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")
	cpBase := lipgloss.Color("#1e1e2e")

	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(cpBase).Background(cpMauve).Padding(0, 1),
		TabIdle:     lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		RangeActive: lipgloss.NewStyle().Bold(true).Foreground(cpBase).Background(cpTeal).Padding(0, 1),
		RangeIdle:   lipgloss.NewStyle().Foreground(cpSubtext1).Background(cpSurface0).Padding(0, 1),
		Section:     lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		ActiveLine:  lipgloss.NewStyle().Foreground(cpMauve).Bold(true),
		MetaLabel:   lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:   lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle:   lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:   lipgloss.NewStyle().Foreground(cpRed),
		StateLoad:   lipgloss.NewStyle().Foreground(cpPeach),
		Heading:     lipgloss.NewStyle().Bold(true).Foreground(cpText),
		Handle:      lipgloss.NewStyle().Foreground(cpLavender),
		Body:        lipgloss.NewStyle().Foreground(cpSubtext1),
		Date:        lipgloss.NewStyle().Foreground(cpSubtext0),
		BulletLabel: lipgloss.NewStyle().Bold(true).Foreground(cpYellow),
		Notice:      lipgloss.NewStyle().Italic(true).Foreground(cpOverlay1),
		Error:       lipgloss.NewStyle().Bold(true).Foreground(cpRed),
	}
}

func (t Theme) RenderTab(active bool, label string) string {
	if active {
		return t.TabActive.Render(label)
	}
	return t.TabIdle.Render(label)
}

func (t Theme) RenderRange(active bool, label string) string {
	if active {
		return t.RangeActive.Render(label)
	}
	return t.RangeIdle.Render(label)
}

// RenderActiveLine styles the focus gutter of a card.
func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}
