// Package summary decodes generated summaries and splits them into
// labeled bullet points for display.
package summary

import (
	"encoding/json"
	"strings"

	"github.com/glabrego/newsdeck/internal/news"
)

const (
	bulletOpen = "* **"
	labelClose = ":** "
)

// Parse extracts every "* **Label:** detail" segment. A detail runs up to
// the next "* **" or the end of the text and never contains '*'; a
// candidate whose detail is followed by anything else is not a bullet.
// Labels do not span lines. Text without bullets yields nil.
func Parse(s string) []news.Bullet {
	var out []news.Bullet
	pos := 0
	for pos < len(s) {
		rel := strings.Index(s[pos:], bulletOpen)
		if rel < 0 {
			break
		}
		start := pos + rel
		bullet, end, ok := matchAt(s, start)
		if !ok {
			pos = start + 1
			continue
		}
		out = append(out, bullet)
		pos = end
	}
	return out
}

// Build turns fetched text into a renderable summary.
func Build(text string) news.Summary {
	return news.Summary{Text: text, Bullets: Parse(text)}
}

// Canned wraps the static summary for a tab and range.
func Canned(tab news.Tab, r news.Range) news.Summary {
	return news.Summary{Text: news.CannedSummary(tab.SummaryKey, r), Canned: true}
}

func matchAt(s string, start int) (news.Bullet, int, bool) {
	labelStart := start + len(bulletOpen)
	for sep := labelStart + 1; sep < len(s); sep++ {
		if s[sep-1] == '\n' {
			return news.Bullet{}, 0, false
		}
		if !strings.HasPrefix(s[sep:], labelClose) {
			continue
		}
		detailStart := sep + len(labelClose)
		detailEnd := detailStart
		for detailEnd < len(s) && s[detailEnd] != '*' {
			detailEnd++
		}
		if detailEnd == detailStart {
			continue
		}
		if detailEnd != len(s) && !strings.HasPrefix(s[detailEnd:], bulletOpen) {
			continue
		}
		return news.Bullet{
			Label:  strings.TrimSpace(s[labelStart:sep]),
			Detail: strings.TrimSpace(s[detailStart:detailEnd]),
		}, detailEnd, true
	}
	return news.Bullet{}, 0, false
}

type partsEnvelope struct {
	Parts []struct {
		Text string `json:"text"`
	} `json:"parts"`
	Text    *string `json:"text"`
	Summary *string `json:"summary"`
}

// Decode reads a summary response body. The body may be a JSON string, an
// object carrying the text in parts[0].text (or a top-level text/summary
// field), or plain non-JSON text. Other JSON shapes decode to "".
func Decode(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}
	if !json.Valid([]byte(trimmed)) {
		return trimmed
	}

	var s string
	if err := json.Unmarshal([]byte(trimmed), &s); err == nil {
		return s
	}

	var env partsEnvelope
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return ""
	}
	if len(env.Parts) > 0 && env.Parts[0].Text != "" {
		return env.Parts[0].Text
	}
	if env.Text != nil {
		return *env.Text
	}
	if env.Summary != nil {
		return *env.Summary
	}
	return ""
}
