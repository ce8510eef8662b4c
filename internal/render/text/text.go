// Package text turns loosely formatted feed bodies into plain terminal text.
package text

import (
	"html"
	"strings"
	"unicode/utf8"

	nethtml "golang.org/x/net/html"
)

// Plain reduces an HTML or plain-text fragment to readable text. Block
// elements become line breaks; scripts, styles and images are dropped.
func Plain(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "<") {
		return normalizeLines(html.UnescapeString(raw))
	}
	doc, err := nethtml.Parse(strings.NewReader("<html><body>" + raw + "</body></html>"))
	if err != nil {
		return normalizeLines(html.UnescapeString(raw))
	}
	body := findBodyNode(doc)
	if body == nil {
		return normalizeLines(html.UnescapeString(raw))
	}
	var b strings.Builder
	writeNode(&b, body)
	return normalizeLines(b.String())
}

// Truncate cuts s to at most maxRunes runes and appends "..." when it had
// to cut. The ellipsis is not counted against maxRunes.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:maxRunes]), " ") + "..."
}

// Wrap breaks text into lines no wider than width runes. Paragraph breaks
// are kept; words longer than width are split.
func Wrap(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		lineLen := 0
		for _, word := range words {
			runes := []rune(word)
			for len(runes) > width {
				if line != "" {
					out = append(out, line)
					line = ""
					lineLen = 0
				}
				out = append(out, string(runes[:width]))
				runes = runes[width:]
			}
			word = string(runes)
			wordLen := len(runes)

			if line == "" {
				line = word
				lineLen = wordLen
				continue
			}
			if lineLen+1+wordLen <= width {
				line += " " + word
				lineLen += 1 + wordLen
				continue
			}
			out = append(out, line)
			line = word
			lineLen = wordLen
		}
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

func writeNode(b *strings.Builder, node *nethtml.Node) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case nethtml.TextNode:
			b.WriteString(child.Data)
		case nethtml.ElementNode:
			tag := strings.ToLower(child.Data)
			switch tag {
			case "script", "style", "noscript", "img":
				continue
			case "br":
				b.WriteString("\n")
				continue
			case "li":
				b.WriteString("\n- ")
				writeNode(b, child)
				b.WriteString("\n")
				continue
			}
			writeNode(b, child)
			if isBlock(tag) {
				b.WriteString("\n\n")
			}
		}
	}
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "section", "article", "blockquote", "pre", "ul", "ol", "table", "tr",
		"h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.Join(strings.Fields(line), " ")
		if trimmed == "" {
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, trimmed)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func findBodyNode(node *nethtml.Node) *nethtml.Node {
	if node == nil {
		return nil
	}
	if node.Type == nethtml.ElementNode && strings.EqualFold(node.Data, "body") {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findBodyNode(child); found != nil {
			return found
		}
	}
	return nil
}
