package news

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/glabrego/newsdeck/internal/render/text"
)

const (
	socialBodyLimit  = 250
	articleBodyLimit = 900
)

// Item is one feed record from the news API. The API
// enforces no schema, so every field is optional and read through a list
// of fallback keys.
type Item struct {
	Key         string
	DisplayName string
	Handle      string
	Text        string
	ImageURL    string
	Title       string
	Summary     string
	URL         string
	CreatedAt   time.Time
	RawDate     string

	Raw json.RawMessage
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RubyDate,
	time.RFC1123Z,
	time.RFC1123,
	time.DateOnly,
}

// DecodeItems decodes a page body. Anything other than a JSON array is an
// empty page; array elements that are not objects are skipped.
func DecodeItems(data []byte) []Item {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil
	}
	items := make([]Item, 0, len(elems))
	for _, elem := range elems {
		item, ok := DecodeItem(elem)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

// DecodeItem normalizes one raw JSON object.
func DecodeItem(raw json.RawMessage) (Item, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return Item{}, false
	}

	item := Item{
		DisplayName: stringField(fields, "displayName", "authorName", "name", "author", "username"),
		Handle:      stringField(fields, "username", "screen_name", "handle"),
		Text:        stringField(fields, "text", "full_text", "content"),
		ImageURL:    stringField(fields, "profile_image_url", "profileImageUrl", "image_url", "image"),
		Title:       stringField(fields, "title", "headline"),
		Summary:     stringField(fields, "summary", "description", "detail"),
		URL:         stringField(fields, "url", "link"),
		RawDate:     stringField(fields, "createdAt", "created_at", "publishedAt", "published_at", "published"),
		Raw:         append(json.RawMessage(nil), raw...),
	}
	item.CreatedAt = parseDate(item.RawDate)
	item.Key = stringField(fields, "id", "_id", "tweet_id", "tweetId")
	if item.Key == "" {
		item.Key = fallbackKey(item)
	}
	return item, true
}

// Heading is the bold first line of a card.
func (it Item) Heading(tab TabID) string {
	var heading string
	if tab == TabSocial {
		heading = it.DisplayName
	} else {
		heading = it.Title
	}
	heading = strings.TrimSpace(heading)
	if heading == "" {
		return "(untitled)"
	}
	return heading
}

// Body is the card text: the post for social items, the article summary
// otherwise, reduced to plain text and truncated.
func (it Item) Body(tab TabID) string {
	if tab == TabSocial {
		return text.Truncate(text.Plain(it.Text), socialBodyLimit)
	}
	return text.Truncate(text.Plain(it.Summary), articleBodyLimit)
}

func (it Item) DateLabel() string {
	if !it.CreatedAt.IsZero() {
		return it.CreatedAt.Format(time.DateOnly)
	}
	raw := strings.TrimSpace(it.RawDate)
	if raw == "" {
		return "No date"
	}
	if i := strings.Index(raw, "T"); i > 0 {
		return raw[:i]
	}
	return raw
}

func stringField(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		var s string
		switch val := v.(type) {
		case string:
			s = val
		case json.Number:
			s = val.String()
		case bool:
			if val {
				s = "true"
			} else {
				s = "false"
			}
		default:
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func fallbackKey(it Item) string {
	if it.URL != "" {
		return it.URL
	}
	sum := sha1.Sum([]byte(it.DisplayName + "\x00" + it.Title + "\x00" + it.Text + "\x00" + it.RawDate))
	return hex.EncodeToString(sum[:8])
}
