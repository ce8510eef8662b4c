package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glabrego/newsdeck/internal/news"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []news.Bullet
	}{
		{
			name: "no bullets",
			text: "Quiet hour, nothing notable happened.",
			want: nil,
		},
		{
			name: "two bullets on one line",
			text: "* **Markets:** Stocks rose 2% on earnings. * **Politics:** Vote scheduled for Friday.",
			want: []news.Bullet{
				{Label: "Markets", Detail: "Stocks rose 2% on earnings."},
				{Label: "Politics", Detail: "Vote scheduled for Friday."},
			},
		},
		{
			name: "bullets on separate lines with intro",
			text: "Here is the summary:\n* **Tech:** New chip announced.\n* **Sports:** Finals tonight.\n",
			want: []news.Bullet{
				{Label: "Tech", Detail: "New chip announced."},
				{Label: "Sports", Detail: "Finals tonight."},
			},
		},
		{
			name: "detail followed by stray asterisk is not a bullet",
			text: "* **Odd:** has *emphasis* inside",
			want: nil,
		},
		{
			name: "label with colon inside",
			text: "* **Update 10:30:** Markets open.",
			want: []news.Bullet{{Label: "Update 10:30", Detail: "Markets open."}},
		},
		{
			name: "empty detail folds into the next label",
			text: "* **Empty:** * **Full:** content",
			want: []news.Bullet{{Label: "Empty:** * **Full", Detail: "content"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestBuild(t *testing.T) {
	s := Build("* **A:** one * **B:** two * **C:** three")
	require.Len(t, s.Bullets, 3)
	assert.Equal(t, "C", s.Bullets[2].Label)
	assert.False(t, s.Canned)

	plain := Build("just text")
	assert.Empty(t, plain.Bullets)
	assert.Equal(t, "just text", plain.Text)
}

func TestCanned(t *testing.T) {
	tab, ok := news.LookupTab(news.TabTraditional)
	require.True(t, ok)
	s := Canned(tab, news.Range24h)
	assert.True(t, s.Canned)
	assert.Contains(t, s.Text, "Traditional Media for the last 24 hours")
	assert.Empty(t, s.Bullets)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "json string", body: `"* **A:** b"`, want: "* **A:** b"},
		{name: "parts envelope", body: `{"parts":[{"text":"from parts"}],"role":"model"}`, want: "from parts"},
		{name: "top level text", body: `{"text":"plain field"}`, want: "plain field"},
		{name: "summary field", body: `{"summary":"summary field"}`, want: "summary field"},
		{name: "empty parts", body: `{"parts":[]}`, want: ""},
		{name: "array", body: `[1,2]`, want: ""},
		{name: "null", body: `null`, want: ""},
		{name: "raw text body", body: "Not JSON at all", want: "Not JSON at all"},
		{name: "blank", body: "  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode([]byte(tt.body)))
		})
	}
}
