package text

import (
	"strings"
	"testing"
)

func TestPlain_StripsMarkupAndKeepsParagraphs(t *testing.T) {
	got := Plain(`<p>Markets <b>rally</b> &amp; close higher.</p><script>x()</script><p>Second<br>line</p>`)
	want := "Markets rally & close higher.\n\nSecond\nline"
	if got != want {
		t.Fatalf("unexpected plain text:\n got: %q\nwant: %q", got, want)
	}
}

func TestPlain_PlainTextPassesThrough(t *testing.T) {
	got := Plain("  breaking:   rates  unchanged &amp; steady ")
	if got != "breaking: rates unchanged & steady" {
		t.Fatalf("unexpected plain text: %q", got)
	}
	if Plain("   ") != "" {
		t.Fatal("expected blank input to produce empty text")
	}
}

func TestPlain_ListItems(t *testing.T) {
	got := Plain("<ul><li>one</li><li>two</li></ul>")
	if !strings.Contains(got, "- one") || !strings.Contains(got, "- two") {
		t.Fatalf("expected list markers, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{in: "short", max: 10, want: "short"},
		{in: "exactly10!", max: 10, want: "exactly10!"},
		{in: "one two three", max: 7, want: "one two..."},
		{in: "héllo wörld", max: 5, want: "héllo..."},
		{in: "anything", max: 0, want: ""},
	}
	for _, tc := range cases {
		if got := Truncate(tc.in, tc.max); got != tc.want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("the quick brown fox jumps", 10)
	want := []string{"the quick", "brown fox", "jumps"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected wrap: %q", lines)
	}

	lines = Wrap("abcdefghijkl", 5)
	if strings.Join(lines, "|") != "abcde|fghij|kl" {
		t.Fatalf("expected long word split, got %q", lines)
	}

	lines = Wrap("a\n\nb", 5)
	if len(lines) != 3 || lines[1] != "" {
		t.Fatalf("expected blank paragraph line kept, got %q", lines)
	}
}
