package state

import "github.com/glabrego/newsdeck/internal/news"

const SummaryErrorMessage = "Failed to load summary."

// Summary is the state of the summary view. It is shared by both tabs and
// always describes the active one.
type Summary struct {
	Visible bool
	Range   news.Range
	Loading bool
	Err     string
	Result  news.Summary

	generation Token
}

func NewSummary(r news.Range) *Summary {
	if _, err := news.ParseRange(string(r)); err != nil {
		r = news.DefaultRange
	}
	return &Summary{Range: r}
}

func (s *Summary) Open() {
	s.Visible = true
}

// Close hides the view and drops any request still in flight.
func (s *Summary) Close() {
	s.Visible = false
	s.Loading = false
	s.generation++
}

// SetRange reports whether the range changed.
func (s *Summary) SetRange(r news.Range) bool {
	if r == s.Range {
		return false
	}
	s.Range = r
	return true
}

func (s *Summary) Begin() Token {
	s.generation++
	s.Loading = true
	s.Err = ""
	return s.generation
}

func (s *Summary) Apply(token Token, result news.Summary) bool {
	if token != s.generation || !s.Loading {
		return false
	}
	s.Loading = false
	s.Err = ""
	s.Result = result
	return true
}

func (s *Summary) ApplyError(token Token) bool {
	if token != s.generation || !s.Loading {
		return false
	}
	s.Loading = false
	s.Err = SummaryErrorMessage
	s.Result = news.Summary{}
	return true
}
