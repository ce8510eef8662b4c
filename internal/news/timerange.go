package news

import (
	"fmt"
	"time"
)

// Range is a summary time window.
type Range string

const (
	Range1h  Range = "1hr"
	Range6h  Range = "6hr"
	Range12h Range = "12hr"
	Range24h Range = "24hr"

	DefaultRange = Range1h
)

var ranges = []Range{Range1h, Range6h, Range12h, Range24h}

func Ranges() []Range {
	return append([]Range(nil), ranges...)
}

func ParseRange(s string) (Range, error) {
	for _, r := range ranges {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown summary range %q (valid: 1hr, 6hr, 12hr, 24hr)", s)
}

func (r Range) index() int {
	for i, candidate := range ranges {
		if candidate == r {
			return i
		}
	}
	return -1
}

func (r Range) Next() Range {
	i := r.index()
	if i < 0 {
		return DefaultRange
	}
	return ranges[(i+1)%len(ranges)]
}

func (r Range) Prev() Range {
	i := r.index()
	if i < 0 {
		return DefaultRange
	}
	return ranges[(i+len(ranges)-1)%len(ranges)]
}

func (r Range) Duration() time.Duration {
	switch r {
	case Range6h:
		return 6 * time.Hour
	case Range12h:
		return 12 * time.Hour
	case Range24h:
		return 24 * time.Hour
	default:
		return time.Hour
	}
}

// RangeAt returns the range at a 1-based position, as bound to number keys.
func RangeAt(pos int) (Range, bool) {
	if pos < 1 || pos > len(ranges) {
		return "", false
	}
	return ranges[pos-1], true
}
