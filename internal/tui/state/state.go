// Package state holds the feed controller and summary state machines. It is
// free of any terminal toolkit so every transition can be tested directly.
package state

// Token identifies one issued request. A response carrying a token other
// than the latest one for its target is stale and must be dropped.
type Token uint64

// NearBottomThreshold is the scroll fraction at which the next page loads.
const NearBottomThreshold = 0.9

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// ScrollFraction is (top+visible)/total. Content that fits entirely, or no
// content at all, counts as scrolled to the bottom.
func ScrollFraction(top, visible, total int) float64 {
	if total <= 0 {
		return 1
	}
	if top < 0 {
		top = 0
	}
	f := float64(top+visible) / float64(total)
	if f > 1 {
		return 1
	}
	return f
}

func NearBottom(top, visible, total int) bool {
	return ScrollFraction(top, visible, total) >= NearBottomThreshold
}
