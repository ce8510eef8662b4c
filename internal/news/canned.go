package news

var cannedSummaries = map[SummaryKey]map[Range]string{
	SummaryKeySocial: {
		Range1h:  "Summary of X news for the last 1 hour: Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
		Range6h:  "Summary of X news for the last 6 hours: Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
		Range12h: "Summary of X news for the last 12 hours: Ut enim ad minim veniam, quis nostrud exercitation ullamco.",
		Range24h: "Summary of X news for the last 24 hours: Duis aute irure dolor in reprehenderit in voluptate velit esse.",
	},
	SummaryKeyTraditional: {
		Range1h:  "Summary of Traditional Media for the last 1 hour: Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
		Range6h:  "Summary of Traditional Media for the last 6 hours: Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
		Range12h: "Summary of Traditional Media for the last 12 hours: Ut enim ad minim veniam, quis nostrud exercitation ullamco.",
		Range24h: "Summary of Traditional Media for the last 24 hours: Duis aute irure dolor in reprehenderit in voluptate velit esse.",
	},
}

// CannedSummary returns the static summary for a bucket and range. Unknown
// keys fall back to the social bucket, unknown ranges to the default range.
func CannedSummary(key SummaryKey, r Range) string {
	bucket, ok := cannedSummaries[key]
	if !ok {
		bucket = cannedSummaries[SummaryKeySocial]
	}
	if s, ok := bucket[r]; ok {
		return s
	}
	return bucket[DefaultRange]
}
