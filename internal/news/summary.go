package news

// Bullet is one "* **Label:** detail" segment of a generated summary.
type Bullet struct {
	Label  string
	Detail string
}

// Summary is what the summary view renders for a tab and range.
type Summary struct {
	Text    string
	Bullets []Bullet
	Canned  bool
}
