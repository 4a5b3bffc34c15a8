package content

import (
	"strings"

	"golang.org/x/net/html"
)

// ExcerptLimit is the number of characters kept in list excerpts.
const ExcerptLimit = 400

// PlainText returns the text content of an HTML fragment with tags removed
// and entities decoded.
func PlainText(markup string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// Excerpt returns the plain text of markup, cut to limit characters with a
// trailing "..." when longer.
func Excerpt(markup string, limit int) string {
	text := []rune(PlainText(markup))
	if len(text) <= limit {
		return string(text)
	}
	return string(text[:limit]) + "..."
}
