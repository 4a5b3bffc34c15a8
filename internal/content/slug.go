// Package content holds the text helpers behind the knowledge-base pages.
package content

import (
	"regexp"
	"strings"
)

var (
	// \p{Z} covers Unicode spaces such as U+00A0 that RE2's \s leaves out.
	slugDrop     = regexp.MustCompile(`[^\w\s\p{Z}-]`)
	slugSeparate = regexp.MustCompile(`[\s\p{Z}_-]+`)
	slugTrim     = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives a URL slug from a title: lowercase, characters outside
// [A-Za-z0-9_], whitespace and '-' removed, separator runs collapsed to '-'.
// Accented letters are removed rather than transliterated.
func Slugify(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = slugDrop.ReplaceAllString(s, "")
	s = slugSeparate.ReplaceAllString(s, "-")
	return slugTrim.ReplaceAllString(s, "")
}
