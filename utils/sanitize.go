package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// maxCleanRounds bounds how many layers of entity encoding CleanText peels.
const maxCleanRounds = 8

// CleanText trims s and strips any markup. Entities are turned back into plain
// characters so length limits apply to what users typed, and the result is
// sanitised again until stable so encoded tags cannot come back as markup.
func CleanText(s string) string {
	s = strings.TrimSpace(s)
	for i := 0; i < maxCleanRounds; i++ {
		clean := strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
		if clean == s {
			return clean
		}
		s = clean
	}
	// Still changing: keep the escaped form, which cannot render as markup.
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// Truncate cuts s to at most n runes and appends the ellipsis marker.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r) + "..."
}
