package media

import (
	"regexp"
	"strings"
)

var (
	yearTokenRe   = regexp.MustCompile(`\b\d{4}\b`)
	punctuationRe = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// NormalizeQuery prepares a user query for the search API: 4-digit year
// tokens are removed, punctuation collapses to spaces, whitespace runs
// collapse to single spaces. An empty result means no search should be issued.
func NormalizeQuery(q string) string {
	q = yearTokenRe.ReplaceAllString(q, " ")
	q = punctuationRe.ReplaceAllString(q, " ")
	q = whitespaceRe.ReplaceAllString(q, " ")
	return strings.TrimSpace(q)
}
