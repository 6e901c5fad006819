package extract

import (
	"regexp"
	"strings"
)

// Segment delimiters: newline, comma, and the spoken conjunctions "and"
// (English) and "و" (Arabic), the latter two only when surrounded by
// spaces. This is a syntactic split — a comma inside a product name will
// split it, which is an accepted limitation of the heuristic.
var segmentDelimiter = regexp.MustCompile(`\n|,| and | و `)

// Segment splits an utterance into candidate line-item chunks, preserving
// their order of appearance. Blank chunks are dropped.
func Segment(text string) []string {
	parts := segmentDelimiter.Split(text, -1)

	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		segments = append(segments, part)
	}

	return segments
}
