package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedItem is the raw extraction result for one segment, before any
// catalog resolution.
type ParsedItem struct {
	Quantity int
	Name     string
}

// quantityPattern matches the first integer token with an optional unit
// noun glued to it. The unit noun never decides whether the integer
// counts; it only widens the substring that gets removed from the name.
var quantityPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:pieces|pcs|items|units|قطع|حبة|حبات)?`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// fillerPhrases are stripped wherever they occur, not just on word
// boundaries. A name that happens to contain one of these as a substring
// gets corrupted; that matches the source behavior and is pinned in tests.
var fillerPhrases = []string{
	"i want", "i need", "please", "order",
	"اريد", "ابغى", "احتاج", "طلب", "من فضلك",
}

// ParseSegment extracts a quantity and a cleaned product-name candidate
// from one segment. Returns nil when nothing identifiable remains — such
// segments carry no product and are discarded.
func ParseSegment(segment string) *ParsedItem {
	quantity := 1
	clean := segment

	if match := quantityPattern.FindStringSubmatch(segment); match != nil {
		if q, err := strconv.Atoi(match[1]); err == nil {
			quantity = q
		}
		clean = strings.ReplaceAll(clean, match[0], "")
	}

	for _, filler := range fillerPhrases {
		clean = strings.ReplaceAll(clean, filler, "")
	}

	clean = strings.TrimSpace(whitespaceRun.ReplaceAllString(clean, " "))
	if clean == "" {
		return nil
	}

	return &ParsedItem{Quantity: quantity, Name: clean}
}
