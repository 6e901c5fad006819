package render

import (
	"unicode"

	"github.com/01walid/goarabic"
)

// Reshape prepares text containing Arabic script for a layout engine that
// only draws left-to-right: joins characters into their contextual glyph
// forms and reorders the runes into visual order. Left-to-right islands
// (Latin words, digit runs) keep their internal order, so product names
// like "لابتوب Dell 15" come out readable. Pure left-to-right input and
// empty strings pass through untouched, which makes the function
// idempotent on them. Shaping must never break a render: any panic inside
// the shaper falls back to the original string.
func Reshape(s string) (out string) {
	if s == "" {
		return ""
	}
	if !containsArabic(s) {
		return s
	}

	defer func() {
		if r := recover(); r != nil {
			out = s
		}
	}()

	// Diacritics interfere with glyph pairing in the joined form.
	shaped := goarabic.ToGlyph(goarabic.RemoveTashkeel(s))
	return toVisual(shaped)
}

func containsArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}

// isLTR reports runes that keep left-to-right order even inside an
// Arabic sentence: Latin letters and digits.
func isLTR(r rune) bool {
	return (r >= '0' && r <= '9') || unicode.Is(unicode.Latin, r)
}

func isNeutralRune(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// toVisual converts logical character order to display order: the string
// is emitted right-to-left, except that maximal left-to-right segments
// (including neutral characters enclosed between LTR runes) are kept
// intact. Neutral characters adjacent to Arabic text travel with it.
func toVisual(s string) string {
	runes := []rune(s)

	type segment struct {
		text string
		ltr  bool
	}
	var segments []segment

	i := 0
	for i < len(runes) {
		if isLTR(runes[i]) {
			last := i
			j := i
			for j < len(runes) {
				if isLTR(runes[j]) {
					last = j
					j++
					continue
				}
				if isNeutralRune(runes[j]) {
					j++
					continue
				}
				break
			}
			segments = append(segments, segment{text: string(runes[i : last+1]), ltr: true})
			i = last + 1
			continue
		}

		j := i
		for j < len(runes) && !isLTR(runes[j]) {
			j++
		}
		segments = append(segments, segment{text: string(runes[i:j]), ltr: false})
		i = j
	}

	var out []rune
	for k := len(segments) - 1; k >= 0; k-- {
		if segments[k].ltr {
			out = append(out, []rune(segments[k].text)...)
		} else {
			out = append(out, []rune(goarabic.Reverse(segments[k].text))...)
		}
	}

	return string(out)
}
