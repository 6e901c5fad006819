package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReshape_EmptyString(t *testing.T) {
	assert.Equal(t, "", Reshape(""))
}

func TestReshape_PureLatinIsIdentity(t *testing.T) {
	inputs := []string{
		"Price Quote",
		"3500.00",
		"Dell XPS 13",
		"Standard",
	}

	for _, s := range inputs {
		once := Reshape(s)
		assert.Equal(t, s, once)
		// Idempotent: shaping shaped output changes nothing.
		assert.Equal(t, once, Reshape(once))
	}
}

func TestReshape_ArabicIsTransformed(t *testing.T) {
	shaped := Reshape("عرض سعر")

	assert.NotEmpty(t, shaped)
	assert.NotEqual(t, "عرض سعر", shaped)
}

func TestReshape_MixedTextKeepsLatinIslandIntact(t *testing.T) {
	shaped := Reshape("لابتوب Dell 15")

	assert.Contains(t, shaped, "Dell 15")
	// Logical order is reversed for display: the leading Arabic word ends
	// up after the Latin island, which therefore now opens the string.
	assert.True(t, strings.HasPrefix(shaped, "Dell 15"))
}

func TestReshape_DigitsInsideArabicStayLTR(t *testing.T) {
	shaped := Reshape("ايفون 15")

	assert.Contains(t, shaped, "15")
	assert.NotContains(t, shaped, "51")
}
