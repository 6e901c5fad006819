package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quotebot/internal/domain"
	"quotebot/internal/metrics"
	"quotebot/internal/quote"
)

func newTestRenderer(t *testing.T) *PDFRenderer {
	t.Helper()

	// Core-font mode: no TTF on the test machine, Latin-only glyphs are
	// fine for structural assertions.
	r, err := NewPDFRenderer("", metrics.NewRegistry(), zap.NewNop())
	require.NoError(t, err)
	return r
}

func sampleOrder() domain.Order {
	items := []domain.LineItem{
		domain.NewLineItem("ايفون 15", 2, 3500.0, "أحدث هاتف من آبل", true),
		domain.NewLineItem("لابتوب ديل", 1, 4500.0, "كمبيوتر محمول للأعمال", true),
		domain.NewUnmatchedLineItem("جهاز غامض", 1),
	}
	return quote.BuildOrder("CUST-001", "اريد 2 جهاز ايفون 15 و 1 لابتوب ديل", items)
}

func TestPDFRenderer_Render(t *testing.T) {
	doc, err := newTestRenderer(t).Render(sampleOrder())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "%PDF-"))
	assert.Greater(t, len(doc), 500)
}

func TestPDFRenderer_RenderEmptyOrder(t *testing.T) {
	order := quote.BuildOrder("CUST-002", "شكرا", nil)

	doc, err := newTestRenderer(t).Render(order)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "%PDF-"))
}

func TestPDFRenderer_RenderLongOrderPaginates(t *testing.T) {
	var items []domain.LineItem
	for i := 0; i < 80; i++ {
		items = append(items, domain.NewLineItem("Dell XPS", 1, 6500.0, "High performance Windows laptop", true))
	}
	order := quote.BuildOrder("CUST-003", "bulk", items)

	doc, err := newTestRenderer(t).Render(order)

	require.NoError(t, err)
	// 80 rows cannot fit one A4 page; a paginated document is noticeably
	// larger than the single-page empty variant.
	empty, err := newTestRenderer(t).Render(quote.BuildOrder("CUST-003", "", nil))
	require.NoError(t, err)
	assert.Greater(t, len(doc), len(empty))
}

func TestPDFRenderer_RenderFallback(t *testing.T) {
	order := quote.BuildOrder("CUST-004", strings.Repeat("طلب طويل جدا ", 20), nil)

	doc, err := newTestRenderer(t).RenderFallback(order)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "%PDF-"))
}

func TestPDFRenderer_MissingFontFails(t *testing.T) {
	_, err := NewPDFRenderer("testdata/does-not-exist.ttf", metrics.NewRegistry(), zap.NewNop())

	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "3500.00", formatAmount(3500.0))
	assert.Equal(t, "0.00", formatAmount(0))
	assert.Equal(t, "11500.00", formatAmount(11500.0))
	assert.Equal(t, "4500.50", formatAmount(4500.5))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 50))
	assert.Equal(t, strings.Repeat("ب", 50), truncateRunes(strings.Repeat("ب", 120), 50))
}
