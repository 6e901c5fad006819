package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quotebot/internal/domain"
)

func TestBuildOrder(t *testing.T) {
	items := []domain.LineItem{
		domain.NewLineItem("ايفون 15", 2, 3500.0, "أحدث هاتف من آبل", true),
		domain.NewLineItem("لابتوب ديل", 1, 4500.0, "كمبيوتر محمول للأعمال", true),
		domain.NewUnmatchedLineItem("جهاز غامض", 4),
	}

	order := BuildOrder("CUST-001", "raw", items)

	assert.Equal(t, "CUST-001", order.CustomerID)
	assert.Equal(t, "raw", order.RawText)
	assert.Equal(t, 11500.0, order.GrandTotal)
	assert.Len(t, order.LineItems, 3)

	// Grand total is the sum of line totals, nothing is recomputed.
	var sum float64
	for _, item := range order.LineItems {
		assert.Equal(t, float64(item.Quantity)*item.UnitPrice, item.LineTotal)
		sum += item.LineTotal
	}
	assert.Equal(t, sum, order.GrandTotal)
}

func TestBuildOrder_Empty(t *testing.T) {
	order := BuildOrder("CUST-002", "شكرا", nil)

	assert.True(t, order.IsEmpty())
	assert.Equal(t, 0.0, order.GrandTotal)
}

func TestBuildOrder_PreservesItemOrder(t *testing.T) {
	items := []domain.LineItem{
		domain.NewUnmatchedLineItem("b", 1),
		domain.NewUnmatchedLineItem("a", 1),
	}

	order := BuildOrder("CUST-003", "b و a", items)

	assert.Equal(t, "b", order.LineItems[0].ProductName)
	assert.Equal(t, "a", order.LineItems[1].ProductName)
}
