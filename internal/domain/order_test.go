package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLineItem_ComputesTotal(t *testing.T) {
	item := NewLineItem("ايفون 15", 2, 3500.0, "أحدث هاتف من آبل", true)

	assert.Equal(t, "ايفون 15", item.ProductName)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 3500.0, item.UnitPrice)
	assert.Equal(t, 7000.0, item.LineTotal)
	assert.Equal(t, "أحدث هاتف من آبل", item.Specs)
	assert.True(t, item.Matched)
}

func TestNewLineItem_ZeroQuantity(t *testing.T) {
	item := NewLineItem("Dell XPS", 0, 6500.0, "High performance Windows laptop", true)

	assert.Equal(t, 0.0, item.LineTotal)
}

func TestNewUnmatchedLineItem(t *testing.T) {
	item := NewUnmatchedLineItem("جهاز غير معروف", 3)

	assert.False(t, item.Matched)
	assert.Equal(t, 0.0, item.UnitPrice)
	assert.Equal(t, 0.0, item.LineTotal)
	assert.Equal(t, DefaultSpecs, item.Specs)
	assert.Equal(t, "جهاز غير معروف", item.ProductName)
	assert.Equal(t, 3, item.Quantity)
}

func TestOrder_IsEmpty(t *testing.T) {
	assert.True(t, Order{CustomerID: "CUST-001"}.IsEmpty())
	assert.False(t, Order{LineItems: []LineItem{NewUnmatchedLineItem("x", 1)}}.IsEmpty())
}
