package quote

import "quotebot/internal/domain"

// BuildOrder assembles priced line items into an order. Pure composition:
// quantities and prices are taken as-is, only the grand total is computed
// here. An empty item slice yields a valid zero-total order — "nothing
// extracted" still renders.
func BuildOrder(customerID, rawText string, items []domain.LineItem) domain.Order {
	var grandTotal float64
	for _, item := range items {
		grandTotal += item.LineTotal
	}

	return domain.Order{
		CustomerID: customerID,
		LineItems:  items,
		RawText:    rawText,
		GrandTotal: grandTotal,
	}
}
