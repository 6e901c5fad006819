package domain

// DefaultSpecs is shown for items that were not resolved against the
// catalog and therefore carry no description.
const DefaultSpecs = "Standard"

// LineItem is one priced (or unpriced, when unmatched) row of a quote.
// It is immutable once built.
type LineItem struct {
	ProductName string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
	Specs       string
	Matched     bool
}

// NewLineItem builds a line item and computes its total. This is the only
// place LineTotal is assigned, which keeps the quantity*price invariant in
// one spot.
func NewLineItem(name string, quantity int, unitPrice float64, specs string, matched bool) LineItem {
	return LineItem{
		ProductName: name,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   float64(quantity) * unitPrice,
		Specs:       specs,
		Matched:     matched,
	}
}

// NewUnmatchedLineItem builds the zero-priced variant for names with no
// catalog hit. The cleaned text itself becomes the displayed name.
func NewUnmatchedLineItem(name string, quantity int) LineItem {
	return NewLineItem(name, quantity, 0, DefaultSpecs, false)
}

// Order is the fully assembled quote for one utterance. It is never
// mutated after aggregation and is owned by the request that produced it.
type Order struct {
	CustomerID string
	LineItems  []LineItem
	RawText    string
	GrandTotal float64
}

// IsEmpty reports whether extraction found nothing useful. An empty order
// is still valid and still renders.
func (o Order) IsEmpty() bool {
	return len(o.LineItems) == 0
}
