package domain

import "time"

// Product is one entry in the catalog of purchasable items. The store
// assigns the ID; the pipeline only ever reads products.
type Product struct {
	ID          int
	Name        string
	Price       float64
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
