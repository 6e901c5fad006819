package catalog

import (
	"context"
	"fmt"

	"quotebot/internal/domain"
)

// seedProducts is the starter catalog used when the store is empty. Both
// the English and the Arabic entries are intentional: lookups run against
// whichever script the customer spoke in.
var seedProducts = []domain.Product{
	{Name: "iPhone 15", Price: 3500.0, Description: "Latest Apple smartphone"},
	{Name: "Samsung S24", Price: 3200.0, Description: "Samsung flagship phone"},
	{Name: "MacBook Pro", Price: 8000.0, Description: "Apple laptop M3 chip"},
	{Name: "Dell XPS", Price: 6500.0, Description: "High performance Windows laptop"},
	{Name: "AirPods Pro", Price: 900.0, Description: "Wireless noise cancelling earbuds"},
	{Name: "ايفون 15", Price: 3500.0, Description: "أحدث هاتف من آبل"},
	{Name: "سامسونج اس 24", Price: 3200.0, Description: "هاتف سامسونج الرائد"},
	{Name: "لابتوب ديل", Price: 4500.0, Description: "كمبيوتر محمول للأعمال"},
}

// Seed inserts the sample products when the table is empty and returns how
// many rows were added. A non-empty catalog is left untouched.
func Seed(ctx context.Context, repo Repository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("checking catalog size: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, p := range seedProducts {
		if _, err := repo.Insert(ctx, p); err != nil {
			return 0, fmt.Errorf("seeding product %q: %w", p.Name, err)
		}
	}

	return len(seedProducts), nil
}
