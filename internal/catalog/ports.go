package catalog

import (
	"context"

	"quotebot/internal/domain"
)

// Repository is the narrow read/seed contract the pipeline depends on.
// FindByNameLike must return the first entry related to the given text by
// case-insensitive substring containment in either direction, in a
// retrieval order that is stable within one store instance.
type Repository interface {
	FindByNameLike(ctx context.Context, name string) (*domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	Insert(ctx context.Context, product domain.Product) (int, error)
	Count(ctx context.Context) (int, error)
}
