package quote

import (
	"context"

	"quotebot/internal/catalog"
	"quotebot/internal/domain"
	"quotebot/internal/errors"
)

// Matcher resolves a cleaned product-name candidate into a line item. The
// interface exists so a ranked or fuzzy matcher can replace the substring
// policy without touching the pipeline.
type Matcher interface {
	Match(ctx context.Context, name string, quantity int) (domain.LineItem, error)
}

// SubstringMatcher takes the store's first substring hit as-is: no
// ranking, no shortest-match preference. The catalog is small and
// curated, so determinism is worth more than precision here.
type SubstringMatcher struct {
	repo catalog.Repository
}

func NewSubstringMatcher(repo catalog.Repository) *SubstringMatcher {
	return &SubstringMatcher{repo: repo}
}

// Match prices the candidate against the catalog. A miss is not an error:
// it yields a zero-priced, unmatched line item carrying the cleaned text
// as its display name.
func (m *SubstringMatcher) Match(ctx context.Context, name string, quantity int) (domain.LineItem, error) {
	product, err := m.repo.FindByNameLike(ctx, name)
	if err != nil {
		if _, ok := errors.IsNotFoundError(err); ok {
			return domain.NewUnmatchedLineItem(name, quantity), nil
		}
		return domain.LineItem{}, err
	}

	return domain.NewLineItem(product.Name, quantity, product.Price, product.Description, true), nil
}
