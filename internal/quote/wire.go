package quote

import (
	"database/sql"

	"go.uber.org/zap"

	"quotebot/internal/catalog/repository"
	"quotebot/internal/metrics"
)

func NewModule(db *sql.DB, renderer Renderer, reg *metrics.Registry, logger *zap.Logger) *GenerateQuoteUseCase {
	repo := repository.NewMySQLCatalogRepository(db)
	matcher := NewSubstringMatcher(repo)
	return NewGenerateQuoteUseCase(matcher, renderer, reg, logger)
}
