package quote

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quotebot/internal/domain"
	"quotebot/internal/extract"
	"quotebot/internal/metrics"
	"quotebot/internal/transcribe"
)

// Text shorter than this after trimming cannot describe an order; the
// placeholder goes through the pipeline instead.
const minInputRunes = 3

// Renderer is the document-production dependency of the pipeline.
type Renderer interface {
	Render(order domain.Order) ([]byte, error)
}

type QuoteRequest struct {
	CustomerID string
	RawText    string
}

type QuoteResult struct {
	Order    domain.Order
	Document []byte
	Filename string
}

// GenerateQuoteUseCase runs one utterance end to end: segment, parse,
// match, aggregate, render. Each invocation is independent; the only
// shared state is the read-only catalog behind the matcher.
type GenerateQuoteUseCase struct {
	matcher  Matcher
	renderer Renderer
	metrics  *metrics.Registry
	logger   *zap.Logger
}

func NewGenerateQuoteUseCase(matcher Matcher, renderer Renderer, reg *metrics.Registry, logger *zap.Logger) *GenerateQuoteUseCase {
	return &GenerateQuoteUseCase{
		matcher:  matcher,
		renderer: renderer,
		metrics:  reg,
		logger:   logger,
	}
}

// Generate never fails for degenerate input: unparsable segments are
// dropped, unmatched names stay unpriced, and an empty extraction still
// renders a zero-total quote. The only error path is a document that
// could not be produced at all.
func (uc *GenerateQuoteUseCase) Generate(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	rawText := strings.TrimSpace(req.RawText)
	if utf8.RuneCountInString(rawText) < minInputRunes {
		uc.logger.Info("input too short, substituting placeholder",
			zap.String("customerId", req.CustomerID))
		rawText = transcribe.VoicePlaceholder
	}

	var items []domain.LineItem
	for _, segment := range extract.Segment(rawText) {
		parsed := extract.ParseSegment(segment)
		if parsed == nil {
			continue
		}

		item, err := uc.matcher.Match(ctx, parsed.Name, parsed.Quantity)
		if err != nil {
			// A broken catalog lookup degrades that one item to
			// unpriced; it must not sink the whole quote.
			uc.logger.Warn("catalog lookup failed, keeping item unpriced",
				zap.String("name", parsed.Name), zap.Error(err))
			item = domain.NewUnmatchedLineItem(parsed.Name, parsed.Quantity)
		}

		uc.metrics.ItemsExtracted.Inc()
		if !item.Matched {
			uc.metrics.ItemsUnmatched.Inc()
		}
		items = append(items, item)
	}

	order := BuildOrder(req.CustomerID, rawText, items)

	start := time.Now()
	doc, err := uc.renderer.Render(order)
	uc.metrics.RenderSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("rendering quote: %w", err)
	}

	uc.metrics.QuotesGenerated.Inc()
	uc.logger.Info("quote generated",
		zap.String("customerId", req.CustomerID),
		zap.Int("lineItems", len(order.LineItems)),
		zap.Float64("grandTotal", order.GrandTotal),
	)

	return &QuoteResult{
		Order:    order,
		Document: doc,
		Filename: fmt.Sprintf("quote_%s.pdf", uuid.NewString()),
	}, nil
}
