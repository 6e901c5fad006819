package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	QuotesGenerated     prometheus.Counter
	QuoteFallbacks      prometheus.Counter
	ItemsExtracted      prometheus.Counter
	ItemsUnmatched      prometheus.Counter
	TranscribeFallbacks prometheus.Counter
	RenderSeconds       prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	quotes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quotebot_quotes_generated_total",
		Help: "Quote documents produced and handed back to the caller.",
	})
	fallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quotebot_quote_fallback_documents_total",
		Help: "Quotes that degraded to the minimal fallback document.",
	})
	extracted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quotebot_line_items_extracted_total",
		Help: "Line items parsed out of customer utterances.",
	})
	unmatched := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quotebot_line_items_unmatched_total",
		Help: "Line items with no catalog match, kept unpriced.",
	})
	transcribe := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quotebot_transcribe_fallbacks_total",
		Help: "Voice messages that fell back to the placeholder text.",
	})
	renderSec := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "quotebot_render_seconds",
		Help:    "Time spent rendering one quote document.",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(quotes, fallbacks, extracted, unmatched, transcribe, renderSec)
	return &Registry{
		reg:                 r,
		QuotesGenerated:     quotes,
		QuoteFallbacks:      fallbacks,
		ItemsExtracted:      extracted,
		ItemsUnmatched:      unmatched,
		TranscribeFallbacks: transcribe,
		RenderSeconds:       renderSec,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
