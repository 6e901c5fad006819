package render

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"quotebot/internal/domain"
	"quotebot/internal/metrics"
)

const (
	arabicFontName = "quote"
	coreFontName   = "Helvetica"

	titleArabic     = "عرض سعر"
	titleEnglish    = "Price Quote"
	customerLabel   = "رقم العميل"
	grandTotalLabel = "الإجمالي الكلي"
	footerText      = "تم إنشاء المستند بواسطة النظام"

	// Raw-text excerpt length on the fallback page.
	fallbackExcerptRunes = 50
)

// Column storage order is Specs, Total, Unit Price, Quantity, Product
// Name — reversed from logical reading order, because in a right-to-left
// document the first stored column lands on the visual right.
var (
	columnHeaders = [5]string{"المواصفات", "الإجمالي", "السعر", "الكمية", "اسم المنتج"}
	columnWidths  = [5]float64{55, 25, 25, 18, 55}
)

// PDFRenderer turns an order into a paginated quote document. Rendering
// is best-effort: a failed table build degrades to a minimal fallback
// page, and only the inability to produce even that is reported as an
// error.
type PDFRenderer struct {
	fontBytes []byte
	fontName  string
	metrics   *metrics.Registry
	logger    *zap.Logger
}

// NewPDFRenderer loads the Arabic TTF up front so a missing font fails
// the process at startup rather than on the first customer message. An
// empty fontPath selects the built-in core font, which covers Latin text
// only, meant for development and tests.
func NewPDFRenderer(fontPath string, reg *metrics.Registry, logger *zap.Logger) (*PDFRenderer, error) {
	if fontPath == "" {
		return &PDFRenderer{fontName: coreFontName, metrics: reg, logger: logger}, nil
	}

	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("reading arabic font %s: %w", fontPath, err)
	}

	return &PDFRenderer{fontBytes: fontBytes, fontName: arabicFontName, metrics: reg, logger: logger}, nil
}

// Render produces the quote document for an order. Zero line items is a
// normal case: the table renders with only the header and a zero
// grand-total row.
func (r *PDFRenderer) Render(order domain.Order) ([]byte, error) {
	doc, err := r.buildQuote(order)
	if err == nil {
		return doc, nil
	}

	r.logger.Warn("quote table rendering failed, producing fallback document",
		zap.String("customerId", order.CustomerID),
		zap.Error(err),
	)
	r.metrics.QuoteFallbacks.Inc()
	return r.RenderFallback(order)
}

func (r *PDFRenderer) buildQuote(order domain.Order) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("rendering panic: %v", rec)
		}
	}()

	pdf := r.newDocument()
	pdf.AddPage()

	r.setFont(pdf, 18)
	pdf.CellFormat(0, 12, Reshape(titleArabic)+" / "+titleEnglish, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	r.setFont(pdf, 12)
	pdf.CellFormat(0, 8, Reshape(fmt.Sprintf("%s: %s", customerLabel, order.CustomerID)), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	for i, header := range columnHeaders {
		pdf.CellFormat(columnWidths[i], 9, Reshape(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	for _, item := range order.LineItems {
		cells := [5]string{
			Reshape(item.Specs),
			formatAmount(item.LineTotal),
			formatAmount(item.UnitPrice),
			strconv.Itoa(item.Quantity),
			Reshape(item.ProductName),
		}
		for i, cell := range cells {
			pdf.CellFormat(columnWidths[i], 8, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	// Grand-total row: the label cell spans the three rightmost logical
	// columns. Fixed layout, independent of the data.
	pdf.SetFillColor(245, 245, 220)
	pdf.CellFormat(columnWidths[0], 9, "", "1", 0, "C", true, 0, "")
	pdf.CellFormat(columnWidths[1], 9, formatAmount(order.GrandTotal), "1", 0, "C", true, 0, "")
	labelSpan := columnWidths[2] + columnWidths[3] + columnWidths[4]
	pdf.CellFormat(labelSpan, 9, Reshape(grandTotalLabel), "1", 1, "C", true, 0, "")

	pdf.Ln(8)
	pdf.CellFormat(0, 8, Reshape(footerText), "", 1, "R", false, 0, "")

	return r.output(pdf)
}

// RenderFallback builds the minimal one-page document used when full
// table rendering fails: customer id plus a short excerpt of the raw
// order text. Quote generation always hands the caller an openable file.
func (r *PDFRenderer) RenderFallback(order domain.Order) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("fallback rendering panic: %v", rec)
		}
	}()

	pdf := r.newDocument()
	pdf.AddPage()

	r.setFont(pdf, 16)
	pdf.CellFormat(0, 12, titleEnglish, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	r.setFont(pdf, 12)
	pdf.CellFormat(0, 8, "Customer: "+order.CustomerID, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Request: "+truncateRunes(order.RawText, fallbackExcerptRunes), "", 1, "L", false, 0, "")

	return r.output(pdf)
}

func (r *PDFRenderer) newDocument() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	if len(r.fontBytes) > 0 {
		pdf.AddUTF8FontFromBytes(r.fontName, "", r.fontBytes)
	}
	pdf.SetAutoPageBreak(true, 20)
	return pdf
}

func (r *PDFRenderer) setFont(pdf *fpdf.Fpdf, size float64) {
	pdf.SetFont(r.fontName, "", size)
}

func (r *PDFRenderer) output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
