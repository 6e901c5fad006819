package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"quotebot/internal/domain"
	"quotebot/internal/errors"
)

// ExcelImporter reads catalog products from an .xlsx sheet. The first row
// must be a header containing at least "Name" and "Price" columns;
// "Description" is optional.
type ExcelImporter struct{}

func NewExcelImporter() *ExcelImporter {
	return &ExcelImporter{}
}

func (i *ExcelImporter) Parse(r io.Reader) ([]domain.Product, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return nil, errors.NewValidationError("spreadsheet is empty")
	}

	nameCol, priceCol, descCol := -1, -1, -1
	for idx, header := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "name":
			nameCol = idx
		case "price":
			priceCol = idx
		case "description":
			descCol = idx
		}
	}
	if nameCol < 0 || priceCol < 0 {
		return nil, errors.NewValidationError("header row must contain Name and Price columns")
	}

	var products []domain.Product
	for rowIdx, row := range rows[1:] {
		name := cellAt(row, nameCol)
		if name == "" {
			continue
		}

		rawPrice := cellAt(row, priceCol)
		price, err := strconv.ParseFloat(strings.TrimSpace(rawPrice), 64)
		if err != nil || price < 0 {
			return nil, errors.NewValidationError(
				fmt.Sprintf("row %d: invalid price %q", rowIdx+2, rawPrice),
				errors.ValidationDetail{Field: "price", Message: "must be a non-negative number"},
			)
		}

		products = append(products, domain.Product{
			Name:        name,
			Price:       price,
			Description: cellAt(row, descCol),
		})
	}

	return products, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
