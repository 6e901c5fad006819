package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "quotebot/internal/errors"
)

func buildSheet(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestExcelImporter_Parse(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		{"Name", "Price", "Description"},
		{"ايفون 15", 3500.0, "أحدث هاتف من آبل"},
		{"Dell XPS", "6500", "High performance Windows laptop"},
		{"", 10.0, "row without a name is skipped"},
	})

	products, err := NewExcelImporter().Parse(buf)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "ايفون 15", products[0].Name)
	assert.Equal(t, 3500.0, products[0].Price)
	assert.Equal(t, "أحدث هاتف من آبل", products[0].Description)
	assert.Equal(t, "Dell XPS", products[1].Name)
	assert.Equal(t, 6500.0, products[1].Price)
}

func TestExcelImporter_Parse_MissingColumns(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		{"Title", "Cost"},
		{"ماوس", 50.0},
	})

	_, err := NewExcelImporter().Parse(buf)

	require.Error(t, err)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestExcelImporter_Parse_BadPrice(t *testing.T) {
	buf := buildSheet(t, [][]interface{}{
		{"Name", "Price"},
		{"ماوس", "free"},
	})

	_, err := NewExcelImporter().Parse(buf)

	require.Error(t, err)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Message, "row 2")
}
