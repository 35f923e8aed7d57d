package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/ukaji3/doccheck-go/pkg/doccheck/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// SheetSource reads cached cell values from one sheet of an open workbook.
// Formulas are never evaluated; the value saved with the workbook is used.
type SheetSource struct {
	f     *excelize.File
	sheet string
}

// OpenSheet returns a SheetSource for sheetName, or ErrSheetNotFound.
func OpenSheet(f *excelize.File, sheetName string) (*SheetSource, error) {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSheetNotFound, sheetName, err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}
	return &SheetSource{f: f, sheet: sheetName}, nil
}

// Sheet returns the sheet name.
func (s *SheetSource) Sheet() string {
	return s.sheet
}

// Cell reads the value at zero-based coordinates.
func (s *SheetSource) Cell(row, col int) (models.CellValue, error) {
	return ReadCell(s.f, s.sheet, CellName(row, col))
}

// ReadCell reads the raw stored value of a single cell and classifies it.
func ReadCell(f *excelize.File, sheetName, cellName string) (models.CellValue, error) {
	raw, err := f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.CellValue{}, fmt.Errorf("read %s!%s: %w", sheetName, cellName, err)
	}
	if raw == "" {
		return models.Empty(), nil
	}

	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.CellValue{}, fmt.Errorf("cell type %s!%s: %w", sheetName, cellName, err)
	}
	return classifyValue(cellType, raw), nil
}

// classifyValue maps an excelize cell type and its raw text to a CellValue.
func classifyValue(cellType excelize.CellType, raw string) models.CellValue {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.Text(raw)
	case excelize.CellTypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return models.Text(raw)
		}
		return models.Bool(b)
	}
	if isNumber(raw) {
		return models.Number(raw)
	}
	return models.Text(raw)
}

// isNumber reports whether s is a finite number as stored in a numeric cell.
func isNumber(s string) bool {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
