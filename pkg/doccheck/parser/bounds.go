package parser

import (
	"github.com/ukaji3/doccheck-go/pkg/doccheck/models"
	"github.com/xuri/excelize/v2"
)

// UsedRange returns the bounding box of non-empty cells in a sheet.
// ok is false when the sheet holds no values at all.
func UsedRange(f *excelize.File, sheetName string) (rng models.RangeAddress, ok bool, err error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.RangeAddress{}, false, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.RangeAddress{}, false, nil
	}

	return models.RangeAddress{
		StartRow: minRow,
		EndRow:   maxRow,
		StartCol: minCol,
		EndCol:   maxCol,
	}, true, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
