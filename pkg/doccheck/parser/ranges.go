// Package parser provides Excel range addressing and cell reading utilities.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/doccheck-go/pkg/doccheck/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidRange indicates a range string that is not of the form A1:D20.
var ErrInvalidRange = errors.New("invalid range format, use like A1:D20")

var rangePattern = regexp.MustCompile(`^([A-Za-z]+)([0-9]+):([A-Za-z]+)([0-9]+)$`)

// ParseRange parses an A1-style range such as "A1:D20" into zero-based bounds.
// Column letters are case-insensitive. A range given bottom-right first is
// swapped so the result always runs top-left to bottom-right.
func ParseRange(s string) (models.RangeAddress, error) {
	m := rangePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return models.RangeAddress{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}

	startCol, err := ColumnToIndex(m[1])
	if err != nil {
		return models.RangeAddress{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}
	startRow, err := parseRow(m[2])
	if err != nil {
		return models.RangeAddress{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}
	endCol, err := ColumnToIndex(m[3])
	if err != nil {
		return models.RangeAddress{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}
	endRow, err := parseRow(m[4])
	if err != nil {
		return models.RangeAddress{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}

	if startCol >= excelize.MaxColumns || endCol >= excelize.MaxColumns {
		return models.RangeAddress{}, fmt.Errorf("%w: %q: column exceeds %d", ErrInvalidRange, s, excelize.MaxColumns)
	}

	return models.RangeAddress{
		StartRow: min(startRow, endRow),
		EndRow:   max(startRow, endRow),
		StartCol: min(startCol, endCol),
		EndCol:   max(startCol, endCol),
	}, nil
}

// FormatRange renders zero-based bounds back to A1 notation.
func FormatRange(r models.RangeAddress) string {
	return CellName(r.StartRow, r.StartCol) + ":" + CellName(r.EndRow, r.EndCol)
}

// parseRow converts a 1-based row number to a zero-based index.
func parseRow(digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > excelize.TotalRows {
		return 0, fmt.Errorf("row %d out of range 1..%d", n, excelize.TotalRows)
	}
	return n - 1, nil
}

// ColumnToIndex converts column letters ("A", "Z", "AA") to a zero-based index.
// The letters form a base-26 numeral whose digits run 1..26.
func ColumnToIndex(letters string) (int, error) {
	if letters == "" {
		return 0, errors.New("empty column")
	}
	n := 0
	for _, ch := range strings.ToUpper(letters) {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column letter %q", ch)
		}
		n = n*26 + int(ch-'A'+1)
		if n > maxColumnNumeral {
			return 0, fmt.Errorf("column %q too large", letters)
		}
	}
	return n - 1, nil
}

// maxColumnNumeral keeps ColumnToIndex from overflowing on absurd inputs.
const maxColumnNumeral = 1 << 40

// IndexToColumn converts a zero-based column index to letters. It is the exact
// inverse of ColumnToIndex for every non-negative index.
func IndexToColumn(index int) string {
	if index < 0 {
		return ""
	}
	var buf []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		buf = append(buf, byte('A'+(n-1)%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// CellName converts zero-based coordinates to an A1-style cell name.
func CellName(row, col int) string {
	return IndexToColumn(col) + strconv.Itoa(row+1)
}
