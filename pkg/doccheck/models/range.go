package models

// RangeAddress represents the zero-based, inclusive cell bounds of a rectangle.
type RangeAddress struct {
	// StartRow is the first row (0-based).
	StartRow int `json:"start_row" yaml:"start_row"`
	// EndRow is the last row (0-based, inclusive).
	EndRow int `json:"end_row" yaml:"end_row"`
	// StartCol is the first column (0-based).
	StartCol int `json:"start_col" yaml:"start_col"`
	// EndCol is the last column (0-based, inclusive).
	EndCol int `json:"end_col" yaml:"end_col"`
}

// Rows returns the number of rows covered by the range.
func (r RangeAddress) Rows() int {
	return r.EndRow - r.StartRow + 1
}

// Cols returns the number of columns covered by the range.
func (r RangeAddress) Cols() int {
	return r.EndCol - r.StartCol + 1
}

// Cells returns the number of cells covered by the range.
func (r RangeAddress) Cells() int {
	return r.Rows() * r.Cols()
}

// Union returns the smallest range covering both r and o.
func (r RangeAddress) Union(o RangeAddress) RangeAddress {
	return RangeAddress{
		StartRow: min(r.StartRow, o.StartRow),
		EndRow:   max(r.EndRow, o.EndRow),
		StartCol: min(r.StartCol, o.StartCol),
		EndCol:   max(r.EndCol, o.EndCol),
	}
}
