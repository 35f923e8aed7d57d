package models

// Mismatch represents one cell whose normalized values differ between sources.
type Mismatch struct {
	// Cell is the A1-style address of the cell.
	Cell string `json:"cell" yaml:"cell"`
	// Left is the raw value from the first source as text.
	Left string `json:"left" yaml:"left"`
	// Right is the raw value from the second source as text.
	Right string `json:"right" yaml:"right"`
}

// ComparisonResult represents the outcome of comparing one range across two sources.
type ComparisonResult struct {
	// Range is the compared range in A1 notation.
	Range string `json:"range" yaml:"range"`
	// LeftLabel names the first source (usually its file name).
	LeftLabel string `json:"left_label" yaml:"left_label"`
	// RightLabel names the second source.
	RightLabel string `json:"right_label" yaml:"right_label"`
	// CellsCompared is the number of visited cells.
	CellsCompared int `json:"cells_compared" yaml:"cells_compared"`
	// Mismatches lists differing cells in row-major scan order.
	Mismatches []Mismatch `json:"mismatches" yaml:"mismatches"`
}

// HasMismatches reports whether any cell differed.
func (r *ComparisonResult) HasMismatches() bool {
	return len(r.Mismatches) > 0
}
