// Package compare diffs a rectangular cell range across two tabular sources.
package compare

import (
	"fmt"

	"github.com/ukaji3/doccheck-go/pkg/doccheck/models"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/normalize"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/parser"
)

// Source provides cell values by zero-based coordinates.
type Source interface {
	Cell(row, col int) (models.CellValue, error)
}

// Comparator compares cell ranges using a Normalizer to decide equality.
type Comparator struct {
	norm       *normalize.Normalizer
	leftLabel  string
	rightLabel string
}

// Option configures a Comparator.
type Option func(*Comparator)

// WithLabels sets the source labels recorded in each result.
func WithLabels(left, right string) Option {
	return func(c *Comparator) {
		c.leftLabel = left
		c.rightLabel = right
	}
}

// New creates a Comparator.
func New(norm *normalize.Normalizer, opts ...Option) *Comparator {
	c := &Comparator{norm: norm, leftLabel: "left", rightLabel: "right"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare visits every cell of rng in row-major order and returns all cells
// whose normalized values differ. A read error from either source aborts the
// comparison.
func (c *Comparator) Compare(left, right Source, rng models.RangeAddress) (*models.ComparisonResult, error) {
	result := &models.ComparisonResult{
		Range:      parser.FormatRange(rng),
		LeftLabel:  c.leftLabel,
		RightLabel: c.rightLabel,
		Mismatches: []models.Mismatch{},
	}

	for row := rng.StartRow; row <= rng.EndRow; row++ {
		for col := rng.StartCol; col <= rng.EndCol; col++ {
			a, err := left.Cell(row, col)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", c.leftLabel, parser.CellName(row, col), err)
			}
			b, err := right.Cell(row, col)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", c.rightLabel, parser.CellName(row, col), err)
			}
			result.CellsCompared++

			if c.norm.Normalize(a) != c.norm.Normalize(b) {
				result.Mismatches = append(result.Mismatches, models.Mismatch{
					Cell:  parser.CellName(row, col),
					Left:  a.String(),
					Right: b.String(),
				})
			}
		}
	}

	return result, nil
}
