package compare

import (
	"github.com/ukaji3/doccheck-go/pkg/doccheck/models"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/parser"
)

// Grid is an in-memory Source keyed by A1 cell name.
type Grid map[string]models.CellValue

// Cell returns the value stored at the coordinates, or an empty value.
func (g Grid) Cell(row, col int) (models.CellValue, error) {
	v, ok := g[parser.CellName(row, col)]
	if !ok {
		return models.Empty(), nil
	}
	return v, nil
}
