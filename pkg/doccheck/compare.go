package doccheck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/compare"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/models"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/normalize"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/output"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/parser"
	"github.com/xuri/excelize/v2"
)

// CompareFiles compares rangeStr (e.g. "A1:D20") between two workbook sheets.
// An empty rangeStr compares the union of both sheets' used ranges.
//
// The range is validated before any file is opened. Missing files, unreadable
// workbooks and missing sheets are returned as *SourceError.
func CompareFiles(left, right SheetRef, rangeStr string, opts CompareOptions) (*models.ComparisonResult, error) {
	var rng *models.RangeAddress
	if strings.TrimSpace(rangeStr) != "" {
		parsed, err := parser.ParseRange(rangeStr)
		if err != nil {
			return nil, err
		}
		rng = &parsed
	}

	norm, err := normalize.New(opts.DecimalPlaces())
	if err != nil {
		return nil, err
	}

	lf, err := openWorkbook(left.Path)
	if err != nil {
		return nil, NewSourceError(left.Path, "", err)
	}
	defer lf.Close()

	rf, err := openWorkbook(right.Path)
	if err != nil {
		return nil, NewSourceError(right.Path, "", err)
	}
	defer rf.Close()

	ls, err := parser.OpenSheet(lf, left.Sheet)
	if err != nil {
		return nil, NewSourceError(left.Path, left.Sheet, err)
	}
	rs, err := parser.OpenSheet(rf, right.Sheet)
	if err != nil {
		return nil, NewSourceError(right.Path, right.Sheet, err)
	}

	if rng == nil {
		used, err := usedRange(lf, left, rf, right)
		if err != nil {
			return nil, err
		}
		rng = &used
		log.Debug().Str("range", parser.FormatRange(used)).Msg("no range given, using used range of both sheets")
	}

	log.Debug().
		Str("range", parser.FormatRange(*rng)).
		Int("rows", rng.Rows()).
		Int("cols", rng.Cols()).
		Int("cells", rng.Cells()).
		Msg("comparing range")

	cmp := compare.New(norm, compare.WithLabels(filepath.Base(left.Path), filepath.Base(right.Path)))
	result, err := cmp.Compare(ls, rs, *rng)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("range", result.Range).
		Int("cells", result.CellsCompared).
		Int("mismatches", len(result.Mismatches)).
		Int32("places", norm.Places()).
		Msg("comparison finished")
	return result, nil
}

// WriteReport writes result to an xlsx report at path, or at
// output.DefaultReportPath when path is empty.
func WriteReport(result *models.ComparisonResult, path string) error {
	if path == "" {
		path = output.DefaultReportPath
	}
	return output.WriteXLSX(result, path)
}

// openWorkbook opens an xlsx file read-only after checking it exists.
func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return f, nil
}

// usedRange returns the union of both sheets' used ranges, or A1:A1 when
// both sheets are empty.
func usedRange(lf *excelize.File, left SheetRef, rf *excelize.File, right SheetRef) (models.RangeAddress, error) {
	lr, lok, err := parser.UsedRange(lf, left.Sheet)
	if err != nil {
		return models.RangeAddress{}, NewSourceError(left.Path, left.Sheet, err)
	}
	rr, rok, err := parser.UsedRange(rf, right.Sheet)
	if err != nil {
		return models.RangeAddress{}, NewSourceError(right.Path, right.Sheet, err)
	}

	switch {
	case lok && rok:
		return lr.Union(rr), nil
	case lok:
		return lr, nil
	case rok:
		return rr, nil
	default:
		return models.RangeAddress{}, nil
	}
}
