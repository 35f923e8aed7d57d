// Package output writes comparison and classification results.
package output

import (
	"fmt"

	"github.com/ukaji3/doccheck-go/pkg/doccheck/models"
	"github.com/xuri/excelize/v2"
)

const (
	// DefaultReportPath is the report file name used when none is given.
	DefaultReportPath = "compareout.xlsx"
	// ReportSheet is the sheet the report is written to.
	ReportSheet = "Sheet1"
	// NoMismatchesCell is the address placeholder of the no-mismatch row.
	NoMismatchesCell = "-"
	// NoMismatchesText fills both value columns when the ranges matched.
	NoMismatchesText = "No mismatches found"
)

// ReportRows returns the report table: a header row followed by one row per
// mismatch, or a single placeholder row when nothing differed.
func ReportRows(result *models.ComparisonResult) [][]string {
	rows := [][]string{{"Cell", result.LeftLabel, result.RightLabel}}
	if !result.HasMismatches() {
		return append(rows, []string{NoMismatchesCell, NoMismatchesText, NoMismatchesText})
	}
	for _, m := range result.Mismatches {
		rows = append(rows, []string{m.Cell, m.Left, m.Right})
	}
	return rows
}

// WriteXLSX writes the report to a new workbook at path, replacing any file
// already there.
func WriteXLSX(result *models.ComparisonResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range ReportRows(result) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(ReportSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(ReportSheet, "A", "A", 10); err != nil {
		return err
	}
	if err := f.SetColWidth(ReportSheet, "B", "C", 24); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report %s: %w", path, err)
	}
	return nil
}
