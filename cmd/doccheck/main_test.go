package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/doccheck-go/pkg/doccheck"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/models"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func saveWorkbook(t *testing.T, path string, cells map[string]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	require.NoError(t, f.SaveAs(path))
}

func fixtures(t *testing.T) (dir, left, right string) {
	t.Helper()
	dir = t.TempDir()
	left = filepath.Join(dir, "left.xlsx")
	right = filepath.Join(dir, "right.xlsx")
	saveWorkbook(t, left, map[string]interface{}{"A1": 1.000005, "B1": "Yes", "B2": 5})
	saveWorkbook(t, right, map[string]interface{}{"A1": 1.00001, "B1": "yes", "B2": 5.00002})
	return dir, left, right
}

func TestCompareCommandJSON(t *testing.T) {
	dir, left, right := fixtures(t)
	report := filepath.Join(dir, "out.xlsx")

	out, err := execute(t, "", "compare",
		"--left", left, "--left-sheet", "Sheet1",
		"--right", right, "--right-sheet", "Sheet1",
		"--range", "A1:B2", "-o", report, "--format", "json")
	require.NoError(t, err)

	var result models.ComparisonResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []models.Mismatch{{Cell: "B2", Left: "5", Right: "5.00002"}}, result.Mismatches)

	f, err := excelize.OpenFile(report)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Cell", "left.xlsx", "right.xlsx"},
		{"B2", "5", "5.00002"},
	}, rows)
}

func TestCompareCommandPrompts(t *testing.T) {
	dir, left, right := fixtures(t)
	report := filepath.Join(dir, "prompted.xlsx")

	stdin := strings.Join([]string{left, "Sheet1", right, "Sheet1", "A1:B1"}, "\n") + "\n"
	out, err := execute(t, stdin, "compare", "-o", report)
	require.NoError(t, err)

	assert.Contains(t, out, "Enter path for first Excel file: ")
	assert.Contains(t, out, "Enter cell range to compare")
	assert.Contains(t, out, "No mismatches found! "+report+" created.")
	assert.FileExists(t, report)
}

func TestCompareCommandPlacesFromEnv(t *testing.T) {
	dir, left, right := fixtures(t)
	report := filepath.Join(dir, "env.xlsx")
	t.Setenv("DOCCHECK_PLACES", "4")

	out, err := execute(t, "", "compare",
		"--left", left, "--left-sheet", "Sheet1",
		"--right", right, "--right-sheet", "Sheet1",
		"--range", "A1:B2", "-o", report)
	require.NoError(t, err)
	assert.Contains(t, out, "No mismatches found!")
}

func TestCompareCommandFailuresWriteNoReport(t *testing.T) {
	dir, left, right := fixtures(t)
	report := filepath.Join(dir, "never.xlsx")

	_, err := execute(t, "", "compare",
		"--left", left, "--left-sheet", "Sheet1",
		"--right", right, "--right-sheet", "Sheet1",
		"--range", "1A:2B", "-o", report)
	assert.True(t, errors.Is(err, doccheck.ErrInvalidRange), "got %v", err)

	_, err = execute(t, "", "compare",
		"--left", left, "--left-sheet", "Sheet1",
		"--right", right, "--right-sheet", "Missing",
		"--range", "A1:B2", "-o", report)
	assert.True(t, errors.Is(err, doccheck.ErrSheetNotFound), "got %v", err)

	_, err = execute(t, "", "compare",
		"--left", filepath.Join(dir, "nope.xlsx"), "--left-sheet", "Sheet1",
		"--right", right, "--right-sheet", "Sheet1",
		"--range", "A1:B2", "-o", report)
	assert.True(t, errors.Is(err, doccheck.ErrFileNotFound), "got %v", err)

	_, statErr := os.Stat(report)
	assert.True(t, os.IsNotExist(statErr), "report must not exist after a failed run")
}

func TestCompareCommandInvalidFormat(t *testing.T) {
	_, err := execute(t, "", "compare", "--format", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestClassifyCommand(t *testing.T) {
	dir := t.TempDir()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, text := range []string{"Invoice with packing list", "Purchase Order 9", "Notes"} {
		doc.AddPage()
		doc.Cell(40, 10, text)
	}
	pdfPath := filepath.Join(dir, "docs.pdf")
	require.NoError(t, doc.OutputFileAndClose(pdfPath))

	out, err := execute(t, "", "classify", pdfPath)
	require.NoError(t, err)
	assert.Equal(t, "Classification Results:\n"+
		"Page 1: Invoice Page\n"+
		"Page 2: Purchase Order Page\n"+
		"Page 3: Other / Unclassified\n", out)

	config := filepath.Join(dir, "doccheck.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`classify:
  rules:
    - keyword: packing list
      label: Packing List
    - keyword: invoice
      label: Invoice Page
  fallback: Misc
`), 0644))

	out, err = execute(t, pdfPath+"\n", "classify", "--config", config, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter full PDF file path: ")
	assert.Contains(t, out, "- page: 1\n  classification: Packing List\n")
	assert.Contains(t, out, "- page: 2\n  classification: Misc\n")
	assert.Contains(t, out, "- page: 3\n  classification: Misc\n")
}

func TestClassifyCommandMissingConfig(t *testing.T) {
	_, err := execute(t, "", "classify", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "x.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
