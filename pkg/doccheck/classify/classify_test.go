package classify

import (
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/models"
)

func TestClassifyDefaultRules(t *testing.T) {
	c := New(DefaultRules(), "")

	tests := []struct {
		text     string
		expected string
	}{
		{"TAX INVOICE #1001", "Invoice Page"},
		{"Purchase Order 55", "Purchase Order Page"},
		{"packing LIST for shipment", "Packing List"},
		{"Terms and conditions", DefaultFallback},
		{"", DefaultFallback},
		// Priority order: invoice wins over purchase order.
		{"Purchase order referenced on invoice", "Invoice Page"},
		{"Packing list attached to purchase order", "Purchase Order Page"},
		// Substring containment, not word matching.
		{"invoices", "Invoice Page"},
		{"purchase  order", DefaultFallback},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, c.Classify(tt.text), "text %q", tt.text)
	}
}

func TestClassifyCustomPriority(t *testing.T) {
	c := New([]Rule{
		{Keyword: "  Packing List ", Label: "Packing List"},
		{Keyword: "", Label: "ignored"},
		{Keyword: "invoice", Label: "Invoice Page"},
	}, "Unknown")

	assert.Equal(t, "Packing List", c.Classify("Invoice with packing list"))
	assert.Equal(t, "Unknown", c.Classify("nothing here"))
	assert.Equal(t, []Rule{
		{Keyword: "packing list", Label: "Packing List"},
		{Keyword: "invoice", Label: "Invoice Page"},
	}, c.Rules())
}

func TestClassifyPages(t *testing.T) {
	c := New(DefaultRules(), "")

	result := c.ClassifyPages([]string{"invoice", "", "Packing List"})
	assert.Equal(t, []models.PageClassification{
		{Page: 1, Label: "Invoice Page"},
		{Page: 2, Label: DefaultFallback},
		{Page: 3, Label: "Packing List"},
	}, result)

	assert.Empty(t, c.ClassifyPages(nil))
}

func writeTestPDF(t *testing.T, pages []string) string {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, text := range pages {
		doc.AddPage()
		if text != "" {
			doc.Cell(40, 10, text)
		}
	}
	path := filepath.Join(t.TempDir(), "test.pdf")
	require.NoError(t, doc.OutputFileAndClose(path))
	return path
}

func TestExtractPages(t *testing.T) {
	path := writeTestPDF(t, []string{
		"Commercial Invoice 2024-001",
		"",
		"PURCHASE ORDER PO-7",
		"Packing list",
		"Delivery notes",
	})

	texts, err := ExtractPages(path)
	require.NoError(t, err)
	require.Len(t, texts, 5)
	assert.Contains(t, texts[0], "Commercial Invoice")
	assert.Empty(t, texts[1])

	result := New(DefaultRules(), "").ClassifyPages(texts)
	assert.Equal(t, []models.PageClassification{
		{Page: 1, Label: "Invoice Page"},
		{Page: 2, Label: DefaultFallback},
		{Page: 3, Label: "Purchase Order Page"},
		{Page: 4, Label: "Packing List"},
		{Page: 5, Label: DefaultFallback},
	}, result)
}

func TestExtractPagesMissingFile(t *testing.T) {
	_, err := ExtractPages(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
