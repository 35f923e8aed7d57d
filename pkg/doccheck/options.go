// Package doccheck compares spreadsheet ranges and classifies PDF pages.
package doccheck

import (
	"github.com/ukaji3/doccheck-go/pkg/doccheck/classify"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/normalize"
)

// SheetRef identifies one sheet of a workbook on disk.
type SheetRef struct {
	// Path is the workbook file path.
	Path string
	// Sheet is the sheet name.
	Sheet string
}

// CompareOptions configures a range comparison.
type CompareOptions struct {
	// Places is the number of fractional digits numbers are rounded to.
	// If nil, defaults to normalize.DefaultPlaces.
	Places *int32
}

// DefaultCompareOptions returns default comparison options.
func DefaultCompareOptions() CompareOptions {
	return CompareOptions{}
}

// DecimalPlaces returns the effective rounding precision.
func (o CompareOptions) DecimalPlaces() int32 {
	if o.Places != nil {
		return *o.Places
	}
	return normalize.DefaultPlaces
}

// ClassifyOptions configures PDF page classification.
type ClassifyOptions struct {
	// Rules are matched in order; the first match wins.
	// If empty, defaults to classify.DefaultRules().
	Rules []classify.Rule
	// Fallback is the label for pages no rule matches.
	Fallback string
}

// DefaultClassifyOptions returns default classification options.
func DefaultClassifyOptions() ClassifyOptions {
	return ClassifyOptions{
		Rules:    classify.DefaultRules(),
		Fallback: classify.DefaultFallback,
	}
}

// EffectiveRules returns the rules to apply.
func (o ClassifyOptions) EffectiveRules() []classify.Rule {
	if len(o.Rules) == 0 {
		return classify.DefaultRules()
	}
	return o.Rules
}
