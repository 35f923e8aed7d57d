// Package models defines data structures for range comparison and page classification.
package models

// CellKind identifies how a raw cell value was stored.
type CellKind int

const (
	// CellEmpty is an absent cell or a cell without a value.
	CellEmpty CellKind = iota
	// CellNumber is a numeric cell; Raw holds the stored number text.
	CellNumber
	// CellText is a string cell (shared, inline, formula string or error value).
	CellText
	// CellBool is a boolean cell; Raw holds "TRUE" or "FALSE".
	CellBool
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case CellNumber:
		return "number"
	case CellText:
		return "text"
	case CellBool:
		return "bool"
	default:
		return "empty"
	}
}

// CellValue represents a raw value read from a single cell.
type CellValue struct {
	// Kind is the stored value kind.
	Kind CellKind `json:"kind" yaml:"kind"`
	// Raw is the value as stored in the workbook (empty for CellEmpty).
	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// Empty returns the absent cell value.
func Empty() CellValue {
	return CellValue{Kind: CellEmpty}
}

// Number returns a numeric cell value holding the given stored text.
func Number(raw string) CellValue {
	return CellValue{Kind: CellNumber, Raw: raw}
}

// Text returns a string cell value.
func Text(raw string) CellValue {
	return CellValue{Kind: CellText, Raw: raw}
}

// Bool returns a boolean cell value.
func Bool(b bool) CellValue {
	if b {
		return CellValue{Kind: CellBool, Raw: "TRUE"}
	}
	return CellValue{Kind: CellBool, Raw: "FALSE"}
}

// String renders the raw value; an absent value renders as empty text.
func (v CellValue) String() string {
	if v.Kind == CellEmpty {
		return ""
	}
	return v.Raw
}
