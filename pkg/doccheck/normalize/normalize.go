// Package normalize maps raw cell values to canonical forms so that values
// representing the same rounded number, or the same text ignoring case and
// surrounding whitespace, compare equal.
package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/models"
)

// DefaultPlaces is the default number of fractional digits kept when rounding.
const DefaultPlaces = 5

// floatDigits is the number of significant digits a binary float is rendered
// with before it is parsed as an exact decimal.
const floatDigits = 15

// maxDigits bounds the digits of a rounded number. Numbers needing more are
// compared as text.
const maxDigits = 28

// Kind identifies the canonical form of a Value.
type Kind int

const (
	// KindEmpty marks an absent cell.
	KindEmpty Kind = iota
	// KindNumber is a rounded decimal in fixed-point notation.
	KindNumber
	// KindText is lowercase, whitespace-trimmed text.
	KindText
)

// Value is the canonical form of a cell value. Values are comparable with ==.
type Value struct {
	Kind Kind
	Text string
}

// String returns the canonical text. The empty marker renders as "".
func (v Value) String() string {
	return v.Text
}

// Normalizer converts cell values to canonical form at a fixed precision.
type Normalizer struct {
	places int32
}

// New returns a Normalizer rounding numbers to places fractional digits.
func New(places int32) (*Normalizer, error) {
	if places < 0 {
		return nil, fmt.Errorf("decimal places must not be negative, got %d", places)
	}
	return &Normalizer{places: places}, nil
}

// Places returns the configured number of fractional digits.
func (n *Normalizer) Places() int32 {
	return n.places
}

// Normalize returns the canonical form of v.
func (n *Normalizer) Normalize(v models.CellValue) Value {
	switch v.Kind {
	case models.CellEmpty:
		return Value{Kind: KindEmpty}
	case models.CellBool:
		d := decimal.Zero
		if v.Raw == "TRUE" {
			d = decimal.NewFromInt(1)
		}
		num, _ := n.number(d)
		return num
	case models.CellNumber:
		if d, ok := parseStoredNumber(v.Raw); ok {
			if num, ok := n.number(d); ok {
				return num
			}
		}
	}
	return n.NormalizeText(v.Raw)
}

// NormalizeText normalizes s as the content of a text cell: numeric text is
// rounded like a number, anything else is trimmed and lowercased.
func (n *Normalizer) NormalizeText(s string) Value {
	trimmed := strings.TrimSpace(s)
	if d, err := decimal.NewFromString(trimmed); err == nil {
		if num, ok := n.number(d); ok {
			return num
		}
	}
	return Value{Kind: KindText, Text: strings.ToLower(trimmed)}
}

// Equal reports whether a and b normalize to the same canonical form.
func (n *Normalizer) Equal(a, b models.CellValue) bool {
	return n.Normalize(a) == n.Normalize(b)
}

// number rounds d to the configured places. It reports false when the
// rounded value would need more than maxDigits digits.
func (n *Normalizer) number(d decimal.Decimal) (Value, bool) {
	if d.IsZero() {
		return Value{Kind: KindNumber, Text: decimal.Zero.StringFixed(n.places)}, true
	}
	coef := d.Coefficient()
	// |d| < 10^intDigits
	intDigits := int64(len(coef.Abs(coef).String())) + int64(d.Exponent())
	if intDigits+int64(n.places) > maxDigits {
		return Value{}, false
	}
	if intDigits < -int64(n.places) {
		// Below half a unit in the last place: rounds to zero.
		return Value{Kind: KindNumber, Text: decimal.Zero.StringFixed(n.places)}, true
	}
	return Value{Kind: KindNumber, Text: d.Round(n.places).StringFixed(n.places)}, true
}

// parseStoredNumber parses the text of a numeric cell. Integers are taken
// exactly; anything else went through a binary float and is first rendered
// with floatDigits significant digits to drop representation noise.
func parseStoredNumber(raw string) (decimal.Decimal, bool) {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return decimal.NewFromInt(i), true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(f, 'g', floatDigits, 64))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
