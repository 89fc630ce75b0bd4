package rowset

import (
	"math"
	"strconv"
	"strings"
)

// Kind discriminates the scalar variants a warehouse cell can hold.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
)

// Value is one warehouse cell. The zero value is a null.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

func Null() Value { return Value{kind: KindNull} }

func String(s string) Value { return Value{kind: KindString, str: s} }

func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Float coerces the value to a number. Numeric strings are parsed; anything
// that does not coerce cleanly (nulls, booleans, NaN, infinities, free text)
// reports ok=false so aggregates can exclude it instead of counting a zero.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return 0, false
		}
		return v.num, true
	case KindString:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Text renders the value for display. Nulls render as the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// Row maps lower-cased column names to cell values.
type Row map[string]Value

// RowSet is the tabular result of one statement. Columns preserves the
// statement's column order; every row shares the same keys.
type RowSet struct {
	Columns []string
	Rows    []Row
}

func (rs RowSet) Empty() bool { return len(rs.Rows) == 0 }
func (rs RowSet) Len() int    { return len(rs.Rows) }

func (rs RowSet) HasColumn(name string) bool {
	for _, column := range rs.Columns {
		if column == name {
			return true
		}
	}
	return false
}

// Floats collects the coercible values of a column in row order. Rows whose
// cell is missing or non-numeric are skipped.
func (rs RowSet) Floats(column string) []float64 {
	values := make([]float64, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		if parsed, ok := row[column].Float(); ok {
			values = append(values, parsed)
		}
	}
	return values
}

// FirstNumericColumn returns the first column whose values coerce to numbers
// in every row. Used as the chart fallback when the preferred metric column
// is absent from the result schema.
func (rs RowSet) FirstNumericColumn() (string, bool) {
	if rs.Empty() {
		return "", false
	}
	for _, column := range rs.Columns {
		numeric := true
		for _, row := range rs.Rows {
			if _, ok := row[column].Float(); !ok {
				numeric = false
				break
			}
		}
		if numeric {
			return column, true
		}
	}
	return "", false
}
