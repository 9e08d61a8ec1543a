// Package models defines the cell and column data model for sheet loading.
package models

import (
	"fmt"
	"strconv"
	"time"
)

// CellKind identifies the variant held by a CellValue.
type CellKind uint8

const (
	// KindEmpty is a cell with no value.
	KindEmpty CellKind = iota
	// KindBool is a boolean cell.
	KindBool
	// KindInt is an integer cell.
	KindInt
	// KindFloat is a floating-point cell.
	KindFloat
	// KindString is a text cell.
	KindString
	// KindDateTime is a date/time cell.
	KindDateTime
	// KindDuration is an elapsed-time cell.
	KindDuration
	// KindError is a cell holding a spreadsheet error marker (e.g. #DIV/0!).
	KindError
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindDateTime:
		return "datetime"
	case KindDuration:
		return "duration"
	case KindError:
		return "error"
	}
	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

// CellValue is a single decoded cell. It is an immutable tagged union:
// exactly one variant is set, identified by Kind.
type CellValue struct {
	kind CellKind
	b    bool
	i    int64
	f    float64
	s    string // string value, or the error marker for KindError
	t    time.Time
	d    time.Duration
}

// EmptyCell returns the empty cell value.
func EmptyCell() CellValue { return CellValue{kind: KindEmpty} }

// BoolCell returns a boolean cell value.
func BoolCell(v bool) CellValue { return CellValue{kind: KindBool, b: v} }

// IntCell returns an integer cell value.
func IntCell(v int64) CellValue { return CellValue{kind: KindInt, i: v} }

// FloatCell returns a floating-point cell value.
func FloatCell(v float64) CellValue { return CellValue{kind: KindFloat, f: v} }

// StringCell returns a text cell value.
func StringCell(v string) CellValue { return CellValue{kind: KindString, s: v} }

// DateTimeCell returns a date/time cell value.
func DateTimeCell(v time.Time) CellValue { return CellValue{kind: KindDateTime, t: v} }

// DurationCell returns an elapsed-time cell value.
func DurationCell(v time.Duration) CellValue { return CellValue{kind: KindDuration, d: v} }

// ErrorCell returns a cell holding a spreadsheet error marker.
func ErrorCell(marker string) CellValue { return CellValue{kind: KindError, s: marker} }

// Kind returns the variant held by the cell.
func (c CellValue) Kind() CellKind { return c.kind }

// IsEmpty reports whether the cell holds no value.
func (c CellValue) IsEmpty() bool { return c.kind == KindEmpty }

// Bool returns the boolean value. ok is false for any other variant.
func (c CellValue) Bool() (v, ok bool) { return c.b, c.kind == KindBool }

// Int returns the integer value. ok is false for any other variant.
func (c CellValue) Int() (int64, bool) { return c.i, c.kind == KindInt }

// Float returns the floating-point value. ok is false for any other variant.
func (c CellValue) Float() (float64, bool) { return c.f, c.kind == KindFloat }

// Str returns the text value. ok is false for any other variant.
func (c CellValue) Str() (string, bool) { return c.s, c.kind == KindString }

// DateTime returns the date/time value. ok is false for any other variant.
func (c CellValue) DateTime() (time.Time, bool) { return c.t, c.kind == KindDateTime }

// Duration returns the elapsed-time value. ok is false for any other variant.
func (c CellValue) Duration() (time.Duration, bool) { return c.d, c.kind == KindDuration }

// ErrorMarker returns the error marker text. ok is false for any other variant.
func (c CellValue) ErrorMarker() (string, bool) { return c.s, c.kind == KindError }

// AsFloat returns the cell as a float64. Int cells are widened; ok is false
// for every non-numeric variant.
func (c CellValue) AsFloat() (float64, bool) {
	switch c.kind {
	case KindFloat:
		return c.f, true
	case KindInt:
		return float64(c.i), true
	}
	return 0, false
}

// AsInt returns the cell as an int64. Float cells convert only when they
// represent an integer exactly; ok is false otherwise.
func (c CellValue) AsInt() (int64, bool) {
	switch c.kind {
	case KindInt:
		return c.i, true
	case KindFloat:
		if c.f == float64(int64(c.f)) {
			return int64(c.f), true
		}
	}
	return 0, false
}

// AsString returns a textual rendering of any non-empty cell. ok is false
// only for empty cells.
func (c CellValue) AsString() (string, bool) {
	switch c.kind {
	case KindString, KindError:
		return c.s, true
	case KindBool:
		return strconv.FormatBool(c.b), true
	case KindInt:
		return strconv.FormatInt(c.i, 10), true
	case KindFloat:
		return strconv.FormatFloat(c.f, 'f', -1, 64), true
	case KindDateTime:
		return c.t.Format(time.RFC3339), true
	case KindDuration:
		return c.d.String(), true
	}
	return "", false
}
