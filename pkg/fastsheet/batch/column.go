package batch

import (
	"fmt"
	"time"

	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/models"
)

// Column is a typed, nullable value sequence. Exactly one of the typed
// slices is populated, matching the field's dtype; valid marks non-null
// positions.
type Column struct {
	field Field
	valid []bool

	floats    []float64
	ints      []int64
	strings   []string
	bools     []bool
	times     []time.Time
	durations []time.Duration
}

// Len returns the number of values, nulls included.
func (c *Column) Len() int { return len(c.valid) }

// IsNull reports whether position i holds no value.
func (c *Column) IsNull(i int) bool { return !c.valid[i] }

// Value returns the value at position i as an interface, or nil when null.
func (c *Column) Value(i int) any {
	if !c.valid[i] {
		return nil
	}
	switch c.field.DType {
	case models.DTypeFloat:
		return c.floats[i]
	case models.DTypeInt:
		return c.ints[i]
	case models.DTypeString:
		return c.strings[i]
	case models.DTypeBool:
		return c.bools[i]
	case models.DTypeDateTime:
		return c.times[i]
	case models.DTypeDuration:
		return c.durations[i]
	}
	return nil
}

// FloatAt returns the float value at i. ok is false for nulls or non-float
// columns.
func (c *Column) FloatAt(i int) (float64, bool) {
	if c.field.DType != models.DTypeFloat || !c.valid[i] {
		return 0, false
	}
	return c.floats[i], true
}

// IntAt returns the integer value at i. ok is false for nulls or non-int
// columns.
func (c *Column) IntAt(i int) (int64, bool) {
	if c.field.DType != models.DTypeInt || !c.valid[i] {
		return 0, false
	}
	return c.ints[i], true
}

// StringAt returns the string value at i. ok is false for nulls or
// non-string columns.
func (c *Column) StringAt(i int) (string, bool) {
	if c.field.DType != models.DTypeString || !c.valid[i] {
		return "", false
	}
	return c.strings[i], true
}

// BoolAt returns the boolean value at i. ok is false for nulls or non-bool
// columns.
func (c *Column) BoolAt(i int) (bool, bool) {
	if c.field.DType != models.DTypeBool || !c.valid[i] {
		return false, false
	}
	return c.bools[i], true
}

// TimeAt returns the datetime value at i. ok is false for nulls or
// non-datetime columns.
func (c *Column) TimeAt(i int) (time.Time, bool) {
	if c.field.DType != models.DTypeDateTime || !c.valid[i] {
		return time.Time{}, false
	}
	return c.times[i], true
}

// DurationAt returns the duration value at i. ok is false for nulls or
// non-duration columns.
func (c *Column) DurationAt(i int) (time.Duration, bool) {
	if c.field.DType != models.DTypeDuration || !c.valid[i] {
		return 0, false
	}
	return c.durations[i], true
}

// Builder appends cell values to a column under the field's dtype. Cells
// that cannot coerce to the dtype append as null, so a finished column
// always has one slot per appended cell.
type Builder struct {
	col *Column
}

// NewBuilder creates a builder for the given field. It fails when the
// field's dtype is not one the batch layer can represent.
func NewBuilder(field Field) (*Builder, error) {
	switch field.DType {
	case models.DTypeNull, models.DTypeFloat, models.DTypeInt, models.DTypeString,
		models.DTypeBool, models.DTypeDateTime, models.DTypeDuration:
		return &Builder{col: &Column{field: field}}, nil
	}
	return nil, fmt.Errorf("no column representation for dtype %q", field.DType)
}

// Append adds one cell to the column, coercing it to the field's dtype.
// Empty and non-coercible cells append as null.
func (b *Builder) Append(cell models.CellValue) {
	c := b.col
	switch c.field.DType {
	case models.DTypeFloat:
		v, ok := cell.AsFloat()
		c.floats = append(c.floats, v)
		c.valid = append(c.valid, ok)
	case models.DTypeInt:
		v, ok := cell.AsInt()
		c.ints = append(c.ints, v)
		c.valid = append(c.valid, ok)
	case models.DTypeString:
		v, ok := cell.AsString()
		c.strings = append(c.strings, v)
		c.valid = append(c.valid, ok)
	case models.DTypeBool:
		v, ok := cell.Bool()
		c.bools = append(c.bools, v)
		c.valid = append(c.valid, ok)
	case models.DTypeDateTime:
		v, ok := cell.DateTime()
		c.times = append(c.times, v)
		c.valid = append(c.valid, ok)
	case models.DTypeDuration:
		v, ok := cell.Duration()
		c.durations = append(c.durations, v)
		c.valid = append(c.valid, ok)
	default:
		c.valid = append(c.valid, false)
	}
}

// Finish returns the built column. The builder must not be reused.
func (b *Builder) Finish() *Column { return b.col }
