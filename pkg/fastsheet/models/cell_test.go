package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCellValueKinds(t *testing.T) {
	assert.Equal(t, KindEmpty, EmptyCell().Kind())
	assert.True(t, EmptyCell().IsEmpty())
	assert.Equal(t, KindBool, BoolCell(true).Kind())
	assert.Equal(t, KindInt, IntCell(1).Kind())
	assert.Equal(t, KindFloat, FloatCell(1.5).Kind())
	assert.Equal(t, KindString, StringCell("x").Kind())
	assert.Equal(t, KindDateTime, DateTimeCell(time.Now()).Kind())
	assert.Equal(t, KindDuration, DurationCell(time.Hour).Kind())
	assert.Equal(t, KindError, ErrorCell("#REF!").Kind())

	// The zero value is the empty cell.
	var zero CellValue
	assert.True(t, zero.IsEmpty())
}

func TestStrictAccessors(t *testing.T) {
	v, ok := IntCell(7).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(7), v)

	_, ok = FloatCell(7).Int()
	assert.False(t, ok, "strict accessors do not coerce")

	s, ok := ErrorCell("#DIV/0!").ErrorMarker()
	assert.True(t, ok)
	assert.Equal(t, "#DIV/0!", s)
}

func TestAsFloat(t *testing.T) {
	f, ok := IntCell(3).AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	f, ok = FloatCell(2.5).AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)

	_, ok = StringCell("3").AsFloat()
	assert.False(t, ok)
	_, ok = EmptyCell().AsFloat()
	assert.False(t, ok)
}

func TestAsInt(t *testing.T) {
	i, ok := FloatCell(4.0).AsInt()
	assert.True(t, ok, "integral floats convert")
	assert.Equal(t, int64(4), i)

	_, ok = FloatCell(4.5).AsInt()
	assert.False(t, ok, "non-integral floats do not convert")
}

func TestAsString(t *testing.T) {
	tests := []struct {
		cell CellValue
		want string
	}{
		{StringCell("hi"), "hi"},
		{BoolCell(true), "true"},
		{IntCell(-3), "-3"},
		{FloatCell(2.5), "2.5"},
		{FloatCell(2019), "2019"},
		{DurationCell(90 * time.Minute), "1h30m0s"},
		{ErrorCell("#NAME?"), "#NAME?"},
	}
	for _, tt := range tests {
		got, ok := tt.cell.AsString()
		assert.True(t, ok)
		assert.Equal(t, tt.want, got)
	}

	_, ok := EmptyCell().AsString()
	assert.False(t, ok, "only empty cells have no string form")
}
