package batch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/models"
)

func TestBuilderFloatColumn(t *testing.T) {
	b, err := NewBuilder(Field{Name: "f", DType: models.DTypeFloat})
	require.NoError(t, err)

	b.Append(models.FloatCell(1.5))
	b.Append(models.IntCell(2))
	b.Append(models.EmptyCell())
	b.Append(models.StringCell("not a number"))
	col := b.Finish()

	require.Equal(t, 4, col.Len())
	v, ok := col.FloatAt(0)
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)
	v, ok = col.FloatAt(1)
	assert.True(t, ok, "ints widen into float columns")
	assert.Equal(t, 2.0, v)
	assert.True(t, col.IsNull(2))
	assert.True(t, col.IsNull(3), "non-coercible cells append as null")
	assert.Nil(t, col.Value(2))
}

func TestBuilderStringColumnStringifies(t *testing.T) {
	b, err := NewBuilder(Field{Name: "s", DType: models.DTypeString})
	require.NoError(t, err)

	b.Append(models.StringCell("x"))
	b.Append(models.FloatCell(2019))
	b.Append(models.BoolCell(false))
	b.Append(models.ErrorCell("#DIV/0!"))
	b.Append(models.EmptyCell())
	col := b.Finish()

	assert.Equal(t, any("x"), col.Value(0))
	assert.Equal(t, any("2019"), col.Value(1))
	assert.Equal(t, any("false"), col.Value(2))
	assert.Equal(t, any("#DIV/0!"), col.Value(3))
	assert.True(t, col.IsNull(4))
}

func TestBuilderNullColumn(t *testing.T) {
	b, err := NewBuilder(Field{Name: "n", DType: models.DTypeNull})
	require.NoError(t, err)

	b.Append(models.EmptyCell())
	b.Append(models.EmptyCell())
	col := b.Finish()

	assert.Equal(t, 2, col.Len())
	assert.True(t, col.IsNull(0))
	assert.True(t, col.IsNull(1))
}

func TestBuilderTemporalColumns(t *testing.T) {
	when := time.Date(2020, 2, 1, 12, 0, 0, 0, time.UTC)

	b, err := NewBuilder(Field{Name: "t", DType: models.DTypeDateTime})
	require.NoError(t, err)
	b.Append(models.DateTimeCell(when))
	col := b.Finish()
	got, ok := col.TimeAt(0)
	assert.True(t, ok)
	assert.Equal(t, when, got)

	b, err = NewBuilder(Field{Name: "d", DType: models.DTypeDuration})
	require.NoError(t, err)
	b.Append(models.DurationCell(90 * time.Minute))
	col = b.Finish()
	d, ok := col.DurationAt(0)
	assert.True(t, ok)
	assert.Equal(t, 90*time.Minute, d)
}

func TestNewBuilderUnknownDType(t *testing.T) {
	_, err := NewBuilder(Field{Name: "x", DType: models.DType("decimal128")})
	require.Error(t, err)
}

func TestNewBatchAliasesDuplicateNames(t *testing.T) {
	mk := func(name string, values ...float64) *Column {
		b, err := NewBuilder(Field{Name: name, DType: models.DTypeFloat})
		require.NoError(t, err)
		for _, v := range values {
			b.Append(models.FloatCell(v))
		}
		return b.Finish()
	}

	rb, err := New([]*Column{mk("a", 1), mk("a", 2), mk("a", 3), mk("a_1", 4)})
	require.NoError(t, err)

	require.Equal(t, 4, rb.NumCols())
	assert.Equal(t, 1, rb.NumRows())
	assert.Equal(t, "a", rb.Field(0).Name)
	assert.Equal(t, "a_1", rb.Field(1).Name)
	assert.Equal(t, "a_2", rb.Field(2).Name)
	assert.Equal(t, "a_1_1", rb.Field(3).Name, "aliases themselves stay unique")
}

func TestNewBatchRejectsRaggedColumns(t *testing.T) {
	b1, err := NewBuilder(Field{Name: "a", DType: models.DTypeFloat})
	require.NoError(t, err)
	b1.Append(models.FloatCell(1))

	b2, err := NewBuilder(Field{Name: "b", DType: models.DTypeFloat})
	require.NoError(t, err)
	b2.Append(models.FloatCell(1))
	b2.Append(models.FloatCell(2))

	_, err = New([]*Column{b1.Finish(), b2.Finish()})
	require.Error(t, err)
}
