package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/models"
)

func TestDecodeGrid(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Header1"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "Header2"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", 100))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 200.5))
	require.NoError(t, f.SetCellValue(sheetName, "A3", "Text"))
	require.NoError(t, f.SetCellBool(sheetName, "B3", true))

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))

	f2, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f2.Close()

	grid, err := DecodeGrid(f2, sheetName)
	require.NoError(t, err)

	assert.Equal(t, 3, grid.Rows())
	assert.Equal(t, 2, grid.Cols())

	s, ok := grid.Cell(0, 0).Str()
	assert.True(t, ok)
	assert.Equal(t, "Header1", s)

	// xlsx numbers are doubles: integer-looking cells decode as floats.
	v, ok := grid.Cell(1, 0).Float()
	assert.True(t, ok)
	assert.Equal(t, 100.0, v)
	v, ok = grid.Cell(1, 1).Float()
	assert.True(t, ok)
	assert.Equal(t, 200.5, v)

	b, ok := grid.Cell(2, 1).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	assert.True(t, grid.Cell(10, 10).IsEmpty(), "out of bounds reads as empty")
}

func TestNewCellGridPadsRaggedRows(t *testing.T) {
	grid := NewCellGrid([][]models.CellValue{
		{models.StringCell("a"), models.StringCell("b"), models.StringCell("c")},
		{models.StringCell("d")},
	})

	assert.Equal(t, 2, grid.Rows())
	assert.Equal(t, 3, grid.Cols())
	assert.True(t, grid.Cell(1, 1).IsEmpty())
	assert.True(t, grid.Cell(1, 2).IsEmpty())
}

func TestSniffValue(t *testing.T) {
	tests := []struct {
		input string
		want  models.CellValue
	}{
		{"123", models.FloatCell(123)},
		{"123.45", models.FloatCell(123.45)},
		{"-100", models.FloatCell(-100)},
		{"1e3", models.FloatCell(1000)},
		{"12:30", models.DurationCell(12*time.Hour + 30*time.Minute)},
		{"36:30:00", models.DurationCell(36*time.Hour + 30*time.Minute)},
		{"2021-03-04", models.DateTimeCell(time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC))},
		{"hello", models.StringCell("hello")},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, sniffValue(tt.input))
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
		ok    bool
	}{
		{"1:02:03", time.Hour + 2*time.Minute + 3*time.Second, true},
		{"0:05", 5 * time.Minute, true},
		{"100:00:00", 100 * time.Hour, true},
		{"1:2:3", 0, false},  // minutes and seconds need two digits
		{"1:99:00", 0, false},
		{"x:00", 0, false},
		{"1", 0, false},
		{"1:00:00:00", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseDuration(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
