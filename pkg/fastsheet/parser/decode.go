// Package parser decodes spreadsheet files into immutable cell grids.
package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/models"
)

// CellGrid is a fully-materialized, rectangular, read-only view of a sheet's
// decoded cells. Ragged source rows are padded with empty cells so every row
// has the same width.
type CellGrid struct {
	rows  [][]models.CellValue
	width int
}

// NewCellGrid builds a grid from decoded rows, padding ragged rows to the
// widest one.
func NewCellGrid(rows [][]models.CellValue) *CellGrid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	padded := make([][]models.CellValue, len(rows))
	for i, row := range rows {
		if len(row) == width {
			padded[i] = row
			continue
		}
		p := make([]models.CellValue, width)
		copy(p, row)
		padded[i] = p
	}
	return &CellGrid{rows: padded, width: width}
}

// Rows returns the number of physical rows.
func (g *CellGrid) Rows() int { return len(g.rows) }

// Cols returns the number of physical columns.
func (g *CellGrid) Cols() int { return g.width }

// Cell returns the value at (row, col). Positions outside the grid are empty.
func (g *CellGrid) Cell(row, col int) models.CellValue {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= g.width {
		return models.EmptyCell()
	}
	return g.rows[row][col]
}

// DecodeGrid reads every cell of a sheet into a CellGrid.
// Cell strings are classified using the cell's stored type where the file
// provides one, falling back to value sniffing for untyped cells.
func DecodeGrid(f *excelize.File, sheetName string) (*CellGrid, error) {
	rawRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	rows := make([][]models.CellValue, len(rawRows))
	for rowIdx, rawRow := range rawRows {
		cells := make([]models.CellValue, len(rawRow))
		for colIdx, raw := range rawRow {
			if raw == "" {
				cells[colIdx] = models.EmptyCell()
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = decodeCell(raw, cellType)
		}
		rows[rowIdx] = cells
	}
	return NewCellGrid(rows), nil
}

// decodeCell converts one formatted cell string into a CellValue.
func decodeCell(raw string, cellType excelize.CellType) models.CellValue {
	switch cellType {
	case excelize.CellTypeBool:
		return models.BoolCell(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeError:
		return models.ErrorCell(raw)
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return models.StringCell(raw)
	case excelize.CellTypeDate:
		if t, ok := parseDateTime(raw); ok {
			return models.DateTimeCell(t)
		}
		return models.StringCell(raw)
	}
	return sniffValue(raw)
}

// sniffValue classifies a cell whose stored type does not determine the
// value kind: numbers, then durations, then datetimes, then plain text.
// Numbers always decode as floats: xlsx stores every numeric cell as a
// 64-bit double, so an integer-looking cell carries no integer intent.
func sniffValue(s string) models.CellValue {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.FloatCell(f)
	}
	if d, ok := parseDuration(s); ok {
		return models.DurationCell(d)
	}
	if t, ok := parseDateTime(s); ok {
		return models.DateTimeCell(t)
	}
	return models.StringCell(s)
}

// dateTimeLayouts are tried in order when sniffing a datetime out of a
// formatted cell string.
var dateTimeLayouts = [...]string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"1/2/06 15:04",
	"01-02-06",
	"01/02/2006",
	"1/2/2006",
	"2-Jan-06",
}

func parseDateTime(s string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseDuration parses elapsed-time strings of the form H:MM or H:MM:SS.
// Hours are unbounded (Excel renders durations over a day as e.g. 36:30:00).
func parseDuration(s string) (time.Duration, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || hours < 0 {
		return 0, false
	}
	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || minutes < 0 || minutes > 59 || len(parts[1]) != 2 {
		return 0, false
	}
	var seconds int64
	if len(parts) == 3 {
		seconds, err = strconv.ParseInt(parts[2], 10, 64)
		if err != nil || seconds < 0 || seconds > 59 || len(parts[2]) != 2 {
			return 0, false
		}
	}
	d := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second
	return d, true
}
