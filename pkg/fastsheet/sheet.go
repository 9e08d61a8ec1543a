package fastsheet

import (
	"github.com/tiendc/go-deepcopy"

	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/batch"
	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/models"
	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/parser"
)

// Sheet is one loaded sheet: the resolved row window, the full column
// metadata, and the selected subset. It is immutable after construction and
// owned exclusively by the caller that loaded it.
type Sheet struct {
	name      string
	grid      *parser.CellGrid
	window    rowWindow
	available []models.ColumnInfo
	selected  []models.ColumnInfo
}

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// Width returns the number of available columns.
func (s *Sheet) Width() int { return len(s.available) }

// Height returns the number of rows materialized under the header/skip/
// n-rows bounds.
func (s *Sheet) Height() int { return s.window.height() }

// TotalHeight returns the sheet's full data row count, ignoring skip and
// n-rows bounds but excluding a declared header row.
func (s *Sheet) TotalHeight() int { return s.window.totalHeight }

// AvailableColumns returns metadata for every physical column of the sheet.
func (s *Sheet) AvailableColumns() []models.ColumnInfo {
	return copyColumns(s.available)
}

// SelectedColumns returns metadata for the selected columns, in the order
// requested by the selector. It is a subsequence of AvailableColumns by
// index, with duplicates preserved when the selector repeated an index.
func (s *Sheet) SelectedColumns() []models.ColumnInfo {
	return copyColumns(s.selected)
}

// Materialize extracts the selected columns over the resolved row window
// into a record batch. Every column holds exactly Height values; empty
// cells appear as nulls.
func (s *Sheet) Materialize() (*batch.RecordBatch, error) {
	columns := make([]*batch.Column, 0, len(s.selected))
	for _, info := range s.selected {
		builder, err := batch.NewBuilder(batch.Field{Name: info.Name, DType: info.DType})
		if err != nil {
			return nil, wrapError(ErrUnsupportedColumnTypeCombination, err,
				"could not convert column %q of sheet %q to a record batch", info.Name, s.name)
		}
		for row := s.window.start; row < s.window.end; row++ {
			builder.Append(s.grid.Cell(row, info.Index))
		}
		columns = append(columns, builder.Finish())
	}

	rb, err := batch.New(columns)
	if err != nil {
		return nil, wrapError(ErrUnsupportedColumnTypeCombination, err,
			"could not convert sheet %q to a record batch", s.name)
	}
	return rb, nil
}

// copyColumns returns a deep copy so callers cannot alias the sheet's
// internal metadata.
func copyColumns(cols []models.ColumnInfo) []models.ColumnInfo {
	out := make([]models.ColumnInfo, 0, len(cols))
	if err := deepcopy.Copy(&out, cols); err != nil {
		out = append(out[:0], cols...)
	}
	return out
}
