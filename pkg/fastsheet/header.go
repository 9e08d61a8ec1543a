package fastsheet

import (
	"fmt"
	"strings"

	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/models"
	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/parser"
)

// generatedName returns the synthetic name for an unnamed column.
// The same scheme applies whether the header cell is blank or the sheet has
// no header row at all.
func generatedName(index int) string {
	return fmt.Sprintf("__UNNAMED__%d", index)
}

// resolveColumnNames produces name and provenance for every physical column.
// Precedence: explicit overrides, then header-row lookup, then generated
// names. DTypes are filled in by inference afterwards.
func resolveColumnNames(grid *parser.CellGrid, headerRow *int, overrides []string) ([]models.ColumnInfo, error) {
	width := grid.Cols()
	if len(overrides) > width {
		return nil, newError(ErrInvalidParameters,
			"expected at most %d column names, got %d", width, len(overrides)).
			withContext("provided column names: %v", overrides)
	}

	columns := make([]models.ColumnInfo, width)
	for idx := range columns {
		name, from := columnName(grid, headerRow, overrides, idx)
		columns[idx] = models.ColumnInfo{
			Name:      name,
			Index:     idx,
			NameFrom:  from,
			DType:     models.DTypeNull,
			DTypeFrom: models.DTypeFromGuessed,
		}
	}
	return columns, nil
}

func columnName(grid *parser.CellGrid, headerRow *int, overrides []string, idx int) (string, models.ColumnNameFrom) {
	if len(overrides) > 0 {
		if idx < len(overrides) {
			return overrides[idx], models.ColumnNameFromProvided
		}
		return generatedName(idx), models.ColumnNameFromGenerated
	}
	if headerRow != nil {
		if s, ok := grid.Cell(*headerRow, idx).AsString(); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s, models.ColumnNameFromLookedUp
			}
		}
	}
	return generatedName(idx), models.ColumnNameFromGenerated
}
