// Package output serializes materialized sheets for the CLI.
package output

import (
	"encoding/json"
	"time"

	"github.com/fastsheet/fastsheet-go/pkg/fastsheet"
	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/models"
)

// ColumnDocument is one output column: its metadata plus the materialized
// values, nulls as JSON null.
type ColumnDocument struct {
	models.ColumnInfo
	Values []any `json:"values"`
}

// SheetDocument is the JSON form of a materialized sheet.
type SheetDocument struct {
	Name        string           `json:"name"`
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	TotalHeight int              `json:"total_height"`
	Columns     []ColumnDocument `json:"columns"`
}

// Document materializes the sheet and builds its JSON form. Field names
// carry any duplicate aliases applied at the batch boundary.
func Document(sheet *fastsheet.Sheet) (*SheetDocument, error) {
	rb, err := sheet.Materialize()
	if err != nil {
		return nil, err
	}

	selected := sheet.SelectedColumns()
	columns := make([]ColumnDocument, rb.NumCols())
	for i := 0; i < rb.NumCols(); i++ {
		col := rb.Column(i)
		values := make([]any, col.Len())
		for row := 0; row < col.Len(); row++ {
			values[row] = jsonValue(col.Value(row))
		}
		info := selected[i]
		info.Name = rb.Field(i).Name
		columns[i] = ColumnDocument{ColumnInfo: info, Values: values}
	}

	return &SheetDocument{
		Name:        sheet.Name(),
		Width:       sheet.Width(),
		Height:      sheet.Height(),
		TotalHeight: sheet.TotalHeight(),
		Columns:     columns,
	}, nil
}

// jsonValue renders durations as strings; everything else marshals natively.
func jsonValue(v any) any {
	if d, ok := v.(time.Duration); ok {
		return d.String()
	}
	return v
}

// ToJSON serializes a sheet document to JSON.
func ToJSON(doc *SheetDocument, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}
