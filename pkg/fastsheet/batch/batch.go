// Package batch implements the columnar record-batch target that sheet
// loads materialize into: one typed, nullable column per selected sheet
// column, grouped into a single batch.
package batch

import (
	"fmt"

	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/models"
)

// Field describes one column of a record batch.
type Field struct {
	// Name is the field name, unique within a batch (duplicates are
	// aliased at batch construction).
	Name string `json:"name"`
	// DType is the column's logical type.
	DType models.DType `json:"dtype"`
}

// RecordBatch is an immutable set of equal-length typed columns.
type RecordBatch struct {
	fields  []Field
	columns []*Column
	numRows int
}

// New assembles columns into a batch. All columns must have the same length.
// Duplicate field names are disambiguated by appending a numeric suffix:
// the second "foo" becomes "foo_1", the third "foo_2", and so on.
func New(columns []*Column) (*RecordBatch, error) {
	numRows := 0
	fields := make([]Field, 0, len(columns))
	for i, col := range columns {
		if i == 0 {
			numRows = col.Len()
		} else if col.Len() != numRows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", col.field.Name, col.Len(), numRows)
		}
		field := col.field
		field.Name = aliasForName(field.Name, fields)
		fields = append(fields, field)
	}
	return &RecordBatch{fields: fields, columns: columns, numRows: numRows}, nil
}

// aliasForName returns name, or the first "name_{n}" not yet taken.
func aliasForName(name string, fields []Field) string {
	alias := name
	for depth := 1; ; depth++ {
		taken := false
		for _, f := range fields {
			if f.Name == alias {
				taken = true
				break
			}
		}
		if !taken {
			return alias
		}
		alias = fmt.Sprintf("%s_%d", name, depth)
	}
}

// NumRows returns the row count shared by every column.
func (rb *RecordBatch) NumRows() int { return rb.numRows }

// NumCols returns the number of columns.
func (rb *RecordBatch) NumCols() int { return len(rb.columns) }

// Schema returns the batch's fields in column order.
func (rb *RecordBatch) Schema() []Field {
	fields := make([]Field, len(rb.fields))
	copy(fields, rb.fields)
	return fields
}

// Column returns the i-th column.
func (rb *RecordBatch) Column(i int) *Column { return rb.columns[i] }

// Field returns the i-th field, with any duplicate-name alias applied.
func (rb *RecordBatch) Field(i int) Field { return rb.fields[i] }
