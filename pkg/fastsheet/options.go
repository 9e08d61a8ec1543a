// Package fastsheet loads tabular data out of spreadsheet files and exposes
// it as typed, columnar record batches.
package fastsheet

// DefaultSchemaSampleRows is the number of data rows sampled per column to
// infer its dtype when LoadOptions does not say otherwise.
const DefaultSchemaSampleRows = 1000

// LoadOptions configures a single sheet load. The zero value loads a sheet
// with no header row, no skipping, every row, every column, and the default
// inference sample. Use DefaultLoadOptions for the conventional
// header-on-first-row defaults.
type LoadOptions struct {
	// HeaderRow is the physical index of the row holding column labels.
	// If nil, the sheet has no header row and data starts at row 0.
	HeaderRow *int
	// ColumnNames overrides column names positionally. When set, HeaderRow
	// is ignored for naming (the row-window logic still applies). Columns
	// beyond the provided names get generated names.
	ColumnNames []string
	// SkipRows is the number of data rows skipped after the header-derived
	// start.
	SkipRows int
	// NRows caps the number of materialized rows. If nil, all remaining
	// rows are loaded.
	NRows *int
	// SchemaSampleRows is the number of data rows sampled per column for
	// dtype inference. If nil, every materialized row is sampled.
	SchemaSampleRows *int
	// UseColumns selects which columns to extract. If nil, all available
	// columns are selected in physical order.
	UseColumns *ColumnSelector
}

// DefaultLoadOptions returns the conventional load configuration: header on
// row 0, no skipping, all rows, all columns, dtype inferred from the first
// 1000 data rows.
func DefaultLoadOptions() LoadOptions {
	headerRow := 0
	sampleRows := DefaultSchemaSampleRows
	return LoadOptions{
		HeaderRow:        &headerRow,
		SchemaSampleRows: &sampleRows,
	}
}

// validate rejects semantically invalid options before any decoding work.
func (o LoadOptions) validate() error {
	if o.HeaderRow != nil && *o.HeaderRow < 0 {
		return newError(ErrInvalidParameters, "expected header_row to be >= 0, got %d", *o.HeaderRow)
	}
	if o.SkipRows < 0 {
		return newError(ErrInvalidParameters, "expected skip_rows to be >= 0, got %d", o.SkipRows)
	}
	if o.NRows != nil && *o.NRows < 0 {
		return newError(ErrInvalidParameters, "expected n_rows to be >= 0, got %d", *o.NRows)
	}
	if o.SchemaSampleRows != nil && *o.SchemaSampleRows < 0 {
		return newError(ErrInvalidParameters, "expected schema_sample_rows to be >= 0, got %d", *o.SchemaSampleRows)
	}
	return nil
}

// Int returns a pointer to v, for filling optional int fields.
func Int(v int) *int { return &v }
