package fastsheet

import (
	"github.com/xuri/excelize/v2"

	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/models"
	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/parser"
)

// Reader is an open spreadsheet file. It owns the decoded container and the
// ordered sheet name list; each load call is independent, side-effect-free
// on the reader, and produces a fresh Sheet. A Reader is not safe for
// concurrent use.
type Reader struct {
	file       *excelize.File
	sheetNames []string
}

// OpenFile opens a spreadsheet file for reading.
func OpenFile(path string) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, wrapError(ErrWorkbook, err, "could not open workbook %q", path)
	}
	return &Reader{file: f, sheetNames: f.GetSheetList()}, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// SheetNames returns the workbook's sheet names in workbook order.
func (r *Reader) SheetNames() []string {
	names := make([]string, len(r.sheetNames))
	copy(names, r.sheetNames)
	return names
}

// LoadSheetByName loads the named sheet under the given options.
func (r *Reader) LoadSheetByName(name string, opts LoadOptions) (*Sheet, error) {
	for _, sheetName := range r.sheetNames {
		if sheetName == name {
			return r.loadSheet(name, opts)
		}
	}
	return nil, newError(ErrSheetNotFound, "sheet with name %q not found", name).
		withContext("available sheets are: %v", r.sheetNames)
}

// LoadSheetByIdx loads the sheet at the given 0-based index under the given
// options.
func (r *Reader) LoadSheetByIdx(idx int, opts LoadOptions) (*Sheet, error) {
	if idx < 0 {
		return nil, newError(ErrInvalidParameters, "expected idx to be >= 0, got %d", idx)
	}
	if idx >= len(r.sheetNames) {
		return nil, newError(ErrSheetNotFound, "sheet at index %d not found", idx).
			withContext("available sheets are: %v", r.sheetNames)
	}
	return r.loadSheet(r.sheetNames[idx], opts)
}

// loadSheet runs the full pipeline: validate options, decode the cell grid,
// compute the row window, resolve names, narrow to the selection, infer
// dtypes, and assemble the Sheet. On failure no Sheet is returned.
func (r *Reader) loadSheet(name string, opts LoadOptions) (*Sheet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	grid, err := parser.DecodeGrid(r.file, name)
	if err != nil {
		return nil, wrapError(ErrCellData, err, "could not decode cells of sheet %q", name)
	}

	window := computeRowWindow(grid.Rows(), opts.HeaderRow, opts.SkipRows, opts.NRows)

	available, err := resolveColumnNames(grid, opts.HeaderRow, opts.ColumnNames)
	if err != nil {
		return nil, err
	}
	for i := range available {
		available[i].DType = inferDType(grid, available[i].Index, window, opts.SchemaSampleRows)
	}

	indices, err := opts.UseColumns.resolve(available)
	if err != nil {
		return nil, err
	}
	selected := make([]models.ColumnInfo, len(indices))
	for i, idx := range indices {
		selected[i] = available[idx]
	}

	return &Sheet{
		name:      name,
		grid:      grid,
		window:    window,
		available: available,
		selected:  selected,
	}, nil
}
