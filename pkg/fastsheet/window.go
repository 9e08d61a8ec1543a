package fastsheet

// rowWindow is the resolved span of physical rows to materialize as data.
// start/end are physical row indices, end exclusive. totalHeight counts all
// data rows in the sheet ignoring skip/n_rows bounds (the header row, when
// declared, is never a data row).
type rowWindow struct {
	start       int
	end         int
	totalHeight int
}

// height returns the number of rows the window materializes.
func (w rowWindow) height() int { return w.end - w.start }

// computeRowWindow applies header-row, skip-rows and n-rows bounds to the
// sheet's physical row count. skipRows counts physical rows after the
// header-derived start and is never re-interpreted as a header row.
func computeRowWindow(totalRows int, headerRow *int, skipRows int, nRows *int) rowWindow {
	dataStart := 0
	if headerRow != nil {
		dataStart = *headerRow + 1
	}
	totalHeight := totalRows - dataStart
	if totalHeight < 0 {
		totalHeight = 0
	}

	start := dataStart + skipRows
	available := totalRows - start
	if available < 0 {
		available = 0
	}
	height := available
	if nRows != nil && *nRows < height {
		height = *nRows
	}
	return rowWindow{start: start, end: start + height, totalHeight: totalHeight}
}
