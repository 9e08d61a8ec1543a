package fastsheet

import (
	"strings"

	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/models"
)

type selectorKind uint8

const (
	selectAll selectorKind = iota
	selectByNames
	selectByIndices
	selectByRange
)

// ColumnSelector describes which columns of a sheet to extract. The zero
// value (and a nil pointer) selects every available column. A selector is
// consumed during a single load and never mutated.
type ColumnSelector struct {
	kind    selectorKind
	names   []string
	indices []int
	rng     string
}

// SelectByNames selects columns by exact name match, in the given order.
// When duplicate names exist in the sheet, the first matching column in
// physical order is picked.
func SelectByNames(names ...string) *ColumnSelector {
	return &ColumnSelector{kind: selectByNames, names: names}
}

// SelectByIndices selects columns by 0-based physical index, in the given
// order. Duplicate indices are preserved and yield duplicate output columns.
func SelectByIndices(indices ...int) *ColumnSelector {
	return &ColumnSelector{kind: selectByIndices, indices: indices}
}

// SelectByRange selects columns with a spreadsheet-style range string: a
// comma-separated list of column letters or inclusive letter ranges, e.g.
// "A,C:E". Letters use the base-26 spreadsheet encoding (A=0, Z=25, AA=26).
func SelectByRange(rng string) *ColumnSelector {
	return &ColumnSelector{kind: selectByRange, rng: rng}
}

// resolve turns the selector into an ordered list of column indices,
// validated against the available columns. Selector syntax is checked
// before sheet bounds.
func (s *ColumnSelector) resolve(available []models.ColumnInfo) ([]int, error) {
	if s == nil || s.kind == selectAll {
		indices := make([]int, len(available))
		for i := range available {
			indices[i] = i
		}
		return indices, nil
	}

	switch s.kind {
	case selectByNames:
		return resolveNames(s.names, available)
	case selectByIndices:
		return resolveIndices(s.indices, available)
	default:
		parsed, err := parseColumnRange(s.rng)
		if err != nil {
			return nil, err
		}
		return resolveIndices(parsed, available)
	}
}

func resolveNames(names []string, available []models.ColumnInfo) ([]int, error) {
	if len(names) == 0 {
		return nil, newError(ErrInvalidParameters, "list of selected columns is empty").
			withContext("could not determine selected columns from provided object: []")
	}
	indices := make([]int, 0, len(names))
	for _, name := range names {
		idx := -1
		for _, col := range available {
			if col.Name == name {
				idx = col.Index
				break
			}
		}
		if idx < 0 {
			return nil, newError(ErrColumnNotFound, "column with name %q not found", name).
				withContext("available columns are: %s", columnNames(available))
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

func resolveIndices(requested []int, available []models.ColumnInfo) ([]int, error) {
	if len(requested) == 0 {
		return nil, newError(ErrInvalidParameters, "list of selected columns is empty").
			withContext("could not determine selected columns from provided object: []")
	}
	for _, idx := range requested {
		if idx < 0 {
			return nil, newError(ErrInvalidParameters, "expected list of non-negative indices, got %v", requested).
				withContext("could not determine selected columns from provided object: %v", requested)
		}
	}
	indices := make([]int, 0, len(requested))
	for _, idx := range requested {
		if idx >= len(available) {
			return nil, newError(ErrColumnNotFound, "column at index %d not found", idx).
				withContext("available columns are: %s", columnNames(available))
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// parseColumnRange parses a range string such as "A,C:E" into 0-based
// column indices. Ranges are inclusive on both bounds.
func parseColumnRange(rng string) ([]int, error) {
	var indices []int
	for _, token := range strings.Split(rng, ",") {
		token = strings.TrimSpace(token)
		start, end, ok := strings.Cut(token, ":")
		from, err := columnLetterToIndex(start)
		if err != nil {
			return nil, err
		}
		if !ok {
			indices = append(indices, from)
			continue
		}
		to, err := columnLetterToIndex(end)
		if err != nil {
			return nil, err
		}
		if to < from {
			return nil, newError(ErrInvalidParameters, "invalid column range %q: end before start", token)
		}
		for i := from; i <= to; i++ {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// columnLetterToIndex converts a spreadsheet column letter to its 0-based
// index: A=0, Z=25, AA=26, ...
func columnLetterToIndex(letters string) (int, error) {
	if letters == "" {
		return 0, newError(ErrInvalidParameters, "unparseable column token %q", letters)
	}
	idx := 0
	for _, r := range letters {
		if r < 'A' || r > 'Z' {
			return 0, newError(ErrInvalidParameters, "unparseable column token %q", letters)
		}
		idx = idx*26 + int(r-'A') + 1
	}
	return idx - 1, nil
}

func columnNames(available []models.ColumnInfo) string {
	names := make([]string, len(available))
	for i, col := range available {
		names[i] = col.Name
	}
	return strings.Join(names, ", ")
}
