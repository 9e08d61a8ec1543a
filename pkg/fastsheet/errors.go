package fastsheet

import (
	"fmt"
	"strings"
)

// ErrorKind is the machine-distinguishable category of a load failure.
// Callers should branch on the kind (via errors.As on *Error), not on
// message text.
type ErrorKind uint8

const (
	// ErrWorkbook indicates the file could not be opened or decoded.
	ErrWorkbook ErrorKind = iota
	// ErrSheetNotFound indicates the requested sheet name or index does
	// not exist in the workbook.
	ErrSheetNotFound
	// ErrInvalidParameters indicates malformed or semantically invalid
	// load options (negative index, empty selection list, unparseable
	// range token, ...).
	ErrInvalidParameters
	// ErrColumnNotFound indicates a syntactically valid selector element
	// matched no available column.
	ErrColumnNotFound
	// ErrCellData indicates the underlying decoder could not retrieve a
	// cell's value.
	ErrCellData
	// ErrUnsupportedColumnTypeCombination indicates an inferred dtype mix
	// that the columnar boundary cannot represent.
	ErrUnsupportedColumnTypeCombination
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrWorkbook:
		return "workbook error"
	case ErrSheetNotFound:
		return "sheet not found"
	case ErrInvalidParameters:
		return "invalid parameters"
	case ErrColumnNotFound:
		return "column not found"
	case ErrCellData:
		return "cannot retrieve cell data"
	case ErrUnsupportedColumnTypeCombination:
		return "unsupported column type combination"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is a structured load failure: a kind, a human-readable message, and
// an ordered context chain (outermost last).
type Error struct {
	// Kind is the failure category.
	Kind ErrorKind
	// Message is the human-readable description.
	Message string
	// Context holds additional human-readable context lines.
	Context []string

	err error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if len(e.Context) > 0 {
		sb.WriteString("\nContext:")
		for i, c := range e.Context {
			fmt.Fprintf(&sb, "\n    %d: %s", i, c)
		}
	}
	if e.err != nil {
		fmt.Fprintf(&sb, ": %v", e.err)
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.err
}

// newError creates an Error of the given kind with a formatted message.
func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// wrapError creates an Error of the given kind wrapping an underlying cause.
func wrapError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), err: err}
}

// withContext appends a context line to the error and returns it.
func (e *Error) withContext(format string, args ...any) *Error {
	e.Context = append(e.Context, fmt.Sprintf(format, args...))
	return e
}
