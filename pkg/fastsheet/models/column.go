package models

// DType is the logical type of a loaded column.
type DType string

const (
	// DTypeNull is a column whose sample contained no non-empty cells.
	DTypeNull DType = "null"
	// DTypeInt is a 64-bit integer column.
	DTypeInt DType = "int"
	// DTypeFloat is a 64-bit floating-point column.
	DTypeFloat DType = "float"
	// DTypeString is a text column.
	DTypeString DType = "string"
	// DTypeBool is a boolean column.
	DTypeBool DType = "boolean"
	// DTypeDateTime is a date/time column.
	DTypeDateTime DType = "datetime"
	// DTypeDuration is an elapsed-time column.
	DTypeDuration DType = "duration"
)

// ColumnNameFrom records where a column's name came from.
type ColumnNameFrom string

const (
	// ColumnNameFromLookedUp means the name was read from the header row.
	ColumnNameFromLookedUp ColumnNameFrom = "looked_up"
	// ColumnNameFromGenerated means the name was synthesized as
	// __UNNAMED__{index}, either because the header cell was blank or
	// because the sheet was loaded without a header row.
	ColumnNameFromGenerated ColumnNameFrom = "generated"
	// ColumnNameFromProvided means the name came from an explicit
	// column-names override.
	ColumnNameFromProvided ColumnNameFrom = "provided"
)

// DTypeFrom records where a column's dtype came from.
type DTypeFrom string

const (
	// DTypeFromGuessed means the dtype was inferred from sampled cells.
	DTypeFromGuessed DTypeFrom = "guessed"
	// DTypeFromProvided means the dtype was explicitly supplied by the
	// caller. Reserved for per-column dtype overrides.
	DTypeFromProvided DTypeFrom = "provided"
)

// ColumnInfo describes one available column of a loaded sheet.
type ColumnInfo struct {
	// Name is the column name. Names are not necessarily unique: duplicate
	// or blank headers are kept as-is in available columns.
	Name string `json:"name"`
	// Index is the 0-based physical column position, unique and increasing
	// within available columns.
	Index int `json:"index"`
	// NameFrom is the provenance of Name.
	NameFrom ColumnNameFrom `json:"column_name_from"`
	// DType is the column's logical type.
	DType DType `json:"dtype"`
	// DTypeFrom is the provenance of DType.
	DTypeFrom DTypeFrom `json:"dtype_from"`
}
