package logging

// Standardized field names for structured logging.
// Using the same keys everywhere keeps the log output easy to filter.
const (
	FieldFile      = "file_path"
	FieldColumn    = "column"
	FieldRow       = "row"
	FieldDate      = "date"
	FieldRate      = "rate"
	FieldCurrency  = "currency"
	FieldURL       = "url"
	FieldStatus    = "status"
	FieldCount     = "count"
	FieldWorkers   = "workers"
	FieldDelimiter = "delimiter"
	FieldFilter    = "filter"
)
