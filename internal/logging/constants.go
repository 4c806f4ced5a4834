package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldRecord     = "record"
	FieldCount      = "count"
	FieldLine       = "line"
	FieldSequence   = "sequence"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
