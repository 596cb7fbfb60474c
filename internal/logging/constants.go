package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldEncoding   = "encoding"
	FieldLine       = "line"
	FieldKey        = "record_key"
	FieldCycle      = "cycle"
	FieldStep       = "step"
	FieldCycles     = "cycles"
	FieldSteps      = "steps"
	FieldPoints     = "points"
	FieldSkipped    = "skipped"
	FieldFormat     = "format"
	FieldReason     = "reason"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
