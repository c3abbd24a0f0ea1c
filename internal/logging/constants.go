package logging

// Field names shared by every component so log lines can be filtered
// consistently.
const (
	FieldFile       = "file_path"
	FieldFormat     = "format"
	FieldRow        = "row"
	FieldColumn     = "column"
	FieldValue      = "value"
	FieldCount      = "count"
	FieldTotal      = "total"
	FieldCategory   = "category"
	FieldGoal       = "goal"
	FieldConstraint = "constraint"
	FieldSelected   = "selected"
	FieldDelimiter  = "delimiter"
	FieldComponent  = "component"
)
