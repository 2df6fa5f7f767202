package logger

// Unified log field name constants, to keep queries over the agent log
// consistent.
const (
	// FieldProfile storage profile name field
	FieldProfile = "profile"

	// FieldBucket bucket name field
	FieldBucket = "bucket"

	// FieldFileKey object key field
	FieldFileKey = "fileKey"

	// FieldFileName local file name field
	FieldFileName = "fileName"

	// FieldPath local file path field
	FieldPath = "path"

	// FieldURL public URL field
	FieldURL = "url"

	// FieldDuration elapsed time field
	FieldDuration = "duration"

	// FieldSource upload trigger source field
	FieldSource = "source"
)
