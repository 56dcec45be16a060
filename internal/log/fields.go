package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldErrorType = "error_type"
	FieldSource    = "source"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldRecords   = "records"
	FieldYears     = "years"
	FieldBreeds    = "breeds"
	FieldBreed     = "breed"
	FieldDuration  = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentLoader     = "loader"
	ComponentValidator  = "validator"
	ComponentAggregator = "aggregator"
	ComponentReporter   = "reporter"
	ComponentStorage    = "storage"
	ComponentBackend    = "backend"
)

// Operations defines standard operation names
const (
	OpStartup  = "startup"
	OpLoad     = "load"
	OpImport   = "import"
	OpValidate = "validate"
	OpQuery    = "query"
	OpRender   = "render"
	OpShutdown = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeDataFormat    = "data_format_error"
	ErrorTypeDatabase      = "database_error"
	ErrorTypeInput         = "input_error"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds error and error type fields
func (f LogFields) WithError(err error, errorType string) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
		f[FieldErrorType] = errorType
	}
	return f
}

// WithTable adds the size of a loaded table
func (f LogFields) WithTable(records, years, breeds int) LogFields {
	f[FieldRecords] = records
	f[FieldYears] = years
	f[FieldBreeds] = breeds
	return f
}

// With adds an arbitrary field
func (f LogFields) With(key string, value any) LogFields {
	f[key] = value
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
