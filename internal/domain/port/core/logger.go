package core

// LogLevel represents logging severity levels
type LogLevel int

// Severity levels, least to most severe
const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// Logger is the structured logging port used across the domain layer.
// Fields carry the structured context for the entry and may be nil.
type Logger interface {
	// SetLevel sets the minimum log level to output
	SetLevel(level LogLevel)
	// GetLevel gets the current log level
	GetLevel() LogLevel
	// Debug logs a debug message with optional structured fields
	Debug(message string, fields map[string]any)
	// Info logs an informational message with optional structured fields
	Info(message string, fields map[string]any)
	// Warn logs a warning with optional structured fields
	Warn(message string, fields map[string]any)
	// Error logs an error message with optional structured fields
	Error(message string, fields map[string]any)
	// Flush ensures all buffered logs are written to their destination
	Flush() error
}
