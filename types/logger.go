package types

// Logger defines methods for structured logging.
//
// Compatible with slog-style structured loggers; all methods accept
// alternating key-value pairs for structured fields. The engine logs at
// Debug and Info only; failures are returned as errors, never logged as
// errors on the engine's behalf.
type Logger interface {
	// Debug logs a message at debug level with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at info level with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at warn level with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at error level with optional key-value pairs.
	Error(msg string, keysAndValues ...any)
}
