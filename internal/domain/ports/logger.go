// Package ports defines interfaces for external service communication.
package ports

// Logger is the structured logger handlers report through. Key/value pairs
// alternate: key string, then value.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}
