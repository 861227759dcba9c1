// Package mocks provides hand-written test doubles for the domain ports.
package mocks

import "sync"

// LogEntry is one recorded log call.
type LogEntry struct {
	Level         string
	Msg           string
	KeysAndValues []any
}

// Logger is a mock implementation of ports.Logger that records every call.
type Logger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

// NewLogger creates a new mock Logger.
func NewLogger() *Logger {
	return &Logger{}
}

// Debug records a debug entry.
func (l *Logger) Debug(msg string, keysAndValues ...any) { l.record("debug", msg, keysAndValues) }

// Info records an info entry.
func (l *Logger) Info(msg string, keysAndValues ...any) { l.record("info", msg, keysAndValues) }

// Warn records a warn entry.
func (l *Logger) Warn(msg string, keysAndValues ...any) { l.record("warn", msg, keysAndValues) }

// Error records an error entry.
func (l *Logger) Error(msg string, keysAndValues ...any) { l.record("error", msg, keysAndValues) }

func (l *Logger) record(level, msg string, kv []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, Msg: msg, KeysAndValues: kv})
}

// Messages returns the recorded messages at the given level.
func (l *Logger) Messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.Entries {
		if e.Level == level {
			out = append(out, e.Msg)
		}
	}
	return out
}

// Value returns the value logged under key by the first entry with msg.
func (l *Logger) Value(msg, key string) (any, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.Entries {
		if e.Msg != msg {
			continue
		}
		for i := 0; i+1 < len(e.KeysAndValues); i += 2 {
			if k, ok := e.KeysAndValues[i].(string); ok && k == key {
				return e.KeysAndValues[i+1], true
			}
		}
	}
	return nil, false
}
