// Package utils holds the small pieces shared by otherwise unrelated packages.
package utils

// Logger is the leveled logging interface the scanning packages accept.
// It is satisfied by logger.Logger; packages take the interface so tests
// can drive them silently.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// NoopLogger discards every message. It is the default wherever a logger
// was not supplied.
type NoopLogger struct{}

func (NoopLogger) Debug(format string, args ...interface{}) {}
func (NoopLogger) Info(format string, args ...interface{})  {}
func (NoopLogger) Warn(format string, args ...interface{})  {}
func (NoopLogger) Error(format string, args ...interface{}) {}
