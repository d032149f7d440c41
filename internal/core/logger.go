package core

// Logger is the minimal leveled logging surface the service depends on.
// Arguments follow the key-value convention; binaries adapt their preferred
// backend to it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NopLogger returns a logger that discards everything.
func NopLogger() Logger { return noopLogger{} }

// noopLogger discards everything; it is the default when no logger is wired.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
