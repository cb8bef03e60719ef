package logutil

type Log interface {
	Fatalf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Debugf(key string, format string, args ...interface{})

	Child(name string) Log
	SetLevel(level LogLevel)
}

type LogLevel int

const (
	// LogLevelDebug messages are disabled by default and are printed
	// only if the debug key was enabled.
	LogLevelDebug LogLevel = 0

	LogLevelInfo LogLevel = 1

	LogLevelWarn LogLevel = 2

	LogLevelError LogLevel = 3
)
