// Package logx is a small printf-style logging facade over logrus.
//
// The default logger is configured from the environment:
//
//	LOG_LEVEL=TRACE|DEBUG|INFO|WARN|ERROR|OFF   (default INFO)
//	LOG_FORMAT=console|json|cloudwatch          (default console)
//	LOG_CALLER=true                             (report caller)
//	LOG_COLOR=false                             (disable colors in console format)
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level is a logging level
type Level = logrus.Level

const (
	TraceLevel = logrus.TraceLevel
	DebugLevel = logrus.DebugLevel
	InfoLevel  = logrus.InfoLevel
	WarnLevel  = logrus.WarnLevel
	ErrorLevel = logrus.ErrorLevel
	FatalLevel = logrus.FatalLevel
)

// Fields are structured key/value pairs attached to a log line
type Fields = logrus.Fields

// Logger wraps a logrus logger with printf-style helpers
type Logger struct {
	l *logrus.Logger
}

var std = New()

// New creates a logger configured from the environment
func New() *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	switch strings.ToLower(os.Getenv("LOG_FORMAT")) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "cloudwatch":
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true, QuoteEmptyFields: true})
	default:
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: strings.EqualFold(os.Getenv("LOG_COLOR"), "false"),
		})
	}

	l.SetReportCaller(strings.EqualFold(os.Getenv("LOG_CALLER"), "true"))

	level := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	switch {
	case level == "":
		l.SetLevel(InfoLevel)
	case strings.EqualFold(level, "OFF"):
		l.SetOutput(io.Discard)
	default:
		if parsed, err := logrus.ParseLevel(level); err == nil {
			l.SetLevel(parsed)
		}
	}

	return &Logger{l: l}
}

// Default returns the process-wide logger
func Default() *Logger { return std }

// SetLevel sets the minimum level
func (lg *Logger) SetLevel(level Level) { lg.l.SetLevel(level) }

// SetOutput redirects log output
func (lg *Logger) SetOutput(w io.Writer) { lg.l.SetOutput(w) }

// IsLevelEnabled reports whether a level would be logged
func (lg *Logger) IsLevelEnabled(level Level) bool { return lg.l.IsLevelEnabled(level) }

// WithFields returns an entry carrying the given fields
func (lg *Logger) WithFields(fields Fields) *logrus.Entry { return lg.l.WithFields(fields) }

func (lg *Logger) Trace(format string, args ...any) { lg.l.Tracef(format, args...) }
func (lg *Logger) Debug(format string, args ...any) { lg.l.Debugf(format, args...) }
func (lg *Logger) Info(format string, args ...any)  { lg.l.Infof(format, args...) }
func (lg *Logger) Warn(format string, args ...any)  { lg.l.Warnf(format, args...) }
func (lg *Logger) Error(format string, args ...any) { lg.l.Errorf(format, args...) }
func (lg *Logger) Fatal(format string, args ...any) { lg.l.Fatalf(format, args...) }

// DebugStruct logs a value with its field names at debug level
func (lg *Logger) DebugStruct(name string, v any) {
	if lg.l.IsLevelEnabled(DebugLevel) {
		lg.l.Debugf("%s: %s", name, fmt.Sprintf("%+v", v))
	}
}

func SetLevel(level Level)                   { std.SetLevel(level) }
func SetOutput(w io.Writer)                  { std.SetOutput(w) }
func IsLevelEnabled(level Level) bool        { return std.IsLevelEnabled(level) }
func WithFields(fields Fields) *logrus.Entry { return std.WithFields(fields) }
func Trace(format string, args ...any)       { std.Trace(format, args...) }
func Debug(format string, args ...any)       { std.Debug(format, args...) }
func Info(format string, args ...any)        { std.Info(format, args...) }
func Warn(format string, args ...any)        { std.Warn(format, args...) }
func Error(format string, args ...any)       { std.Error(format, args...) }
func Fatal(format string, args ...any)       { std.Fatal(format, args...) }
func DebugStruct(name string, v any)         { std.DebugStruct(name, v) }
