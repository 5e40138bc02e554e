package logger

import (
	"context"
	"os"

	"restaurant-directory/internal/shared/contextkeys"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Logger is the structured logging interface used across the service.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	WithFields(fields map[string]interface{}) Logger
	WithContext(ctx context.Context) Logger
	WithComponent(component string) Logger
}

// LogrusLogger implements Logger using logrus.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogger creates a logger configured from the LOG_LEVEL, LOG_FORMAT and
// ENVIRONMENT environment variables.
func NewLogger() Logger {
	return NewLoggerWithConfig(os.Getenv("LOG_LEVEL"), formatFromEnv())
}

// NewLoggerWithConfig creates a logger with an explicit level and format.
func NewLoggerWithConfig(level, format string) Logger {
	l := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
	}
	l.SetOutput(os.Stdout)

	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

func formatFromEnv() string {
	env := os.Getenv("ENVIRONMENT")
	if os.Getenv("LOG_FORMAT") == "json" || env == "production" || env == "prod" {
		return "json"
	}
	return "text"
}

func (l *LogrusLogger) Debug(args ...interface{}) { l.entry.Debug(args...) }
func (l *LogrusLogger) Info(args ...interface{})  { l.entry.Info(args...) }
func (l *LogrusLogger) Warn(args ...interface{})  { l.entry.Warn(args...) }
func (l *LogrusLogger) Error(args ...interface{}) { l.entry.Error(args...) }
func (l *LogrusLogger) Fatal(args ...interface{}) { l.entry.Fatal(args...) }

func (l *LogrusLogger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *LogrusLogger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *LogrusLogger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *LogrusLogger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
func (l *LogrusLogger) Fatalf(format string, args ...interface{}) { l.entry.Fatalf(format, args...) }

// WithFields adds structured fields to the logger.
func (l *LogrusLogger) WithFields(fields map[string]interface{}) Logger {
	return &LogrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// WithContext extracts the request-scoped keys present in ctx into log fields.
func (l *LogrusLogger) WithContext(ctx context.Context) Logger {
	fields := logrus.Fields{}
	addContextField(ctx, contextkeys.RequestIDKey, "request_id", fields)
	addContextField(ctx, contextkeys.ComponentKey, "component", fields)
	addContextField(ctx, contextkeys.OperationKey, "operation", fields)
	return &LogrusLogger{entry: l.entry.WithFields(fields)}
}

func addContextField(ctx context.Context, key interface{}, name string, fields logrus.Fields) {
	if val, ok := ctx.Value(key).(string); ok && val != "" {
		fields[name] = val
	}
}

// WithComponent adds the component name to the logger.
func (l *LogrusLogger) WithComponent(component string) Logger {
	return &LogrusLogger{entry: l.entry.WithField("component", component)}
}
