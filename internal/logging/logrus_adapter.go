package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogrusAdapter backs Logger with a logrus entry. Child loggers share the
// parent's *logrus.Logger and extend its entry.
type LogrusAdapter struct {
	logger *logrus.Logger
	entry  *logrus.Entry
}

// NewLogrusAdapter builds the command line logger. level is any name
// logrus.ParseLevel accepts, in any case; unknown names mean info. format
// "json" selects JSON lines, anything else timestamped text.
func NewLogrusAdapter(level, format string) Logger {
	logger := logrus.New()
	logger.SetFormatter(formatterFor(format))

	logLevel, ok := levelFor(level)
	if !ok {
		logger.Warnf("Invalid log level '%s', using 'info'", level)
	}
	logger.SetLevel(logLevel)

	return wrap(logger)
}

// NewLogrusAdapterFromLogger wraps logger, or a fresh logrus.Logger when nil.
func NewLogrusAdapterFromLogger(logger *logrus.Logger) Logger {
	if logger == nil {
		logger = logrus.New()
	}
	return wrap(logger)
}

// NewDiscardLogger returns a logger that writes nowhere. Components fall
// back to it when constructed with a nil Logger.
func NewDiscardLogger() Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return wrap(logger)
}

func wrap(logger *logrus.Logger) *LogrusAdapter {
	return &LogrusAdapter{logger: logger, entry: logrus.NewEntry(logger)}
}

func levelFor(name string) (logrus.Level, bool) {
	level, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return logrus.InfoLevel, false
	}
	return level, true
}

func formatterFor(format string) logrus.Formatter {
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{FullTimestamp: true}
}

func (l *LogrusAdapter) emit(level logrus.Level, msg string, fields []Field) {
	l.entry.WithFields(convertFields(fields)).Log(level, msg)
}

func (l *LogrusAdapter) derive(entry *logrus.Entry) Logger {
	return &LogrusAdapter{logger: l.logger, entry: entry}
}

func (l *LogrusAdapter) Debug(msg string, fields ...Field) { l.emit(logrus.DebugLevel, msg, fields) }
func (l *LogrusAdapter) Info(msg string, fields ...Field)  { l.emit(logrus.InfoLevel, msg, fields) }
func (l *LogrusAdapter) Warn(msg string, fields ...Field)  { l.emit(logrus.WarnLevel, msg, fields) }
func (l *LogrusAdapter) Error(msg string, fields ...Field) { l.emit(logrus.ErrorLevel, msg, fields) }

func (l *LogrusAdapter) WithError(err error) Logger {
	return l.derive(l.entry.WithError(err))
}

func (l *LogrusAdapter) WithField(key string, value interface{}) Logger {
	return l.derive(l.entry.WithField(key, value))
}

func (l *LogrusAdapter) WithFields(fields ...Field) Logger {
	return l.derive(l.entry.WithFields(convertFields(fields)))
}

// Fatal goes through entry.Fatal rather than emit: Entry.Log does not exit
// at FatalLevel.
func (l *LogrusAdapter) Fatal(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Fatal(msg)
}

func (l *LogrusAdapter) Fatalf(msg string, args ...interface{}) {
	l.entry.Fatalf(msg, args...)
}

func convertFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
