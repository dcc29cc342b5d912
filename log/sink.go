package log

import "github.com/sirupsen/logrus"

// Sink is the minimal logging dependency a library component should take as
// a constructor parameter instead of reaching for the package-global logger
// returned by Log.
type Sink interface {
	Logf(level Level, category, format string, args ...interface{})
}

// EntrySink adapts a *logrus.Entry to Sink, tagging every line with category.
type EntrySink struct {
	Entry *logrus.Entry
}

// NewEntrySink wraps entry (or the global logger if entry is nil) as a Sink.
func NewEntrySink(entry *logrus.Entry) EntrySink {
	if entry == nil {
		entry = logrus.NewEntry(Log())
	}

	return EntrySink{Entry: entry}
}

func (s EntrySink) Logf(level Level, category, format string, args ...interface{}) {
	e := s.Entry.WithField("category", category)

	switch level {
	case LevelTrace:
		e.Tracef(format, args...)
	case LevelDebug:
		e.Debugf(format, args...)
	case LevelWarn:
		e.Warnf(format, args...)
	case LevelError:
		e.Errorf(format, args...)
	case LevelFatal:
		e.Fatalf(format, args...)
	case LevelInfo:
		e.Infof(format, args...)
	default:
		e.Infof(format, args...)
	}
}
