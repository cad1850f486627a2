// Package log is a thin facade over logrus that writes to a daily file when logging is enabled.
package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tinyplay/tinyplay/filesystem"
	"github.com/tinyplay/tinyplay/key"
	"github.com/tinyplay/tinyplay/where"
)

var enabled bool

// Setup opens today's log file and configures the formatter and level.
// When logs.write is off every call in this package is a no-op.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// Enabled reports whether log output is being written.
func Enabled() bool {
	return enabled
}

// WithField returns an entry carrying a structured field; it writes nothing unless logging is enabled.
func WithField(k string, v any) *Entry {
	return &Entry{entry: logrus.WithField(k, v)}
}

// Entry wraps a logrus entry so structured calls honour the enabled switch.
type Entry struct {
	entry *logrus.Entry
}

func (e *Entry) WithField(k string, v any) *Entry {
	return &Entry{entry: e.entry.WithField(k, v)}
}

func (e *Entry) Info(args ...interface{}) {
	if enabled {
		e.entry.Info(args...)
	}
}

func (e *Entry) Warn(args ...interface{}) {
	if enabled {
		e.entry.Warn(args...)
	}
}

func (e *Entry) Error(args ...interface{}) {
	if enabled {
		e.entry.Error(args...)
	}
}

func (e *Entry) Debug(args ...interface{}) {
	if enabled {
		e.entry.Debug(args...)
	}
}

func Error(args ...interface{}) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...interface{}) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warn(args ...interface{}) {
	if enabled {
		logrus.Warn(args...)
	}
}
func Warnf(format string, args ...interface{}) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...interface{}) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...interface{}) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debug(args ...interface{}) {
	if enabled {
		logrus.Debug(args...)
	}
}
func Debugf(format string, args ...interface{}) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
