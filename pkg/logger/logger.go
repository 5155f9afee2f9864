
package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// ParseLevel maps ERROR/WARN/INFO/DEBUG (any case) to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError
	case "WARN":
		return LevelWarn
	case "DEBUG":
		return LevelDebug
	default:
		return LevelInfo
	}
}

type Logger struct {
	level Level
	out   *log.Logger
}

func New() *Logger { return NewWithLevel(os.Stderr, LevelInfo) }

func NewWithLevel(w io.Writer, level Level) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

func (l *Logger) Level() Level { return l.level }

func (l *Logger) Errorf(format string, args ...any) {
	l.printf(LevelError, "[ERROR] ", format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.printf(LevelWarn, "[WARN] ", format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.printf(LevelInfo, "[INFO] ", format, args...)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.printf(LevelDebug, "[DEBUG] ", format, args...)
}

func (l *Logger) printf(level Level, prefix, format string, args ...any) {
	if l.level < level {
		return
	}
	l.out.Printf(prefix+format, args...)
}
