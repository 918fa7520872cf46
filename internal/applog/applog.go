// internal/applog/applog.go

// Package applog is the process diagnostic logger used by the commands.
// It writes to stderr so it never interleaves with the stdout echo of a
// FileLogger.
package applog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level defines the available diagnostic levels.
type Level int

const (
	TRACE Level = 10
	DEBUG Level = 20
	INFO  Level = 30
	WARN  Level = 40
	ERROR Level = 50
	FATAL Level = 60
)

var levelNames = map[Level]string{
	TRACE: "TRACE",
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// LevelNames lists the accepted level names, lowest first.
var LevelNames = []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// ParseLevel maps a case-insensitive level name to its Level.
func ParseLevel(name string) (Level, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for level, n := range levelNames {
		if n == upper {
			return level, nil
		}
	}
	return 0, fmt.Errorf("invalid log level: %s", name)
}

func (l Level) String() string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// AppLogger writes leveled diagnostic lines.
type AppLogger struct {
	mu     sync.Mutex
	writer io.Writer
	level  Level
	exit   func(int)
}

var (
	defaultLogger *AppLogger
	once          sync.Once
)

// Get returns the process-wide AppLogger.
func Get() *AppLogger {
	once.Do(func() {
		defaultLogger = New(os.Stderr, WARN)
	})
	return defaultLogger
}

// New creates an AppLogger writing to w at the given minimum level.
func New(w io.Writer, level Level) *AppLogger {
	return &AppLogger{
		writer: w,
		level:  level,
		exit:   os.Exit,
	}
}

// SetLevel sets the minimum level.
func (l *AppLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetLevelFromString sets the minimum level from a level name.
func (l *AppLogger) SetLevelFromString(name string) error {
	level, err := ParseLevel(name)
	if err != nil {
		return err
	}
	l.SetLevel(level)
	return nil
}

// logf formats outside the lock; only the level check and the write hold it.
func (l *AppLogger) logf(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	skip := level < l.level
	l.mu.Unlock()
	if skip {
		return
	}

	now := time.Now().Format(time.RFC3339)
	line := fmt.Sprintf("[%s] %s: %s\n", now, level, fmt.Sprintf(format, args...))

	l.mu.Lock()
	_, _ = io.WriteString(l.writer, line)
	exit := l.exit
	l.mu.Unlock()

	if level == FATAL {
		exit(1)
	}
}

func (l *AppLogger) Trace(format string, args ...interface{}) { l.logf(TRACE, format, args...) }
func (l *AppLogger) Debug(format string, args ...interface{}) { l.logf(DEBUG, format, args...) }
func (l *AppLogger) Info(format string, args ...interface{}) { l.logf(INFO, format, args...) }
func (l *AppLogger) Warn(format string, args ...interface{}) { l.logf(WARN, format, args...) }
func (l *AppLogger) Error(format string, args ...interface{}) { l.logf(ERROR, format, args...) }

// Fatal logs at FATAL level and exits the process with status 1.
func (l *AppLogger) Fatal(format string, args ...interface{}) { l.logf(FATAL, format, args...) }
