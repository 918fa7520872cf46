// internal/logger/file_logger.go

package logger

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/orgoj/stamplog/internal/contract"
)

const notInitializedMessage = "The log file was not initialized before writing to the log."

// timestampLayout renders local wall-clock time at second precision.
const timestampLayout = "2006-01-02 15:04:05"

type notInitializedError struct{}

func (notInitializedError) Error() string { return notInitializedMessage }

// Is makes the error match fs.ErrNotExist, the "not found" kind.
func (notInitializedError) Is(target error) bool { return target == fs.ErrNotExist }

// ErrNotInitialized is returned by Write when no log file has been opened.
var ErrNotInitialized error = notInitializedError{}

// Variables for factories to allow mocking in tests
var createLogFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// timeNow must return local time.
var timeNow = time.Now

// FileLogger writes timestamped entries to a file on disk and mirrors each
// entry to standard output.
//
// There is no Close method. A handle replaced by a successful Open is closed
// right away; the last handle is released by the runtime once the logger is
// no longer referenced.
type FileLogger struct {
	mu   sync.Mutex
	path string
	file io.WriteCloser // nil until Open succeeds
	echo io.Writer
}

// Option configures a FileLogger at construction.
type Option func(*FileLogger)

// WithEcho mirrors entries to w instead of standard output.
// A nil w keeps standard output; the echo cannot be turned off.
func WithEcho(w io.Writer) Option {
	return func(l *FileLogger) {
		if w != nil {
			l.echo = w
		}
	}
}

// NewFileLogger creates a FileLogger for path and opens it, truncating any
// existing file. No logger is returned if the file cannot be created.
func NewFileLogger(path string, opts ...Option) (*FileLogger, error) {
	contract.Require(strings.TrimSpace(path) != "", "empty or whitespace file paths are not allowed")

	l := &FileLogger{
		path: path,
		echo: os.Stdout,
	}
	for _, opt := range opts {
		opt(l)
	}
	if err := l.Open(); err != nil {
		return nil, err
	}
	return l, nil
}

// Path returns the path of the log file.
func (l *FileLogger) Path() string {
	return l.path
}

// Open creates the log file, truncating it if it already exists, and makes
// it the active handle. If creation fails the previous handle stays active.
func (l *FileLogger) Open() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// os errors already carry the operation and the path
	file, err := createLogFile(l.path)
	if err != nil {
		return err
	}

	prev := l.file
	l.file = file
	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// formatEntry prefixes the rendered value with a timestamp and terminates
// it with a newline: "[2006-01-02 15:04:05]: value\n".
func (l *FileLogger) formatEntry(value any) string {
	rendered := fmt.Sprint(value)
	contract.Require(rendered != "", "empty data must not be written to the log")

	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(timeNow().Format(timestampLayout))
	sb.WriteString("]: ")
	sb.WriteString(rendered)
	sb.WriteString("\n")
	entry := sb.String()

	contract.Ensure(strings.TrimSpace(entry) != "", "the formatted log entry must not be empty")
	return entry
}

// Write formats value as one entry, echoes it to standard output and
// writes it to the file. The echo happens even when the file write fails.
func (l *FileLogger) Write(value any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return ErrNotInitialized
	}

	entry := l.formatEntry(value)
	if l.echo != nil {
		fmt.Fprintln(l.echo, entry)
	}

	_, err := l.file.Write([]byte(entry))
	return err
}

// WriteSlice writes values in order and returns the first error. Entries
// written before the failure stay in the file; later values are skipped.
func (l *FileLogger) WriteSlice(values []any) error {
	for _, v := range values {
		if err := l.Write(v); err != nil {
			return err
		}
	}
	return nil
}

// Ensure FileLogger implements the Logger interface.
var _ Logger = (*FileLogger)(nil)
