// internal/logger/interface.go

package logger

// Logger defines the interface for all log sink implementations.
// Payloads are rendered with fmt.Sprint, so anything with a text form
// (strings, numbers, fmt.Stringer, error) can be written.
type Logger interface {
	// Open initializes the channel of communication to the destination.
	// It must be called, directly or through a constructor, before any write.
	Open() error

	// Write renders the value and writes it to the destination as one entry.
	Write(value any) error

	// WriteSlice writes each value in order with the same contract as Write.
	// It stops at the first failure and returns it.
	WriteSlice(values []any) error
}

// WriteAll writes a typed slice through l one element at a time, in order,
// stopping at the first error.
func WriteAll[T any](l Logger, values []T) error {
	for _, v := range values {
		if err := l.Write(v); err != nil {
			return err
		}
	}
	return nil
}
