package helper

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks unknown languages or identifiers, malformed
	// persisted metadata and missing referenced files.
	ErrConfiguration = errors.New("configuration error")
	// ErrUnsupportedOperation marks operations the parser is not set up for,
	// such as extending a gazetteer entity without a matching sub-parser.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrIO marks filesystem failures.
	ErrIO = errors.New("io error")
)

// Error wraps an error with the step that failed.
type Error struct {
	Step string
	Err  error
}

// NewError wraps err with the name of the step that failed.
// It returns nil if err is nil.
func NewError(step string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Step: step, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("error in %s: %v", e.Step, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigurationError builds an error matching ErrConfiguration.
func ConfigurationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// UnsupportedOperationError builds an error matching ErrUnsupportedOperation.
func UnsupportedOperationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, fmt.Sprintf(format, args...))
}

// IOError wraps a filesystem error together with the offending path.
func IOError(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, path, err)
}
