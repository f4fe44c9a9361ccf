package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidData   = errors.New("invalid data")
	ErrNoExpenses    = errors.New("no expenses recorded yet")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindInvalidInput  ErrorKind = "invalid_input"
	KindInvalidData   ErrorKind = "invalid_data"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// InvalidInput builds a KindInvalidInput error whose message is meant for the user.
func InvalidInput(op, format string, args ...any) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput),
	}
}

// Reason returns the innermost human readable message of an OpError, without
// the op/kind prefix. Other errors are returned as-is.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var oe *OpError
	if errors.As(err, &oe) && oe.Err != nil {
		msg := oe.Err.Error()
		for _, s := range []error{ErrInvalidInput, ErrInvalidData, ErrInvalidConfig} {
			suffix := ": " + s.Error()
			if len(msg) > len(suffix) && msg[len(msg)-len(suffix):] == suffix {
				return msg[:len(msg)-len(suffix)]
			}
		}
		return msg
	}
	return err.Error()
}
