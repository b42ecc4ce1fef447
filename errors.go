package vapi

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for comparison using errors.Is().
// These are generic errors that can be wrapped with additional context.
var (
	// Annotation errors
	ErrInvalidArgument = errors.New("invalid argument")

	// Descriptor and registry errors
	ErrAlreadyRegistered = errors.New("already registered")
	ErrUnknownMember     = errors.New("unknown member")

	// Property access errors
	ErrUnreadableProperty  = errors.New("unreadable property")
	ErrUnwritableProperty  = errors.New("unwritable property")
	ErrUndeletableProperty = errors.New("undeletable property")
)

// AnnotationError provides structured error information for annotation
// failures. It implements the error interface and supports error wrapping.
type AnnotationError struct {
	Op      string   // Entry point that failed (e.g., "vapi.Provide")
	Options []string // Offending option keys, sorted
	Err     error    // Underlying error for wrapping
}

// Error returns the string representation of the error.
func (e *AnnotationError) Error() string {
	if len(e.Options) > 0 {
		return fmt.Sprintf("%s: %v %s", e.Op, e.Err, quoteJoin(e.Options))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: annotation error", e.Op)
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *AnnotationError) Unwrap() error {
	return e.Err
}

// newInvalidOptionsError builds the invalid-argument error reported when an
// entry point receives options outside its recognized set. keys must
// already be sorted.
func newInvalidOptionsError(op string, keys []string) error {
	return &AnnotationError{
		Op:      op,
		Options: keys,
		Err:     fmt.Errorf("%w: unrecognized options", ErrInvalidArgument),
	}
}

// quoteJoin renders a key list as `"a", "b", "c"`.
func quoteJoin(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return strings.Join(quoted, ", ")
}

// IsInvalidArgument checks if an error was caused by invalid annotation
// arguments.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
