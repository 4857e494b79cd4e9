package jsonable

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingSchema indicates Wrap was applied to a consumer that carries no
// schema. Tagging must happen before wrapping; this is a wiring error, not a
// runtime condition.
var ErrMissingSchema = errors.New("jsonable: consumer carries no schema; Tag it before Wrap")

// Issue represents a single structural mismatch reported by the validator.
type Issue struct {
	Path    string // JSON Pointer into the offending instance (for example: /items/2).
	Keyword string // Schema keyword that failed (type, items, required, ...).
	Message string
}

// ConversionError reports a value with no known reduction to interchange
// data. It identifies the value's Go type and a printable form.
type ConversionError struct {
	Type  string // Go type of the offending value.
	Repr  string // Printable form of the offending value.
	Cause error  // Optional: underlying codec error.
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("jsonable: value of type %s with value %s is not JSON serializable", e.Type, e.Repr)
}

func (e *ConversionError) Unwrap() error { return e.Cause }

// ValidationError reports that a round-tripped argument does not match the
// schema bound to its consumer. It carries the schema, the non-conforming
// instance and the validator's flattened issue list.
type ValidationError struct {
	Schema   *Schema
	Instance any
	Issues   []Issue
	Cause    error // Error returned by the draft validator.
}

// Error summarizes the first few issues.
func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return "jsonable: " + e.Cause.Error()
		}
		return "jsonable: instance does not match schema"
	}
	const maxShown = 3
	b := &strings.Builder{}
	b.WriteString("jsonable: ")
	lim := len(e.Issues)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := e.Issues[i]
		fmt.Fprintf(b, "%s at %s", it.Keyword, it.Path)
	}
	if n := len(e.Issues); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// AsConversionError extracts a *ConversionError using errors.As internally.
func AsConversionError(err error) (*ConversionError, bool) {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// AsValidationError extracts a *ValidationError using errors.As internally.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
