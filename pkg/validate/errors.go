package validate

import (
	"errors"
	"fmt"
)

// Kind classifies a validation failure. Every validator in this module,
// including the low-level enum validators, reports failures through the same
// tagged Error type so callers can branch on Kind instead of matching
// message text.
type Kind string

const (
	// KindShape indicates the payload is not an object at all.
	KindShape Kind = "shape"
	// KindMissingField indicates a required field is absent or has the wrong type.
	KindMissingField Kind = "missing_field"
	// KindInvalidEnum indicates a status/tier value outside its closed vocabulary.
	KindInvalidEnum Kind = "invalid_enum"
	// KindInvalidArray indicates a batch payload is not an array.
	KindInvalidArray Kind = "invalid_array"
)

// Error describes a single validation failure. Instances are treated as
// immutable after construction; WithField returns a modified copy instead of
// mutating in place so errors can be requalified as they cross entity
// boundaries.
type Error struct {
	Kind Kind

	// Field is the dotted path of the offending field, e.g. "payment.status".
	Field string

	// Message is a human-oriented diagnostic for operators, not end users.
	Message string

	// Received retains the raw value that failed validation for logging.
	Received any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// WithField returns a copy of e with the field path replaced.
// The original error is not modified.
func (e *Error) WithField(field string) *Error {
	cp := *e
	cp.Field = field
	return &cp
}

// IsValidationError reports whether err is, or wraps, a validation Error.
func IsValidationError(err error) bool {
	var verr *Error
	return errors.As(err, &verr)
}

// AsValidationError extracts the validation Error from err, unwrapping as
// needed. Returns false for nil and for unrelated error types.
func AsValidationError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

func newShapeError(entity string, received any) *Error {
	return &Error{
		Kind:     KindShape,
		Field:    entity,
		Message:  "must be an object",
		Received: received,
	}
}

func newMissingFieldError(field, expected string, received any) *Error {
	return &Error{
		Kind:     KindMissingField,
		Field:    field,
		Message:  fmt.Sprintf("missing required field (expected %s)", expected),
		Received: received,
	}
}

func newArrayError(entity string, received any) *Error {
	return &Error{
		Kind:     KindInvalidArray,
		Field:    entity,
		Message:  "must be an array",
		Received: received,
	}
}
