package form

import (
	"errors"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrRequired marks a required field left empty.
	ErrRequired = errors.New("is required")
	// ErrUnknownField is returned for a Field value outside the defined set.
	ErrUnknownField = errors.New("unknown field")
)

// FieldError ties an error to one field.
type FieldError struct {
	Field Field
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field.Label() + " " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }

// ValidationError lists the required fields that were empty at submit time.
// It is a recoverable result: the form stays Editing and can be fixed.
type ValidationError struct {
	Missing []Field
	errs    *multierror.Error
}

func newValidationError(missing []Field) *ValidationError {
	var merr *multierror.Error
	for _, f := range missing {
		merr = multierror.Append(merr, &FieldError{Field: f, Err: ErrRequired})
	}
	merr.ErrorFormat = func(es []error) string {
		msgs := make([]string, len(es))
		for i, e := range es {
			msgs[i] = e.Error()
		}
		return strings.Join(msgs, "; ")
	}
	return &ValidationError{Missing: missing, errs: merr}
}

func (e *ValidationError) Error() string {
	return e.errs.Error()
}

// Unwrap exposes the per-field errors to errors.Is and errors.As.
func (e *ValidationError) Unwrap() error {
	return e.errs.Unwrap()
}

// For returns the error for field, or nil if the field passed.
func (e *ValidationError) For(field Field) error {
	if e == nil {
		return nil
	}
	for _, err := range e.errs.Errors {
		var fe *FieldError
		if errors.As(err, &fe) && fe.Field == field {
			return fe
		}
	}
	return nil
}
