// Package form holds the application form's state machine.
//
// A Form starts Editing with every field empty. Field setters overwrite one
// field each. Submit moves the form to Submitted once Name and Email are
// present; that state is terminal for the instance, further edits are
// rejected and the entered values are discarded.
package form

import (
	"errors"
	"strings"
)

// ErrSubmitted is returned when a field is edited after the form was submitted.
var ErrSubmitted = errors.New("application already submitted")

// State is the lifecycle state of a Form.
type State int

const (
	Editing State = iota
	Submitted
)

func (s State) String() string {
	if s == Submitted {
		return "submitted"
	}
	return "editing"
}

// Application is the record the applicant fills in.
type Application struct {
	Name         string
	Email        string
	Organisation string
	Message      string
}

// Get returns the value of field.
func (a Application) Get(field Field) string {
	switch field {
	case Name:
		return a.Name
	case Email:
		return a.Email
	case Organisation:
		return a.Organisation
	case Message:
		return a.Message
	}
	return ""
}

// Form is one mount of the application form.
type Form struct {
	values Application
	state  State
}

// New returns an empty form in the Editing state.
func New() *Form {
	return &Form{}
}

// State returns the current lifecycle state.
func (f *Form) State() State { return f.state }

// Submitted reports whether the form reached the Submitted state.
func (f *Form) Submitted() bool { return f.state == Submitted }

// Values returns a copy of the entered values. After submission the values
// have been discarded and the zero Application is returned.
func (f *Form) Values() Application { return f.values }

// Set overwrites one field.
func (f *Form) Set(field Field, value string) error {
	if f.state == Submitted {
		return ErrSubmitted
	}
	switch field {
	case Name:
		f.values.Name = value
	case Email:
		f.values.Email = value
	case Organisation:
		f.values.Organisation = value
	case Message:
		f.values.Message = value
	default:
		return &FieldError{Field: field, Err: ErrUnknownField}
	}
	return nil
}

func (f *Form) SetName(v string) error         { return f.Set(Name, v) }
func (f *Form) SetEmail(v string) error        { return f.Set(Email, v) }
func (f *Form) SetOrganisation(v string) error { return f.Set(Organisation, v) }
func (f *Form) SetMessage(v string) error      { return f.Set(Message, v) }

// Validate checks the required fields without changing state.
// It returns nil or a *ValidationError.
func (f *Form) Validate() error {
	var missing []Field
	for _, field := range Fields() {
		if field.Required() && strings.TrimSpace(f.values.Get(field)) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return newValidationError(missing)
}

// Submit moves the form to Submitted when the required fields are present.
// Otherwise it returns a *ValidationError and the form stays Editing.
// Submitting twice returns ErrSubmitted. Nothing is sent anywhere: the values
// are dropped on success.
func (f *Form) Submit() error {
	if f.state == Submitted {
		return ErrSubmitted
	}
	if err := f.Validate(); err != nil {
		return err
	}
	f.values = Application{}
	f.state = Submitted
	return nil
}
