package form

import "fmt"

// Field names one input of the application form.
type Field int

const (
	Name Field = iota
	Email
	Organisation
	Message
)

var fields = []Field{Name, Email, Organisation, Message}

// Fields returns every field in form order.
func Fields() []Field {
	return append([]Field(nil), fields...)
}

// String is the input's id and name attribute.
func (f Field) String() string {
	switch f {
	case Name:
		return "name"
	case Email:
		return "email"
	case Organisation:
		return "organisation"
	case Message:
		return "message"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Label is the text shown next to the input.
func (f Field) Label() string {
	switch f {
	case Name:
		return "Full Name"
	case Email:
		return "Email Address"
	case Organisation:
		return "Organisation"
	case Message:
		return "Tell us why you're interested (optional)"
	default:
		return f.String()
	}
}

// Required reports whether Submit needs the field to be non-empty.
func (f Field) Required() bool {
	return f == Name || f == Email
}

// ParseField maps an input name back to its Field.
func ParseField(name string) (Field, bool) {
	for _, f := range fields {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}
