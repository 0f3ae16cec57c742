package registration

// Field identifies one of the registration inputs.
type Field int

const (
	FieldUsername Field = iota
	FieldEmail
	FieldPassword
	FieldConfirmPassword

	fieldCount
)

// Fields lists every field in display order.
var Fields = []Field{FieldUsername, FieldEmail, FieldPassword, FieldConfirmPassword}

func (f Field) String() string {
	switch f {
	case FieldUsername:
		return "username"
	case FieldEmail:
		return "email"
	case FieldPassword:
		return "password"
	case FieldConfirmPassword:
		return "confirm_password"
	default:
		return "unknown"
	}
}

// Label is the human readable field name.
func (f Field) Label() string {
	switch f {
	case FieldUsername:
		return "Username"
	case FieldEmail:
		return "Email"
	case FieldPassword:
		return "Password"
	case FieldConfirmPassword:
		return "Confirm Password"
	default:
		return ""
	}
}

// Secret reports whether the field value must be masked and kept out of logs.
func (f Field) Secret() bool {
	return f == FieldPassword || f == FieldConfirmPassword
}

func (f Field) valid() bool {
	return f >= 0 && f < fieldCount
}

// Status is the inline indicator shown next to a field label.
type Status int

const (
	// StatusEmpty shows no icon and no hint.
	StatusEmpty Status = iota
	// StatusValid shows a checkmark.
	StatusValid
	// StatusInvalid shows an exclamation mark and the field hint.
	StatusInvalid
)

// Form holds the raw field values and the validity flag derived from each.
//
// Form is a value type: Set and Reset return an updated copy.
type Form struct {
	values [fieldCount]string
	valid  [fieldCount]bool
}

// Set stores value for field and recomputes every flag that depends on it.
// Changing either password field re-evaluates both password flags.
func (f Form) Set(field Field, value string) Form {
	if !field.valid() {
		return f
	}
	f.values[field] = value

	switch field {
	case FieldUsername:
		f.valid[FieldUsername] = ValidUsername(value)
	case FieldEmail:
		f.valid[FieldEmail] = ValidEmail(value)
	case FieldPassword, FieldConfirmPassword:
		password, confirm := f.values[FieldPassword], f.values[FieldConfirmPassword]
		f.valid[FieldPassword] = ValidPassword(password)
		f.valid[FieldConfirmPassword] = PasswordsMatch(password, confirm)
	}
	return f
}

// Value returns the current raw value of field.
func (f Form) Value(field Field) string {
	if !field.valid() {
		return ""
	}
	return f.values[field]
}

// Valid returns the validity flag of field.
func (f Form) Valid(field Field) bool {
	if !field.valid() {
		return false
	}
	return f.valid[field]
}

// AllValid reports whether every flag is set, the precondition for submitting.
func (f Form) AllValid() bool {
	for _, ok := range f.valid {
		if !ok {
			return false
		}
	}
	return true
}

// Status derives the inline indicator for field.
func (f Form) Status(field Field) Status {
	switch {
	case f.Value(field) == "":
		return StatusEmpty
	case f.Valid(field):
		return StatusValid
	default:
		return StatusInvalid
	}
}

// Reset returns an empty form.
func (f Form) Reset() Form {
	return Form{}
}
