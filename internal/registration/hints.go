package registration

// Hint returns the explanation shown under a non-empty invalid field.
func Hint(field Field) string {
	switch field {
	case FieldUsername:
		return "6 to 24 characters. Letters and numbers only."
	case FieldEmail:
		return "Enter a valid address such as name@example.com."
	case FieldPassword:
		return "8 to 32 characters. Must include uppercase and lowercase letters, a number and a special character."
	case FieldConfirmPassword:
		return "Password does not match."
	default:
		return ""
	}
}

// Placeholder returns the gray text shown in an empty input.
func Placeholder(field Field) string {
	switch field {
	case FieldUsername:
		return "Tell us your name..."
	case FieldEmail:
		return "Drop your email address here..."
	default:
		return ""
	}
}
