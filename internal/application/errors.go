package application

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong password;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCreateUser is the only failure sign-up reports, whether the email is
	// taken or the insert failed.
	ErrCreateUser = errors.New("failed to create user")
)

// FieldErrors maps an input field name to its violation messages.
type FieldErrors map[string][]string

func (f FieldErrors) add(field, msg string) {
	f[field] = append(f[field], msg)
}

// ValidationError carries per-field detail plus an operation-scoped message.
// It is shown to the user verbatim and never reaches the store.
type ValidationError struct {
	Fields  FieldErrors
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Redirect is a navigation instruction returned on successful mutations. The
// presentation layer is responsible for acting on it.
type Redirect struct {
	To     string
	Notice string
}
