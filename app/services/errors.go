package services

import "errors"

// Sentinel error kinds returned by the service layer. Controllers map them
// to HTTP status codes with errors.Is and send err.Error() as the message.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateName      = errors.New("This name is already taken")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidOldPassword = errors.New("Old password is incorrect")
	ErrForbidden          = errors.New("You do not own this order")
)

// apiError attaches a human-readable message to a sentinel kind, so the
// controller can match the kind while the client sees the specific message.
type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }
func (e *apiError) Unwrap() error { return e.kind }

func notFound(msg string) error {
	return &apiError{kind: ErrNotFound, msg: msg}
}

// ValidationError reports a rejected input payload, optionally with
// per-field messages.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

func validationError(msg string) error {
	return &ValidationError{Message: msg}
}
