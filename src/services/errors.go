package services

import (
	"errors"
	"fmt"
)

// Kind classifies a service error. The HTTP layer maps kinds to status codes.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindNotFound
	KindConflict
)

// String returns the lower-case kind name
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a classified error. Message is safe to show to clients; Err is
// the underlying cause and stays server-side.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the client message followed by the cause, if any
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same kind and message, so sentinels
// survive wrapping with a cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

// Validation reports a client input error
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Authentication reports bad credentials or a bad token
func Authentication(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

// NotFound reports a missing resource
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict reports a uniqueness or reference violation
func Conflict(msg string, cause error) *Error {
	return &Error{Kind: KindConflict, Message: msg, Err: cause}
}

// Internal wraps an unexpected failure
func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: cause}
}

// KindOf classifies err. Errors that are not *Error are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Sentinel errors for explicit error handling
var (
	// ErrMissingCredentials indicates username or password was empty
	ErrMissingCredentials = Validation("Username and password are required")

	// ErrInvalidCredentials indicates authentication failed. It is returned for
	// unknown usernames and wrong passwords alike.
	ErrInvalidCredentials = Authentication("Invalid username or password")

	// ErrNoToken indicates the Authorization header was missing or not a Bearer credential
	ErrNoToken = Authentication("Access denied. No token provided.")

	// ErrInvalidToken indicates the token failed verification for any reason
	ErrInvalidToken = Authentication("Invalid token")

	// ErrAdminNotFound indicates the admin does not exist
	ErrAdminNotFound = NotFound("Admin not found")

	// ErrUsernameTaken indicates a duplicate admin username
	ErrUsernameTaken = Conflict("Username already exists", nil)
)
