package domain

import "net/http"

// ErrorKind is the closed set of intentional failure categories. The
// terminal HTTP error handler switches over it exhaustively.
type ErrorKind uint8

const (
	KindAuth ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnexpected
)

// FieldLocation tells which part of the request a failed rule applied to.
type FieldLocation string

const (
	LocationBody  FieldLocation = "body"
	LocationParam FieldLocation = "param"
	LocationQuery FieldLocation = "query"
)

// FieldError is one itemized validation failure tied to a request field.
type FieldError struct {
	Field    string        `json:"field"`
	Message  string        `json:"message"`
	Location FieldLocation `json:"location"`
}

// AppError is an intentional, typed failure carrying the HTTP status and
// the user-facing message (already localized by the raiser). It is
// consumed exactly once, by the terminal error handler.
type AppError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Details []FieldError
	cause   error
}

func (e *AppError) Error() string { return e.Message }

// Unwrap exposes the original cause for server-side logging only. The
// cause is never rendered to the caller.
func (e *AppError) Unwrap() error { return e.cause }

// NewAuthError reports a missing/invalid credential (401) or an
// insufficient role (403).
func NewAuthError(status int, message string) *AppError {
	return &AppError{Kind: KindAuth, Status: status, Message: message}
}

// NewValidationError reports failed field rules with their itemized
// details, in rule declaration order.
func NewValidationError(message string, details []FieldError) *AppError {
	return &AppError{Kind: KindValidation, Status: http.StatusBadRequest, Message: message, Details: details}
}

// NewNotFoundError reports a referenced entity that does not exist or is
// outside the caller's scope.
func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

// NewConflictError reports a business-rule violation on otherwise valid input.
func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Status: http.StatusBadRequest, Message: message}
}

// NewUnexpectedError wraps a failure that is not part of normal control
// flow. The message shown to the caller is replaced by a generic one; the
// cause stays server-side.
func NewUnexpectedError(cause error) *AppError {
	return &AppError{Kind: KindUnexpected, Status: http.StatusInternalServerError, Message: "internal error", cause: cause}
}
