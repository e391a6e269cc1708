package responder

import (
	"fmt"
	"net/http"
)

// ErrorKind tags the failure classes an AppError can carry. New handler
// failure modes add a kind here rather than inventing a new response shape.
type ErrorKind int

const (
	// KindJSONRejection marks a request body that failed JSON decoding.
	// These are client faults and are never logged as server errors.
	KindJSONRejection ErrorKind = iota

	// KindInternal marks any unexpected failure raised inside a handler.
	KindInternal
)

// AppError is the envelope every handler failure is converted into before a
// response leaves the process. It maps totally onto an HTTP status and a
// JSON body of the form {"message": "<string>"}.
type AppError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

// ErrorBody is the uniform JSON error shape returned to clients.
type ErrorBody struct {
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ClientFault reports whether the error was caused by bad client input
// rather than a defect inside the service.
func (e *AppError) ClientFault() bool {
	return e != nil && e.Kind == KindJSONRejection
}

// NewJSONRejection wraps a body-decoding failure. The status and message are
// taken from the rejection itself so the client sees the decoder's own
// diagnosis.
func NewJSONRejection(status int, message string, cause error) *AppError {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return &AppError{
		Kind:    KindJSONRejection,
		Status:  status,
		Message: message,
		Err:     cause,
	}
}

// NewInternal wraps an unexpected handler failure. The cause is preserved for
// the observability middleware; clients only see the generic message.
func NewInternal(cause error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Status:  http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
		Err:     cause,
	}
}

// NewAppError builds an envelope for an arbitrary status code. Statuses below
// 500 are treated as client faults for observability purposes.
func NewAppError(status int, message string, cause error) *AppError {
	kind := KindInternal
	if status < http.StatusInternalServerError {
		kind = KindJSONRejection
	}
	return &AppError{Kind: kind, Status: status, Message: message, Err: cause}
}
