package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags an error with the category the HTTP boundary maps to a status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindDuplicate
	KindBadID
	KindUnauthorized
	KindForbidden
	KindNotFound
)

// FieldError carries a single field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindDuplicate, KindBadID:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "Validation error", Fields: fields}
}

func Duplicate(field string) *Error {
	msg := fmt.Sprintf("%s already exists", field)
	return &Error{
		Kind:    KindDuplicate,
		Message: msg,
		Fields:  []FieldError{{Field: field, Message: msg}},
	}
}

func BadID() *Error {
	return &Error{
		Kind:    KindBadID,
		Message: "Invalid ID format",
		Fields:  []FieldError{{Field: "id", Message: "Invalid ID format"}},
	}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// From normalizes any error into an *Error. Unrecognized errors become
// internal so the boundary never leaks raw failure details.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
