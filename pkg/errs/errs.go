// Package errs holds the error taxonomy every handler reports through.
// A *Error carries a Kind, which decides the HTTP status, and a message safe to
// show to clients. The wrapped cause is for logs only.
package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Kind int

const (
	KindServerError Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
)

func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
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

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap attaches the underlying cause without changing what the client sees.
func (e *Error) Wrap(err error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, Err: err}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func BadRequest(format string, args ...interface{}) *Error {
	return New(KindBadRequest, fmt.Sprintf(format, args...))
}

func Unauthorized(format string, args ...interface{}) *Error {
	return New(KindUnauthorized, fmt.Sprintf(format, args...))
}

func Forbidden(format string, args ...interface{}) *Error {
	return New(KindForbidden, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...interface{}) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

func ServerError(format string, args ...interface{}) *Error {
	return New(KindServerError, fmt.Sprintf(format, args...))
}

func ResourceNotFound(id string) *Error {
	return NotFound("Resource with id %s not found", id)
}

// As unwraps err into a taxonomy error. Anything unknown becomes a ServerError
// that keeps err as its cause.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindServerError, Message: "Server Error", Err: err}
}

func Status(err error) int {
	return As(err).Kind.Status()
}

// FromStore translates persistence and validation failures into the taxonomy.
// notFound is returned for missing rows so callers can name the id.
func FromStore(err error, notFound *Error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if notFound != nil {
			return notFound.Wrap(err)
		}
		return NotFound("Resource not found").Wrap(err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return BadRequest("Duplicate field value entered").Wrap(err)
	case errors.As(err, &verrs):
		return BadRequest("%s", validationMessage(verrs)).Wrap(err)
	}

	return ServerError("Server Error").Wrap(err)
}

func validationMessage(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, ", ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Please add a %s", field)
	case "max":
		return fmt.Sprintf("%s can not be more than %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "email":
		return "Please add a valid email"
	case "url":
		return "Please use a valid URL with HTTP or HTTPS"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range", field)
	}
	return fmt.Sprintf("%s is invalid", field)
}
