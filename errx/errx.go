package errx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Type classifies an error independently of its code
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeBadRequest    Type = "BAD_REQUEST"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeRateLimit     Type = "RATE_LIMIT"
	TypeTimeout       Type = "TIMEOUT"
	TypeUnavailable   Type = "UNAVAILABLE"
	TypeExternal      Type = "EXTERNAL"
	TypeSystem        Type = "SYSTEM"
	TypeInternal      Type = "INTERNAL"
)

// Code identifies a registered error
type Code string

// Error is a structured error
type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
	HTTPStatus int            `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	var sb strings.Builder
	if e.Code != "" {
		sb.WriteString("[")
		sb.WriteString(string(e.Code))
		sb.WriteString("] ")
	}
	sb.WriteString(e.Message)
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a single detail to the error
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails merges details into the error
func (e *Error) WithDetails(details map[string]any) *Error {
	if len(details) == 0 {
		return e
	}
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithCause sets the underlying cause
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// Status returns the HTTP status, defaulting to 500
func (e *Error) Status() int {
	if e.HTTPStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.HTTPStatus
}

// Body returns the public representation of the error
func (e *Error) Body() map[string]any {
	body := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		body["details"] = e.Details
	}
	return body
}

// ToHTTP writes the error as a JSON response
func (e *Error) ToHTTP(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status())
	_ = json.NewEncoder(w).Encode(map[string]any{"error": e.Body()})
}

// New creates an unregistered error
func New(message string, errType Type) *Error {
	return &Error{
		Code:       Code(errType),
		Type:       errType,
		Message:    message,
		HTTPStatus: statusForType(errType),
	}
}

// Wrap wraps an error with a message and type. Wrapping nil returns nil.
func Wrap(err error, message string, errType Type) *Error {
	if err == nil {
		return nil
	}
	e := New(message, errType)
	e.Cause = err
	return e
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, errType Type, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...), errType)
}

// IsCode reports whether any error in the chain carries the code
func IsCode(err error, code Code) bool {
	for err != nil {
		var xerr *Error
		if !errors.As(err, &xerr) {
			return false
		}
		if xerr.Code == code {
			return true
		}
		err = xerr.Cause
	}
	return false
}

// IsType reports whether any error in the chain has the type
func IsType(err error, errType Type) bool {
	for err != nil {
		var xerr *Error
		if !errors.As(err, &xerr) {
			return false
		}
		if xerr.Type == errType {
			return true
		}
		err = xerr.Cause
	}
	return false
}

// CodeInternal is used for errors that carry no code of their own
const CodeInternal Code = "INTERNAL_ERROR"

// From returns the first *Error in the chain, or wraps err as an internal
// error. From(nil) returns nil.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if xerr, ok := As(err); ok {
		return xerr
	}
	return &Error{
		Code:       CodeInternal,
		Type:       TypeInternal,
		Message:    err.Error(),
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// As returns the first *Error in the chain
func As(err error) (*Error, bool) {
	var xerr *Error
	if errors.As(err, &xerr) {
		return xerr, true
	}
	return nil, false
}

func statusForType(t Type) int {
	switch t {
	case TypeValidation, TypeBadRequest:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeRateLimit:
		return http.StatusTooManyRequests
	case TypeTimeout:
		return http.StatusRequestTimeout
	case TypeUnavailable:
		return http.StatusServiceUnavailable
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
