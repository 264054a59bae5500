package validatex

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Conversia-AI/craftable-convx/errx"
)

// ErrInvalidBody is returned when a request body cannot be decoded
var ErrInvalidBody = ValidatorErrors.Register("INVALID_BODY", errx.TypeBadRequest, http.StatusBadRequest, "Invalid request body")

// ValidationErrorsToHTTP writes validation errors to an HTTP response
func ValidationErrorsToHTTP(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	toErrx(err).ToHTTP(w)
}

// ValidateRequest validates a request body and writes errors to the response if needed
// Returns true if validation passed, false if it failed
func ValidateRequest(w http.ResponseWriter, obj any) bool {
	return ValidateRequestCustom(w, obj, defaultValidator)
}

// ValidateRequestCustom validates a request body using a custom validator
// Returns true if validation passed, false if it failed
func ValidateRequestCustom(w http.ResponseWriter, obj any, validator *CustomValidator) bool {
	if err := validator.ValidateWithErrx(obj); err != nil {
		err.ToHTTP(w)
		return false
	}
	return true
}

// DecodeAndValidate decodes a JSON request body into out and validates it
func DecodeAndValidate(r *http.Request, out any) error {
	if r.Body == nil {
		return ValidatorErrors.New(ErrInvalidBody)
	}
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(out); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return ValidatorErrors.NewWithCause(ErrInvalidBody, err).WithDetail("offset", syntaxErr.Offset)
		}
		return ValidatorErrors.NewWithCause(ErrInvalidBody, err)
	}
	if xerr := ValidateWithErrx(out); xerr != nil {
		return xerr
	}
	return nil
}
