package validatex

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/Conversia-AI/craftable-convx/errx"
)

// Error registry for validatex
var (
	ValidatorErrors = errx.NewRegistry("VALIDATOR")

	// Common validation error codes
	ErrValidationFailed = ValidatorErrors.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Validation failed")
	ErrRequiredField    = ValidatorErrors.Register("REQUIRED_FIELD", errx.TypeValidation, http.StatusBadRequest, "Field is required")
	ErrTooShort         = ValidatorErrors.Register("TOO_SHORT", errx.TypeValidation, http.StatusBadRequest, "Value is too short")
	ErrTooLong          = ValidatorErrors.Register("TOO_LONG", errx.TypeValidation, http.StatusBadRequest, "Value is too long")
	ErrBelowMin         = ValidatorErrors.Register("BELOW_MIN", errx.TypeValidation, http.StatusBadRequest, "Value below minimum")
	ErrAboveMax         = ValidatorErrors.Register("ABOVE_MAX", errx.TypeValidation, http.StatusBadRequest, "Value above maximum")
	ErrPatternMismatch  = ValidatorErrors.Register("PATTERN_MISMATCH", errx.TypeValidation, http.StatusBadRequest, "Value doesn't match pattern")
	ErrInvalidValue     = ValidatorErrors.Register("INVALID_VALUE", errx.TypeValidation, http.StatusBadRequest, "Invalid value")
	ErrUnknownValidator = ValidatorErrors.Register("UNKNOWN_VALIDATOR", errx.TypeInternal, http.StatusInternalServerError, "Unknown validator")
	ErrInvalidStruct    = ValidatorErrors.Register("INVALID_STRUCT", errx.TypeBadRequest, http.StatusBadRequest, "Value is not a struct")
)

// Reason classifies the constraint a value violated
type Reason string

const (
	ReasonRequired        Reason = "required"
	ReasonTooShort        Reason = "too_short"
	ReasonTooLong         Reason = "too_long"
	ReasonTooLow          Reason = "too_low"
	ReasonTooBig          Reason = "too_big"
	ReasonPatternMismatch Reason = "pattern_mismatch"
	ReasonInvalid         Reason = "invalid"
	ReasonUnknownRule     Reason = "unknown_rule"
)

// ValidationError represents a validation error for a specific field
type ValidationError struct {
	Field   string // Field name, dotted for nested fields
	Rule    string // Rule that failed
	Param   string // Rule parameter (if any)
	Value   any    // Value that was validated
	Reason  Reason // Violated constraint
	Message string // Error message
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is a slice of ValidationError
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	if len(e) == 1 {
		return e[0].Error()
	}

	errMsgs := make([]string, len(e))
	for i, err := range e {
		errMsgs[i] = fmt.Sprintf("  - %s", err.Error())
	}

	return fmt.Sprintf("%d validation errors:\n%s", len(e), strings.Join(errMsgs, "\n"))
}

// Has checks if the validation errors contain an error for the specified field
func (e ValidationErrors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns all validation errors for the specified field
func (e ValidationErrors) Get(field string) []ValidationError {
	var result []ValidationError
	for _, err := range e {
		if err.Field == field {
			result = append(result, err)
		}
	}
	return result
}

// ByRule returns all validation errors for the specified rule
func (e ValidationErrors) ByRule(rule string) []ValidationError {
	var result []ValidationError
	for _, err := range e {
		if err.Rule == rule {
			result = append(result, err)
		}
	}
	return result
}

// ByReason returns all validation errors with the given reason
func (e ValidationErrors) ByReason(reason Reason) []ValidationError {
	var result []ValidationError
	for _, err := range e {
		if err.Reason == reason {
			result = append(result, err)
		}
	}
	return result
}

// ToErrx converts ValidationErrors to an errx.Error. A single failure keeps its
// specific code, several failures are reported as VALIDATION_FAILED.
func (e ValidationErrors) ToErrx() *errx.Error {
	if len(e) == 0 {
		return nil
	}

	code := ErrValidationFailed
	if len(e) == 1 {
		code = errorCodeForReason(e[0].Reason)
	}
	xerr := ValidatorErrors.NewWithMessage(code, e.Error())

	fieldErrors := make(map[string][]map[string]any)
	for _, ve := range e {
		errorInfo := map[string]any{
			"rule":    ve.Rule,
			"reason":  string(ve.Reason),
			"message": ve.Message,
		}
		if ve.Param != "" {
			errorInfo["param"] = ve.Param
		}

		// Use string representation of the value to avoid JSON serialization issues
		errorInfo["value"] = fmt.Sprintf("%v", ve.Value)

		fieldErrors[ve.Field] = append(fieldErrors[ve.Field], errorInfo)
	}

	return xerr.WithDetails(map[string]any{
		"errors":      fieldErrors,
		"error_count": len(e),
		"field_count": len(fieldErrors),
	})
}

// NewValidationError creates a new validation error
func NewValidationError(field, rule, param string, value any, message string) ValidationError {
	return newValidationError(field, rule, param, value, reasonForRule(rule, value), message)
}

func newValidationError(field, rule, param string, value any, reason Reason, message string) ValidationError {
	if message == "" {
		message = errorMessage(field, rule, param, reason)
	}

	return ValidationError{
		Field:   field,
		Rule:    rule,
		Param:   param,
		Value:   value,
		Reason:  reason,
		Message: message,
	}
}

var (
	customErrorMessagesMu sync.RWMutex
	customErrorMessages   = make(map[string]string)
)

// SetCustomErrorMessage sets a custom error message for a validation rule.
// The placeholders {field} and {param} are substituted.
func SetCustomErrorMessage(rule, message string) {
	customErrorMessagesMu.Lock()
	defer customErrorMessagesMu.Unlock()
	customErrorMessages[rule] = message
}

func reasonForRule(rule string, value any) Reason {
	switch rule {
	case "required":
		return ReasonRequired
	case "min":
		if isLengthKind(value) {
			return ReasonTooShort
		}
		return ReasonTooLow
	case "max":
		if isLengthKind(value) {
			return ReasonTooLong
		}
		return ReasonTooBig
	case "regex":
		return ReasonPatternMismatch
	default:
		return ReasonInvalid
	}
}

func isLengthKind(value any) bool {
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return true
	}
	return false
}

func errorMessage(field, rule, param string, reason Reason) string {
	customErrorMessagesMu.RLock()
	custom, ok := customErrorMessages[rule]
	customErrorMessagesMu.RUnlock()
	if ok {
		return strings.NewReplacer("{field}", field, "{param}", param).Replace(custom)
	}

	switch reason {
	case ReasonRequired:
		return fmt.Sprintf("Property %s must be set", field)
	case ReasonTooShort:
		return fmt.Sprintf("Property %s is too short. Minimal length is %s", field, param)
	case ReasonTooLong:
		return fmt.Sprintf("Property %s is too long. Maximal length is %s", field, param)
	case ReasonTooLow:
		return fmt.Sprintf("Property %s value is too low. Minimal value is %s", field, param)
	case ReasonTooBig:
		return fmt.Sprintf("Property %s value is too big. Maximal value is %s", field, param)
	case ReasonPatternMismatch:
		return fmt.Sprintf("Property %s does not match regular expression: %s", field, param)
	case ReasonUnknownRule:
		return fmt.Sprintf("Property %s uses unknown validation rule %s", field, rule)
	}

	switch rule {
	case "email":
		return fmt.Sprintf("Property %s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("Property %s must be a valid URL", field)
	case "uuid":
		return fmt.Sprintf("Property %s must be a valid UUID", field)
	case "oneof":
		return fmt.Sprintf("Property %s must be one of: %s", field, param)
	case "len":
		return fmt.Sprintf("Property %s must have length %s", field, param)
	case "alphanum":
		return fmt.Sprintf("Property %s must contain only alphanumeric characters", field)
	case "alpha":
		return fmt.Sprintf("Property %s must contain only alphabetic characters", field)
	case "numeric":
		return fmt.Sprintf("Property %s must contain only numeric characters", field)
	default:
		return fmt.Sprintf("Property %s failed validation", field)
	}
}

func errorCodeForReason(reason Reason) errx.Code {
	switch reason {
	case ReasonRequired:
		return ErrRequiredField
	case ReasonTooShort:
		return ErrTooShort
	case ReasonTooLong:
		return ErrTooLong
	case ReasonTooLow:
		return ErrBelowMin
	case ReasonTooBig:
		return ErrAboveMax
	case ReasonPatternMismatch:
		return ErrPatternMismatch
	case ReasonUnknownRule:
		return ErrUnknownValidator
	case ReasonInvalid:
		return ErrInvalidValue
	default:
		return ErrValidationFailed
	}
}
