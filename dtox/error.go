package dtox

import (
	"net/http"

	"github.com/Conversia-AI/craftable-convx/errx"
)

// ErrorRegistry holds all error definitions for the dtox package
var ErrorRegistry = errx.NewRegistry("DTOX")

// Error codes definition
var (
	// Validation errors
	ErrValidationFailed = ErrorRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Validation failed")
	ErrInvalidField     = ErrorRegistry.Register("INVALID_FIELD", errx.TypeValidation, http.StatusBadRequest, "Invalid field value")

	// Mapping errors
	ErrInvalidArgument = ErrorRegistry.Register("INVALID_ARGUMENT", errx.TypeBadRequest, http.StatusBadRequest, "Copy requires a struct source and a non-nil pointer to a struct destination")
	ErrFieldNotFound   = ErrorRegistry.Register("FIELD_NOT_FOUND", errx.TypeBadRequest, http.StatusBadRequest, "Field not found in target type")
	ErrCannotSetField  = ErrorRegistry.Register("CANNOT_SET_FIELD", errx.TypeBadRequest, http.StatusBadRequest, "Cannot set field in target type")
	ErrTypeConversion  = ErrorRegistry.Register("TYPE_CONVERSION", errx.TypeBadRequest, http.StatusBadRequest, "Type conversion failed")

	// Batch operation errors
	ErrBatchConversion = ErrorRegistry.Register("BATCH_CONVERSION", errx.TypeInternal, http.StatusInternalServerError, "Batch conversion failed")
)

// IsTypeConversion reports whether err is a field type mismatch
func IsTypeConversion(err error) bool {
	return errx.IsCode(err, ErrTypeConversion)
}
