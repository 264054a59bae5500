package convx

import (
	"net/http"

	"github.com/Conversia-AI/craftable-convx/errx"
)

// ErrorRegistry holds all error definitions for the convx package
var ErrorRegistry = errx.NewRegistry("CONVX")

var (
	ErrNoConverter      = ErrorRegistry.Register("NO_CONVERTER", errx.TypeNotFound, http.StatusUnprocessableEntity, "No converter registered for type pair")
	ErrConversionFailed = ErrorRegistry.Register("CONVERSION_FAILED", errx.TypeBadRequest, http.StatusBadRequest, "Conversion failed")
	ErrNilValue         = ErrorRegistry.Register("NIL_VALUE", errx.TypeBadRequest, http.StatusBadRequest, "Cannot infer source type of nil value")
	ErrUnexpectedType   = ErrorRegistry.Register("UNEXPECTED_TYPE", errx.TypeInternal, http.StatusInternalServerError, "Converter received a value of unexpected type")
	ErrInvalidConverter = ErrorRegistry.Register("INVALID_CONVERTER", errx.TypeInternal, http.StatusInternalServerError, "Invalid converter")
)

// IsNoConverter reports whether err signals a missing converter
func IsNoConverter(err error) bool {
	return errx.IsCode(err, ErrNoConverter)
}

// IsConversionFailed reports whether err signals a failed conversion
func IsConversionFailed(err error) bool {
	return errx.IsCode(err, ErrConversionFailed)
}
