package storex

import (
	"net/http"

	"github.com/Conversia-AI/craftable-convx/errx"
)

// Error registry for storex
var (
	StoreErrors = errx.NewRegistry("STORE")

	ErrInvalidPagination = StoreErrors.Register("INVALID_PAGINATION", errx.TypeBadRequest, http.StatusBadRequest, "Invalid pagination options")
	ErrElementConversion = StoreErrors.Register("ELEMENT_CONVERSION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to convert page element")
)

// IsElementConversion reports whether err came from converting a page element
func IsElementConversion(err error) bool {
	return errx.IsCode(err, ErrElementConversion)
}
