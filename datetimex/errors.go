package datetimex

import (
	"net/http"

	"github.com/Conversia-AI/craftable-convx/errx"
)

var (
	DateTimeErrors = errx.NewRegistry("DATETIME")

	ErrUnknownTimeZone = DateTimeErrors.Register("UNKNOWN_TIME_ZONE", errx.TypeValidation, http.StatusBadRequest, "Unknown time zone")
	ErrInvalidDate     = DateTimeErrors.Register("INVALID_DATE", errx.TypeValidation, http.StatusBadRequest, "Invalid date components")
	ErrInvalidTime     = DateTimeErrors.Register("INVALID_TIME", errx.TypeValidation, http.StatusBadRequest, "Invalid time components")
)
