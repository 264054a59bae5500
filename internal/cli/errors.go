package cli

import (
	"net/http"

	"github.com/Conversia-AI/craftable-convx/errx"
)

var ErrorRegistry = errx.NewRegistry("CLI")

var (
	ErrInvalidOutput = ErrorRegistry.Register("INVALID_OUTPUT", errx.TypeValidation, http.StatusBadRequest, "Unsupported output format")
	ErrInvalidTime   = ErrorRegistry.Register("INVALID_TIME", errx.TypeValidation, http.StatusBadRequest, "Time must be given in RFC 3339 format")
	ErrConfig        = ErrorRegistry.Register("CONFIG", errx.TypeSystem, http.StatusInternalServerError, "Could not load configuration")
)
