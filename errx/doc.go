// Package errx provides structured errors with codes, types, details and HTTP status mapping.
//
// Each package declares its own registry of error codes and creates errors from it:
//
//	var ErrorRegistry = errx.NewRegistry("CONVX")
//
//	var ErrNoConverter = ErrorRegistry.Register("NO_CONVERTER", errx.TypeNotFound, http.StatusNotFound, "No converter registered")
//
//	return ErrorRegistry.New(ErrNoConverter).
//		WithDetail("source_type", "string").
//		WithDetail("target_type", "float64")
//
// Errors created this way carry a code, a coarse error type, a human readable message,
// arbitrary details and an optional cause, and can be matched with IsCode and IsType:
//
//	if errx.IsCode(err, convx.ErrNoConverter) {
//		// fall back to something else
//	}
//
// Adapters in the errxcobra, errxfiber and errxlambda packages render these errors for
// command line tools, Fiber applications and API Gateway lambdas.
package errx
