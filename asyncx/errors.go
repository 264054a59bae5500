package asyncx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/samber/lo"

	"github.com/Conversia-AI/craftable-convx/errx"
)

// Error registry for asyncx
var ErrorRegistry = errx.NewRegistry("ASYNC")

// Error codes for asyncx
var (
	ErrCanceled = ErrorRegistry.Register("CANCELED", errx.TypeSystem, 499, "Operation was canceled")
	ErrTimeout  = ErrorRegistry.Register("TIMEOUT", errx.TypeTimeout, http.StatusRequestTimeout, "Operation timed out")
	ErrPoolSize = ErrorRegistry.Register("INVALID_POOL_SIZE", errx.TypeBadRequest, http.StatusBadRequest, "Invalid pool size")
)

// ErrorCollection holds the errors of a concurrent operation keyed by item index
type ErrorCollection struct {
	Errors    map[int]error
	Operation string
}

// Error implements the error interface
func (e *ErrorCollection) Error() string {
	return fmt.Sprintf("%s: %d operations failed", e.Operation, len(e.Errors))
}

// Unwrap exposes the collected errors to errors.Is and errors.As, in index order
func (e *ErrorCollection) Unwrap() []error {
	out := make([]error, 0, len(e.Errors))
	for _, i := range e.Indexes() {
		out = append(out, e.Errors[i])
	}
	return out
}

// Indexes returns the failed item indexes in ascending order
func (e *ErrorCollection) Indexes() []int {
	indexes := lo.Keys(e.Errors)
	sort.Ints(indexes)
	return indexes
}

// IsErrorCollection checks if an error is an ErrorCollection
func IsErrorCollection(err error) (*ErrorCollection, bool) {
	var ec *ErrorCollection
	ok := errors.As(err, &ec)
	return ec, ok
}

// HasError checks if there was an error at a specific index
func (e *ErrorCollection) HasError(index int) bool {
	_, exists := e.Errors[index]
	return exists
}

// GetError retrieves the error at a specific index
func (e *ErrorCollection) GetError(index int) error {
	return e.Errors[index]
}

// FilterSuccessful returns only the successful results. Any error other than
// an ErrorCollection means no result is usable.
func FilterSuccessful[R any](results []R, err error) []R {
	if err == nil {
		return results
	}
	ec, ok := IsErrorCollection(err)
	if !ok {
		return nil
	}

	successful := make([]R, 0, len(results))
	for i, result := range results {
		if !ec.HasError(i) {
			successful = append(successful, result)
		}
	}
	return successful
}

func contextError(ctx context.Context) *errx.Error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrorRegistry.NewWithCause(ErrTimeout, ctx.Err())
	}
	return ErrorRegistry.NewWithCause(ErrCanceled, ctx.Err())
}
