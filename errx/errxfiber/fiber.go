// Package errxfiber renders errx errors from fiber handlers.
package errxfiber

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Conversia-AI/craftable-convx/errx"
	"github.com/Conversia-AI/craftable-convx/logx"
)

// CodeFiber marks errors raised by fiber itself (routing, body limits)
const CodeFiber errx.Code = "FIBER_ERROR"

// ErrxToFiber converts the Error to a Fiber error
func ErrxToFiber(e *errx.Error) error {
	return fiber.NewError(e.Status(), e.Message)
}

// FiberErrorHandler returns an ErrorHandler that writes every error as
//
//	{"error": {"code": ..., "type": ..., "message": ..., "details": ...}}
//
// Server errors are logged at error level, client errors at debug.
func FiberErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		xerr := fromError(err)

		entry := logx.WithFields(logx.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"code":   xerr.Code,
			"status": xerr.Status(),
		})
		if xerr.Status() >= fiber.StatusInternalServerError {
			entry.Errorf("request failed: %v", err)
		} else {
			entry.Debugf("request rejected: %v", err)
		}

		return c.Status(xerr.Status()).JSON(fiber.Map{"error": xerr.Body()})
	}
}

func fromError(err error) *errx.Error {
	var fiberErr *fiber.Error
	if _, ok := errx.As(err); !ok && errors.As(err, &fiberErr) {
		errType := errx.TypeBadRequest
		switch {
		case fiberErr.Code == fiber.StatusNotFound:
			errType = errx.TypeNotFound
		case fiberErr.Code >= fiber.StatusInternalServerError:
			errType = errx.TypeInternal
		}
		return &errx.Error{
			Code:       CodeFiber,
			Type:       errType,
			Message:    fiberErr.Message,
			HTTPStatus: fiberErr.Code,
		}
	}
	return errx.From(err)
}
