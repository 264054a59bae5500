// Package validatexfiber binds and validates fiber request bodies.
package validatexfiber

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Conversia-AI/craftable-convx/validatex"
)

// BindAndValidate parses the request body into out and validates it with the
// default validator. Errors are *errx.Error values suited to errxfiber.
func BindAndValidate(c *fiber.Ctx, out any) error {
	return BindAndValidateWith(c, out, validatex.NewValidator())
}

// BindAndValidateWith is BindAndValidate with a custom validator
func BindAndValidateWith(c *fiber.Ctx, out any, validator *validatex.CustomValidator) error {
	if err := c.BodyParser(out); err != nil {
		return validatex.ValidatorErrors.NewWithCause(validatex.ErrInvalidBody, err)
	}
	if xerr := validator.ValidateWithErrx(out); xerr != nil {
		return xerr
	}
	return nil
}

// Handler adapts a typed handler: the body is bound into a fresh T and
// validated before fn runs.
func Handler[T any](fn func(c *fiber.Ctx, body T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body T
		if err := BindAndValidate(c, &body); err != nil {
			return err
		}
		return fn(c, body)
	}
}
