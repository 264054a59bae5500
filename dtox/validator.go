package dtox

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"unicode/utf8"

	"github.com/Conversia-AI/craftable-convx/errx"
)

// ValidationRule defines a validation rule for a specific field
type ValidationRule struct {
	FieldName string
	Validator func(value any) error
	Message   string
}

// ValidationError represents an error that occurred during validation
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for field %s: %s", e.Field, e.Message)
}

// ValidationErrors holds multiple validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	if len(e) == 1 {
		return e[0].Error()
	}

	return fmt.Sprintf("%d validation errors occurred", len(e))
}

// ToErrx converts ValidationErrors to an errx.Error with the messages grouped by field
func (e ValidationErrors) ToErrx() *errx.Error {
	if len(e) == 0 {
		return nil
	}

	fields := make(map[string][]string)
	for _, err := range e {
		fields[err.Field] = append(fields[err.Field], err.Message)
	}

	return ErrorRegistry.NewWithMessage(ErrValidationFailed, e.Error()).
		WithDetail("fields", fields).
		WithDetail("error_count", len(e))
}

// WithRules adds field rules checked before DTO to model conversion. Every
// rule runs; all failures are reported together.
func (m *Mapper[TDto, TModel]) WithRules(rules []ValidationRule) *Mapper[TDto, TModel] {
	if len(rules) == 0 {
		return m
	}

	return m.WithValidation(func(dto TDto) error {
		val := reflect.ValueOf(dto)
		for val.Kind() == reflect.Ptr {
			if val.IsNil() {
				return nil
			}
			val = val.Elem()
		}
		if val.Kind() != reflect.Struct {
			return nil
		}

		var validationErrors ValidationErrors
		for _, rule := range rules {
			fieldVal := val.FieldByName(rule.FieldName)
			if !fieldVal.IsValid() || !fieldVal.CanInterface() {
				continue
			}

			if err := rule.Validator(fieldVal.Interface()); err != nil {
				message := rule.Message
				if message == "" {
					message = err.Error()
				}
				validationErrors = append(validationErrors, ValidationError{
					Field:   rule.FieldName,
					Message: message,
				})
			}
		}

		if len(validationErrors) > 0 {
			return validationErrors
		}
		return nil
	})
}

// Common validation functions

var errRequired = errors.New("field is required")

// Required checks if a value is not empty
func Required(value any) error {
	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Invalid:
		return errRequired
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		if v.Len() == 0 {
			return errRequired
		}
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return errRequired
		}
	case reflect.Bool:
		// a bool is always set
		return nil
	default:
		if v.IsZero() {
			return errRequired
		}
	}

	return nil
}

// MinLength checks if a string has at least the specified number of characters
func MinLength(min int) func(any) error {
	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return errors.New("value is not a string")
		}
		if utf8.RuneCountInString(s) < min {
			return fmt.Errorf("must be at least %d characters", min)
		}
		return nil
	}
}

// MaxLength checks if a string has at most the specified number of characters
func MaxLength(max int) func(any) error {
	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return errors.New("value is not a string")
		}
		if utf8.RuneCountInString(s) > max {
			return fmt.Errorf("must be at most %d characters", max)
		}
		return nil
	}
}

// MinValue checks if a numeric value is at least the specified minimum
func MinValue(min float64) func(any) error {
	return func(value any) error {
		n, err := numeric(value)
		if err != nil {
			return err
		}
		if n < min {
			return fmt.Errorf("must be at least %v", min)
		}
		return nil
	}
}

// MaxValue checks if a numeric value is at most the specified maximum
func MaxValue(max float64) func(any) error {
	return func(value any) error {
		n, err := numeric(value)
		if err != nil {
			return err
		}
		if n > max {
			return fmt.Errorf("must be at most %v", max)
		}
		return nil
	}
}

// Pattern checks that the whole string matches the regular expression. It
// panics if the expression does not compile.
func Pattern(expr string) func(any) error {
	re := regexp.MustCompile(`^(?:` + expr + `)$`)
	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return errors.New("value is not a string")
		}
		if !re.MatchString(s) {
			return fmt.Errorf("must match %s", expr)
		}
		return nil
	}
}

func numeric(value any) (float64, error) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	}
	return 0, errors.New("value is not numeric")
}
