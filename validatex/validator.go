package validatex

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/Conversia-AI/craftable-convx/errx"
)

// DefaultTagName is the struct tag read by the package-level functions
const DefaultTagName = "validatex"

// Validatable is an interface for types that provide their own validation
type Validatable interface {
	Validate() error
}

var defaultValidator = NewValidator()

// Validate validates a struct based on the validatex tags. Types implementing
// Validatable validate themselves.
func Validate(obj any) error {
	return defaultValidator.Validate(obj)
}

// ValidateStruct validates the tags of obj without consulting its Validatable
// implementation. Use it from inside a Validate method.
func ValidateStruct(obj any) error {
	return defaultValidator.ValidateStruct(obj)
}

// ValidateWithErrx validates a struct and returns an errx.Error if validation fails
func ValidateWithErrx(obj any) *errx.Error {
	return toErrx(Validate(obj))
}

// ValidateField validates a single value against a validation rule
func ValidateField(value any, rule string) error {
	errs := defaultValidator.check("", value, parseTag(rule))
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateFieldWithErrx validates a field and returns an errx.Error if validation fails
func ValidateFieldWithErrx(fieldName string, value any, rule string) *errx.Error {
	errs := defaultValidator.check(fieldName, value, parseTag(rule))
	if len(errs) == 0 {
		return nil
	}
	return errs.ToErrx().WithDetail("field", fieldName)
}

// MustValidate validates a struct and panics if validation fails
func MustValidate(obj any) {
	if err := Validate(obj); err != nil {
		panic(err)
	}
}

// CustomValidator allows customization of validation behavior
type CustomValidator struct {
	TagName string
	Rules   map[string]ValidationFunc
}

// NewValidator creates a new custom validator
func NewValidator() *CustomValidator {
	return &CustomValidator{
		TagName: DefaultTagName,
		Rules:   make(map[string]ValidationFunc),
	}
}

// RegisterRule registers a custom validation rule
func (v *CustomValidator) RegisterRule(name string, fn ValidationFunc) *CustomValidator {
	v.Rules[name] = fn
	return v
}

// WithTagName sets the tag name to use for validation
func (v *CustomValidator) WithTagName(tagName string) *CustomValidator {
	v.TagName = tagName
	return v
}

// Validate validates a struct using this validator's configuration
func (v *CustomValidator) Validate(obj any) error {
	if validatable, ok := obj.(Validatable); ok {
		return validatable.Validate()
	}
	return v.ValidateStruct(obj)
}

// ValidateStruct walks the exported fields of obj in declaration order and
// collects every failed rule.
func (v *CustomValidator) ValidateStruct(obj any) error {
	val, ok := indirect(obj)
	if !ok || val.Kind() != reflect.Struct {
		return ValidatorErrors.New(ErrInvalidStruct).WithDetail("type", fmt.Sprintf("%T", obj))
	}

	w := &walker{validator: v, visited: make(map[uintptr]bool)}
	if ptr := reflect.ValueOf(obj); ptr.Kind() == reflect.Ptr {
		w.visited[ptr.Pointer()] = true
	}

	if errs := w.walk(val, ""); len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateWithErrx validates a struct using this validator and returns an errx.Error
func (v *CustomValidator) ValidateWithErrx(obj any) *errx.Error {
	return toErrx(v.Validate(obj))
}

func (v *CustomValidator) lookup(name string) (ValidationFunc, bool) {
	if fn, ok := v.Rules[name]; ok {
		return fn, true
	}
	return getValidationFunc(name)
}

// check applies rules to a single value. Nil pointers only fail required.
func (v *CustomValidator) check(field string, value any, rules []rule) ValidationErrors {
	if len(rules) == 0 {
		return nil
	}
	if isNilPointer(value) && !hasRule(rules, "required") {
		return nil
	}
	if hasRule(rules, "omitempty") && isZero(value) {
		return nil
	}

	var errs ValidationErrors
	for _, r := range rules {
		if r.Name == "omitempty" {
			continue
		}

		fn, ok := v.lookup(r.Name)
		if !ok {
			errs = append(errs, newValidationError(field, r.Name, r.Param, value, ReasonUnknownRule, ""))
			continue
		}

		if !fn(value, r.Param) {
			errs = append(errs, NewValidationError(field, r.Name, r.Param, value, ""))
			if r.Name == "required" {
				break
			}
		}
	}
	return errs
}

type walker struct {
	validator *CustomValidator
	visited   map[uintptr]bool
}

func (w *walker) walk(val reflect.Value, prefix string) ValidationErrors {
	var errs ValidationErrors
	typ := val.Type()

	for i := range typ.NumField() {
		field := typ.Field(i)
		fieldValue := val.Field(i)
		tag := field.Tag.Get(w.validator.TagName)
		if tag == "-" {
			continue
		}

		// Embedded structs contribute their fields without a prefix
		if field.Anonymous && tag == "" {
			inner := fieldValue
			if inner.Kind() == reflect.Ptr {
				if inner.IsNil() {
					continue
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				errs = append(errs, w.walk(inner, prefix)...)
			}
			continue
		}

		if !field.IsExported() {
			continue
		}

		name := prefix + field.Name
		errs = append(errs, w.validator.check(name, fieldValue.Interface(), parseTag(tag))...)
		errs = append(errs, w.nested(name, fieldValue)...)
	}

	return errs
}

func (w *walker) nested(name string, fieldValue reflect.Value) ValidationErrors {
	if fieldValue.Kind() == reflect.Interface && !fieldValue.IsNil() {
		fieldValue = fieldValue.Elem()
	}
	if fieldValue.Kind() == reflect.Ptr {
		if fieldValue.IsNil() || w.visited[fieldValue.Pointer()] {
			return nil
		}
		w.visited[fieldValue.Pointer()] = true
		fieldValue = fieldValue.Elem()
	}
	if fieldValue.Kind() != reflect.Struct {
		return nil
	}

	if validatable, ok := asValidatable(fieldValue); ok {
		err := validatable.Validate()
		if err == nil {
			return nil
		}
		var nestedErrs ValidationErrors
		if errors.As(err, &nestedErrs) {
			return prefixed(name, nestedErrs)
		}
		return ValidationErrors{newValidationError(name, "", "", fieldValue.Interface(), ReasonInvalid, err.Error())}
	}

	return w.walk(fieldValue, name+".")
}

func asValidatable(v reflect.Value) (Validatable, bool) {
	if validatable, ok := v.Interface().(Validatable); ok {
		return validatable, true
	}
	if v.CanAddr() {
		if validatable, ok := v.Addr().Interface().(Validatable); ok {
			return validatable, true
		}
	}
	return nil, false
}

func prefixed(name string, errs ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for i, e := range errs {
		e.Field = name + "." + e.Field
		out[i] = e
	}
	return out
}

func toErrx(err error) *errx.Error {
	if err == nil {
		return nil
	}

	var validationErrors ValidationErrors
	if errors.As(err, &validationErrors) {
		return validationErrors.ToErrx()
	}

	var validatorErr *errx.Error
	if errors.As(err, &validatorErr) {
		return validatorErr
	}

	return ValidatorErrors.NewWithMessage(ErrValidationFailed, err.Error())
}
