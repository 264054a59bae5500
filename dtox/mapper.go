package dtox

import (
	"context"
	"errors"
	"reflect"

	"github.com/Conversia-AI/craftable-convx/asyncx"
	"github.com/Conversia-AI/craftable-convx/convx"
	"github.com/Conversia-AI/craftable-convx/errx"
	"github.com/Conversia-AI/craftable-convx/validatex"
)

// Mapper provides type-safe conversion between DTOs and domain models
type Mapper[TDto any, TModel any] struct {
	dtoToModelFn  func(dto TDto) (TModel, error)
	modelToDtoFn  func(model TModel) (TDto, error)
	fieldMappings map[string]string
	ignoreFields  map[string]bool
	validations   []func(dto TDto) error
	tagValidation bool
	strictMode    bool
	options       Options
}

// NewMapper creates a new mapper for converting between DTO and model types
func NewMapper[TDto any, TModel any]() *Mapper[TDto, TModel] {
	return &Mapper[TDto, TModel]{
		fieldMappings: make(map[string]string),
		ignoreFields:  make(map[string]bool),
		options:       DefaultOptions(),
	}
}

// WithCustomDtoToModel sets a custom function for converting from DTO to model
func (m *Mapper[TDto, TModel]) WithCustomDtoToModel(fn func(dto TDto) (TModel, error)) *Mapper[TDto, TModel] {
	m.dtoToModelFn = fn
	return m
}

// WithCustomModelToDto sets a custom function for converting from model to DTO
func (m *Mapper[TDto, TModel]) WithCustomModelToDto(fn func(model TModel) (TDto, error)) *Mapper[TDto, TModel] {
	m.modelToDtoFn = fn
	return m
}

// WithFieldMapping adds a field name mapping from DTO field to model field
func (m *Mapper[TDto, TModel]) WithFieldMapping(dtoField, modelField string) *Mapper[TDto, TModel] {
	m.fieldMappings[dtoField] = modelField
	return m
}

// WithIgnoreField specifies a field to ignore during mapping
func (m *Mapper[TDto, TModel]) WithIgnoreField(field string) *Mapper[TDto, TModel] {
	m.ignoreFields[field] = true
	return m
}

// WithValidation adds a validation function run before DTO to model conversion
func (m *Mapper[TDto, TModel]) WithValidation(fn func(dto TDto) error) *Mapper[TDto, TModel] {
	if fn != nil {
		m.validations = append(m.validations, fn)
	}
	return m
}

// WithTagValidation validates DTOs with their validatex tags before conversion
func (m *Mapper[TDto, TModel]) WithTagValidation() *Mapper[TDto, TModel] {
	m.tagValidation = true
	return m
}

// WithStrictMode makes missing fields and type mismatches fail the mapping
func (m *Mapper[TDto, TModel]) WithStrictMode(strict bool) *Mapper[TDto, TModel] {
	m.strictMode = strict
	return m
}

// WithOptions sets custom copy options for the mapper
func (m *Mapper[TDto, TModel]) WithOptions(opts *Options) *Mapper[TDto, TModel] {
	if opts != nil {
		m.options = opts.withDefaults()
	}
	return m
}

// WithRegistry sets the converter registry used for mismatched field types
func (m *Mapper[TDto, TModel]) WithRegistry(r *convx.Registry) *Mapper[TDto, TModel] {
	m.options.Registry = r
	return m
}

// ToModel converts a DTO to a model
func (m *Mapper[TDto, TModel]) ToModel(dto TDto) (TModel, error) {
	if err := m.validate(dto); err != nil {
		var zero TModel
		return zero, err
	}

	if m.dtoToModelFn != nil {
		return m.dtoToModelFn(dto)
	}
	return mapInto[TModel](m.copier(m.fieldMappings), dto)
}

// ToDto converts a model to a DTO
func (m *Mapper[TDto, TModel]) ToDto(model TModel) (TDto, error) {
	if m.modelToDtoFn != nil {
		return m.modelToDtoFn(model)
	}

	reverse := make(map[string]string, len(m.fieldMappings))
	for dtoField, modelField := range m.fieldMappings {
		reverse[modelField] = dtoField
	}
	return mapInto[TDto](m.copier(reverse), model)
}

// ToModels converts DTOs in order and stops at the first failure
func (m *Mapper[TDto, TModel]) ToModels(dtos []TDto) ([]TModel, error) {
	return convertAll(dtos, m.ToModel)
}

// ToDtos converts models in order and stops at the first failure
func (m *Mapper[TDto, TModel]) ToDtos(models []TModel) ([]TDto, error) {
	return convertAll(models, m.ToDto)
}

// ToModelsParallel converts DTOs on a bounded worker pool. Results keep the
// input order; failures are reported per index in an *asyncx.ErrorCollection.
func (m *Mapper[TDto, TModel]) ToModelsParallel(ctx context.Context, dtos []TDto, workers int) ([]TModel, error) {
	return asyncx.Pool(ctx, dtos, workers, func(_ context.Context, dto TDto) (TModel, error) {
		return m.ToModel(dto)
	})
}

// ToDtosParallel is ToModelsParallel in the other direction
func (m *Mapper[TDto, TModel]) ToDtosParallel(ctx context.Context, models []TModel, workers int) ([]TDto, error) {
	return asyncx.Pool(ctx, models, workers, func(_ context.Context, model TModel) (TDto, error) {
		return m.ToDto(model)
	})
}

func (m *Mapper[TDto, TModel]) copier(mappings map[string]string) *Copier {
	opts := m.options
	opts.FieldMappings = mappings
	opts.IgnoreFields = m.ignoreFields
	if m.strictMode {
		opts.Strict = true
		opts.FailOnMissing = true
	}
	return NewCopier(opts)
}

func (m *Mapper[TDto, TModel]) validate(dto TDto) error {
	if m.tagValidation {
		if xerr := validatex.ValidateWithErrx(dto); xerr != nil {
			return xerr
		}
	}

	for _, fn := range m.validations {
		if err := fn(dto); err != nil {
			var valErrors ValidationErrors
			if errors.As(err, &valErrors) {
				return valErrors.ToErrx()
			}
			var tagErrors validatex.ValidationErrors
			if errors.As(err, &tagErrors) {
				return tagErrors.ToErrx()
			}
			if xerr, ok := errx.As(err); ok {
				return xerr
			}
			return ErrorRegistry.NewWithCause(ErrValidationFailed, err)
		}
	}
	return nil
}

// mapInto copies src into a new T. A nil source yields the zero T.
func mapInto[T any](c *Copier, src any) (T, error) {
	var out T

	sv := reflect.ValueOf(src)
	if !sv.IsValid() || (sv.Kind() == reflect.Ptr && sv.IsNil()) {
		return out, nil
	}

	if t := reflect.TypeFor[T](); t.Kind() == reflect.Ptr {
		target := reflect.New(t.Elem())
		if err := c.Copy(src, target.Interface()); err != nil {
			return out, err
		}
		return target.Interface().(T), nil
	}

	err := c.Copy(src, &out)
	return out, err
}

func convertAll[F, T any](items []F, fn func(F) (T, error)) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, item := range items {
		converted, err := fn(item)
		if err != nil {
			return nil, ErrorRegistry.NewWithCause(ErrBatchConversion, err).WithDetail("index", i)
		}
		out = append(out, converted)
	}
	return out, nil
}
