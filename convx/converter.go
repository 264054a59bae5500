package convx

import (
	"fmt"
	"reflect"
)

// Converter maps values of one type to another
type Converter interface {
	From() reflect.Type
	To() reflect.Type
	Convert(value any) (any, error)
}

// Func is a converter between two static types
type Func[F any, T any] struct {
	fn func(F) (T, error)
}

// NewFunc creates a converter from a typed function
func NewFunc[F any, T any](fn func(F) (T, error)) *Func[F, T] {
	return &Func[F, T]{fn: fn}
}

// NewPure creates a converter from a function that cannot fail
func NewPure[F any, T any](fn func(F) T) *Func[F, T] {
	return &Func[F, T]{fn: func(v F) (T, error) { return fn(v), nil }}
}

func (f *Func[F, T]) From() reflect.Type { return reflect.TypeFor[F]() }
func (f *Func[F, T]) To() reflect.Type   { return reflect.TypeFor[T]() }

// Convert implements Converter
func (f *Func[F, T]) Convert(value any) (any, error) {
	var in F
	if value != nil {
		v, ok := value.(F)
		if !ok {
			return nil, ErrorRegistry.New(ErrUnexpectedType).
				WithDetail("expected", f.From().String()).
				WithDetail("actual", fmt.Sprintf("%T", value))
		}
		in = v
	}
	return f.fn(in)
}

// ConvertTyped applies the function without boxing
func (f *Func[F, T]) ConvertTyped(value F) (T, error) {
	return f.fn(value)
}

type funcConverter struct {
	from, to reflect.Type
	fn       func(any) (any, error)
}

func (c *funcConverter) From() reflect.Type             { return c.from }
func (c *funcConverter) To() reflect.Type               { return c.to }
func (c *funcConverter) Convert(value any) (any, error) { return c.fn(value) }

// NewDynamic creates a converter for types only known at runtime
func NewDynamic(from, to reflect.Type, fn func(any) (any, error)) Converter {
	return &funcConverter{from: from, to: to, fn: fn}
}
