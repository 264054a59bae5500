package convx

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	stringType  = reflect.TypeFor[string]()
	intType     = reflect.TypeFor[int]()
	float64Type = reflect.TypeFor[float64]()
)

func TestRegisterAndLookup(t *testing.T) {
	reg := NewRegistry("test")
	reg.Register(NewFunc(func(s string) (int, error) { return strconv.Atoi(s) }))

	c, ok := reg.Lookup(stringType, intType)
	require.True(t, ok)
	assert.Equal(t, stringType, c.From())
	assert.Equal(t, intType, c.To())

	_, ok = reg.Lookup(intType, stringType)
	assert.False(t, ok)
	assert.Equal(t, 1, reg.Count())
}

func TestConvert(t *testing.T) {
	reg := NewRegistry("test")
	reg.Register(NewFunc(func(s string) (int, error) { return strconv.Atoi(s) }))

	out, err := reg.Convert("42", intType)
	require.NoError(t, err)
	assert.Equal(t, 42, out)

	typed, err := ConvertTo[int](reg, "7")
	require.NoError(t, err)
	assert.Equal(t, 7, typed)
}

func TestConvertWithoutConverter(t *testing.T) {
	reg := NewRegistry("test")

	_, err := reg.Convert("42", intType)
	require.Error(t, err)
	assert.True(t, IsNoConverter(err))
}

func TestConvertFailureIsWrapped(t *testing.T) {
	reg := NewRegistry("test")
	cause := errors.New("bad digits")
	reg.Register(NewFunc(func(s string) (int, error) { return 0, cause }))

	_, err := reg.Convert("x", intType)
	require.Error(t, err)
	assert.True(t, IsConversionFailed(err))
	assert.ErrorIs(t, err, cause)
}

func TestLastRegistrationWins(t *testing.T) {
	reg := NewRegistry("test")
	reg.Register(NewPure(func(s string) int { return 1 }))
	reg.Register(NewPure(func(s string) int { return 2 }))

	out, err := reg.Convert("", intType)
	require.NoError(t, err)
	assert.Equal(t, 2, out)
	assert.Equal(t, 1, reg.Count())
}

func TestNilValues(t *testing.T) {
	reg := NewRegistry("test")
	ptrType := reflect.TypeFor[*string]()
	reg.Register(NewPure(func(s *string) string {
		if s == nil {
			return "<none>"
		}
		return *s
	}))

	_, err := reg.Convert(nil, stringType)
	assert.True(t, errorsHasCode(err, ErrNilValue))

	out, err := reg.ConvertFrom(nil, ptrType, stringType)
	require.NoError(t, err)
	assert.Equal(t, "<none>", out)
}

func TestRegisterFunc(t *testing.T) {
	reg := NewRegistry("test")
	require.Error(t, reg.RegisterFunc(nil, intType, nil))
	require.NoError(t, reg.RegisterFunc(intType, stringType, func(v any) (any, error) {
		return strconv.Itoa(v.(int)), nil
	}))

	out, err := reg.Convert(12, stringType)
	require.NoError(t, err)
	assert.Equal(t, "12", out)
}

func TestEntriesSortedAndLookupByName(t *testing.T) {
	reg := NewRegistry("test")
	RegisterProviders(reg, BasicConverters())

	entries := reg.Entries()
	require.Len(t, entries, 5)
	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].From.String(), entries[i].From.String())
	}

	c, ok := reg.LookupByName("string", "decimal.Decimal")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[decimal.Decimal](), c.To())

	reg.Reset()
	assert.Zero(t, reg.Count())
}

func TestNamedInstances(t *testing.T) {
	assert.Same(t, Default(), Instance(DefaultName))
	assert.Same(t, Instance("named-test"), Instance("named-test"))
	assert.NotSame(t, Default(), Instance("named-test"))
	assert.True(t, Default().Has(stringType, float64Type))
	assert.Zero(t, Instance("named-test").Count())
}

func TestFuncRejectsWrongInput(t *testing.T) {
	f := NewPure(func(s string) int { return len(s) })
	_, err := f.Convert(3)
	assert.True(t, errorsHasCode(err, ErrUnexpectedType))

	n, err := f.ConvertTyped("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
