package convx

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BasicConverters returns the string, rune slice and decimal converters using '.' as
// decimal separator
func BasicConverters() Provider {
	return NewBasicConverters(DefaultOptions())
}

// NewBasicConverters returns the basic converters configured by opts
func NewBasicConverters(opts Options) Provider {
	sep := opts.DecimalSeparator
	if sep == 0 {
		sep = '.'
	}

	return ConverterSet{
		NewFunc(func(s string) (decimal.Decimal, error) {
			return StringToNumber(s, sep)
		}),
		NewPure(func(d decimal.Decimal) string { return d.String() }),
		NewPure(func(d decimal.Decimal) float64 {
			f, _ := d.Float64()
			return f
		}),
		NewPure(func(r []rune) string { return string(r) }),
		NewPure(func(s string) []rune { return []rune(s) }),
	}
}

// StringToNumber parses a number written with the given decimal separator.
// Grouping characters (',' or '.' whichever is not the separator, spaces and
// non-breaking spaces) are ignored. An empty string parses to zero.
func StringToNumber(s string, decimalSeparator rune) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}

	grouping := ','
	if decimalSeparator == ',' {
		grouping = '.'
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r == decimalSeparator:
			sb.WriteRune('.')
		case r == grouping, r == ' ', r == '\u00a0':
		default:
			sb.WriteRune(r)
		}
	}

	d, err := decimal.NewFromString(sb.String())
	if err != nil {
		return decimal.Zero, ErrorRegistry.NewWithCause(ErrConversionFailed, err).
			WithDetail("input", s).
			WithDetail("target_type", "decimal.Decimal")
	}
	return d, nil
}
