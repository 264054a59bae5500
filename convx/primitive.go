package convx

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// PrimitiveConverters returns conversions between strings, numbers, booleans, times and durations
func PrimitiveConverters() Provider {
	return NewPrimitiveConverters(DefaultOptions())
}

// NewPrimitiveConverters returns the primitive converters configured by opts
func NewPrimitiveConverters(opts Options) Provider {
	layout := opts.TimeLayout
	if layout == "" {
		layout = time.RFC3339
	}

	return ConverterSet{
		NewFunc(func(s string) (int, error) { return strconv.Atoi(strings.TrimSpace(s)) }),
		NewFunc(func(s string) (int64, error) { return strconv.ParseInt(strings.TrimSpace(s), 10, 64) }),
		NewFunc(func(s string) (float64, error) { return cast.ToFloat64E(strings.TrimSpace(s)) }),
		NewFunc(func(s string) (bool, error) { return cast.ToBoolE(strings.TrimSpace(s)) }),
		NewFunc(func(s string) (time.Time, error) { return cast.ToTimeE(s) }),
		NewFunc(func(s string) (time.Duration, error) { return cast.ToDurationE(s) }),
		NewPure(func(v int) string { return cast.ToString(v) }),
		NewPure(func(v int64) string { return cast.ToString(v) }),
		NewPure(func(v float64) string { return cast.ToString(v) }),
		NewPure(func(v bool) string { return cast.ToString(v) }),
		NewPure(func(v time.Duration) string { return v.String() }),
		NewPure(func(v time.Time) string { return v.Format(layout) }),
		NewPure(func(v int) float64 { return float64(v) }),
		NewPure(func(v int64) float64 { return float64(v) }),
		NewPure(func(v float64) int64 { return int64(v) }),
		NewPure(func(v int) int64 { return int64(v) }),
		NewPure(func(v int64) time.Time { return time.Unix(v, 0).UTC() }),
		NewPure(func(v time.Time) int64 { return v.Unix() }),
		NewPure(func(v []byte) string { return string(v) }),
		NewPure(func(v string) []byte { return []byte(v) }),
	}
}
