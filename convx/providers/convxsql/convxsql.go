// Package convxsql registers conversions for PostgreSQL column types from lib/pq and
// the JSON and bit helpers from sqlx/types.
package convxsql

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"

	"github.com/Conversia-AI/craftable-convx/convx"
)

// Converters returns the SQL column converters
func Converters() convx.Provider {
	return convx.ConverterSet{
		convx.NewPure(func(v []string) pq.StringArray { return pq.StringArray(v) }),
		convx.NewPure(func(v pq.StringArray) []string { return []string(v) }),
		convx.NewPure(func(v []float64) pq.Float64Array { return pq.Float64Array(v) }),
		convx.NewPure(func(v pq.Float64Array) []float64 { return []float64(v) }),
		convx.NewPure(func(v []int64) pq.Int64Array { return pq.Int64Array(v) }),
		convx.NewPure(func(v pq.Int64Array) []int64 { return []int64(v) }),
		convx.NewPure(func(v []bool) pq.BoolArray { return pq.BoolArray(v) }),
		convx.NewPure(func(v pq.BoolArray) []bool { return []bool(v) }),

		convx.NewPure(func(v pq.NullTime) *time.Time {
			if !v.Valid {
				return nil
			}
			t := v.Time
			return &t
		}),
		convx.NewPure(func(v *time.Time) pq.NullTime {
			if v == nil {
				return pq.NullTime{}
			}
			return pq.NullTime{Time: *v, Valid: true}
		}),
		convx.NewPure(func(v time.Time) pq.NullTime {
			return pq.NullTime{Time: v, Valid: !v.IsZero()}
		}),

		convx.NewFunc(func(v types.JSONText) (map[string]any, error) {
			out := map[string]any{}
			if len(v) == 0 {
				return out, nil
			}
			if err := v.Unmarshal(&out); err != nil {
				return nil, err
			}
			return out, nil
		}),
		convx.NewFunc(func(v map[string]any) (types.JSONText, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			return types.JSONText(b), nil
		}),
		convx.NewPure(func(v types.JSONText) string { return v.String() }),
		convx.NewFunc(func(v string) (types.JSONText, error) {
			text := types.JSONText(v)
			if !json.Valid(text) {
				return nil, errors.New("invalid JSON text")
			}
			return text, nil
		}),
		convx.NewPure(func(v types.BitBool) bool { return bool(v) }),
		convx.NewPure(func(v bool) types.BitBool { return types.BitBool(v) }),
	}
}

// Register adds the SQL converters to r
func Register(r *convx.Registry) {
	convx.RegisterProviders(r, Converters())
}
