// Package convxjwt registers conversions between time values and JWT numeric dates.
package convxjwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Conversia-AI/craftable-convx/convx"
)

// Converters returns the JWT date converters
func Converters() convx.Provider {
	return convx.ConverterSet{
		convx.NewPure(jwt.NewNumericDate),
		convx.NewPure(func(d *jwt.NumericDate) time.Time {
			if d == nil {
				return time.Time{}
			}
			return d.Time
		}),
		convx.NewPure(func(unix int64) *jwt.NumericDate {
			return jwt.NewNumericDate(time.Unix(unix, 0))
		}),
		convx.NewPure(func(d *jwt.NumericDate) int64 {
			if d == nil {
				return 0
			}
			return d.Unix()
		}),
	}
}

// Register adds the JWT converters to r
func Register(r *convx.Registry) {
	convx.RegisterProviders(r, Converters())
}
