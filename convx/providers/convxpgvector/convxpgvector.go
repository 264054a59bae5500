// Package convxpgvector registers conversions between float slices and pgvector types.
package convxpgvector

import (
	"github.com/pgvector/pgvector-go"

	"github.com/Conversia-AI/craftable-convx/convx"
)

// Converters returns the pgvector converters
func Converters() convx.Provider {
	return convx.ConverterSet{
		convx.NewPure(pgvector.NewVector),
		convx.NewPure(func(v pgvector.Vector) []float32 { return v.Slice() }),
		convx.NewPure(func(v []float64) pgvector.Vector {
			out := make([]float32, len(v))
			for i, f := range v {
				out[i] = float32(f)
			}
			return pgvector.NewVector(out)
		}),
		convx.NewPure(func(v pgvector.Vector) []float64 {
			in := v.Slice()
			out := make([]float64, len(in))
			for i, f := range in {
				out[i] = float64(f)
			}
			return out
		}),
	}
}

// Register adds the pgvector converters to r
func Register(r *convx.Registry) {
	convx.RegisterProviders(r, Converters())
}
