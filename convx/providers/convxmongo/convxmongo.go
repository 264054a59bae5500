// Package convxmongo registers conversions for MongoDB BSON primitive types.
package convxmongo

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Conversia-AI/craftable-convx/convx"
)

// Converters returns the BSON primitive converters
func Converters() convx.Provider {
	return convx.ConverterSet{
		convx.NewFunc(primitive.ObjectIDFromHex),
		convx.NewPure(func(id primitive.ObjectID) string { return id.Hex() }),
		convx.NewFunc(primitive.ParseDecimal128),
		convx.NewPure(func(d primitive.Decimal128) string { return d.String() }),
		convx.NewFunc(func(d decimal.Decimal) (primitive.Decimal128, error) {
			return primitive.ParseDecimal128(d.String())
		}),
		convx.NewFunc(func(d primitive.Decimal128) (decimal.Decimal, error) {
			return decimal.NewFromString(d.String())
		}),
		convx.NewPure(primitive.NewDateTimeFromTime),
		convx.NewPure(func(dt primitive.DateTime) time.Time { return dt.Time().UTC() }),
	}
}

// Register adds the BSON converters to r
func Register(r *convx.Registry) {
	convx.RegisterProviders(r, Converters())
}
