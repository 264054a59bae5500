// Package convxuuid registers conversions between strings, byte slices and uuid.UUID.
package convxuuid

import (
	"github.com/google/uuid"

	"github.com/Conversia-AI/craftable-convx/convx"
)

// Converters returns the uuid converters
func Converters() convx.Provider {
	return convx.ConverterSet{
		convx.NewFunc(uuid.Parse),
		convx.NewPure(func(id uuid.UUID) string { return id.String() }),
		convx.NewFunc(uuid.FromBytes),
		convx.NewPure(func(id uuid.UUID) []byte {
			b := id
			return b[:]
		}),
		convx.NewFunc(func(s *string) (uuid.NullUUID, error) {
			if s == nil || *s == "" {
				return uuid.NullUUID{}, nil
			}
			id, err := uuid.Parse(*s)
			if err != nil {
				return uuid.NullUUID{}, err
			}
			return uuid.NullUUID{UUID: id, Valid: true}, nil
		}),
		convx.NewPure(func(n uuid.NullUUID) *string {
			if !n.Valid {
				return nil
			}
			s := n.UUID.String()
			return &s
		}),
	}
}

// Register adds the uuid converters to r
func Register(r *convx.Registry) {
	convx.RegisterProviders(r, Converters())
}
