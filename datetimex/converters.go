package datetimex

import (
	"time"

	"github.com/Conversia-AI/craftable-convx/convx"
)

// Converters returns the time.Time to DTO mappings
func Converters() convx.Provider {
	return convx.ConverterSet{
		convx.NewPure(TimeToTimestamp),
		convx.NewFunc(TimestampToTime),
		convx.NewPure(TimeToDateDTO),
		convx.NewFunc(func(d DateDTO) (time.Time, error) {
			return DateDTOToTime(d, nil)
		}),
		convx.NewPure(TimeToTimeDTO),
		convx.NewPure(func(t *time.Time) *TimestampDTO {
			if t == nil {
				return nil
			}
			ts := TimeToTimestamp(*t)
			return &ts
		}),
	}
}

// Register adds the date/time converters to r
func Register(r *convx.Registry) {
	convx.RegisterProviders(r, Converters())
}
