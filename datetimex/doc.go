// Package datetimex maps time.Time values to plain date, time-of-day and
// timestamp DTOs and back.
//
// Months are 1-based (January is 1). The zone of a TimeDTO is stored by name
// ("Europe/Lisbon", "UTC") or, for unnamed fixed zones and time.Local, as an
// offset such as "+02:00", so that a timestamp converted to components and
// back reconstructs the same wall clock at the same instant.
//
// The Converters provider registers these mappings in a convx.Registry:
//
//	r := convx.NewRegistry("api")
//	datetimex.Register(r)
//	ts, err := convx.ConvertTo[datetimex.TimestampDTO](r, time.Now())
package datetimex
