package datetimex

import (
	"time"

	"github.com/Conversia-AI/craftable-convx/validatex"
)

// LocalZone is accepted by ResolveLocation as time.Local. TimeToTimestamp
// never emits it: times in time.Local carry their numeric offset so the DTO
// means the same instant in another process.
const LocalZone = "Local"

// DateDTO is a calendar date
type DateDTO struct {
	Year        int `json:"year" validatex:"min=1,max=9999"`
	MonthOfYear int `json:"monthOfYear" validatex:"min=1,max=12"`
	DayOfMonth  int `json:"dayOfMonth" validatex:"min=1,max=31"`
}

// TimeDTO is a wall clock time in a zone
type TimeDTO struct {
	Hour     int    `json:"hour" validatex:"min=0,max=23"`
	Minute   int    `json:"minute" validatex:"min=0,max=59"`
	Sec      int    `json:"sec" validatex:"min=0,max=59"`
	TimeZone string `json:"timeZone"`
}

// TimestampDTO combines a date and a time
type TimestampDTO struct {
	Date DateDTO `json:"date"`
	Time TimeDTO `json:"time"`
}

// TimeToDateDTO extracts the calendar date of t in its own location
func TimeToDateDTO(t time.Time) DateDTO {
	year, month, day := t.Date()
	return DateDTO{Year: year, MonthOfYear: int(month), DayOfMonth: day}
}

// TimeToTimeDTO extracts the wall clock of t and the name of its zone
func TimeToTimeDTO(t time.Time) TimeDTO {
	hour, minute, sec := t.Clock()
	return TimeDTO{Hour: hour, Minute: minute, Sec: sec, TimeZone: zoneName(t)}
}

// TimeToTimestamp splits t into date and time components
func TimeToTimestamp(t time.Time) TimestampDTO {
	return TimestampDTO{Date: TimeToDateDTO(t), Time: TimeToTimeDTO(t)}
}

// TimestampToTime rebuilds the instant described by ts
func TimestampToTime(ts TimestampDTO) (time.Time, error) {
	if err := validateDate(ts.Date); err != nil {
		return time.Time{}, err
	}
	if err := validatex.Validate(ts.Time); err != nil {
		return time.Time{}, DateTimeErrors.NewWithCause(ErrInvalidTime, err).WithDetail("time", ts.Time)
	}

	loc, err := ResolveLocation(ts.Time.TimeZone)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(ts.Date.Year, time.Month(ts.Date.MonthOfYear), ts.Date.DayOfMonth,
		ts.Time.Hour, ts.Time.Minute, ts.Time.Sec, 0, loc), nil
}

// DateToTime returns midnight of the date of t in loc. A nil loc keeps the
// location of t.
func DateToTime(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = t.Location()
	}
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// DateDTOToTime returns midnight of d in loc, time.Local when loc is nil
func DateDTOToTime(d DateDTO, loc *time.Location) (time.Time, error) {
	if err := validateDate(d); err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, time.Month(d.MonthOfYear), d.DayOfMonth, 0, 0, 0, 0, loc), nil
}

// ResolveLocation maps a TimeDTO zone back to a location. Empty and "Local"
// resolve to time.Local, offsets like "+02:00" to a fixed zone.
func ResolveLocation(name string) (*time.Location, error) {
	switch name {
	case "", LocalZone:
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}

	if loc, err := time.LoadLocation(name); err == nil {
		return loc, nil
	}
	if t, err := time.Parse("-07:00", name); err == nil {
		_, offset := t.Zone()
		return time.FixedZone(name, offset), nil
	}
	return nil, DateTimeErrors.New(ErrUnknownTimeZone).WithDetail("zone", name)
}

func zoneName(t time.Time) string {
	loc := t.Location()
	switch {
	case loc == time.Local:
		return t.Format("-07:00")
	case loc == time.UTC:
		return "UTC"
	}

	name := loc.String()
	if _, err := time.LoadLocation(name); err == nil && name != "" {
		return name
	}
	return t.Format("-07:00")
}

// validateDate rejects out-of-range components and dates that do not exist,
// such as February 30.
func validateDate(d DateDTO) error {
	if err := validatex.Validate(d); err != nil {
		return DateTimeErrors.NewWithCause(ErrInvalidDate, err).WithDetail("date", d)
	}
	normalized := time.Date(d.Year, time.Month(d.MonthOfYear), d.DayOfMonth, 0, 0, 0, 0, time.UTC)
	if normalized.Day() != d.DayOfMonth {
		return DateTimeErrors.New(ErrInvalidDate).WithDetail("date", d)
	}
	return nil
}
