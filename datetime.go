package ogpeek

import (
	"fmt"
	"strconv"
	"time"
)

// DateTime is a calendar date with an optional time of day, as written in
// Open Graph temporal properties.
type DateTime struct {
	Year   int  `json:"year"`
	Month  int  `json:"month"`
	Day    int  `json:"day"`
	Hour   *int `json:"hour,omitempty"`
	Minute *int `json:"minute,omitempty"`
}

// ParseDateTime parses a literal of the form YYYY-MM-DD, optionally followed
// by THH:MM. Anything after the minutes (seconds, zone offset) is ignored.
func ParseDateTime(s string) (DateTime, bool) {
	if len(s) < 10 || s[4] != '-' || s[7] != '-' {
		return DateTime{}, false
	}
	year, ok := digits(s[0:4])
	if !ok {
		return DateTime{}, false
	}
	month, ok := digits(s[5:7])
	if !ok || month < 1 || month > 12 {
		return DateTime{}, false
	}
	day, ok := digits(s[8:10])
	if !ok || day < 1 || day > 31 {
		return DateTime{}, false
	}
	dt := DateTime{Year: year, Month: month, Day: day}

	rest := s[10:]
	if rest == "" {
		return dt, true
	}
	if len(rest) < 6 || rest[0] != 'T' || rest[3] != ':' {
		return DateTime{}, false
	}
	hour, ok := digits(rest[1:3])
	if !ok || hour > 23 {
		return DateTime{}, false
	}
	minute, ok := digits(rest[4:6])
	if !ok || minute > 59 {
		return DateTime{}, false
	}
	dt.Hour = &hour
	dt.Minute = &minute
	return dt, true
}

// digits parses a fixed-width run of ASCII digits.
func digits(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Time converts the value to a UTC time. A missing time of day is midnight.
func (d DateTime) Time() time.Time {
	var hour, minute int
	if d.Hour != nil {
		hour = *d.Hour
	}
	if d.Minute != nil {
		minute = *d.Minute
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, hour, minute, 0, 0, time.UTC)
}

// String formats the value back into its literal form.
func (d DateTime) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	if d.Hour != nil && d.Minute != nil {
		s += fmt.Sprintf("T%02d:%02d", *d.Hour, *d.Minute)
	}
	return s
}
