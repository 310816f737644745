package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// System identifies one of the supported calendars.
type System int

const (
	Shamsi System = iota
	Gregorian
	Lunar
)

// Supported Shamsi year window.
const (
	MinShamsiYear = 1206
	MaxShamsiYear = 1498
)

// String returns the lower-case system name.
func (s System) String() string {
	switch s {
	case Shamsi:
		return "shamsi"
	case Gregorian:
		return "gregorian"
	case Lunar:
		return "lunar"
	default:
		return fmt.Sprintf("system(%d)", int(s))
	}
}

// ParseSystem maps a user supplied name to a System. Common aliases are accepted.
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shamsi", "jalali", "solar", "sh":
		return Shamsi, nil
	case "gregorian", "miladi", "g":
		return Gregorian, nil
	case "lunar", "hijri", "qamari", "l":
		return Lunar, nil
	default:
		return 0, fmt.Errorf("%w: unknown calendar %q", ErrUnsupportedConversion, name)
	}
}

// Date is a civil date tagged with its calendar system.
type Date struct {
	System System
	Year   int
	Month  int
	Day    int
}

// NewDate builds a Date without validating it.
func NewDate(sys System, year, month, day int) Date {
	return Date{System: sys, Year: year, Month: month, Day: day}
}

// String renders the date as YYYY/MM/DD.
func (d Date) String() string {
	return fmt.Sprintf("%d/%02d/%02d", d.Year, d.Month, d.Day)
}

// ParseDate reads "YYYY/MM/DD" or "YYYY-MM-DD" into a Date of the given system.
// The result is not range checked; use Validate for that.
func ParseDate(sys System, value string) (Date, error) {
	trimmed := strings.TrimSpace(value)
	parts := strings.FieldsFunc(trimmed, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, value)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, value)
		}
		nums[i] = n
	}
	return NewDate(sys, nums[0], nums[1], nums[2]), nil
}

// Validate checks month and day against the rules of the date's system and, for
// Shamsi dates, the supported year window.
func Validate(d Date) error {
	switch d.System {
	case Shamsi:
		if d.Year < MinShamsiYear || d.Year > MaxShamsiYear {
			return &RangeError{Field: "year", Value: d.Year, Min: MinShamsiYear, Max: MaxShamsiYear, Err: ErrUnsupportedEra}
		}
		if err := checkRange("month", d.Month, 1, 12); err != nil {
			return err
		}
		return checkRange("day", d.Day, 1, ShamsiMonthLength(d.Year, d.Month))
	case Gregorian:
		if d.Year < 1 {
			return &RangeError{Field: "year", Value: d.Year, Min: 1, Max: maxYear, Err: ErrOutOfRange}
		}
		if err := checkRange("month", d.Month, 1, 12); err != nil {
			return err
		}
		return checkRange("day", d.Day, 1, GregorianMonthLength(d.Year, d.Month))
	case Lunar:
		if d.Year < 1 {
			return &RangeError{Field: "year", Value: d.Year, Min: 1, Max: maxYear, Err: ErrOutOfRange}
		}
		if err := checkRange("month", d.Month, 1, 12); err != nil {
			return err
		}
		return checkRange("day", d.Day, 1, 30)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedConversion, d.System)
	}
}

const maxYear = 9999

func checkRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return &RangeError{Field: field, Value: value, Min: lo, Max: hi, Err: ErrOutOfRange}
	}
	return nil
}

// Weekday is a day of the week counted from Saturday, the first day of the
// Shamsi week.
type Weekday int

const (
	Saturday Weekday = iota
	Sunday
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
)

// WeekdayOf converts a time.Weekday (Sunday = 0) to a Saturday based Weekday.
func WeekdayOf(w time.Weekday) Weekday {
	return Weekday((int(w) + 1) % 7)
}

// Time converts back to the standard library weekday.
func (w Weekday) Time() time.Weekday {
	return time.Weekday((int(w) + 6) % 7)
}
