package calendar

import (
	"fmt"
	"time"
)

// Offsets between Shamsi and Gregorian numbering. Farvardin 1 falls on day 80 of
// Gregorian year y+621.
const (
	shamsiYearOffset = 621
	shamsiDayOffset  = 79
	firstHalfDays    = 186
)

// Days elapsed in a Shamsi year before the start of months 2..12.
var shamsiCumulative = [11]int{31, 62, 93, 124, 155, 186, 216, 246, 276, 306, 336}

// ShamsiToGregorian converts a Shamsi date. The input is assumed valid.
func ShamsiToGregorian(year, month, day int) (int, int, int) {
	dayCount := day
	if month > 1 && month <= 12 {
		dayCount += shamsiCumulative[month-2]
	}
	gy := year + shamsiYearOffset
	dayCount += shamsiDayOffset

	yearLen := 365
	if IsLeapGregorian(gy) {
		yearLen = 366
	}
	if dayCount > yearLen {
		dayCount -= yearLen
		gy++
	}

	gm := 1
	for gm < 12 && dayCount > GregorianMonthLength(gy, gm) {
		dayCount -= GregorianMonthLength(gy, gm)
		gm++
	}
	return gy, gm, dayCount
}

// GregorianToShamsi converts a Gregorian date. The input is assumed valid.
func GregorianToShamsi(year, month, day int) (int, int, int) {
	dayOfYear := day
	for m := 1; m < month && m <= 12; m++ {
		dayOfYear += gregorianDays[m-1]
	}
	if IsLeapGregorian(year) && month > 2 {
		dayOfYear++
	}

	if dayOfYear <= shamsiDayOffset {
		// Tail of the previous Shamsi year, counted from 1 Dey.
		if IsLeapGregorian(year - 1) {
			dayOfYear += 11
		} else {
			dayOfYear += 10
		}
		sm, sd := splitDays(dayOfYear, 30, 10)
		return year - shamsiYearOffset - 1, sm, sd
	}

	dayOfYear -= shamsiDayOffset
	if dayOfYear <= firstHalfDays {
		sm, sd := splitDays(dayOfYear, 31, 1)
		return year - shamsiYearOffset, sm, sd
	}
	sm, sd := splitDays(dayOfYear-firstHalfDays, 30, 7)
	return year - shamsiYearOffset, sm, sd
}

// splitDays maps a 1-based day count onto consecutive months of monthLen days
// starting at firstMonth. A count that divides evenly is the last day of the
// earlier month, not day 0 of the next.
func splitDays(days, monthLen, firstMonth int) (int, int) {
	if days%monthLen == 0 {
		return firstMonth + days/monthLen - 1, monthLen
	}
	return firstMonth + days/monthLen, days % monthLen
}

// GregorianToLunar converts a Gregorian date to the arithmetic Hijri calendar.
func GregorianToLunar(year, month, day int) (int, int, int) {
	return lunarFromJulian(JulianDayNumber(year, month, day))
}

// ConvertShamsiToGregorian converts a validated Shamsi date.
func ConvertShamsiToGregorian(d Date) (Date, error) {
	if err := expect(d, Shamsi); err != nil {
		return Date{}, err
	}
	gy, gm, gd := ShamsiToGregorian(d.Year, d.Month, d.Day)
	return NewDate(Gregorian, gy, gm, gd), nil
}

// ConvertGregorianToShamsi converts a validated Gregorian date.
func ConvertGregorianToShamsi(d Date) (Date, error) {
	if err := expect(d, Gregorian); err != nil {
		return Date{}, err
	}
	sy, sm, sd := GregorianToShamsi(d.Year, d.Month, d.Day)
	return NewDate(Shamsi, sy, sm, sd), nil
}

// ConvertGregorianToLunar converts a validated Gregorian date.
func ConvertGregorianToLunar(d Date) (Date, error) {
	if err := expect(d, Gregorian); err != nil {
		return Date{}, err
	}
	ly, lm, ld := GregorianToLunar(d.Year, d.Month, d.Day)
	return NewDate(Lunar, ly, lm, ld), nil
}

// ConvertShamsiToLunar converts a validated Shamsi date through its Gregorian day.
func ConvertShamsiToLunar(d Date) (Date, error) {
	g, err := ConvertShamsiToGregorian(d)
	if err != nil {
		return Date{}, err
	}
	return ConvertGregorianToLunar(g)
}

// Convert dispatches to the conversion for d.System -> target. Lunar input is
// not supported.
func Convert(d Date, target System) (Date, error) {
	if d.System == target {
		if err := Validate(d); err != nil {
			return Date{}, err
		}
		return d, nil
	}
	switch {
	case d.System == Shamsi && target == Gregorian:
		return ConvertShamsiToGregorian(d)
	case d.System == Shamsi && target == Lunar:
		return ConvertShamsiToLunar(d)
	case d.System == Gregorian && target == Shamsi:
		return ConvertGregorianToShamsi(d)
	case d.System == Gregorian && target == Lunar:
		return ConvertGregorianToLunar(d)
	default:
		return Date{}, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, d.System, target)
	}
}

// Triple holds the same civil day in all three systems.
type Triple struct {
	Shamsi    Date
	Gregorian Date
	Lunar     Date
}

// FromGregorian expands a Gregorian civil day into all three systems.
func FromGregorian(year, month, day int) Triple {
	sy, sm, sd := GregorianToShamsi(year, month, day)
	ly, lm, ld := GregorianToLunar(year, month, day)
	return Triple{
		Shamsi:    NewDate(Shamsi, sy, sm, sd),
		Gregorian: NewDate(Gregorian, year, month, day),
		Lunar:     NewDate(Lunar, ly, lm, ld),
	}
}

// FromTime expands the civil date of t, in t's location.
func FromTime(t time.Time) Triple {
	y, m, d := t.Date()
	return FromGregorian(y, int(m), d)
}

// Expand validates d and returns it in all three systems.
func Expand(d Date) (Triple, error) {
	switch d.System {
	case Shamsi, Gregorian:
		g, err := Convert(d, Gregorian)
		if err != nil {
			return Triple{}, err
		}
		t := FromGregorian(g.Year, g.Month, g.Day)
		if d.System == Shamsi {
			// Esfand 30 of a leap year shares its Gregorian day with 1 Farvardin.
			t.Shamsi = d
		}
		return t, nil
	default:
		return Triple{}, fmt.Errorf("%w: from %s", ErrUnsupportedConversion, d.System)
	}
}

func expect(d Date, sys System) error {
	if d.System != sys {
		return fmt.Errorf("%w: got %s, want %s", ErrSystemMismatch, d.System, sys)
	}
	return Validate(d)
}
