// Package age computes how old someone is, in Shamsi years, months and days,
// together with the weekday they were born on and the number of days lived.
package age

import (
	"errors"
	"fmt"
	"time"

	"github.com/five82/taqvim/internal/calendar"
)

// ErrFutureBirthDate is returned when the birth date falls after "now".
var ErrFutureBirthDate = errors.New("birth date is in the future")

// Result is the age breakdown for one birth date.
type Result struct {
	Birth          calendar.Date // Shamsi
	BirthGregorian calendar.Date
	Now            calendar.Date // Shamsi

	Years  int
	Months int
	Days   int

	WeekdayBirth calendar.Weekday
	WeekdayNow   calendar.Weekday

	// DaysLived counts whole days from local midnight of the birth date to now.
	DaysLived int64
}

// Compute returns the age of someone born on birth as of now. The birth date
// may be Shamsi or Gregorian; Gregorian dates are converted first. Only the
// civil date of now, in its own location, takes part in the year/month/day
// arithmetic.
func Compute(birth calendar.Date, now time.Time) (Result, error) {
	shamsiBirth, gregBirth, err := normalize(birth)
	if err != nil {
		return Result{}, err
	}

	today := calendar.FromTime(now).Shamsi

	years := today.Year - shamsiBirth.Year
	months := today.Month - shamsiBirth.Month
	days := today.Day - shamsiBirth.Day

	if days < 0 {
		months--
		days += calendar.ShamsiMonthLength(today.Year, today.Month)
	}
	if months < 0 {
		years--
		months += 12
	}
	if years < 0 {
		return Result{}, fmt.Errorf("age of %s on %s: %w", shamsiBirth, today, ErrFutureBirthDate)
	}

	return Result{
		Birth:          shamsiBirth,
		BirthGregorian: gregBirth,
		Now:            today,
		Years:          years,
		Months:         months,
		Days:           days,
		WeekdayBirth:   calendar.WeekdayOfShamsi(shamsiBirth.Year, shamsiBirth.Month, shamsiBirth.Day),
		WeekdayNow:     calendar.WeekdayOfShamsi(today.Year, today.Month, today.Day),
		DaysLived:      daysBetween(gregBirth, now),
	}, nil
}

func normalize(birth calendar.Date) (shamsi, gregorian calendar.Date, err error) {
	switch birth.System {
	case calendar.Shamsi:
		gregorian, err = calendar.ConvertShamsiToGregorian(birth)
		if err != nil {
			return calendar.Date{}, calendar.Date{}, fmt.Errorf("birth date: %w", err)
		}
		return birth, gregorian, nil
	case calendar.Gregorian:
		shamsi, err = calendar.ConvertGregorianToShamsi(birth)
		if err != nil {
			return calendar.Date{}, calendar.Date{}, fmt.Errorf("birth date: %w", err)
		}
		return shamsi, birth, nil
	default:
		return calendar.Date{}, calendar.Date{}, fmt.Errorf("birth date: %w: %s", calendar.ErrUnsupportedConversion, birth.System)
	}
}

// daysBetween works on Unix seconds; time.Duration overflows after ~292 years.
func daysBetween(birth calendar.Date, now time.Time) int64 {
	start := time.Date(birth.Year, time.Month(birth.Month), birth.Day, 0, 0, 0, 0, now.Location())
	return (now.Unix() - start.Unix()) / 86400
}
