package calendar

// Historical calibration of WeekdayDaycode. The bands shift the base formula so
// that it lines up with the printed calendars of the Qajar era.
const (
	earlyBandStart = 1206
	earlyBandEnd   = 1218
	lateBandStart  = 1220
	lateBandEnd    = 1299
)

// correctedYears get an extra two-day shift on top of any band.
var correctedYears = map[int]bool{1208: true, 1213: true, 1214: true, 1219: true}

var gregorianDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapGregorian reports whether year is a Gregorian leap year.
func IsLeapGregorian(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}

// ShamsiMonthLength returns the number of days in a Shamsi month, or 0 for a
// month outside [1, 12].
//
// Esfand has 30 days when the Shamsi year number itself passes the Gregorian leap
// test. This is not the astronomical Solar Hijri rule; it is kept for
// compatibility with existing tables.
func ShamsiMonthLength(year, month int) int {
	switch {
	case month >= 1 && month <= 6:
		return 31
	case month >= 7 && month <= 11:
		return 30
	case month == 12:
		if IsLeapGregorian(year) {
			return 30
		}
		return 29
	default:
		return 0
	}
}

// GregorianMonthLength returns the number of days in a Gregorian month, or 0 for
// a month outside [1, 12].
func GregorianMonthLength(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapGregorian(year) {
		return 29
	}
	return gregorianDays[month-1]
}

// WeekdayDaycode returns the weekday (0 = Saturday) of the first day of the given
// Shamsi month.
func WeekdayDaycode(year, month int) int {
	daycode := (year*365 + year/4 + 1) % 7

	if year >= earlyBandStart && year <= earlyBandEnd {
		daycode += 2
	}
	if correctedYears[year] {
		daycode = (daycode + 2) % 7
	}
	if year >= lateBandStart && year <= lateBandEnd {
		daycode = (daycode + 1) % 7
	}

	for m := 1; m < month; m++ {
		daycode = (daycode + ShamsiMonthLength(year, m)) % 7
	}
	return mod7(daycode)
}

// WeekdayOfShamsi returns the weekday of a Shamsi day using the daycode of its month.
func WeekdayOfShamsi(year, month, day int) Weekday {
	return Weekday(mod7(WeekdayDaycode(year, month) + day - 1))
}

func mod7(v int) int {
	v %= 7
	if v < 0 {
		v += 7
	}
	return v
}
