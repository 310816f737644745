package calendar

// Kuwaiti algorithm constants.
const (
	islamicEpoch     = 1948440
	islamicCycleDays = 10631
)

// intPart rounds half away from zero.
func intPart(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

// div is a truncating integer division passed through intPart. The quotient is
// already integral, so intPart leaves it unchanged; the pairing is kept so the
// arithmetic stays bit-exact with the published formulas.
func div(a, b int) int {
	return intPart(float64(a / b))
}

// JulianDayNumber returns the Julian day number of a Gregorian date. Dates before
// 1582-10-15 are read as proleptic Julian calendar dates.
func JulianDayNumber(year, month, day int) int {
	if year > 1582 || (year == 1582 && (month > 10 || (month == 10 && day >= 15))) {
		a := div(month-14, 12)
		return div(1461*(year+4800+a), 4) +
			div(367*(month-2-12*a), 12) -
			div(3*div(year+4900+a, 100), 4) +
			day - 32075
	}
	return 367*year -
		div(7*(year+5001+div(month-9, 7)), 4) +
		div(275*month, 9) +
		day + 1729777
}

// lunarFromJulian maps a Julian day number onto the arithmetic Islamic calendar.
func lunarFromJulian(jd int) (int, int, int) {
	l := jd - islamicEpoch + islamicCycleDays + 1
	n := div(l-1, islamicCycleDays)
	l = l - islamicCycleDays*n + 354

	j := div(10985-l, 5316)*div(50*l, 17719) +
		div(l, 5670)*div(43*l, 15238)

	l = l - div(30-j, 15)*div(17719*j, 50) -
		div(j, 16)*div(15238*j, 43) + 29

	month := div(24*l, 709)
	day := l - div(709*month, 24)
	year := 30*n + j - 30
	return year, month, day
}
