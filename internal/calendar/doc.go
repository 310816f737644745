// Package calendar converts dates between the Shamsi (Solar Hijri), Gregorian and
// Lunar (Hijri) calendars and provides the month arithmetic the rest of taqvim
// builds on.
//
// # Overview
//
// Everything here is a pure function of its arguments. There is no shared mutable
// state, so the package is safe to call from any goroutine.
//
//   - math.go: leap years, month lengths, the weekday daycode of a Shamsi month
//   - convert.go: Shamsi <-> Gregorian and Gregorian -> Lunar transforms
//   - julian.go: Julian day numbers and the arithmetic Islamic calendar
//   - grid.go: Saturday-first week layout of a Shamsi month
//   - date.go: the Date value, parsing and validation
//
// # Supported Range
//
// Shamsi years 1206 through 1498 are supported. That maps onto Gregorian years
// 1827 through 2120. Entry points that take a Date validate it and return a
// *RangeError; the integer level functions (ShamsiToGregorian and friends) assume
// their caller already did.
//
// # Compatibility Rules
//
// A few rules intentionally follow the tables taqvim has always printed rather
// than the astronomical calendar:
//
//   - Esfand has 30 days when the Shamsi year number passes the Gregorian leap
//     test (ShamsiMonthLength).
//   - WeekdayDaycode applies fixed correction bands for 1206-1218 and 1220-1299
//     and an extra shift for 1208, 1213, 1214 and 1219.
//   - Lunar dates come from the Kuwaiti arithmetic algorithm and can differ from
//     observed crescent sightings by a day or two.
//
// # Usage Example
//
//	g, err := calendar.ConvertShamsiToGregorian(calendar.NewDate(calendar.Shamsi, 1402, 1, 1))
//	if err != nil {
//		return err
//	}
//	fmt.Println(g) // 2023/03/21
package calendar
