package main

import (
	"fmt"
	"io"
	"time"

	"github.com/five82/taqvim/internal/age"
	"github.com/five82/taqvim/internal/calendar"
	"github.com/five82/taqvim/internal/locale"
)

// printTriple writes one line per calendar, then the weekday.
func printTriple(w io.Writer, loc *locale.Localizer, t calendar.Triple) {
	lines := []struct {
		label string
		date  calendar.Date
	}{
		{locale.MsgLabelShamsi, t.Shamsi},
		{locale.MsgLabelGregorian, t.Gregorian},
		{locale.MsgLabelLunar, t.Lunar},
	}
	for _, l := range lines {
		fmt.Fprintln(w, loc.Format(locale.MsgDateLine, map[string]any{
			"Label": loc.Text(l.label),
			"Date":  loc.Date(l.date) + "  " + loc.LongDate(l.date),
		}))
	}

	g := t.Gregorian
	wd := calendar.WeekdayOf(time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, time.UTC).Weekday())
	fmt.Fprintf(w, "%s / %s\n", loc.WeekdayName(calendar.Shamsi, wd), loc.WeekdayName(calendar.Gregorian, wd))
}

func formatAge(loc *locale.Localizer, r age.Result) string {
	return loc.Format(locale.MsgAgeSummary, map[string]any{
		"Years":  loc.Number(int64(r.Years)),
		"Months": loc.Number(int64(r.Months)),
		"Days":   loc.Number(int64(r.Days)),
	})
}

func printAge(w io.Writer, loc *locale.Localizer, r age.Result) {
	fmt.Fprintln(w, loc.Format(locale.MsgDateLine, map[string]any{
		"Label": loc.Text(locale.MsgLabelShamsi),
		"Date":  loc.Date(r.Birth),
	}))
	fmt.Fprintln(w, loc.Format(locale.MsgAgeGregorianBirth, map[string]any{
		"Date":    loc.Date(r.BirthGregorian),
		"Weekday": loc.WeekdayName(calendar.Gregorian, r.WeekdayBirth),
	}))
	fmt.Fprintln(w, formatAge(loc, r))
	fmt.Fprintln(w, loc.Format(locale.MsgAgeBornOn, map[string]any{
		"Weekday": loc.WeekdayName(calendar.Shamsi, r.WeekdayBirth),
	}))
	fmt.Fprintln(w, loc.Format(locale.MsgAgeDaysLived, map[string]any{
		"Days": loc.Number(r.DaysLived),
	}))
}
