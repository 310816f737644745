// Package export renders Shamsi and Lunar dates as an all-day iCalendar
// overlay that calendar apps can subscribe to next to their Gregorian view.
package export

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/five82/taqvim/internal/calendar"
	"github.com/five82/taqvim/internal/locale"
)

const (
	ProdID   = "-//taqvim//Shamsi Overlay//EN"
	uidHost  = "taqvim"
	calScale = "GREGORIAN"
)

// uidNamespace seeds the name-based UUIDs so a day keeps its UID across exports.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://taqvim/shamsi"))

// Options selects the Shamsi span to export.
type Options struct {
	Year  int
	Month int // 0 exports the whole year

	// Localizer renders summaries; nil means English.
	Localizer *locale.Localizer

	// Stamp becomes DTSTAMP on every event; zero means time.Now.
	Stamp time.Time
}

// EventUID returns the stable UID of the event for a Shamsi day.
func EventUID(d calendar.Date) string {
	return uuid.NewSHA1(uidNamespace, []byte(d.String())).String() + "@" + uidHost
}

// Build assembles the calendar for opts.
func Build(opts Options) (*ical.Calendar, error) {
	first, last := 1, 12
	if opts.Month != 0 {
		first, last = opts.Month, opts.Month
	}
	if err := calendar.Validate(calendar.NewDate(calendar.Shamsi, opts.Year, first, 1)); err != nil {
		return nil, fmt.Errorf("export %d/%d: %w", opts.Year, opts.Month, err)
	}

	loc := opts.Localizer
	if loc == nil {
		var err error
		if loc, err = locale.New(locale.DefaultLanguage); err != nil {
			return nil, err
		}
	}

	stamp := opts.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProdID)
	cal.Props.SetText(ical.PropCalendarScale, calScale)
	cal.Props.SetText(ical.PropMethod, "PUBLISH")
	cal.Props.SetText("X-WR-CALNAME", loc.Text(locale.MsgAppTitle))

	dtStamp := ical.NewProp(ical.PropDateTimeStamp)
	dtStamp.SetDateTime(stamp.UTC())

	for month := first; month <= last; month++ {
		for day := 1; day <= calendar.ShamsiMonthLength(opts.Year, month); day++ {
			d := calendar.NewDate(calendar.Shamsi, opts.Year, month, day)
			triple, err := calendar.Expand(d)
			if err != nil {
				return nil, fmt.Errorf("expand %s: %w", d, err)
			}
			event := dayEvent(triple, loc)
			event.Props.Set(dtStamp)
			cal.Children = append(cal.Children, event.Component)
		}
	}
	return cal, nil
}

func dayEvent(t calendar.Triple, loc *locale.Localizer) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, EventUID(t.Shamsi))
	event.Props.SetText(ical.PropSummary, loc.LongDate(t.Shamsi))
	event.Props.SetText(ical.PropDescription, fmt.Sprintf("%s: %s\n%s: %s",
		loc.Text(locale.MsgLabelShamsi), loc.Date(t.Shamsi),
		loc.Text(locale.MsgLabelLunar), loc.LongDate(t.Lunar),
	))
	event.Props.SetText(ical.PropTransparency, "TRANSPARENT")

	g := t.Gregorian
	start := time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, time.UTC)

	dtStart := ical.NewProp(ical.PropDateTimeStart)
	dtStart.SetDate(start)
	event.Props.Set(dtStart)

	dtEnd := ical.NewProp(ical.PropDateTimeEnd)
	dtEnd.SetDate(start.AddDate(0, 0, 1))
	event.Props.Set(dtEnd)

	return event
}

// Write encodes the calendar for opts to w.
func Write(w io.Writer, opts Options) error {
	cal, err := Build(opts)
	if err != nil {
		return err
	}
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode ics: %w", err)
	}
	return nil
}

// Render returns the encoded calendar for opts.
func Render(opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
