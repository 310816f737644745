package server

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/five82/taqvim/internal/calendar"
	"github.com/five82/taqvim/internal/export"
)

const (
	mimeCalendar   = "text/calendar; charset=utf-8"
	cacheControl   = "public, max-age=3600"
	retryAfterSecs = "5"
)

type calendarQuery struct {
	Year  int `query:"year" validate:"omitempty,min=1206,max=1498"`
	Month int `query:"month" validate:"omitempty,min=1,max=12"`
}

type convertQuery struct {
	From string `query:"from" validate:"required"`
	Date string `query:"date" validate:"required"`
}

type dateJSON struct {
	System    string `json:"system"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Text      string `json:"text"`
	MonthName string `json:"month_name"`
}

type tripleJSON struct {
	Shamsi    dateJSON `json:"shamsi"`
	Gregorian dateJSON `json:"gregorian"`
	Lunar     dateJSON `json:"lunar"`
	Weekday   string   `json:"weekday"`
}

type todayJSON struct {
	tripleJSON
	Updated   time.Time `json:"updated"`
	Rollovers int       `json:"rollovers"`
}

// feedItem is one rendered ICS body with its validators.
type feedItem struct {
	data         []byte
	etag         string
	lastModified string
}

type feedKey struct {
	year, month int
	stamp       string
}

// feedCache keeps rendered feeds for the current day. Entries from an older
// stamp are dropped on the next miss.
type feedCache struct {
	mu       sync.Mutex
	items    map[feedKey]*feedItem
	onRender func()
}

func newFeedCache() *feedCache {
	return &feedCache{items: make(map[feedKey]*feedItem)}
}

func (f *feedCache) get(key feedKey, render func() ([]byte, error)) (*feedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if item, ok := f.items[key]; ok {
		return item, nil
	}

	data, err := render()
	if err != nil {
		return nil, err
	}
	if f.onRender != nil {
		f.onRender()
	}

	for k := range f.items {
		if k.stamp != key.stamp {
			delete(f.items, k)
		}
	}

	hash := sha256.Sum256(data)
	item := &feedItem{
		data:         data,
		etag:         fmt.Sprintf("%q", hex.EncodeToString(hash[:])),
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	}
	f.items[key] = item
	return item, nil
}

// today returns the store's day, or the clock's when the poller has not run.
func (s *Server) today() calendar.Triple {
	if snap := s.store.Snapshot(); snap.HasToday {
		return snap.Today
	}
	return calendar.FromTime(s.clock.Now())
}

func (s *Server) handleCalendar(c echo.Context) error {
	var q calendarQuery
	if err := c.Bind(&q); err != nil {
		return err
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	today := s.today()
	if q.Year == 0 {
		q.Year = today.Shamsi.Year
	}

	g := today.Gregorian
	stamp := time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, time.UTC)
	key := feedKey{year: q.Year, month: q.Month, stamp: g.String()}

	item, err := s.feeds.get(key, func() ([]byte, error) {
		return export.Render(export.Options{
			Year:      q.Year,
			Month:     q.Month,
			Localizer: s.loc,
			Stamp:     stamp,
		})
	})
	if err != nil {
		return rangeToHTTP(err)
	}

	h := c.Response().Header()
	h.Set(echo.HeaderContentType, mimeCalendar)
	h.Set(echo.HeaderXContentTypeOptions, "nosniff")
	h.Set(echo.HeaderCacheControl, cacheControl)
	h.Set("ETag", item.etag)
	h.Set(echo.HeaderLastModified, item.lastModified)

	if match := c.Request().Header.Get("If-None-Match"); match != "" && match == item.etag {
		return c.NoContent(http.StatusNotModified)
	}
	if c.Request().Method == http.MethodHead {
		return c.NoContent(http.StatusOK)
	}
	return c.Blob(http.StatusOK, mimeCalendar, item.data)
}

func (s *Server) handleConvert(c echo.Context) error {
	var q convertQuery
	if err := c.Bind(&q); err != nil {
		return err
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	sys, err := calendar.ParseSystem(q.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d, err := calendar.ParseDate(sys, q.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	t, err := calendar.Expand(d)
	if err != nil {
		return rangeToHTTP(err)
	}
	return c.JSON(http.StatusOK, s.tripleJSON(t))
}

func (s *Server) handleToday(c echo.Context) error {
	snap := s.store.Snapshot()
	if !snap.HasToday {
		c.Response().Header().Set(echo.HeaderRetryAfter, retryAfterSecs)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "today not computed yet")
	}
	return c.JSON(http.StatusOK, todayJSON{
		tripleJSON: s.tripleJSON(snap.Today),
		Updated:    snap.LastUpdated.UTC(),
		Rollovers:  snap.Rollovers,
	})
}

func (s *Server) tripleJSON(t calendar.Triple) tripleJSON {
	g := t.Gregorian
	wd := calendar.WeekdayOf(time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, time.UTC).Weekday())
	return tripleJSON{
		Shamsi:    s.dateJSON(t.Shamsi),
		Gregorian: s.dateJSON(t.Gregorian),
		Lunar:     s.dateJSON(t.Lunar),
		Weekday:   s.loc.WeekdayName(calendar.Shamsi, wd),
	}
}

func (s *Server) dateJSON(d calendar.Date) dateJSON {
	return dateJSON{
		System:    d.System.String(),
		Year:      d.Year,
		Month:     d.Month,
		Day:       d.Day,
		Text:      s.loc.Date(d),
		MonthName: s.loc.MonthName(d.System, d.Month),
	}
}

// rangeToHTTP maps calendar domain errors to 400 and anything else to 500.
func rangeToHTTP(err error) error {
	switch {
	case errors.Is(err, calendar.ErrOutOfRange),
		errors.Is(err, calendar.ErrUnsupportedEra),
		errors.Is(err, calendar.ErrUnsupportedConversion),
		errors.Is(err, calendar.ErrMalformedDate):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
