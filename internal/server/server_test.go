package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/five82/taqvim/internal/age"
	"github.com/five82/taqvim/internal/state"
)

var fixedNow = time.Date(2023, time.March, 21, 10, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, store *state.Store) *Server {
	t.Helper()
	if store == nil {
		store = &state.Store{}
	}
	s, err := New(Options{
		Store:  store,
		Logger: zap.NewNop(),
		Clock:  age.FixedClock(fixedNow),
	})
	require.NoError(t, err)
	return s
}

func do(t *testing.T, s *Server, method, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestCalendarFeed(t *testing.T) {
	s := newTestServer(t, nil)

	rec := do(t, s, http.MethodGet, "/calendar.ics?year=1402&month=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mimeCalendar, rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Equal(t, 31, strings.Count(body, "BEGIN:VEVENT"))
	assert.Contains(t, body, "1 Farvardin 1402")

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	again := do(t, s, http.MethodGet, "/calendar.ics?year=1402&month=1", nil)
	assert.Equal(t, etag, again.Header().Get("ETag"), "same day, same feed")
}

func TestCalendarFeedNotModified(t *testing.T) {
	s := newTestServer(t, nil)

	first := do(t, s, http.MethodGet, "/calendar.ics?year=1402&month=7", nil)
	require.Equal(t, http.StatusOK, first.Code)

	rec := do(t, s, http.MethodGet, "/calendar.ics?year=1402&month=7", http.Header{
		"If-None-Match": {first.Header().Get("ETag")},
	})
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())

	stale := do(t, s, http.MethodGet, "/calendar.ics?year=1402&month=7", http.Header{
		"If-None-Match": {`"stale"`},
	})
	assert.Equal(t, http.StatusOK, stale.Code)
}

func TestCalendarFeedDefaultsToCurrentYear(t *testing.T) {
	s := newTestServer(t, nil)

	rec := do(t, s, http.MethodGet, "/calendar.ics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	// 1402 is not a leap year under the month-length rule.
	assert.Equal(t, 365, strings.Count(rec.Body.String(), "BEGIN:VEVENT"))
}

func TestCalendarFeedBadRequest(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name   string
		target string
	}{
		{"year too low", "/calendar.ics?year=1205"},
		{"year too high", "/calendar.ics?year=1499"},
		{"month", "/calendar.ics?year=1402&month=13"},
		{"not a number", "/calendar.ics?year=abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, tt.target, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestConvert(t *testing.T) {
	s := newTestServer(t, nil)

	rec := do(t, s, http.MethodGet, "/api/convert?from=shamsi&date=1402/01/01", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got tripleJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, dateJSON{System: "gregorian", Year: 2023, Month: 3, Day: 21, Text: "2023/03/21", MonthName: "March"}, got.Gregorian)
	assert.Equal(t, 1402, got.Shamsi.Year)
	assert.Equal(t, "Farvardin", got.Shamsi.MonthName)
	assert.Equal(t, "lunar", got.Lunar.System)
	assert.Equal(t, "Seshanbe", got.Weekday)
}

func TestConvertFromGregorian(t *testing.T) {
	s := newTestServer(t, nil)

	rec := do(t, s, http.MethodGet, "/api/convert?from=miladi&date=2023/03/21", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got tripleJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "1402/01/01", got.Shamsi.Text)
}

func TestConvertBadRequest(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name   string
		target string
	}{
		{"missing date", "/api/convert?from=shamsi"},
		{"missing from", "/api/convert?date=1402/01/01"},
		{"unknown system", "/api/convert?from=julian&date=1402/01/01"},
		{"lunar input", "/api/convert?from=lunar&date=1444/09/01"},
		{"malformed", "/api/convert?from=shamsi&date=1402-01"},
		{"era", "/api/convert?from=shamsi&date=1500/01/01"},
		{"day", "/api/convert?from=shamsi&date=1402/07/31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, tt.target, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.EqualValues(t, http.StatusBadRequest, body["code"])
		})
	}
}

func TestToday(t *testing.T) {
	store := &state.Store{}
	s := newTestServer(t, store)

	rec := do(t, s, http.MethodGet, "/api/today", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, retryAfterSecs, rec.Header().Get("Retry-After"))

	store.Update(fixedNow)
	rec = do(t, s, http.MethodGet, "/api/today", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got todayJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "1402/01/01", got.Shamsi.Text)
	assert.Equal(t, 0, got.Rollovers)
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t, nil)

	do(t, s, http.MethodGet, "/api/convert?from=shamsi&date=1402/01/01", nil)
	do(t, s, http.MethodGet, "/calendar.ics?year=1402&month=1", nil)

	rec := do(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `taqvim_http_requests_total{endpoint="/api/convert",method="GET",status="200"} 1`)
	assert.Contains(t, body, "taqvim_http_request_duration_seconds")
	assert.Contains(t, body, "taqvim_ics_renders_total 1")
}

func TestStartRequiresAddr(t *testing.T) {
	s := newTestServer(t, nil)
	err := s.Start(context.Background())
	require.Error(t, err)
}

func TestStartStopsOnCancel(t *testing.T) {
	s, err := New(Options{Addr: "127.0.0.1:0", Logger: zap.NewNop()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	require.Eventually(t, func() bool { return s.echo.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
