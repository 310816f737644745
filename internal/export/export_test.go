package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/taqvim/internal/calendar"
	"github.com/five82/taqvim/internal/locale"
)

var stamp = time.Date(2023, 3, 21, 8, 0, 0, 0, time.UTC)

func decode(t *testing.T, raw []byte) *ical.Calendar {
	t.Helper()
	cal, err := ical.NewDecoder(bytes.NewReader(raw)).Decode()
	require.NoError(t, err)
	return cal
}

func TestRender_MonthHasOneEventPerDay(t *testing.T) {
	raw, err := Render(Options{Year: 1402, Month: 1, Stamp: stamp})
	require.NoError(t, err)

	cal := decode(t, raw)
	events := cal.Events()
	require.Len(t, events, 31)

	prodID, err := cal.Props.Text(ical.PropProductID)
	require.NoError(t, err)
	assert.Equal(t, ProdID, prodID)

	first := events[0]
	start, err := first.DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 3, 21, 0, 0, 0, 0, time.UTC), start)

	summary, err := first.Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "1 Farvardin 1402", summary)

	uid, err := first.Props.Text(ical.PropUID)
	require.NoError(t, err)
	assert.Equal(t, EventUID(calendar.NewDate(calendar.Shamsi, 1402, 1, 1)), uid)
}

func TestRender_WholeYear(t *testing.T) {
	raw, err := Render(Options{Year: 1404, Stamp: stamp})
	require.NoError(t, err)
	assert.Len(t, decode(t, raw).Events(), 6*31+5*30+30)
}

func TestRender_StableUIDs(t *testing.T) {
	a, err := Render(Options{Year: 1402, Month: 7, Stamp: stamp})
	require.NoError(t, err)
	b, err := Render(Options{Year: 1402, Month: 7, Stamp: stamp})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	seen := map[string]bool{}
	for _, e := range decode(t, a).Events() {
		uid, err := e.Props.Text(ical.PropUID)
		require.NoError(t, err)
		assert.False(t, seen[uid], "duplicate uid %s", uid)
		seen[uid] = true
	}
}

func TestRender_Localized(t *testing.T) {
	raw, err := Render(Options{Year: 1402, Month: 1, Stamp: stamp, Localizer: locale.MustNew("fa")})
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "فروردین"))
}

func TestBuild_RejectsOutOfWindow(t *testing.T) {
	_, err := Build(Options{Year: 1500, Month: 1})
	assert.ErrorIs(t, err, calendar.ErrUnsupportedEra)

	_, err = Build(Options{Year: 1402, Month: 13})
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)
}

func TestEventUID_Deterministic(t *testing.T) {
	d := calendar.NewDate(calendar.Shamsi, 1370, 6, 15)
	assert.Equal(t, EventUID(d), EventUID(d))
	assert.NotEqual(t, EventUID(d), EventUID(calendar.NewDate(calendar.Shamsi, 1370, 6, 16)))
	assert.True(t, strings.HasSuffix(EventUID(d), "@taqvim"))
}
