package locale

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/taqvim/internal/calendar"
)

// Every message ID the code asks for must exist in every locale file.
func TestLocaleFilesComplete(t *testing.T) {
	want := append([]string(nil), textKeys...)
	for m := 1; m <= 12; m++ {
		want = append(want,
			prefixShamsiMonth+strconv.Itoa(m),
			prefixGregorianMonth+strconv.Itoa(m),
			prefixLunarMonth+strconv.Itoa(m),
		)
	}
	for d := 0; d < 7; d++ {
		want = append(want,
			prefixShamsiWeekday+strconv.Itoa(d),
			prefixGregorianWeekday+strconv.Itoa(d),
			prefixWeekdayHeader+strconv.Itoa(d),
		)
	}

	files, err := filepath.Glob(filepath.Join("locales", "*.toml"))
	require.NoError(t, err)
	require.Len(t, files, len(supported))

	for _, file := range files {
		raw, err := os.ReadFile(file)
		require.NoError(t, err)

		var messages map[string]string
		require.NoError(t, toml.Unmarshal(raw, &messages), file)
		for _, key := range want {
			assert.NotEmpty(t, messages[key], "%s: missing %q", file, key)
		}
	}
}

func TestNewMatchesLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "en"},
		{"en", "en"},
		{"en-GB", "en"},
		{"fa", "fa"},
		{"fa-IR", "fa"},
		{"not a tag", "en"},
	}
	for _, tt := range tests {
		l, err := New(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, l.Language(), "New(%q)", tt.in)
	}
}

func TestSupported(t *testing.T) {
	assert.Equal(t, []string{"en", "fa"}, Supported())
}

func TestNames(t *testing.T) {
	en := MustNew("en")

	assert.Equal(t, "Farvardin", en.MonthName(calendar.Shamsi, 1))
	assert.Equal(t, "Esfand", en.MonthName(calendar.Shamsi, 12))
	assert.Equal(t, "March", en.MonthName(calendar.Gregorian, 3))
	assert.Equal(t, "Ramadan", en.MonthName(calendar.Lunar, 9))
	assert.Equal(t, "Shanbe", en.WeekdayName(calendar.Shamsi, calendar.Saturday))
	assert.Equal(t, "Friday", en.WeekdayName(calendar.Gregorian, calendar.Friday))
	assert.Equal(t, [7]string{"SH", "YE", "DO", "SE", "CH", "PA", "JO"}, en.WeekdayHeaders())

	fa := MustNew("fa")
	assert.Equal(t, "فروردین", fa.MonthName(calendar.Shamsi, 1))
	assert.True(t, fa.RTL())
	assert.False(t, en.RTL())
}

func TestMissingMessageFallsBackToID(t *testing.T) {
	assert.Equal(t, "no_such_message", MustNew("en").Text("no_such_message"))
}

func TestDigits(t *testing.T) {
	d := calendar.NewDate(calendar.Shamsi, 1402, 1, 1)

	assert.Equal(t, "1402/01/01", MustNew("en").Date(d))
	assert.Equal(t, "۱۴۰۲/۰۱/۰۱", MustNew("fa").Date(d))
	assert.Equal(t, "1 Farvardin 1402", MustNew("en").LongDate(d))
}

func TestASCIIDigits(t *testing.T) {
	assert.Equal(t, "1402/7", ASCIIDigits("۱۴۰۲/۷"))
	assert.Equal(t, "1444/09", ASCIIDigits("١٤٤٤/٠٩"))
	assert.Equal(t, "abc 12", ASCIIDigits("abc 12"))
}

func TestFormat(t *testing.T) {
	en := MustNew("en")
	got := en.Format(MsgAgeSummary, map[string]any{"Years": 31, "Months": 6, "Days": 17})
	assert.Equal(t, "31 years, 6 months, 17 days", got)
	assert.Equal(t, "11,519", en.Number(11519))
}
