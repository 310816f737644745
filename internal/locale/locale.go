// Package locale renders calendar names, numbers and UI strings in English or
// Persian. Message files are embedded TOML read through go-i18n.
package locale

import (
	"embed"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/five82/taqvim/internal/calendar"
)

//go:embed locales/*.toml
var localeFS embed.FS

// DefaultLanguage is used when no preference matches.
const DefaultLanguage = "en"

var (
	supported = []language.Tag{language.English, language.Persian}
	matcher   = language.NewMatcher(supported)

	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			bundleErr = fmt.Errorf("read locales: %w", err)
			return
		}
		for _, entry := range entries {
			if _, err := b.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
				bundleErr = fmt.Errorf("load %s: %w", entry.Name(), err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Supported returns the base language codes with message files.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		base, _ := tag.Base()
		out = append(out, base.String())
	}
	return out
}

// Localizer formats text for one language.
type Localizer struct {
	tag     language.Tag
	loc     *i18n.Localizer
	printer *message.Printer
	digits  *strings.Replacer
}

// New returns a Localizer for the closest supported match of lang, which may be
// any BCP 47 tag ("fa-IR", "en-GB"). Unknown or empty values fall back to English.
func New(lang string) (*Localizer, error) {
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}

	tag := language.English
	if strings.TrimSpace(lang) != "" {
		if parsed, err := language.Parse(lang); err == nil {
			_, idx, conf := matcher.Match(parsed)
			if conf != language.No {
				tag = supported[idx]
			}
		}
	}

	l := &Localizer{
		tag:     tag,
		loc:     i18n.NewLocalizer(b, tag.String()),
		printer: message.NewPrinter(tag),
	}
	if tag == language.Persian {
		l.digits = persianDigits
	}
	return l, nil
}

// MustNew is New for callers that treat a broken embedded bundle as fatal.
func MustNew(lang string) *Localizer {
	l, err := New(lang)
	if err != nil {
		panic(err)
	}
	return l
}

var persianDigits = strings.NewReplacer(
	"0", "۰", "1", "۱", "2", "۲", "3", "۳", "4", "۴",
	"5", "۵", "6", "۶", "7", "۷", "8", "۸", "9", "۹",
)

var asciiDigits = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

// ASCIIDigits rewrites Persian and Arabic-Indic digits in s as ASCII so typed
// input parses the same in either language.
func ASCIIDigits(s string) string {
	return asciiDigits.Replace(s)
}

// Language returns the base language code in use.
func (l *Localizer) Language() string {
	base, _ := l.tag.Base()
	return base.String()
}

// RTL reports whether the language is written right to left.
func (l *Localizer) RTL() bool {
	return l.tag == language.Persian
}

// Text returns the message for id, or id itself when it is missing.
func (l *Localizer) Text(id string) string {
	return l.Format(id, nil)
}

// Format renders the message template id with data.
func (l *Localizer) Format(id string, data map[string]any) string {
	msg, err := l.loc.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return msg
}

// MonthName returns the name of month in sys.
func (l *Localizer) MonthName(sys calendar.System, month int) string {
	prefix := prefixShamsiMonth
	switch sys {
	case calendar.Gregorian:
		prefix = prefixGregorianMonth
	case calendar.Lunar:
		prefix = prefixLunarMonth
	}
	return l.Text(prefix + strconv.Itoa(month))
}

// WeekdayName returns the Shamsi or Gregorian name of w. Lunar uses the
// Shamsi names.
func (l *Localizer) WeekdayName(sys calendar.System, w calendar.Weekday) string {
	if sys == calendar.Gregorian {
		return l.Text(prefixGregorianWeekday + strconv.Itoa(int(w)))
	}
	return l.Text(prefixShamsiWeekday + strconv.Itoa(int(w)))
}

// WeekdayHeaders returns the short column headers, Saturday first.
func (l *Localizer) WeekdayHeaders() [7]string {
	var out [7]string
	for i := range out {
		out[i] = l.Text(prefixWeekdayHeader + strconv.Itoa(i))
	}
	return out
}

// Digits rewrites ASCII digits in s into the language's digits.
func (l *Localizer) Digits(s string) string {
	if l.digits == nil {
		return s
	}
	return l.digits.Replace(s)
}

// Date renders d as YYYY/MM/DD.
func (l *Localizer) Date(d calendar.Date) string {
	return l.Digits(d.String())
}

// LongDate renders d as "day month-name year".
func (l *Localizer) LongDate(d calendar.Date) string {
	return l.Format(MsgEventSummary, map[string]any{
		"Day":   l.Digits(strconv.Itoa(d.Day)),
		"Month": l.MonthName(d.System, d.Month),
		"Year":  l.Digits(strconv.Itoa(d.Year)),
	})
}

// Number formats n with the language's grouping separators.
func (l *Localizer) Number(n int64) string {
	return l.Digits(l.printer.Sprintf("%d", n))
}
