// Package contacts reads birthdays from vCard files and ages each contact in
// the Shamsi calendar.
package contacts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"go.uber.org/zap"

	"github.com/five82/taqvim/internal/age"
	"github.com/five82/taqvim/internal/calendar"
)

const fallbackName = "Unknown"

var birthdayFormats = []string{
	"2006-01-02",
	"20060102",
	time.RFC3339,
	"2006-01-02T15:04:05Z",
}

// Entry is one contact with a usable birthday.
type Entry struct {
	Name  string
	Birth calendar.Date // Gregorian, as stored in the card
	Age   age.Result
	Err   error // set when the age could not be computed
}

// Report summarizes one import.
type Report struct {
	Entries   []Entry
	Processed int // cards decoded
	NoBirth   int // cards without a BDAY
	Unusable  int // BDAY present but without a year or unparsable
}

// Importer turns vCards into aged entries.
type Importer struct {
	Clock  age.Clock
	Logger *zap.Logger
}

// ReadFile imports the vCards stored at path.
func (im *Importer) ReadFile(ctx context.Context, path string) (Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open vcard: %w", err)
	}
	defer func() { _ = file.Close() }()
	return im.Read(ctx, file)
}

// Read imports every card in r. Malformed cards are skipped.
func (im *Importer) Read(ctx context.Context, r io.Reader) (Report, error) {
	logger := im.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := im.Clock
	if clock == nil {
		clock = age.RealClock{}
	}
	now := clock.Now()

	var report Report
	decoder := vcard.NewDecoder(r)
	for {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Warn("skipped malformed card", zap.Error(err))
			continue
		}
		report.Processed++

		field := card.Get(vcard.FieldBirthday)
		if field == nil || strings.TrimSpace(field.Value) == "" {
			report.NoBirth++
			continue
		}

		name := displayName(card)
		birth, err := parseBirthday(field.Value)
		if err != nil {
			report.Unusable++
			logger.Debug("skipped birthday", zap.String("name", name), zap.String("value", field.Value))
			continue
		}

		entry := Entry{Name: name, Birth: birth}
		entry.Age, entry.Err = age.Compute(birth, now)
		if entry.Err != nil {
			logger.Debug("age not computed", zap.String("name", name), zap.Error(entry.Err))
		}
		report.Entries = append(report.Entries, entry)
	}

	logger.Info("vcard import finished",
		zap.Int("processed", report.Processed),
		zap.Int("entries", len(report.Entries)),
		zap.Int("no_birthday", report.NoBirth),
		zap.Int("unusable", report.Unusable),
	)
	return report, nil
}

// displayName prefers FN, then the structured N.
func displayName(card vcard.Card) string {
	if fn := strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName)); fn != "" {
		return fn
	}
	if n := card.Name(); n != nil {
		parts := []string{n.GivenName, n.FamilyName}
		joined := strings.TrimSpace(strings.Join(parts, " "))
		if joined != "" {
			return joined
		}
	}
	return fallbackName
}

// parseBirthday accepts full dates only; --MM-DD birthdays carry no year to age from.
func parseBirthday(value string) (calendar.Date, error) {
	value = strings.TrimSpace(value)
	for _, layout := range birthdayFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return calendar.NewDate(calendar.Gregorian, t.Year(), int(t.Month()), t.Day()), nil
		}
	}
	return calendar.Date{}, fmt.Errorf("%w: birthday %q", calendar.ErrMalformedDate, value)
}
