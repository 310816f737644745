// Package navigator holds the cursor of the interactive month browser.
//
// A Navigator starts on a (year, month) pair inside the supported Shamsi
// window and moves one month or one year per event. Each move recomputes the
// weekday of day 1 from scratch. Moves never leave the window:
//
//   - PreviousMonth from Farvardin steps to Esfand of the previous year; from
//     Farvardin of the first supported year it lands on Esfand of that same year.
//   - NextMonth mirrors this at the last supported year, landing on Farvardin.
//   - PreviousYear and NextYear keep the month and stop at the window edges.
//
// Close is terminal; events after it leave the state untouched.
package navigator

import (
	"errors"
	"fmt"

	"github.com/five82/taqvim/internal/calendar"
)

// ErrClosed is returned by Jump after Close.
var ErrClosed = errors.New("navigator closed")

// Event is a navigation input.
type Event int

const (
	PreviousMonth Event = iota
	NextMonth
	PreviousYear
	NextYear
	Close
)

func (e Event) String() string {
	switch e {
	case PreviousMonth:
		return "previous-month"
	case NextMonth:
		return "next-month"
	case PreviousYear:
		return "previous-year"
	case NextYear:
		return "next-year"
	case Close:
		return "close"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// State is the cursor position and the weekday of its first day (0 = Saturday).
type State struct {
	Year    int
	Month   int
	Daycode int
}

// Navigator owns one State. It is not safe for concurrent use.
type Navigator struct {
	state  State
	closed bool
}

// New returns a navigator positioned at year/month.
func New(year, month int) (*Navigator, error) {
	if err := validate(year, month); err != nil {
		return nil, err
	}
	return &Navigator{state: stateFor(year, month)}, nil
}

// State returns the current cursor.
func (n *Navigator) State() State {
	return n.state
}

// Closed reports whether Close has been dispatched.
func (n *Navigator) Closed() bool {
	return n.closed
}

// Grid lays out the month under the cursor.
func (n *Navigator) Grid() calendar.MonthGrid {
	g, err := calendar.NewMonthGrid(n.state.Year, n.state.Month)
	if err != nil {
		// The cursor never leaves the window.
		panic(err)
	}
	return g
}

// Dispatch applies ev and returns the resulting state.
func (n *Navigator) Dispatch(ev Event) State {
	if n.closed {
		return n.state
	}

	year, month := n.state.Year, n.state.Month
	switch ev {
	case PreviousMonth:
		month--
		if month < 1 {
			month = 12
			year--
		}
		year = clampYear(year)
	case NextMonth:
		month++
		if month > 12 {
			month = 1
			year++
		}
		year = clampYear(year)
	case PreviousYear:
		year = clampYear(year - 1)
	case NextYear:
		year = clampYear(year + 1)
	case Close:
		n.closed = true
		return n.state
	default:
		return n.state
	}

	n.state = stateFor(year, month)
	return n.state
}

// Jump moves the cursor straight to year/month.
func (n *Navigator) Jump(year, month int) (State, error) {
	if n.closed {
		return n.state, ErrClosed
	}
	if err := validate(year, month); err != nil {
		return n.state, err
	}
	n.state = stateFor(year, month)
	return n.state, nil
}

func stateFor(year, month int) State {
	return State{Year: year, Month: month, Daycode: calendar.WeekdayDaycode(year, month)}
}

func clampYear(year int) int {
	if year < calendar.MinShamsiYear {
		return calendar.MinShamsiYear
	}
	if year > calendar.MaxShamsiYear {
		return calendar.MaxShamsiYear
	}
	return year
}

func validate(year, month int) error {
	if err := calendar.Validate(calendar.NewDate(calendar.Shamsi, year, month, 1)); err != nil {
		return fmt.Errorf("navigate to %d/%d: %w", year, month, err)
	}
	return nil
}
