package calendar

// MonthGrid lays out a Shamsi month as Saturday-first weeks. Zero cells are
// blanks before day 1 or after the last day.
type MonthGrid struct {
	Year    int
	Month   int
	Daycode int
	Days    int
	Weeks   [][7]int
}

// NewMonthGrid builds the grid for a Shamsi month inside the supported window.
func NewMonthGrid(year, month int) (MonthGrid, error) {
	if err := Validate(NewDate(Shamsi, year, month, 1)); err != nil {
		return MonthGrid{}, err
	}
	return gridFor(year, month, WeekdayDaycode(year, month)), nil
}

func gridFor(year, month, daycode int) MonthGrid {
	days := ShamsiMonthLength(year, month)
	g := MonthGrid{Year: year, Month: month, Daycode: daycode, Days: days}

	cells := daycode + days
	rows := (cells + 6) / 7
	g.Weeks = make([][7]int, rows)
	for day := 1; day <= days; day++ {
		idx := daycode + day - 1
		g.Weeks[idx/7][idx%7] = day
	}
	return g
}

// Position returns the row and column of day within the grid.
func (g MonthGrid) Position(day int) (row, col int, ok bool) {
	if day < 1 || day > g.Days {
		return 0, 0, false
	}
	idx := g.Daycode + day - 1
	return idx / 7, idx % 7, true
}
