package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonthGrid_Farvardin1402(t *testing.T) {
	g, err := NewMonthGrid(1402, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Daycode)
	assert.Equal(t, 31, g.Days)
	require.Len(t, g.Weeks, 5)
	assert.Equal(t, [7]int{0, 0, 0, 1, 2, 3, 4}, g.Weeks[0])
	assert.Equal(t, [7]int{26, 27, 28, 29, 30, 31, 0}, g.Weeks[4])

	row, col, ok := g.Position(31)
	require.True(t, ok)
	assert.Equal(t, 4, row)
	assert.Equal(t, 5, col)

	_, _, ok = g.Position(32)
	assert.False(t, ok)
}

func TestNewMonthGrid_CellCount(t *testing.T) {
	for _, ym := range [][2]int{{1206, 1}, {1219, 7}, {1404, 12}, {1498, 12}} {
		g, err := NewMonthGrid(ym[0], ym[1])
		require.NoError(t, err)

		count := 0
		leading := 0
		for _, week := range g.Weeks {
			for _, day := range week {
				if day != 0 {
					count++
				} else if count == 0 {
					leading++
				}
			}
		}
		assert.Equal(t, ShamsiMonthLength(ym[0], ym[1]), count, "grid %v", ym)
		assert.Equal(t, WeekdayDaycode(ym[0], ym[1]), leading, "grid %v", ym)
	}
}

func TestNewMonthGrid_OutsideWindow(t *testing.T) {
	_, err := NewMonthGrid(1205, 1)
	assert.ErrorIs(t, err, ErrUnsupportedEra)

	_, err = NewMonthGrid(1402, 13)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
