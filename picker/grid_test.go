package picker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-jalalipick/jalali"
	"github.com/tartampluch/go-jalalipick/picker"
)

// wideRange spans several years so grid tests are not cut off by the bounds.
func wideRange(t *testing.T) picker.Range {
	t.Helper()
	return mustRange(t,
		jalali.MustNew(1390, jalali.Farvardin, 1),
		jalali.MustNew(1410, jalali.Esfand, 29),
	)
}

// TestBuildGrid_MonthShape pins blank padding and cell counts for months
// whose opening weekday is known.
func TestBuildGrid_MonthShape(t *testing.T) {
	tests := []struct {
		name       string
		year       int
		month      jalali.Month
		wantBlanks int
		wantDays   int
	}{
		{
			// 1402/12/01 fell on Seshanbeh in a 29 day Esfand.
			name:       "Esfand_1402",
			year:       1402,
			month:      jalali.Esfand,
			wantBlanks: 3,
			wantDays:   29,
		},
		{
			// 1403/01/01 fell on Chaharshanbeh.
			name:       "Farvardin_1403",
			year:       1403,
			month:      jalali.Farvardin,
			wantBlanks: 4,
			wantDays:   31,
		},
		{
			// 1404/01/01 fell on Jomeh, the worst-case padding.
			name:       "Farvardin_1404",
			year:       1404,
			month:      jalali.Farvardin,
			wantBlanks: 6,
			wantDays:   31,
		},
		{
			// 1403/07/01 fell on Yekshanbeh.
			name:       "Mehr_1403",
			year:       1403,
			month:      jalali.Mehr,
			wantBlanks: 1,
			wantDays:   30,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cells, err := picker.BuildGrid(tc.year, tc.month, jalali.Date{}, jalali.Date{}, wideRange(t), nil)
			require.NoError(t, err)
			require.Len(t, cells, tc.wantBlanks+tc.wantDays)

			for i := 0; i < tc.wantBlanks; i++ {
				assert.Equal(t, picker.CellBlank, cells[i].Kind, "cell %d", i)
			}
			for i := tc.wantBlanks; i < len(cells); i++ {
				require.Equal(t, picker.CellDay, cells[i].Kind, "cell %d", i)
				assert.Equal(t, i-tc.wantBlanks+1, cells[i].Date.Day(), "cell %d", i)
			}

			first := cells[tc.wantBlanks].Date
			assert.Equal(t, jalali.Weekday(tc.wantBlanks), first.Weekday())
		})
	}
}

// TestBuildGrid_Flags checks the selected, today and disabled marks against
// a bounded range with a weekday predicate.
func TestBuildGrid_Flags(t *testing.T) {
	r := mustRange(t,
		jalali.MustNew(1402, jalali.Esfand, 5),
		jalali.MustNew(1403, jalali.Farvardin, 10),
	)
	selected := jalali.MustNew(1402, jalali.Esfand, 15)
	today := jalali.MustNew(1402, jalali.Esfand, 7)

	cells, err := picker.BuildGrid(1402, jalali.Esfand, selected, today, r, picker.ExcludeWeekdays(jalali.Jomeh))
	require.NoError(t, err)
	require.Len(t, cells, 32)

	byDay := func(day int) picker.Cell { return cells[3+day-1] }

	assert.True(t, byDay(15).Selected)
	assert.False(t, byDay(15).Today)
	assert.False(t, byDay(15).Disabled)

	assert.True(t, byDay(7).Today)
	assert.False(t, byDay(7).Selected)

	// Days 1..4 precede the range start.
	assert.True(t, byDay(3).Disabled)
	assert.False(t, byDay(5).Disabled)

	// The month opens on Seshanbeh, so day 11 is a Jomeh inside the range.
	require.Equal(t, jalali.Jomeh, byDay(11).Date.Weekday())
	assert.True(t, byDay(11).Disabled)

	assert.False(t, byDay(29).Disabled)

	selectedCount := 0
	todayCount := 0
	for _, c := range cells {
		if c.Selected {
			selectedCount++
		}
		if c.Today {
			todayCount++
		}
	}
	assert.Equal(t, 1, selectedCount)
	assert.Equal(t, 1, todayCount)
}

// TestBuildGrid_ZeroMarks checks that zero selected and today dates mark no
// cell at all.
func TestBuildGrid_ZeroMarks(t *testing.T) {
	cells, err := picker.BuildGrid(1403, jalali.Mehr, jalali.Date{}, jalali.Date{}, wideRange(t), nil)
	require.NoError(t, err)

	for i, c := range cells {
		assert.False(t, c.Selected, "cell %d", i)
		assert.False(t, c.Today, "cell %d", i)
	}
}

// TestBuildGrid_LayoutInvariants sweeps several years and checks the shape
// rules every month must satisfy: padding equals the opening weekday, no
// trailing padding, and days appear in order.
func TestBuildGrid_LayoutInvariants(t *testing.T) {
	r := wideRange(t)
	for year := 1398; year <= 1408; year++ {
		for m := 1; m <= jalali.MonthsPerYear; m++ {
			month := jalali.Month(m)
			cells, err := picker.BuildGrid(year, month, jalali.Date{}, jalali.Date{}, r, nil)
			require.NoError(t, err, "%d/%d", year, m)

			opening, err := jalali.FirstWeekday(year, month)
			require.NoError(t, err)
			wantBlanks := int(opening)
			wantDays := jalali.DaysInMonth(year, month)
			require.Len(t, cells, wantBlanks+wantDays, "%d/%d", year, m)

			for i, c := range cells {
				if i < wantBlanks {
					require.Equal(t, picker.CellBlank, c.Kind, "%d/%d cell %d", year, m, i)
					continue
				}
				require.Equal(t, picker.CellDay, c.Kind, "%d/%d cell %d", year, m, i)
				require.Equal(t, i-wantBlanks+1, c.Date.Day(), "%d/%d cell %d", year, m, i)
				require.Equal(t, month, c.Date.Month(), "%d/%d cell %d", year, m, i)
				require.False(t, c.Disabled, "%d/%d cell %d", year, m, i)
			}
			require.Equal(t, picker.CellDay, cells[len(cells)-1].Kind)
		}
	}
}

// TestBuildGrid_InvalidMonth propagates date construction failures.
func TestBuildGrid_InvalidMonth(t *testing.T) {
	r := wideRange(t)

	_, err := picker.BuildGrid(0, jalali.Farvardin, jalali.Date{}, jalali.Date{}, r, nil)
	assert.ErrorIs(t, err, jalali.ErrOutOfRange)

	_, err = picker.BuildGrid(1403, jalali.Month(13), jalali.Date{}, jalali.Date{}, r, nil)
	assert.ErrorIs(t, err, jalali.ErrInvalidDate)
}

// TestWeeks checks row chunking, including the short final row.
func TestWeeks(t *testing.T) {
	cells, err := picker.BuildGrid(1402, jalali.Esfand, jalali.Date{}, jalali.Date{}, wideRange(t), nil)
	require.NoError(t, err)
	require.Len(t, cells, 32)

	rows := picker.Weeks(cells)
	require.Len(t, rows, 5)
	for i := 0; i < 4; i++ {
		assert.Len(t, rows[i], picker.GridColumns)
	}
	assert.Len(t, rows[4], 4)

	flat := make([]picker.Cell, 0, len(cells))
	for _, row := range rows {
		flat = append(flat, row...)
	}
	assert.Equal(t, cells, flat)

	assert.Empty(t, picker.Weeks(nil))
}
