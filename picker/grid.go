package picker

import (
	"github.com/tartampluch/go-jalalipick/jalali"
)

// GridColumns is the number of columns in a month grid, one per weekday,
// starting at Shanbeh.
const GridColumns = 7

// CellKind discriminates grid cell variants.
type CellKind uint8

const (
	// CellBlank pads the first row so day 1 lands on its weekday column.
	CellBlank CellKind = iota

	// CellDay is a concrete day of the displayed month.
	CellDay
)

// Cell is one position in a month grid. Date and the status flags are only
// meaningful for CellDay cells.
type Cell struct {
	Kind     CellKind
	Date     jalali.Date
	Selected bool
	Today    bool
	Disabled bool
}

// BuildGrid lays out one month as a flat row-major cell sequence: one blank
// cell per weekday column before day 1, then every day of the month in order.
// There is no trailing padding. Selected and today mark the matching day
// cells; a zero date marks nothing. Disabled flags days the range and
// predicate reject.
func BuildGrid(year int, month jalali.Month, selected, today jalali.Date, r Range, pred Predicate) ([]Cell, error) {
	first, err := jalali.New(year, month, 1)
	if err != nil {
		return nil, err
	}
	offset := int(first.Weekday())
	days := jalali.DaysInMonth(year, month)

	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{Kind: CellBlank})
	}
	for day := 1; day <= days; day++ {
		date, err := jalali.New(year, month, day)
		if err != nil {
			return nil, err
		}
		cells = append(cells, Cell{
			Kind:     CellDay,
			Date:     date,
			Selected: date.Equal(selected),
			Today:    date.Equal(today),
			Disabled: !r.Selectable(date, pred),
		})
	}
	return cells, nil
}

// Weeks chunks a flat grid into rows of GridColumns cells. The final row is
// short when the month does not end on a Jomeh.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, (len(cells)+GridColumns-1)/GridColumns)
	for start := 0; start < len(cells); start += GridColumns {
		end := start + GridColumns
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, cells[start:end])
	}
	return rows
}
