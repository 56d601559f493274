// Package picker implements the month-paging model behind a Jalali date
// picker: session date ranges, selectability predicates, page arithmetic,
// the day grid, and the controller state machine that drives a presentation
// layer through notifications.
package picker

import (
	"fmt"

	"github.com/tartampluch/go-jalalipick/jalali"
)

// Config assembles one picker session. Range and Initial are required;
// everything else is optional.
type Config struct {
	// Range bounds the navigable months and the selectable days.
	Range Range

	// Initial is the day selected when the session opens. It must be
	// selectable under Range and Allowed.
	Initial jalali.Date

	// Allowed further restricts selectable days inside the range. Nil allows
	// every day in the range.
	Allowed Predicate

	// Clock supplies the session's notion of now, read once at construction.
	// Nil falls back to the system clock.
	Clock jalali.Clock

	// OnSelectionChanged fires after every successful selection command.
	OnSelectionChanged func(selected jalali.Date)

	// OnDisplayedMonthChanged fires whenever the displayed month moves, by
	// navigation or by selecting a day outside the displayed month.
	OnDisplayedMonthChanged func(year int, month jalali.Month)
}

// Controller owns the state of one picker session: the selected day and the
// displayed month page. Commands are synchronous transitions; state is fully
// updated before notifications fire. Callers serialize access.
type Controller struct {
	rng     Range
	allowed Predicate
	pager   Pager

	today     jalali.Date
	selected  jalali.Date
	dispYear  int
	dispMonth jalali.Month
	page      int

	onSelection func(jalali.Date)
	onMonth     func(int, jalali.Month)
}

// New validates the configuration and opens a session displaying the month
// of the initial selection.
func New(cfg Config) (*Controller, error) {
	if cfg.Range.First().IsZero() || cfg.Range.Last().IsZero() {
		return nil, fmt.Errorf("%w: zero date bound", ErrInvalidRange)
	}
	if !cfg.Range.Selectable(cfg.Initial, cfg.Allowed) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInitialDate, cfg.Initial)
	}

	c := &Controller{
		rng:         cfg.Range,
		allowed:     cfg.Allowed,
		pager:       NewPager(cfg.Range),
		selected:    cfg.Initial,
		onSelection: cfg.OnSelectionChanged,
		onMonth:     cfg.OnDisplayedMonthChanged,
	}

	// A clock outside the supported span leaves today unset: no cell gets the
	// today mark and GoToToday does nothing.
	if today, err := jalali.Today(cfg.Clock); err == nil {
		c.today = today
	}

	c.page = c.pager.PageOfDate(cfg.Initial)
	c.dispYear, c.dispMonth = c.pager.MonthAt(c.page)
	return c, nil
}

// Selected returns the currently selected day.
func (c *Controller) Selected() jalali.Date { return c.selected }

// Displayed returns the currently displayed month.
func (c *Controller) Displayed() (int, jalali.Month) { return c.dispYear, c.dispMonth }

// Page returns the zero-based page index of the displayed month.
func (c *Controller) Page() int { return c.page }

// PageCount returns the number of month pages in the session range.
func (c *Controller) PageCount() int { return c.pager.Count() }

// Today returns the session's day of construction, or the zero date when the
// clock was outside the supported span.
func (c *Controller) Today() jalali.Date { return c.today }

// Grid lays out the displayed month with the session's selection, today mark
// and selectability applied.
func (c *Controller) Grid() ([]Cell, error) {
	return BuildGrid(c.dispYear, c.dispMonth, c.selected, c.today, c.rng, c.allowed)
}

// SelectDay makes d the selected day. When d lies outside the displayed
// month the display follows it. Rejected days leave the session untouched.
func (c *Controller) SelectDay(d jalali.Date) error {
	if !c.rng.Selectable(d, c.allowed) {
		return fmt.Errorf("%w: %s", ErrInvalidSelection, d)
	}

	c.selected = d
	moved := d.Year() != c.dispYear || d.Month() != c.dispMonth
	if moved {
		c.dispYear, c.dispMonth = d.Year(), d.Month()
		c.page = c.pager.PageOfDate(d)
	}

	if c.onSelection != nil {
		c.onSelection(d)
	}
	if moved && c.onMonth != nil {
		c.onMonth(c.dispYear, c.dispMonth)
	}
	return nil
}

// NavigatePage displays the given month page, clamped into the session's
// page space. The selection does not move.
func (c *Controller) NavigatePage(page int) {
	page = c.pager.Clamp(page)
	year, month := c.pager.MonthAt(page)
	moved := year != c.dispYear || month != c.dispMonth
	c.page = page
	if moved {
		c.dispYear, c.dispMonth = year, month
		if c.onMonth != nil {
			c.onMonth(year, month)
		}
	}
}

// NextMonth advances the display one page. At the last month of the range it
// does nothing.
func (c *Controller) NextMonth() {
	if c.pager.IsLastMonth(c.dispYear, c.dispMonth) {
		return
	}
	c.NavigatePage(c.page + 1)
}

// PrevMonth moves the display one page back. At the first month of the range
// it does nothing.
func (c *Controller) PrevMonth() {
	if c.pager.IsFirstMonth(c.dispYear, c.dispMonth) {
		return
	}
	c.NavigatePage(c.page - 1)
}

// NextYear advances the display twelve pages, clamped to the end of the
// range. In the last year of the range it does nothing.
func (c *Controller) NextYear() {
	if c.pager.IsLastYear(c.dispYear) {
		return
	}
	c.NavigatePage(c.page + jalali.MonthsPerYear)
}

// PrevYear moves the display twelve pages back, clamped to the start of the
// range. In the first year of the range it does nothing.
func (c *Controller) PrevYear() {
	if c.pager.IsFirstYear(c.dispYear) {
		return
	}
	c.NavigatePage(c.page - jalali.MonthsPerYear)
}

// GoToToday displays the month containing the session's today, clamped into
// the range. Without a today it does nothing.
func (c *Controller) GoToToday() {
	if c.today.IsZero() {
		return
	}
	c.NavigatePage(c.pager.PageOfDate(c.today))
}
