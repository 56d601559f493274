package picker

import (
	"github.com/tartampluch/go-jalalipick/jalali"
)

// Pager maps between zero-based month pages and (year, month) pairs for one
// session range. Page 0 is the month containing the range's first date; the
// last page is the month containing its last date. All methods are total:
// out-of-range pages and months map through, and Clamp pulls them back.
type Pager struct {
	firstYear  int
	firstMonth jalali.Month
	lastYear   int
	lastMonth  jalali.Month
	count      int
}

// NewPager derives the page space of a session range.
func NewPager(r Range) Pager {
	p := Pager{
		firstYear:  r.First().Year(),
		firstMonth: r.First().Month(),
		lastYear:   r.Last().Year(),
		lastMonth:  r.Last().Month(),
	}
	p.count = p.PageOf(p.lastYear, p.lastMonth) + 1
	return p
}

// Count returns the number of month pages in the range.
func (p Pager) Count() int { return p.count }

// PageOf returns the page index of the given month. Months outside the range
// yield indexes below zero or at/after Count.
func (p Pager) PageOf(year int, month jalali.Month) int {
	return (year-p.firstYear)*jalali.MonthsPerYear + int(month) - int(p.firstMonth)
}

// PageOfDate returns the page index of the month containing d.
func (p Pager) PageOfDate(d jalali.Date) int {
	return p.PageOf(d.Year(), d.Month())
}

// MonthAt returns the month shown on the given page. Pages outside
// [0, Count) map to months outside the range.
func (p Pager) MonthAt(page int) (int, jalali.Month) {
	months := p.firstYear*jalali.MonthsPerYear + int(p.firstMonth) - 1 + page
	year := months / jalali.MonthsPerYear
	rem := months % jalali.MonthsPerYear
	if rem < 0 {
		year--
		rem += jalali.MonthsPerYear
	}
	return year, jalali.Month(rem + 1)
}

// Clamp pulls a page index into [0, Count).
func (p Pager) Clamp(page int) int {
	if page < 0 {
		return 0
	}
	if page >= p.count {
		return p.count - 1
	}
	return page
}

// IsFirstMonth reports whether the given month is the range's first page.
func (p Pager) IsFirstMonth(year int, month jalali.Month) bool {
	return year == p.firstYear && month == p.firstMonth
}

// IsLastMonth reports whether the given month is the range's last page.
func (p Pager) IsLastMonth(year int, month jalali.Month) bool {
	return year == p.lastYear && month == p.lastMonth
}

// IsFirstYear reports whether the given year is the range's first year.
func (p Pager) IsFirstYear(year int) bool { return year == p.firstYear }

// IsLastYear reports whether the given year is the range's last year.
func (p Pager) IsLastYear(year int) bool { return year == p.lastYear }
