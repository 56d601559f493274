package jalali

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is an immutable Jalali calendar date. The zero Date is not a valid
// date; construct values with New, Parse, FromGregorian, FromTime or Today.
// Date is comparable: == is calendar-date equality.
type Date struct {
	year  int
	month Month
	day   int
}

// New validates a (year, month, day) triple and returns the Date it names.
// The year must lie within [MinYear, MaxYear] (ErrOutOfRange otherwise) and
// the day within the month's length (ErrInvalidDate otherwise).
func New(year int, month Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	if month < Farvardin || month > Esfand {
		return Date{}, fmt.Errorf("%w: month %d", ErrInvalidDate, int(month))
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: day %d of %s %d", ErrInvalidDate, day, month, year)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustNew is New for dates known valid at compile time; it panics on error.
func MustNew(year int, month Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse reads a Jalali date written as a slash- or dash-separated triple,
// e.g. "1403/07/12" or "1403-7-12".
func Parse(s string) (Date, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		nums[i] = v
	}
	return New(nums[0], Month(nums[1]), nums[2])
}

// FromGregorian converts a Gregorian calendar date to its Jalali equivalent.
func FromGregorian(year int, month time.Month, day int) (Date, error) {
	n := gregorianToDayNumber(year, int(month), day)
	gy, gm, gd := dayNumberToGregorian(n)
	if gy != year || gm != int(month) || gd != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return fromDayNumber(n)
}

// FromTime converts the calendar date of t, observed in t's location.
func FromTime(t time.Time) (Date, error) {
	y, m, d := t.Date()
	return FromGregorian(y, m, d)
}

// Year returns the Jalali year.
func (d Date) Year() int { return d.year }

// Month returns the Jalali month.
func (d Date) Month() Month { return d.month }

// Day returns the day of the month, starting at 1.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the invalid zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() Weekday {
	return Weekday((d.dayNumber() + weekdayOffset) % 7)
}

// Gregorian returns the equivalent Gregorian calendar date.
func (d Date) Gregorian() (year int, month time.Month, day int) {
	gy, gm, gd := dayNumberToGregorian(d.dayNumber())
	return gy, time.Month(gm), gd
}

// Time returns midnight of d in the given location (time.Local when nil).
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	gy, gm, gd := d.Gregorian()
	return time.Date(gy, gm, gd, 0, 0, 0, 0, loc)
}

// Before reports whether d falls before o.
func (d Date) Before(o Date) bool { return d.dayNumber() < o.dayNumber() }

// After reports whether d falls after o.
func (d Date) After(o Date) bool { return d.dayNumber() > o.dayNumber() }

// Equal reports calendar-date equality, same as ==.
func (d Date) Equal(o Date) bool { return d == o }

// Compare orders two dates: -1 when d is earlier than o, 0 when equal,
// +1 when later.
func (d Date) Compare(o Date) int {
	switch a, b := d.dayNumber(), o.dayNumber(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AddDays returns the date n days after d (before, for negative n). It fails
// with ErrOutOfRange when the result leaves the supported span.
func (d Date) AddDays(n int) (Date, error) {
	return fromDayNumber(d.dayNumber() + n)
}

// AddMonths advances the month field by n, which may be negative. When the
// original day overflows the destination month it is clamped to that month's
// last day: Shahrivar 31 plus one month is Mehr 30, and a month landing on a
// common-year Esfand caps at 29. Fails with ErrOutOfRange when the resulting
// year leaves the supported span.
func (d Date) AddMonths(n int) (Date, error) {
	months := d.year*MonthsPerYear + int(d.month) - 1 + n
	year := months / MonthsPerYear
	rem := months % MonthsPerYear
	if rem < 0 {
		year--
		rem += MonthsPerYear
	}
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	month := Month(rem + 1)
	day := d.day
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return Date{year: year, month: month, day: day}, nil
}

// MonthsBetween returns the month-granularity distance from a to b:
// (b.year-a.year)*12 + (b.month-a.month). Days of the month are ignored.
func MonthsBetween(a, b Date) int {
	return (b.year-a.year)*MonthsPerYear + int(b.month) - int(a.month)
}

// String formats d as "YYYY/MM/DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.year, int(d.month), d.day)
}

// dayNumber is d's absolute day number, the pivot for ordering, weekday math
// and day arithmetic.
func (d Date) dayNumber() int {
	return jalaliToDayNumber(d.year, int(d.month), d.day)
}

// fromDayNumber rebuilds a Date from an absolute day number, rejecting
// numbers outside the supported span.
func fromDayNumber(n int) (Date, error) {
	if n < minDayNumber || n > maxDayNumber {
		return Date{}, fmt.Errorf("%w: day number %d", ErrOutOfRange, n)
	}
	jy, jm, jd := dayNumberToJalali(n)
	return Date{year: jy, month: Month(jm), day: jd}, nil
}
