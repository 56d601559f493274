// Package jalali implements the Persian (Jalali) civil calendar: validated
// immutable date values, exact conversion to and from an absolute day number,
// and the calendar arithmetic a date picker needs (leap years, month lengths,
// weekdays, month deltas).
//
// Conversions use the break-year table formulation of the calendar, which is
// exact across the supported span instead of approximating the intercalation
// with a short repeating cycle. All arithmetic is integer-only.
package jalali

import (
	"errors"
	"fmt"
)

// Supported year span. Conversions and arithmetic are exact and total inside
// it; results outside it are rejected with ErrOutOfRange.
const (
	MinYear = 1
	MaxYear = 3100
)

// Sentinel errors reported by constructors and arithmetic. Returned values
// wrap these with context; match with errors.Is.
var (
	// ErrInvalidDate marks a malformed (month, day) combination or an
	// unparseable date string.
	ErrInvalidDate = errors.New("jalali: invalid date")

	// ErrOutOfRange marks a conversion or arithmetic result outside the
	// supported year span.
	ErrOutOfRange = errors.New("jalali: date outside supported span")
)

// Month identifies a Jalali month, Farvardin (1) through Esfand (12).
type Month int

const (
	Farvardin Month = 1 + iota
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

// MonthsPerYear is the number of months in every Jalali year.
const MonthsPerYear = 12

var monthNames = [...]string{
	"Farvardin",
	"Ordibehesht",
	"Khordad",
	"Tir",
	"Mordad",
	"Shahrivar",
	"Mehr",
	"Aban",
	"Azar",
	"Dey",
	"Bahman",
	"Esfand",
}

// String returns the transliterated month name ("Farvardin").
func (m Month) String() string {
	if m < Farvardin || m > Esfand {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Weekday identifies a day of the Jalali week, which starts on Shanbeh
// (Saturday, 0) and ends on Jomeh (Friday, 6).
type Weekday int

const (
	Shanbeh Weekday = iota
	Yekshanbeh
	Doshanbeh
	Seshanbeh
	Chaharshanbeh
	Panjshanbeh
	Jomeh
)

var weekdayNames = [...]string{
	"Shanbeh",
	"Yekshanbeh",
	"Doshanbeh",
	"Seshanbeh",
	"Chaharshanbeh",
	"Panjshanbeh",
	"Jomeh",
}

// String returns the transliterated weekday name ("Shanbeh").
func (w Weekday) String() string {
	if w < Shanbeh || w > Jomeh {
		return fmt.Sprintf("%%!Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}
