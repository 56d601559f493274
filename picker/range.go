package picker

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-jalalipick/jalali"
)

// Sentinel errors reported by session construction and selection commands.
// Returned values wrap these with context; match with errors.Is.
var (
	// ErrInvalidRange marks a session range whose first date falls after its
	// last date, or one built from zero dates.
	ErrInvalidRange = errors.New("picker: invalid date range")

	// ErrInvalidInitialDate marks an initial selection outside the range or
	// rejected by the session predicate.
	ErrInvalidInitialDate = errors.New("picker: initial date not selectable")

	// ErrInvalidSelection marks a selection command targeting a day that is
	// outside the range or rejected by the session predicate.
	ErrInvalidSelection = errors.New("picker: date not selectable")
)

// Predicate restricts selectable days beyond the range bounds. It must be
// pure: the same date always gets the same answer within a session. A nil
// Predicate accepts every day.
type Predicate func(jalali.Date) bool

// ExcludeWeekdays builds a Predicate that rejects the given weekdays, e.g.
// ExcludeWeekdays(jalali.Jomeh) for pickers that skip the weekly holiday.
func ExcludeWeekdays(days ...jalali.Weekday) Predicate {
	var excluded [7]bool
	for _, w := range days {
		if w >= jalali.Shanbeh && w <= jalali.Jomeh {
			excluded[w] = true
		}
	}
	return func(d jalali.Date) bool {
		return !excluded[d.Weekday()]
	}
}

// All combines predicates into one that accepts a day only when every given
// predicate does. Nil entries are skipped; All() accepts everything.
func All(preds ...Predicate) Predicate {
	return func(d jalali.Date) bool {
		for _, p := range preds {
			if p != nil && !p(d) {
				return false
			}
		}
		return true
	}
}

// Range is the inclusive [first, last] date bound of one picker session.
// Construct it with NewRange; the zero Range is not valid.
type Range struct {
	first jalali.Date
	last  jalali.Date
}

// NewRange validates the bound ordering and returns the session range.
func NewRange(first, last jalali.Date) (Range, error) {
	if first.IsZero() || last.IsZero() {
		return Range{}, fmt.Errorf("%w: zero date bound", ErrInvalidRange)
	}
	if first.After(last) {
		return Range{}, fmt.Errorf("%w: %s after %s", ErrInvalidRange, first, last)
	}
	return Range{first: first, last: last}, nil
}

// First returns the earliest date of the range.
func (r Range) First() jalali.Date { return r.first }

// Last returns the latest date of the range.
func (r Range) Last() jalali.Date { return r.last }

// Contains reports whether first <= d <= last.
func (r Range) Contains(d jalali.Date) bool {
	return !d.Before(r.first) && !d.After(r.last)
}

// Selectable reports whether d is inside the range and accepted by the
// predicate. A nil predicate only checks containment.
func (r Range) Selectable(d jalali.Date, pred Predicate) bool {
	return r.Contains(d) && (pred == nil || pred(d))
}
