// Package event connects the picker to iCalendar data: it reads holiday
// feeds into day sets that drive selectability, and exports picked dates as
// an iCalendar stream.
package event

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/emersion/go-ical"

	"github.com/tartampluch/go-jalalipick/internal/config"
	"github.com/tartampluch/go-jalalipick/jalali"
	"github.com/tartampluch/go-jalalipick/picker"
)

// DaySet holds the Jalali days of a holiday feed with their summaries.
// The zero value and a nil set both behave as empty.
type DaySet struct {
	days map[jalali.Date]string
}

// ReadHolidays parses an iCalendar stream into a day set. Malformed events
// and events outside the supported span are skipped so one broken entry does
// not lose the rest of the feed; streams may concatenate several calendars.
func ReadHolidays(ctx context.Context, r io.Reader) (*DaySet, error) {
	set := &DaySet{days: make(map[jalali.Date]string)}
	stats := struct{ total, found int }{}

	dec := ical.NewDecoder(r)
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrCtxCancelled, err)
		}

		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrICalDecode, err)
		}

		for _, ev := range cal.Events() {
			stats.total++

			start, err := ev.DateTimeStart(time.UTC)
			if err != nil {
				slog.Warn(config.MsgSkippedEvent,
					config.LogKeyComponent, config.CompEvent,
					config.LogKeyError, err,
				)
				continue
			}

			day, err := jalali.FromTime(start)
			if err != nil {
				slog.Debug(config.MsgSkippedDate,
					config.LogKeyComponent, config.CompEvent,
					config.LogKeyDate, start.Format(config.DateFormatGregorian),
				)
				continue
			}

			summary := ""
			if p := ev.Props.Get(config.PropSummary); p != nil {
				summary = p.Value
			}
			set.days[day] = summary
			stats.found++
		}
	}

	slog.Info(config.MsgFeedLoaded,
		config.LogKeyComponent, config.CompEvent,
		slog.Int(config.LogKeyTotal, stats.total),
		slog.Int(config.LogKeyFound, stats.found),
	)
	return set, nil
}

// Len returns the number of days in the set.
func (s *DaySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.days)
}

// Contains reports whether d is in the set.
func (s *DaySet) Contains(d jalali.Date) bool {
	if s == nil {
		return false
	}
	_, ok := s.days[d]
	return ok
}

// Summary returns the event summary recorded for d, or "".
func (s *DaySet) Summary(d jalali.Date) string {
	if s == nil {
		return ""
	}
	return s.days[d]
}

// Dates returns the days of the set in calendar order.
func (s *DaySet) Dates() []jalali.Date {
	if s == nil {
		return nil
	}
	dates := make([]jalali.Date, 0, len(s.days))
	for d := range s.days {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(a, b jalali.Date) int { return a.Compare(b) })
	return dates
}

// Excluding returns a predicate that rejects the days of the set, for
// sessions where holidays are not selectable. A nil set excludes nothing.
func (s *DaySet) Excluding() picker.Predicate {
	return func(d jalali.Date) bool {
		return !s.Contains(d)
	}
}

// Export writes the given days as all-day iCalendar events. Days are sorted
// and deduplicated; UIDs are deterministic so re-exports produce identical
// streams under the same clock.
func Export(w io.Writer, dates []jalali.Date, summary string, clock jalali.Clock) error {
	if len(dates) == 0 {
		return errors.New(config.ErrNothingToWrite)
	}
	if summary == "" {
		summary = config.DefaultExportSummary
	}
	if clock == nil {
		clock = jalali.RealClock{}
	}

	sorted := slices.Clone(dates)
	slices.SortFunc(sorted, func(a, b jalali.Date) int { return a.Compare(b) })
	sorted = slices.Compact(sorted)

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(clock.Now().UTC())

	for _, d := range sorted {
		gy, gm, gd := d.Gregorian()
		eventDate := time.Date(gy, gm, gd, 0, 0, 0, 0, time.UTC)

		input := fmt.Sprintf(config.FormatHashInput, summary, d.String())
		hash := sha256.Sum256([]byte(input))
		uid := fmt.Sprintf(config.FormatUID,
			config.UIDSalt, fmt.Sprintf("%x", hash[:config.UIDHashLength]), config.ICalDomain)

		ev := ical.NewEvent()
		ev.Props.SetText(config.PropUID, uid)
		ev.Props.SetText(config.PropSummary, summary)

		dtStart := ical.NewProp(config.PropDTStart)
		dtStart.SetDate(eventDate)
		ev.Props.Set(dtStart)

		// All-day events end on the next day, exclusive.
		dtEnd := ical.NewProp(config.PropDTEnd)
		dtEnd.SetDate(eventDate.AddDate(0, 0, 1))
		ev.Props.Set(dtEnd)

		ev.Props.Set(dtStamp)
		cal.Children = append(cal.Children, ev.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompEvent,
		config.LogKeyCount, len(sorted),
		config.LogKeySummary, summary,
	)
	return nil
}
