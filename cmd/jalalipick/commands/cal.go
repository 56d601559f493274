package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tartampluch/go-jalalipick/event"
	"github.com/tartampluch/go-jalalipick/internal/config"
	"github.com/tartampluch/go-jalalipick/jalali"
	"github.com/tartampluch/go-jalalipick/locale"
	"github.com/tartampluch/go-jalalipick/picker"
)

// Day cell markers. A day carries at most one, the first that applies.
const (
	markSelected = '+'
	markToday    = '*'
	markDisabled = '-'
	markNone     = ' '
)

func calCmd() *cobra.Command {
	var (
		selectArg   string
		holidaysArg string
		noFridays   bool
	)

	cmd := &cobra.Command{
		Use:   "cal [year month]",
		Short: "Render a Jalali month grid",
		Long: "Renders a month as a week grid, one column per weekday starting\n" +
			"at Shanbeh. Without arguments the current month is shown. Days\n" +
			"from a holiday feed and, with --no-fridays, all Fridays are\n" +
			"marked as non-selectable.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := newCatalog()
			if err != nil {
				return err
			}

			today, todayErr := jalali.Today(nil)

			year, month, err := monthArgs(args, today, todayErr)
			if err != nil {
				return err
			}
			slog.Debug("Rendering month grid",
				config.LogKeyComponent, config.CompCLI,
				config.LogKeyYear, year,
				config.LogKeyMonth, month,
			)

			var selected jalali.Date
			if selectArg != "" {
				selected, err = jalali.Parse(locale.ToASCIIDigits(selectArg))
				if err != nil {
					return fmt.Errorf("%w: %s: %q", ErrUsage, config.ErrDateParse, selectArg)
				}
			}

			preds := make([]picker.Predicate, 0, 2)
			source := holidaysArg
			if source == "" {
				source = viper.GetString(config.PrefHolidays)
			}
			if source != "" {
				rc, err := event.Open(cmd.Context(), source, nil)
				if err != nil {
					return fmt.Errorf("%s: %w", config.ErrHolidaySource, err)
				}
				defer rc.Close()
				set, err := event.ReadHolidays(cmd.Context(), rc)
				if err != nil {
					return fmt.Errorf("%s: %w", config.ErrHolidaySource, err)
				}
				preds = append(preds, set.Excluding())
			}
			if noFridays {
				preds = append(preds, picker.ExcludeWeekdays(jalali.Jomeh))
			}
			var pred picker.Predicate
			if len(preds) > 0 {
				pred = picker.All(preds...)
			}

			span, err := picker.NewRange(
				jalali.MustNew(jalali.MinYear, jalali.Farvardin, 1),
				jalali.MustNew(jalali.MaxYear, jalali.Esfand, 29),
			)
			if err != nil {
				return err
			}

			cells, err := picker.BuildGrid(year, month, selected, today, span, pred)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrUsage, err)
			}

			renderMonth(cmd.OutOrStdout(), cat, year, month, cells)
			return nil
		},
	}

	cmd.Flags().StringVar(&selectArg, config.FlagSelect, "", config.FlagDescSelect)
	cmd.Flags().StringVar(&holidaysArg, config.FlagHolidays, "", config.FlagDescHolidays)
	cmd.Flags().BoolVar(&noFridays, config.FlagNoFridays, false, config.FlagDescNoFridays)
	return cmd
}

// monthArgs resolves the displayed month from the positional arguments,
// falling back to the current month when none are given.
func monthArgs(args []string, today jalali.Date, todayErr error) (int, jalali.Month, error) {
	switch len(args) {
	case 0:
		if todayErr != nil {
			return 0, 0, todayErr
		}
		return today.Year(), today.Month(), nil
	case 2:
		year, err := strconv.Atoi(locale.ToASCIIDigits(args[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %s: %q", ErrUsage, config.ErrYearArg, args[0])
		}
		m, err := strconv.Atoi(locale.ToASCIIDigits(args[1]))
		if err != nil || m < 1 || m > jalali.MonthsPerYear {
			return 0, 0, fmt.Errorf("%w: %s: %q", ErrUsage, config.ErrMonthArg, args[1])
		}
		return year, jalali.Month(m), nil
	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrUsage, config.ErrMonthArgs)
	}
}

// renderMonth writes the grid. Width specifiers count runes, so Persian
// digits line up the same as ASCII ones.
func renderMonth(out io.Writer, cat *locale.Catalog, year int, month jalali.Month, cells []picker.Cell) {
	fmt.Fprintf(out, "%s\n", cat.MonthYear(year, month))

	for w := jalali.Shanbeh; w <= jalali.Jomeh; w++ {
		fmt.Fprintf(out, "%3s ", cat.WeekdayNarrow(w))
	}
	fmt.Fprintln(out)

	var hasToday, hasDisabled bool
	for _, week := range picker.Weeks(cells) {
		for _, cell := range week {
			if cell.Kind == picker.CellBlank {
				fmt.Fprint(out, "    ")
				continue
			}
			marker := markNone
			switch {
			case cell.Selected:
				marker = markSelected
			case cell.Today:
				marker = markToday
			case cell.Disabled:
				marker = markDisabled
			}
			if cell.Today {
				hasToday = true
			}
			if cell.Disabled {
				hasDisabled = true
			}
			fmt.Fprintf(out, "%3s%c", cat.Number(cell.Date.Day()), marker)
		}
		fmt.Fprintln(out)
	}

	if hasToday || hasDisabled {
		fmt.Fprintln(out)
	}
	if hasToday {
		fmt.Fprintf(out, "%c %s\n", markToday, cat.TodayLabel())
	}
	if hasDisabled {
		fmt.Fprintf(out, "%c %s\n", markDisabled, cat.HolidayLabel())
	}
}
