package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-jalalipick/internal/config"
	"github.com/tartampluch/go-jalalipick/jalali"
	"github.com/tartampluch/go-jalalipick/locale"
)

func convertCmd() *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "convert <date>",
		Short: "Convert between Jalali and Gregorian dates",
		Long: "Converts a Jalali date (YYYY/MM/DD, Persian digits accepted) to\n" +
			"Gregorian. With --reverse the argument is a Gregorian date in\n" +
			"YYYY-MM-DD form and the output is Jalali.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := newCatalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if reverse {
				t, err := time.Parse(config.DateFormatGregorian, args[0])
				if err != nil {
					return fmt.Errorf("%w: %s: %q", ErrUsage, config.ErrDateParse, args[0])
				}
				day, err := jalali.FromTime(t)
				if err != nil {
					return fmt.Errorf("%w: %s: %q", ErrUsage, config.ErrDateParse, args[0])
				}
				fmt.Fprintln(out, cat.FormatDate(day))
				fmt.Fprintln(out, cat.FullDate(day))
				return nil
			}

			day, err := jalali.Parse(locale.ToASCIIDigits(args[0]))
			if err != nil {
				return fmt.Errorf("%w: %s: %q", ErrUsage, config.ErrDateParse, args[0])
			}
			fmt.Fprintln(out, day.Time(time.UTC).Format(config.DateFormatGregorian))
			fmt.Fprintln(out, cat.FullDate(day))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reverse, config.FlagReverse, false, config.FlagDescReverse)
	return cmd
}
