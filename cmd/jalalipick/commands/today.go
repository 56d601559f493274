package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-jalalipick/internal/config"
	"github.com/tartampluch/go-jalalipick/jalali"
)

func todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's Jalali date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := newCatalog()
			if err != nil {
				return err
			}
			day, err := jalali.Today(nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cat.FullDate(day))
			fmt.Fprintln(out, cat.FormatDate(day))
			fmt.Fprintln(out, day.Time(time.UTC).Format(config.DateFormatGregorian))
			return nil
		},
	}
}
