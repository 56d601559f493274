package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-jalalipick/event"
	"github.com/tartampluch/go-jalalipick/internal/config"
	"github.com/tartampluch/go-jalalipick/jalali"
	"github.com/tartampluch/go-jalalipick/locale"
)

func exportCmd() *cobra.Command {
	var (
		summaryArg string
		outputArg  string
	)

	cmd := &cobra.Command{
		Use:   "export <date>...",
		Short: "Export Jalali dates as all-day iCalendar events",
		Long: "Writes one all-day VEVENT per given Jalali date (YYYY/MM/DD,\n" +
			"Persian digits accepted). Dates are deduplicated and sorted, so\n" +
			"the output is stable for a given input set.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates := make([]jalali.Date, 0, len(args))
			for _, arg := range args {
				day, err := jalali.Parse(locale.ToASCIIDigits(arg))
				if err != nil {
					return fmt.Errorf("%w: %s: %q", ErrUsage, config.ErrDateParse, arg)
				}
				dates = append(dates, day)
			}

			if outputArg == "" {
				return event.Export(cmd.OutOrStdout(), dates, summaryArg, jalali.RealClock{})
			}

			slog.Debug("Writing export file",
				config.LogKeyComponent, config.CompCLI,
				config.LogKeyOutput, outputArg,
			)
			f, err := os.Create(outputArg)
			if err != nil {
				return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
			}
			if err := event.Export(f, dates, summaryArg, jalali.RealClock{}); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&summaryArg, config.FlagSummary, "", config.FlagDescSummary)
	cmd.Flags().StringVarP(&outputArg, config.FlagOutput, "o", "", config.FlagDescOutput)
	return cmd
}
