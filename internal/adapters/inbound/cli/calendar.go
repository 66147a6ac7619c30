package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abdidvp/growthcheck/internal/domain"
	"github.com/abdidvp/growthcheck/internal/domain/jalali"
)

func newCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Jalali calendar utilities",
	}
	cmd.AddCommand(newCalendarTodayCmd())
	cmd.AddCommand(newCalendarConvertCmd("to-gregorian", "Convert a Jalali date (YYYY/MM/DD) to Gregorian", "1403/12/30",
		func(s string) (jalali.Date, error) { return domain.ParseDate(s) }))
	cmd.AddCommand(newCalendarConvertCmd("to-jalali", "Convert a Gregorian date (YYYY-MM-DD) to Jalali", "2025-03-21",
		func(s string) (jalali.Date, error) {
			d, err := jalali.ParseGregorian(s)
			if err != nil {
				return d, fmt.Errorf("%w: %v", domain.ErrInvalidCalendarDate, err)
			}
			return d, nil
		}))
	return cmd
}

func newCalendarTodayCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's Jalali date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDate(cmd, jalali.FromTime(time.Now()), jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newCalendarConvertCmd(use, short, example string, parse func(string) (jalali.Date, error)) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     use + " <date>",
		Short:   short,
		Example: "  growthcheck calendar " + use + " " + example,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parse(args[0])
			if err != nil {
				return err
			}
			return printDate(cmd, d, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func printDate(cmd *cobra.Command, d jalali.Date, jsonOutput bool) error {
	info := d.Describe()
	if jsonOutput {
		return renderJSON(cmd, info)
	}
	leap := ""
	if info.LeapYear {
		leap = ", leap year"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (Jalali)  =  %s (Gregorian, %s)\n", info.Jalali, info.Gregorian, info.Weekday)
	fmt.Fprintf(cmd.OutOrStdout(), "Month %d of %d has %d days%s\n", d.Month, d.Year, info.DaysInMonth, leap)
	return nil
}
