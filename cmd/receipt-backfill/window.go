package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"receipt/domain"
)

var (
	windowYear int
	windowWeek int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Print the UTC window of a week",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateYearWeek(windowYear, windowWeek); err != nil {
			return err
		}
		start, end := domain.WeekWindow(windowYear, windowWeek)
		return printJSON(cmd, map[string]string{
			"start": start.Format(time.RFC3339Nano),
			"end":   end.Format(time.RFC3339Nano),
		})
	},
}

func init() {
	windowCmd.Flags().IntVar(&windowYear, "year", 0, "calendar year of the week")
	windowCmd.Flags().IntVar(&windowWeek, "week", 0, "week number (1-53)")
	_ = windowCmd.MarkFlagRequired("year")
	_ = windowCmd.MarkFlagRequired("week")
}

func validateYearWeek(year, week int) error {
	if year < 1970 || year > 9999 || week < 1 || week > 53 {
		return fmt.Errorf("%w: year=%d week=%d", domain.ErrInvalidWeek, year, week)
	}
	return nil
}
