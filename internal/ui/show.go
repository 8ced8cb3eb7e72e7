package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"showflow/internal/schedule"
	"showflow/internal/timeutil"
)

func (a *App) showCmd() *cobra.Command {
	var (
		verbose bool
		noColor bool
		at      string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the working schedule",
		Long: `Display the working schedule with the currently running segment
marked, judged against the wall clock.

Use --at to evaluate the schedule at another time of day:
  showflow show --at "2:15 PM"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureStore(); err != nil {
				return err
			}

			list, err := a.store.LoadSchedule(context.Background())
			if err != nil {
				return fmt.Errorf("loading schedule: %w", err)
			}
			if len(list) == 0 {
				fmt.Println("No schedule loaded. Use 'showflow import' to load one.")
				return nil
			}

			now := timeutil.FromClock(time.Now())
			if at != "" {
				m, ok := timeutil.ParseTime(at)
				if !ok {
					return fmt.Errorf("cannot parse --at time %q", at)
				}
				now = m
			}

			fmt.Printf("=== %s ===\n\n", formatHeader("Run of show"))
			PrintSchedule(list, PrintOpts{
				Verbose:      verbose,
				CurrentIndex: schedule.CurrentIndex(list, now),
				OverrunIndex: schedule.OverrunIndex(list, now),
			})
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show segment notes")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().StringVar(&at, "at", "", "Evaluate the current segment at this clock time")
	return cmd
}
