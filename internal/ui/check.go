package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"showflow/internal/validate"
)

func (a *App) checkCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the working schedule",
		Long: `Run every validation rule over the working schedule and print a
quality report: per-row errors and warnings, suggested fixes, and an
overall score.

Nothing is modified; use 'showflow clean' to apply the suggestions.`,
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

			PrintReport(validate.GenerateReport(list, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func (a *App) cleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Apply suggested fixes to the working schedule",
		Long: `Replace every field that fails validation with its suggested fix:
missing times become the reformatted best guess, blank titles become
"Untitled Segment", overlong text is truncated. Fields that already
pass are left untouched. The previous schedule stays reachable
through undo.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			ctx := context.Background()
			editor, err := a.loadEditor(ctx)
			if err != nil {
				return err
			}
			if editor.Len() == 0 {
				fmt.Println("No schedule loaded. Use 'showflow import' to load one.")
				return nil
			}

			before := validate.GenerateReport(editor.Segments(), nil)
			editor.Replace(validate.AutoClean(editor.Segments()))
			after := validate.GenerateReport(editor.Segments(), nil)

			if err := a.saveEditor(ctx, editor); err != nil {
				return err
			}

			fmt.Printf("Cleaned schedule: quality %.0f/100 -> %.0f/100\n", before.Score, after.Score)
			return nil
		},
	}
}
