package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) undoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Revert the last schedule change",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			ctx := context.Background()
			editor, err := a.loadEditor(ctx)
			if err != nil {
				return err
			}

			if !editor.Undo() {
				fmt.Println("Nothing to undo.")
				return nil
			}
			if err := a.saveEditor(ctx, editor); err != nil {
				return err
			}
			fmt.Printf("Undid last change; schedule has %d segments.\n", editor.Len())
			return nil
		},
	}
}

func (a *App) redoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "redo",
		Short: "Reapply the last undone change",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			ctx := context.Background()
			editor, err := a.loadEditor(ctx)
			if err != nil {
				return err
			}

			if !editor.Redo() {
				fmt.Println("Nothing to redo.")
				return nil
			}
			if err := a.saveEditor(ctx, editor); err != nil {
				return err
			}
			fmt.Printf("Redid last change; schedule has %d segments.\n", editor.Len())
			return nil
		},
	}
}

func (a *App) resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the schedule and all history",
		RunE: func(_ *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("this deletes the schedule and its undo history; pass --yes to confirm")
			}
			if err := a.ensureStore(); err != nil {
				return err
			}

			if err := a.store.Reset(context.Background()); err != nil {
				return fmt.Errorf("resetting schedule: %w", err)
			}
			fmt.Println("Schedule and history cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}
