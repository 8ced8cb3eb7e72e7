// Package ui implements the command line interface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"showflow/internal/config"
	"showflow/internal/db"
	"showflow/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	store  *db.Store
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "showflow",
		Short: "A CLI tool for event run-of-show schedules",
		Long: `Showflow keeps an event's run-of-show schedule tidy.

It imports messy schedule data from spreadsheets, CSV files, pasted
text or the clipboard, normalizes times and durations, validates the
result, and gives you an editor with full undo history.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			return tui.Run(a.store, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.checkCmd())
	a.root.AddCommand(a.cleanCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.undoCmd())
	a.root.AddCommand(a.redoCmd())
	a.root.AddCommand(a.resetCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("showflow %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureStore opens the database on first use so commands that never
// touch storage (version, config) work without one.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}
	store, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	a.store = store
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	if a.config.UI.NoColor {
		DisableColor()
	}
	return a.root.Execute()
}

// Close releases the store if one was opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
