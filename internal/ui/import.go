package ui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"showflow/internal/ingest"
	"showflow/internal/schedule"
	"showflow/internal/validate"
)

func (a *App) importCmd() *cobra.Command {
	var (
		fromClipboard bool
		fromStdin     bool
		force         bool
		clean         bool
	)

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a schedule from a file, stdin or the clipboard",
		Long: `Import schedule data and replace the working schedule.

Accepts .csv and .xlsx/.xls files, pasted delimited text on stdin, or
the clipboard contents. Columns are matched to fields by header name;
times and durations are normalized and missing start times are filled
in from the preceding segment.

Imports with validation errors are refused unless --force is given.
The previous schedule stays reachable through undo.

Examples:
  showflow import runofshow.xlsx
  showflow import schedule.csv --clean
  pbpaste | showflow import --stdin
  showflow import --clipboard`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			result, source, err := readInput(args, fromClipboard, fromStdin)
			if err != nil {
				return err
			}

			segments := result.Segments
			if clean {
				segments = validate.AutoClean(segments)
			}

			report := validate.GenerateReport(segments, result.Mapping)
			if len(report.Errors) > 0 && !force {
				PrintMapping(result.Mapping)
				fmt.Println()
				PrintReport(report)
				return fmt.Errorf("import has %d validation errors (use --clean to auto-fix or --force to accept anyway)",
					len(report.Errors))
			}

			ctx := context.Background()
			editor, err := a.loadEditor(ctx)
			if err != nil {
				return err
			}
			editor.Load(segments)
			if err := a.saveEditor(ctx, editor); err != nil {
				return err
			}

			PrintMapping(result.Mapping)
			fmt.Println()
			fmt.Printf("Imported %d segments from %s (quality %.0f/100)\n",
				editor.Len(), source, report.Score)
			if len(report.Warnings) > 0 {
				fmt.Printf("%s\n", formatWarn(fmt.Sprintf("%d warnings; run 'showflow check' for details", len(report.Warnings))))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "Read schedule text from the clipboard")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read schedule text from stdin")
	cmd.Flags().BoolVar(&force, "force", false, "Accept the import even with validation errors")
	cmd.Flags().BoolVar(&clean, "clean", false, "Apply suggested fixes before validating")
	return cmd
}

// readInput dispatches to the right parser for the chosen source and
// returns the parse result plus a label for the summary line.
func readInput(args []string, fromClipboard, fromStdin bool) (*ingest.Result, string, error) {
	switch {
	case fromClipboard:
		text, err := clipboard.ReadAll()
		if err != nil {
			return nil, "", fmt.Errorf("reading clipboard: %w", err)
		}
		result, err := ingest.ParseText(text)
		return result, "clipboard", err

	case fromStdin:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
		result, err := ingest.ParseText(string(data))
		return result, "stdin", err

	case len(args) == 1:
		return readFile(args[0])

	default:
		return nil, "", fmt.Errorf("provide a file, --stdin or --clipboard")
	}
}

func readFile(path string) (*ingest.Result, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}

	var result *ingest.Result
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		result, err = ingest.ParseWorkbook(bytes.NewReader(data))
	case ".csv":
		result, err = ingest.ParseCSV(data)
	default:
		result, err = ingest.ParseText(string(data))
	}
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", path, err)
	}
	return result, filepath.Base(path), nil
}

// loadEditor builds an editor seeded with the persisted schedule and
// history.
func (a *App) loadEditor(ctx context.Context) (*schedule.Editor, error) {
	editor := schedule.NewEditor(a.config.DayStartMinutes(), a.config.Schedule.DefaultDuration)

	segments, err := a.store.LoadSchedule(ctx)
	if err != nil {
		return nil, err
	}
	past, future, err := a.store.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	editor.Restore(segments, past, future)
	return editor, nil
}

// saveEditor persists the editor's schedule and history atomically.
func (a *App) saveEditor(ctx context.Context, editor *schedule.Editor) error {
	past, future := editor.History().Snapshots()
	if err := a.store.SaveState(ctx, editor.Segments(), past, future); err != nil {
		return fmt.Errorf("saving schedule: %w", err)
	}
	return nil
}
