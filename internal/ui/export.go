package ui

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"showflow/internal/schedule"
)

var exportHeaders = []string{"Time", "Duration", "Segment", "Presenter", "Notes"}

func (a *App) exportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the working schedule",
		Long: `Write the working schedule to a file. The format follows the file
extension (.csv, .json, .xlsx) unless --format overrides it. Use "-"
to write CSV or JSON to stdout.

Examples:
  showflow export runofshow.xlsx
  showflow export schedule.json
  showflow export - --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			list, err := a.store.LoadSchedule(context.Background())
			if err != nil {
				return fmt.Errorf("loading schedule: %w", err)
			}
			if len(list) == 0 {
				return fmt.Errorf("no schedule loaded")
			}

			path := args[0]
			f := format
			if f == "" {
				f = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
			}

			switch f {
			case "csv":
				err = exportDelimited(path, list, writeCSV)
			case "json":
				err = exportDelimited(path, list, writeJSON)
			case "xlsx":
				if path == "-" {
					return fmt.Errorf("xlsx export requires a file path")
				}
				err = writeWorkbook(path, list)
			default:
				return fmt.Errorf("unknown export format %q (want csv, json or xlsx)", f)
			}
			if err != nil {
				return err
			}

			if path != "-" {
				fmt.Printf("Exported %d segments to %s\n", len(list), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Export format: csv, json or xlsx (default: from extension)")
	return cmd
}

// exportDelimited routes output to stdout for "-" or a file otherwise.
func exportDelimited(path string, list []schedule.Segment, write func(io.Writer, []schedule.Segment) error) error {
	if path == "-" {
		return write(os.Stdout, list)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f, list); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func writeCSV(w io.Writer, list []schedule.Segment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeaders); err != nil {
		return err
	}
	for _, seg := range list {
		if err := cw.Write([]string{seg.Time, seg.Duration, seg.Title, seg.Presenter, seg.Notes}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, list []schedule.Segment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

func writeWorkbook(path string, list []schedule.Segment) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for c, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("building header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for r, seg := range list {
		values := []string{seg.Time, seg.Duration, seg.Title, seg.Presenter, seg.Notes}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("building cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", r+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
