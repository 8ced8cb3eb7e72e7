package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"showflow/internal/timeutil"
)

// ParseWorkbook ingests the first worksheet of an xlsx/xls workbook.
// Spreadsheet time encodings - day-fraction serials and date/time
// typed cells - are converted to canonical clock text before the rows
// go through the usual mapping.
func ParseWorkbook(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoWorksheet
	}
	sheet := sheets[0]

	formatted, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %q: %w", sheet, err)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %q: %w", sheet, err)
	}
	if len(formatted) == 0 {
		return nil, fmt.Errorf("%w: empty worksheet %q", ErrEmptyInput, sheet)
	}

	rows := materializeRows(formatted, raw)
	idx := headerRowIndex(rows)
	if idx < 0 {
		return nil, ErrNoHeaderRow
	}
	return buildResult(rows[idx], rows[idx+1:])
}

// materializeRows resolves each cell to text, preferring a clock
// rendering whenever the raw serial value carries a time-of-day
// component.
func materializeRows(formatted, raw [][]string) [][]string {
	out := make([][]string, len(formatted))
	for r, row := range formatted {
		cells := make([]string, len(row))
		for c := range row {
			cells[c] = materializeCell(row[c], rawCell(raw, r, c))
		}
		out[r] = cells
	}
	return out
}

func rawCell(raw [][]string, r, c int) string {
	if r >= len(raw) || c >= len(raw[r]) {
		return ""
	}
	return raw[r][c]
}

// dateSerialFloor separates date/time serials from ordinary decimals:
// Excel serials for any modern date are five digits.
const dateSerialFloor = 10000

// materializeCell turns a spreadsheet serial into clock text when the
// raw value is a day fraction in (0,1), or the fractional part of a
// date/time serial. Whole numbers, small decimals and plain text pass
// through formatted.
func materializeCell(formatted, raw string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 {
		return strings.TrimSpace(formatted)
	}

	frac := v - float64(int64(v))
	if (v < 1 || v >= dateSerialFloor) && frac > 0 {
		if m, ok := timeutil.FromDayFraction(frac); ok {
			return timeutil.FormatTime(m)
		}
	}
	return strings.TrimSpace(formatted)
}
