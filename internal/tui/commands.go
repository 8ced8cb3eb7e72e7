package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"showflow/internal/db"
	"showflow/internal/ingest"
	"showflow/internal/schedule"
)

// TickMsg re-evaluates the current-segment marker.
type TickMsg time.Time

// ImportedMsg carries the result of an asynchronous clipboard import.
// Seq identifies which request produced it; stale results are dropped.
type ImportedMsg struct {
	Seq    int
	Result *ingest.Result
	Err    error
}

// SavedMsg reports the outcome of a background save.
type SavedMsg struct {
	Err error
}

// Tick schedules the next current-segment re-evaluation.
func Tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ImportClipboard reads and parses the clipboard off the update loop.
func ImportClipboard(seq int) tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		if err != nil {
			return ImportedMsg{Seq: seq, Err: err}
		}
		result, err := ingest.ParseText(text)
		return ImportedMsg{Seq: seq, Result: result, Err: err}
	}
}

// Save persists the schedule and history in the background.
func Save(store *db.Store, segments []schedule.Segment, past, future [][]schedule.Segment) tea.Cmd {
	return func() tea.Msg {
		return SavedMsg{Err: store.SaveState(context.Background(), segments, past, future)}
	}
}
