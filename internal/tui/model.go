// Package tui provides the interactive schedule editor.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"showflow/internal/config"
	"showflow/internal/db"
	"showflow/internal/schedule"
	"showflow/internal/timeutil"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit        // Editing the selected segment's fields
	ModeNotes       // Editing the selected segment's notes
	ModeClock       // Entering a manual clock override
	ModeConfirm     // Confirming a destructive action
)

// Editable fields in edit mode, in focus order.
const (
	fieldTime = iota
	fieldDuration
	fieldTitle
	fieldPresenter
	editFieldCount
)

// tickInterval is how often the current-segment marker is re-evaluated.
const tickInterval = 15 * time.Second

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  *db.Store
	config *config.Config

	// State
	editor *schedule.Editor
	cursor int
	mode   Mode

	// Manual clock override; nil means wall clock. While set, the
	// periodic ticker is suspended.
	manualNow *int

	// Sequence number of the most recent import request. Results
	// tagged with an older sequence are discarded, so overlapping
	// imports can never finish out of order.
	importSeq int

	// Edit mode state
	inputs    [editFieldCount]textinput.Model
	editFocus int

	// Notes and clock inputs
	notesInput textinput.Model
	clockInput textinput.Model

	// Confirm mode state
	confirmMessage string
	confirmAction  func(*Model)

	// Status line
	status string
	err    error

	// Terminal dimensions
	width  int
	height int

	styles Styles
}

// New creates the editor model seeded with the persisted schedule.
func New(store *db.Store, cfg *config.Config, editor *schedule.Editor) Model {
	m := Model{
		store:  store,
		config: cfg,
		editor: editor,
		styles: NewStyles(),
	}

	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].CharLimit = 200
		m.inputs[i].Width = 24
	}
	m.inputs[fieldTime].Placeholder = "9:00 AM"
	m.inputs[fieldDuration].Placeholder = "30 min"
	m.inputs[fieldTitle].Placeholder = "Segment title"
	m.inputs[fieldPresenter].Placeholder = "Presenter"

	m.notesInput = textinput.New()
	m.notesInput.CharLimit = 500
	m.notesInput.Width = 60
	m.notesInput.Placeholder = "Notes"

	m.clockInput = textinput.New()
	m.clockInput.CharLimit = 10
	m.clockInput.Width = 12
	m.clockInput.Placeholder = "2:15 PM"

	return m
}

// Init starts the current-segment ticker.
func (m Model) Init() tea.Cmd {
	return Tick()
}

// nowMinutes returns the clock the current-segment marker is judged
// against: the manual override when set, the wall clock otherwise.
func (m Model) nowMinutes() int {
	if m.manualNow != nil {
		return *m.manualNow
	}
	return timeutil.FromClock(time.Now())
}

// clampCursor keeps the cursor inside the segment list.
func (m *Model) clampCursor() {
	if m.cursor >= m.editor.Len() {
		m.cursor = m.editor.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Run starts the TUI and persists the final schedule state on exit.
func Run(store *db.Store, cfg *config.Config) error {
	editor := schedule.NewEditor(cfg.DayStartMinutes(), cfg.Schedule.DefaultDuration)
	ctx := context.Background()

	segments, err := store.LoadSchedule(ctx)
	if err != nil {
		return err
	}
	past, future, err := store.LoadHistory(ctx)
	if err != nil {
		return err
	}
	editor.Restore(segments, past, future)

	p := tea.NewProgram(New(store, cfg, editor), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(Model); ok {
		pastSnap, futureSnap := m.editor.History().Snapshots()
		if err := store.SaveState(ctx, m.editor.Segments(), pastSnap, futureSnap); err != nil {
			return fmt.Errorf("saving schedule: %w", err)
		}
	}
	return nil
}
