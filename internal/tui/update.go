package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"showflow/internal/schedule"
	"showflow/internal/timeutil"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		// The marker is recomputed on render; while a manual clock
		// override is active the ticker stays suspended.
		if m.manualNow != nil {
			return m, nil
		}
		return m, Tick()

	case ImportedMsg:
		return m.handleImported(msg)

	case SavedMsg:
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.status = "Saved."
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleImported applies an import result unless a newer request has
// been issued since.
func (m Model) handleImported(msg ImportedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.importSeq {
		return m, nil
	}
	if msg.Err != nil {
		m.err = msg.Err
		return m, nil
	}

	m.editor.Load(msg.Result.Segments)
	m.clampCursor()
	m.err = nil
	m.status = fmt.Sprintf("Imported %d segments from clipboard.", m.editor.Len())
	return m, m.saveCmd()
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeEdit:
		return m.handleEditKeys(msg)
	case ModeNotes:
		return m.handleNotesKeys(msg)
	case ModeClock:
		return m.handleClockKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.err = nil

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "j", "down":
		if m.cursor < m.editor.Len()-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = m.editor.Len() - 1
		m.clampCursor()

	// Reordering
	case "J", "shift+down":
		if err := m.editor.Move(m.cursor, m.cursor+1); err == nil {
			m.cursor++
			return m, m.saveCmd()
		}
	case "K", "shift+up":
		if err := m.editor.Move(m.cursor, m.cursor-1); err == nil {
			m.cursor--
			return m, m.saveCmd()
		}

	// Structural edits
	case "a":
		m.editor.Add(m.cursor + 1)
		if m.editor.Len() > 1 {
			m.cursor++
		}
		return m.enterEditMode(), nil
	case "y":
		if err := m.editor.Duplicate(m.cursor); err == nil {
			m.cursor++
			return m, m.saveCmd()
		}
	case "d":
		if m.editor.Len() == 0 {
			return m, nil
		}
		seg := m.editor.Segments()[m.cursor]
		m.mode = ModeConfirm
		m.confirmMessage = fmt.Sprintf("Delete %q?", seg.Title)
		index := m.cursor
		m.confirmAction = func(model *Model) {
			_ = model.editor.Remove(index)
			model.clampCursor()
		}

	// Field edits
	case "enter", "e":
		if m.editor.Len() > 0 {
			return m.enterEditMode(), nil
		}
	case "n":
		if m.editor.Len() > 0 {
			m.mode = ModeNotes
			m.notesInput.SetValue(m.editor.Segments()[m.cursor].Notes)
			m.notesInput.Focus()
		}

	// History
	case "u":
		if m.editor.Undo() {
			m.clampCursor()
			m.status = "Undid last change."
			return m, m.saveCmd()
		}
		m.status = "Nothing to undo."
	case "r":
		if m.editor.Redo() {
			m.clampCursor()
			m.status = "Redid last change."
			return m, m.saveCmd()
		}
		m.status = "Nothing to redo."

	// Import
	case "i":
		m.importSeq++
		m.status = "Importing from clipboard..."
		return m, ImportClipboard(m.importSeq)

	// Clock override
	case "t":
		m.mode = ModeClock
		m.clockInput.SetValue("")
		m.clockInput.Focus()
	case "T":
		if m.manualNow != nil {
			m.manualNow = nil
			m.status = "Clock override cleared."
			return m, Tick()
		}

	case "s":
		return m, m.saveCmd()
	}

	return m, nil
}

// enterEditMode seeds the field inputs from the selected segment.
func (m Model) enterEditMode() Model {
	seg := m.editor.Segments()[m.cursor]
	m.inputs[fieldTime].SetValue(seg.Time)
	m.inputs[fieldDuration].SetValue(seg.Duration)
	m.inputs[fieldTitle].SetValue(seg.Title)
	m.inputs[fieldPresenter].SetValue(seg.Presenter)

	m.mode = ModeEdit
	m.editFocus = fieldTime
	m.focusEditField()
	return m
}

func (m *Model) focusEditField() {
	for i := range m.inputs {
		if i == m.editFocus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// handleEditKeys handles keys while editing segment fields.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		return m, nil

	case "tab", "down":
		m.editFocus = (m.editFocus + 1) % editFieldCount
		m.focusEditField()
		return m, nil

	case "shift+tab", "up":
		m.editFocus = (m.editFocus + editFieldCount - 1) % editFieldCount
		m.focusEditField()
		return m, nil

	case "enter":
		current := m.editor.Segments()[m.cursor]
		edited := schedule.Segment{
			Time:      m.inputs[fieldTime].Value(),
			Duration:  m.inputs[fieldDuration].Value(),
			Title:     m.inputs[fieldTitle].Value(),
			Presenter: m.inputs[fieldPresenter].Value(),
			Notes:     current.Notes,
		}
		if err := m.editor.Update(m.cursor, edited); err != nil {
			m.err = err
			return m, nil
		}
		m.mode = ModeNormal
		return m, m.saveCmd()
	}

	var cmd tea.Cmd
	m.inputs[m.editFocus], cmd = m.inputs[m.editFocus].Update(msg)
	return m, cmd
}

// handleNotesKeys handles keys while editing notes.
func (m Model) handleNotesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		return m, nil

	case "enter":
		if err := m.editor.SetNotes(m.cursor, m.notesInput.Value()); err != nil {
			m.err = err
			return m, nil
		}
		m.mode = ModeNormal
		return m, m.saveCmd()
	}

	var cmd tea.Cmd
	m.notesInput, cmd = m.notesInput.Update(msg)
	return m, cmd
}

// handleClockKeys handles the manual clock override prompt.
func (m Model) handleClockKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		return m, nil

	case "enter":
		minutes, ok := timeutil.ParseTime(m.clockInput.Value())
		if !ok {
			m.err = fmt.Errorf("cannot parse time %q", m.clockInput.Value())
			return m, nil
		}
		m.manualNow = &minutes
		m.mode = ModeNormal
		m.err = nil
		m.status = fmt.Sprintf("Clock pinned to %s (press T to resume).", timeutil.FormatTime(minutes))
		return m, nil
	}

	var cmd tea.Cmd
	m.clockInput, cmd = m.clockInput.Update(msg)
	return m, cmd
}

// handleConfirmKeys handles yes/no confirmation.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	if msg.String() == "y" || msg.String() == "Y" {
		if m.confirmAction != nil {
			m.confirmAction(&m)
		}
		m.confirmAction = nil
		return m, m.saveCmd()
	}
	m.confirmAction = nil
	return m, nil
}

// saveCmd snapshots the editor for a background save.
func (m Model) saveCmd() tea.Cmd {
	past, future := m.editor.History().Snapshots()
	return Save(m.store, m.editor.Segments(), past, future)
}
