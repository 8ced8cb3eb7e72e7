package tui

import (
	"fmt"
	"strings"

	"showflow/internal/schedule"
	"showflow/internal/timeutil"
)

// View renders the editor.
func (m Model) View() string {
	var b strings.Builder

	clock := timeutil.FormatTime(m.nowMinutes())
	if m.manualNow != nil {
		clock += " (pinned)"
	}
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Showflow - %s", clock)))
	b.WriteString("\n\n")

	list := m.editor.Segments()
	if len(list) == 0 {
		b.WriteString(m.styles.Help.Render("  Empty schedule. Press 'i' to import from the clipboard or 'a' to add a segment.\n"))
	} else {
		m.renderRows(&b, list)
	}

	b.WriteString("\n")
	m.renderFooter(&b)
	return b.String()
}

func (m Model) renderRows(b *strings.Builder, list []schedule.Segment) {
	now := m.nowMinutes()
	currentIdx := schedule.CurrentIndex(list, now)
	overrunIdx := schedule.OverrunIndex(list, now)

	b.WriteString(m.styles.Header.Render(fmt.Sprintf("     %-8s  %-8s  %-32s  %s",
		"TIME", "DURATION", "TITLE", "PRESENTER")))
	b.WriteString("\n")

	for i, seg := range list {
		marker := "  "
		switch i {
		case overrunIdx:
			marker = m.styles.OverrunRow.Render("▶!")
		case currentIdx:
			marker = m.styles.CurrentRow.Render("▶ ")
		}

		title := seg.Title
		if r := []rune(title); len(r) > 32 {
			title = string(r[:29]) + "..."
		}
		line := fmt.Sprintf("%-8s  %-8s  %-32s  %s", seg.Time, seg.Duration, title, seg.Presenter)

		style := m.styles.Row
		if i == m.cursor {
			style = m.styles.SelectedRow
		} else if i == currentIdx {
			style = m.styles.CurrentRow
		}

		fmt.Fprintf(b, "%s %s\n", marker, style.Render(line))

		if i == m.cursor && seg.Notes != "" {
			b.WriteString(m.styles.Notes.Render(seg.Notes))
			b.WriteString("\n")
		}
	}
}

func (m Model) renderFooter(b *strings.Builder) {
	switch m.mode {
	case ModeEdit:
		labels := [editFieldCount]string{"Time", "Duration", "Title", "Presenter"}
		b.WriteString(m.styles.Prompt.Render("Edit segment"))
		b.WriteString("\n")
		for i, input := range m.inputs {
			cursor := "  "
			if i == m.editFocus {
				cursor = "> "
			}
			fmt.Fprintf(b, "  %s%-10s %s\n", cursor, labels[i], input.View())
		}
		b.WriteString(m.styles.Help.Render("tab: next field • enter: apply • esc: cancel"))

	case ModeNotes:
		fmt.Fprintf(b, "%s %s\n", m.styles.Prompt.Render("Notes:"), m.notesInput.View())
		b.WriteString(m.styles.Help.Render("enter: apply • esc: cancel"))

	case ModeClock:
		fmt.Fprintf(b, "%s %s\n", m.styles.Prompt.Render("Pin clock to:"), m.clockInput.View())
		b.WriteString(m.styles.Help.Render("enter: pin • esc: cancel"))

	case ModeConfirm:
		fmt.Fprintf(b, "%s %s\n", m.styles.Prompt.Render(m.confirmMessage), m.styles.Help.Render("[y/N]"))

	default:
		switch {
		case m.err != nil:
			b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		case m.status != "":
			b.WriteString(m.styles.Status.Render(m.status))
		default:
			b.WriteString(m.styles.Help.Render(
				"j/k: move • J/K: reorder • a: add • e: edit • n: notes • d: delete • y: duplicate • u/r: undo/redo • i: import • t/T: pin clock • q: quit"))
		}
	}
	b.WriteString("\n")
}
