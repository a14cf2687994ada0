package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/daygrid/internal/calendar"
	"github.com/sadopc/daygrid/internal/report"
	"github.com/sadopc/daygrid/internal/store"
	"github.com/sadopc/daygrid/internal/timeline"
)

// todayModel is the timeline editor for one day. The cursor walks the slot
// grid; painting goes through the timeline.Editor so undo and drag semantics
// live outside the view.
type todayModel struct {
	store  *store.Store
	width  int
	height int

	dateKey    string
	settings   timeline.Settings
	activities []timeline.Activity
	goals      []timeline.Goal
	record     *timeline.DailyRecord
	editor     *timeline.Editor

	cursor int
}

func newTodayModel(s *store.Store) todayModel {
	return todayModel{store: s, dateKey: calendar.TodayKey()}
}

func (t todayModel) Init() tea.Cmd {
	return t.load(t.dateKey)
}

func (t *todayModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t todayModel) load(dateKey string) tea.Cmd {
	return func() tea.Msg {
		state, err := t.store.Bootstrap(dateKey)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		return todayDataMsg{state: state}
	}
}

func (t todayModel) refresh() tea.Cmd {
	return t.load(t.dateKey)
}

func (t todayModel) update(msg tea.Msg) (todayModel, tea.Cmd) {
	switch msg := msg.(type) {
	case todayDataMsg:
		t.settings = msg.state.Settings
		t.activities = msg.state.Activities
		t.goals = msg.state.Goals
		t.record = msg.state.Record
		t.dateKey = msg.state.Record.DateKey
		t.editor = timeline.NewEditor(msg.state.Record.Blocks, msg.state.Record.Skipped)
		if t.cursor >= len(msg.state.Record.Blocks) {
			t.cursor = max(0, len(msg.state.Record.Blocks)-1)
		}
		return t, nil

	case openDayMsg:
		t.dateKey = msg.dateKey
		t.cursor = 0
		return t, t.load(msg.dateKey)

	case tea.KeyMsg:
		if t.editor == nil {
			return t, nil
		}
		return t.updateKeys(msg)
	}
	return t, nil
}

func (t todayModel) updateKeys(msg tea.KeyMsg) (todayModel, tea.Cmd) {
	// Digits pick the paint activity by palette position, 0 deselects.
	if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		if s == "0" {
			t.editor.Select("")
			return t, nil
		}
		idx := int(s[0] - '1')
		if idx < len(t.activities) {
			t.editor.Select(t.activities[idx].ID)
		}
		return t, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
		if t.editor.Painting() {
			t.editor.DragTo(t.cursor)
			return t, t.persist()
		}

	case key.Matches(msg, keys.Down):
		if t.cursor < len(t.editor.Blocks())-1 {
			t.cursor++
		}
		if t.editor.Painting() {
			t.editor.DragTo(t.cursor)
			return t, t.persist()
		}

	case key.Matches(msg, keys.Paint):
		if t.editor.Toggle(t.cursor) {
			return t, t.persist()
		}

	case key.Matches(msg, keys.Range):
		if t.editor.Painting() {
			t.editor.EndDrag()
			return t, nil
		}
		t.editor.StartDrag(t.cursor)
		if t.editor.Painting() {
			return t, t.persist()
		}

	case key.Matches(msg, keys.Enter):
		if t.editor.Painting() {
			t.editor.EndDrag()
		}

	case key.Matches(msg, keys.Back):
		if t.editor.Painting() {
			t.editor.CancelDrag()
		}

	case key.Matches(msg, keys.Mode):
		t.editor.ToggleMode()

	case key.Matches(msg, keys.Undo):
		if !t.editor.Undo() {
			return t, func() tea.Msg { return statusMsg{text: "Nothing to undo"} }
		}
		return t, t.persist()

	case key.Matches(msg, keys.Clear):
		if t.editor.Clear() {
			return t, t.persist()
		}

	case key.Matches(msg, keys.SkipDay):
		t.record.Skipped = !t.record.Skipped
		t.editor.SetDaySkipped(t.record.Skipped)
		return t, t.persist()
	}
	return t, nil
}

// persist writes the editor's blocks back into the record and saves it.
func (t todayModel) persist() tea.Cmd {
	t.record.Blocks = t.editor.Blocks()
	if err := t.store.SaveRecord(t.record); err != nil {
		return func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
	}
	return nil
}

func (t todayModel) view() string {
	if t.editor == nil || t.record == nil {
		return mutedStyle.Render("Loading...")
	}

	w := t.width - 4
	blocks := t.editor.Blocks()

	header := t.renderHeader()
	palette := t.renderPalette()
	summary := t.renderSummary()
	grid := t.renderGrid(blocks)

	style := panelStyle
	if t.editor.Painting() {
		style = activePanelStyle
	}
	return style.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, palette, "", grid, "", summary),
	)
}

func (t todayModel) renderHeader() string {
	title := titleStyle.Render(t.dateKey)

	mode := successStyle.Render("PAINT")
	if t.editor.Mode() == timeline.ModeErase {
		mode = errorStyle.Render("ERASE")
	}

	badges := []string{mode}
	if t.editor.Painting() {
		badges = append(badges, warningStyle.Render("RANGE"))
	}
	if t.record.Skipped {
		badges = append(badges, errorStyle.Render("DAY SKIPPED"))
	}

	return title + "  " + strings.Join(badges, " ")
}

func (t todayModel) renderPalette() string {
	if len(t.activities) == 0 {
		return mutedStyle.Render("No activities. Add some in the Activities view.")
	}
	var parts []string
	for i, a := range t.activities {
		if i >= 9 {
			break
		}
		label := fmt.Sprintf("%d:%s", i+1, a.Name)
		styled := lipgloss.NewStyle().Foreground(lipgloss.Color(a.ColorHex)).Render(label)
		if a.ID == t.editor.Selected() {
			styled = lipgloss.NewStyle().
				Foreground(lipgloss.Color(a.ColorHex)).
				Bold(true).
				Underline(true).
				Render(label)
		}
		parts = append(parts, styled)
	}
	return strings.Join(parts, "  ")
}

func (t todayModel) renderGrid(blocks []timeline.TimeBlock) string {
	if len(blocks) == 0 {
		return mutedStyle.Render("No slots. Check start/end time in Settings.")
	}

	visible := t.height - 12
	if visible < 5 {
		visible = 5
	}
	start := 0
	if len(blocks) > visible {
		start = t.cursor - visible/2
		start = max(0, min(start, len(blocks)-visible))
	}
	end := min(len(blocks), start+visible)

	startMin := t.settings.StartMinutes()

	var rows []string
	for i := start; i < end; i++ {
		label := timeline.SlotLabel(startMin, i, t.settings.SlotMinutes)

		cursor := "  "
		if i == t.cursor {
			cursor = selectedItemStyle.Render("> ")
		}

		cell := mutedStyle.Render("· -")
		if id := blocks[i].ActivityID; id != "" {
			name := "unknown"
			color := report.UnknownColor
			if a := activityByID(t.activities, id); a != nil {
				name = a.Name
				color = a.ColorHex
			}
			cell = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██ " + name)
		}

		rows = append(rows, fmt.Sprintf("%s%s  %s", cursor, mutedStyle.Render(label), cell))
	}

	if start > 0 {
		rows = append([]string{mutedStyle.Render("  ↑")}, rows...)
	}
	if end < len(blocks) {
		rows = append(rows, mutedStyle.Render("  ↓"))
	}
	return strings.Join(rows, "\n")
}

func (t todayModel) renderSummary() string {
	summary := report.SummarizeDay(*t.record, t.settings)
	if summary.TotalMinutes == 0 {
		return mutedStyle.Render("No record")
	}

	items := report.Items(summary, t.activities)
	report.SortByMinutes(items)

	parts := []string{highlightStyle.Render("Total " + report.MinutesToLabel(summary.TotalMinutes))}
	for i, it := range items {
		if i >= 2 {
			parts = append(parts, mutedStyle.Render(fmt.Sprintf("+%d", len(items)-2)))
			break
		}
		parts = append(parts, fmt.Sprintf("%s %s", it.Name, report.MinutesToLabel(it.Minutes)))
	}

	line := strings.Join(parts, " · ")

	// Goal progress for today
	for _, g := range t.goals {
		if !g.Enabled {
			continue
		}
		name := g.ActivityID
		if a := activityByID(t.activities, g.ActivityID); a != nil {
			name = a.Name
		}
		pct := report.GoalProgress(summary, g)
		line += mutedStyle.Render(fmt.Sprintf("   goal %s %d%%", name, pct))
	}
	return line
}
