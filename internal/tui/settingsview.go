package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/daygrid/internal/store"
	"github.com/sadopc/daygrid/internal/timeline"
)

// settingsModel edits the timeline grid settings. Existing records are not
// migrated on save; they are resized defensively the next time they load.
type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   *timeline.Settings
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	startTime   *string
	endTime     *string
	slotMinutes *string
	weekStart   *string
}

func newSettingsModel(s *store.Store) settingsModel {
	st, et, sm, ws := "", "", "", ""
	return settingsModel{
		store:       s,
		startTime:   &st,
		endTime:     &et,
		slotMinutes: &sm,
		weekStart:   &ws,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, err := s.store.LoadSettings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		if settings == nil {
			def := store.DefaultSettings()
			settings = &def
		}
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Edit):
			if s.settings != nil {
				return s.showForm()
			}
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.startTime = s.settings.StartTime
	*s.endTime = s.settings.EndTime
	*s.slotMinutes = strconv.Itoa(s.settings.SlotMinutes)
	*s.weekStart = s.settings.WeekStart

	validTime := func(v string) error {
		if _, err := timeline.TimeToMinutes(v); err != nil {
			return fmt.Errorf("use HH:MM")
		}
		return nil
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Start time (HH:MM)").Value(s.startTime).Validate(validTime),
			huh.NewInput().Title("End time (HH:MM, may pass 24:00)").Value(s.endTime).Validate(validTime),
			huh.NewSelect[string]().Title("Slot length").
				Options(
					huh.NewOption("15 minutes", "15"),
					huh.NewOption("30 minutes", "30"),
					huh.NewOption("60 minutes", "60"),
				).Value(s.slotMinutes),
			huh.NewSelect[string]().Title("Week starts on").
				Options(
					huh.NewOption("Monday", "monday"),
					huh.NewOption("Sunday", "sunday"),
				).Value(s.weekStart),
		).Title("Timeline"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s, s.saveSettings()
	}

	return s, cmd
}

func (s settingsModel) saveSettings() tea.Cmd {
	mins, err := strconv.Atoi(*s.slotMinutes)
	if err != nil || mins <= 0 {
		mins = 30
	}
	next := timeline.Settings{
		StartTime:   *s.startTime,
		EndTime:     *s.endTime,
		SlotMinutes: mins,
		WeekStart:   *s.weekStart,
	}
	if err := s.store.SaveSettings(next); err != nil {
		return func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
	}
	return tea.Batch(s.refresh(), func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Settings saved (%d slots)", next.TotalSlots())}
	})
}

func (s settingsModel) view() string {
	w := s.width - 4
	title := titleStyle.Render("Settings")

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	if s.settings == nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", mutedStyle.Render("Loading...")),
		)
	}

	row := func(label, value string) string {
		return fmt.Sprintf("  %s %s",
			lipgloss.NewStyle().Width(16).Render(label),
			highlightStyle.Render(value),
		)
	}

	rows := []string{
		title,
		"",
		row("Start time", s.settings.StartTime),
		row("End time", s.settings.EndTime),
		row("Slot length", fmt.Sprintf("%d min", s.settings.SlotMinutes)),
		row("Slots per day", strconv.Itoa(s.settings.TotalSlots())),
		row("Week starts", s.settings.WeekStart),
		"",
		mutedStyle.Render("Press enter to edit. Past days resize to the new grid when opened."),
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
