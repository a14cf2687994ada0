package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sadopc/daygrid/internal/store"
	"github.com/sadopc/daygrid/internal/timeline"
)

var activityColors = []string{"#5B8CFF", "#6BCB77", "#FF8A5B", "#B56BFF", "#3A4A5F", "#FF6B6B", "#F39C12", "#2EC4B6"}

// activitiesModel manages the activity palette. Deleting an activity keeps
// old slot references in place; rendering falls back to "unknown" instead of
// cascading through stored records.
type activitiesModel struct {
	store  *store.Store
	width  int
	height int

	activities []timeline.Activity
	cursor     int

	formActive bool
	form       *huh.Form
	editingID  string // empty when creating

	formName  *string
	formColor *string
}

func newActivitiesModel(s *store.Store) activitiesModel {
	name, color := "", activityColors[0]
	return activitiesModel{store: s, formName: &name, formColor: &color}
}

func (a *activitiesModel) setSize(w, h int) {
	a.width = w
	a.height = h
}

func (a activitiesModel) refresh() tea.Cmd {
	return func() tea.Msg {
		activities, err := a.store.LoadActivities()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		return activitiesDataMsg{activities: activities}
	}
}

func (a activitiesModel) update(msg tea.Msg) (activitiesModel, tea.Cmd) {
	if a.formActive && a.form != nil {
		return a.updateForm(msg)
	}

	switch msg := msg.(type) {
	case activitiesDataMsg:
		a.activities = msg.activities
		if a.cursor >= len(a.activities) {
			a.cursor = max(0, len(a.activities)-1)
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if a.cursor > 0 {
				a.cursor--
			}
		case key.Matches(msg, keys.Down):
			if a.cursor < len(a.activities)-1 {
				a.cursor++
			}
		case key.Matches(msg, keys.New):
			return a.showForm(nil)
		case key.Matches(msg, keys.Edit):
			if len(a.activities) > 0 {
				act := a.activities[a.cursor]
				return a.showForm(&act)
			}
		case key.Matches(msg, keys.Delete):
			if len(a.activities) > 0 {
				return a.deleteSelected()
			}
		}
	}
	return a, nil
}

func (a activitiesModel) showForm(editing *timeline.Activity) (activitiesModel, tea.Cmd) {
	if editing != nil {
		*a.formName = editing.Name
		*a.formColor = editing.ColorHex
		a.editingID = editing.ID
	} else {
		*a.formName = ""
		*a.formColor = activityColors[0]
		a.editingID = ""
	}

	colorOptions := make([]huh.Option[string], len(activityColors))
	for i, c := range activityColors {
		colorOptions[i] = huh.NewOption(fmt.Sprintf("● %s", c), c)
	}

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Activity Name").Value(a.formName),
			huh.NewSelect[string]().Title("Color").Options(colorOptions...).Value(a.formColor),
		),
	).WithShowHelp(true).WithShowErrors(true)

	a.formActive = true
	return a, a.form.Init()
}

func (a activitiesModel) updateForm(msg tea.Msg) (activitiesModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			a.formActive = false
			a.form = nil
			return a, nil
		}
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.formActive = false
		name := strings.TrimSpace(*a.formName)
		if name == "" {
			return a, a.refresh()
		}

		if a.editingID != "" {
			for i := range a.activities {
				if a.activities[i].ID == a.editingID {
					a.activities[i].Name = name
					a.activities[i].ColorHex = *a.formColor
				}
			}
		} else {
			maxOrder := 0
			for _, act := range a.activities {
				if act.SortOrder > maxOrder {
					maxOrder = act.SortOrder
				}
			}
			a.activities = append(a.activities, timeline.Activity{
				ID:        uuid.NewString(),
				Name:      name,
				ColorHex:  *a.formColor,
				SortOrder: maxOrder + 1,
			})
		}

		if err := a.store.SaveActivities(a.activities); err != nil {
			return a, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
			}
		}
		return a, a.refresh()
	}

	return a, cmd
}

func (a activitiesModel) deleteSelected() (activitiesModel, tea.Cmd) {
	a.activities = append(a.activities[:a.cursor], a.activities[a.cursor+1:]...)
	if a.cursor >= len(a.activities) {
		a.cursor = max(0, len(a.activities)-1)
	}
	if err := a.store.SaveActivities(a.activities); err != nil {
		return a, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
	}
	return a, tea.Batch(a.refresh(), func() tea.Msg {
		return statusMsg{text: "Activity deleted. Old slots will show as unknown."}
	})
}

func (a activitiesModel) view() string {
	w := a.width - 4

	if a.formActive && a.form != nil {
		title := titleStyle.Render("New Activity")
		if a.editingID != "" {
			title = titleStyle.Render("Edit Activity")
		}
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", a.form.View()),
		)
	}

	title := titleStyle.Render("Activities")

	if len(a.activities) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, "", mutedStyle.Render("No activities yet. Press n to create one."),
		))
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, act := range a.activities {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(act.ColorHex)).Render("●")
		cursor := "  "
		style := normalItemStyle
		if i == a.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s %-20s", cursor, dot, act.Name))+
			mutedStyle.Render(act.ColorHex))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  e: edit  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
