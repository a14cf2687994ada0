package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/daygrid/internal/calendar"
	"github.com/sadopc/daygrid/internal/report"
	"github.com/sadopc/daygrid/internal/store"
	"github.com/sadopc/daygrid/internal/timeline"
)

// calendarModel shows the month grid. Selecting a day shows its summary and
// enter jumps to the Today view for that date.
type calendarModel struct {
	store  *store.Store
	width  int
	height int

	cursor     time.Time // selected day
	settings   timeline.Settings
	activities []timeline.Activity
	records    map[string]*timeline.DailyRecord
}

func newCalendarModel(s *store.Store) calendarModel {
	return calendarModel{
		store:   s,
		cursor:  calendar.FromDateKey(calendar.TodayKey()),
		records: map[string]*timeline.DailyRecord{},
	}
}

func (c *calendarModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c calendarModel) refresh() tea.Cmd {
	cursor := c.cursor
	return func() tea.Msg {
		settings, err := c.store.LoadSettings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		if settings == nil {
			def := store.DefaultSettings()
			settings = &def
		}
		activities, _ := c.store.LoadActivities()

		records := map[string]*timeline.DailyRecord{}
		matrix := calendar.MonthMatrix(cursor, calendar.WeekStartDay(settings.WeekStart))
		for _, row := range matrix {
			for _, cell := range row {
				rec, err := c.store.LoadRecord(cell.DateKey)
				if err != nil {
					return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
				}
				if rec != nil {
					records[cell.DateKey] = rec
				}
			}
		}
		return calendarDataMsg{records: records, settings: *settings, activities: activities}
	}
}

func (c calendarModel) update(msg tea.Msg) (calendarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarDataMsg:
		c.records = msg.records
		c.settings = msg.settings
		c.activities = msg.activities
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			c.cursor = calendar.AddDays(c.cursor, -1)
			return c, c.refreshIfMonthChanged(calendar.AddDays(c.cursor, 1))
		case key.Matches(msg, keys.Right):
			c.cursor = calendar.AddDays(c.cursor, 1)
			return c, c.refreshIfMonthChanged(calendar.AddDays(c.cursor, -1))
		case key.Matches(msg, keys.Up):
			c.cursor = calendar.AddDays(c.cursor, -7)
			return c, c.refreshIfMonthChanged(calendar.AddDays(c.cursor, 7))
		case key.Matches(msg, keys.Down):
			c.cursor = calendar.AddDays(c.cursor, 7)
			return c, c.refreshIfMonthChanged(calendar.AddDays(c.cursor, -7))
		case msg.String() == "[":
			c.cursor = c.cursor.AddDate(0, -1, 0)
			return c, c.refresh()
		case msg.String() == "]":
			c.cursor = c.cursor.AddDate(0, 1, 0)
			return c, c.refresh()
		case key.Matches(msg, keys.Enter):
			dateKey := calendar.ToDateKey(c.cursor)
			return c, func() tea.Msg { return openDayMsg{dateKey: dateKey} }
		}
	}
	return c, nil
}

func (c calendarModel) refreshIfMonthChanged(prev time.Time) tea.Cmd {
	if prev.Month() != c.cursor.Month() {
		return c.refresh()
	}
	return nil
}

func (c calendarModel) view() string {
	w := c.width - 4
	weekStart := calendar.WeekStartDay(c.settings.WeekStart)

	title := titleStyle.Render("Calendar") + "  " +
		mutedStyle.Render(calendar.FormatMonthTitle(c.cursor))

	matrix := calendar.MonthMatrix(c.cursor, weekStart)

	headers := make([]string, 7)
	for i := 0; i < 7; i++ {
		d := (int(weekStart) + i) % 7
		headers[i] = time.Weekday(d).String()[:3]
	}
	headerRow := mutedStyle.Render("  " + strings.Join(pad(headers, 5), ""))

	selectedKey := calendar.ToDateKey(c.cursor)

	var rows []string
	rows = append(rows, headerRow)
	for _, row := range matrix {
		var cells []string
		for _, cell := range row {
			label := fmt.Sprintf("%2d", cell.Date.Day())

			mark := " "
			if rec, ok := c.records[cell.DateKey]; ok {
				if rec.Skipped {
					mark = errorStyle.Render("×")
				} else if report.SummarizeDay(*rec, c.settings).TotalMinutes > 0 {
					mark = successStyle.Render("•")
				}
			}

			style := normalItemStyle
			if !cell.InMonth {
				style = mutedStyle
			}
			if cell.DateKey == selectedKey {
				style = selectedItemStyle
			}
			cells = append(cells, style.Render(label)+mark+"  ")
		}
		rows = append(rows, "  "+strings.Join(cells, ""))
	}

	selected := c.renderSelectedDay()
	week := c.renderWeekSummary()
	hint := mutedStyle.Render("  ←/→ ↑/↓: move  [/]: month  enter: open day")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title, "", strings.Join(rows, "\n"), "", selected, week, "", hint,
		),
	)
}

func (c calendarModel) renderSelectedDay() string {
	dateKey := calendar.ToDateKey(c.cursor)
	rec, ok := c.records[dateKey]
	if !ok {
		return mutedStyle.Render(dateKey + " — no record")
	}
	if rec.Skipped {
		return fmt.Sprintf("%s — %s", dateKey, errorStyle.Render("skipped"))
	}

	summary := report.SummarizeDay(*rec, c.settings)
	if summary.TotalMinutes == 0 {
		return mutedStyle.Render(dateKey + " — empty")
	}

	items := report.Items(summary, c.activities)
	report.SortByMinutes(items)

	parts := make([]string, 0, 3)
	for i, it := range items {
		if i >= 2 {
			parts = append(parts, fmt.Sprintf("+%d", len(items)-2))
			break
		}
		parts = append(parts, fmt.Sprintf("%s %s", it.Name, report.MinutesToLabel(it.Minutes)))
	}
	return fmt.Sprintf("%s — %s", dateKey, strings.Join(parts, " · "))
}

func (c calendarModel) renderWeekSummary() string {
	weekStart := calendar.WeekStartDay(c.settings.WeekStart)
	weekKeys := calendar.WeekKeys(c.cursor, weekStart)

	records := make([]*timeline.DailyRecord, len(weekKeys))
	for i, k := range weekKeys {
		records[i] = c.records[k] // nil for absent days
	}
	summary := report.SummarizeWeek(records, c.settings)

	return mutedStyle.Render(fmt.Sprintf("Week total: %s", report.MinutesToLabel(summary.TotalMinutes)))
}

func pad(in []string, width int) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = fmt.Sprintf("%-*s", width, s)
	}
	return out
}
