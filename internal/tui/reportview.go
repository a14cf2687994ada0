package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/daygrid/internal/calendar"
	"github.com/sadopc/daygrid/internal/report"
	"github.com/sadopc/daygrid/internal/store"
	"github.com/sadopc/daygrid/internal/timeline"
)

// reportModel shows the weekly aggregate: total, top activity, goal progress,
// a stacked bar per weekday and ranked percentage rows.
type reportModel struct {
	store  *store.Store
	width  int
	height int

	offset     int // weeks back from the current one (0 = this week)
	weekKeys   []string
	records    []*timeline.DailyRecord
	activities []timeline.Activity
	settings   timeline.Settings
	goals      []timeline.Goal

	chart barchart.Model
}

func newReportModel(s *store.Store) reportModel {
	return reportModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (r *reportModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

func (r reportModel) refresh() tea.Cmd {
	offset := r.offset
	return func() tea.Msg {
		settings, err := r.store.LoadSettings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		if settings == nil {
			def := store.DefaultSettings()
			settings = &def
		}
		activities, _ := r.store.LoadActivities()
		goals, _ := r.store.LoadGoals()

		anchor := calendar.AddDays(time.Now(), -7*offset)
		weekKeys := calendar.WeekKeys(anchor, calendar.WeekStartDay(settings.WeekStart))
		records, err := r.store.LoadWeek(weekKeys)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		return reportDataMsg{
			records:    records,
			activities: activities,
			settings:   *settings,
			goals:      goals,
			weekKeys:   weekKeys,
		}
	}
}

func (r reportModel) update(msg tea.Msg) (reportModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportDataMsg:
		r.records = msg.records
		r.activities = msg.activities
		r.settings = msg.settings
		r.goals = msg.goals
		r.weekKeys = msg.weekKeys
		r.buildChart()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			r.offset++
			return r, r.refresh()
		case key.Matches(msg, keys.Right):
			if r.offset > 0 {
				r.offset--
			}
			return r, r.refresh()
		}
	}
	return r, nil
}

func (r *reportModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if r.height > 30 {
		chartHeight = 14
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for i, dateKey := range r.weekKeys {
		day := calendar.FromDateKey(dateKey)
		label := day.Format("Mon")

		var values []barchart.BarValue
		if i < len(r.records) && r.records[i] != nil {
			summary := report.SummarizeDay(*r.records[i], r.settings)
			items := report.FilterZero(report.Items(summary, r.activities))
			for _, s := range report.ChartSeries(items) {
				values = append(values, barchart.BarValue{
					Name:  s.Label,
					Value: s.Value / 60.0, // hours
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(s.ColorHex)),
				})
			}
		}
		if len(values) == 0 {
			values = []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}}
		}

		bars = append(bars, barchart.BarData{Label: label, Values: values})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportModel) view() string {
	w := r.width - 4

	rangeLabel := ""
	if len(r.weekKeys) == 7 {
		rangeLabel = mutedStyle.Render(fmt.Sprintf("%s — %s", r.weekKeys[0], r.weekKeys[6]))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Report"), "  ", rangeLabel,
	)

	summary := report.SummarizeWeek(r.records, r.settings)
	items := report.FilterZero(report.Items(summary, r.activities))
	report.SortByMinutes(items)
	top := report.TopActivity(items)

	totalRow := fmt.Sprintf("  %-14s %s", "Total", highlightStyle.Render(report.MinutesToLabel(summary.TotalMinutes)))
	topRow := fmt.Sprintf("  %-14s %s", "Top activity", "-")
	if top != nil {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(top.ColorHex)).Render("●")
		topRow = fmt.Sprintf("  %-14s %s %s · %s", "Top activity", dot, top.Name, report.MinutesToLabel(top.Minutes))
	}

	rows := []string{header, "", totalRow, topRow}

	for _, g := range r.goals {
		if !g.Enabled {
			continue
		}
		name := g.ActivityID
		if a := activityByID(r.activities, g.ActivityID); a != nil {
			name = a.Name
		}
		// Weekly progress against a 7-day target
		weekGoal := g
		weekGoal.TargetMinutesPerDay = g.TargetMinutesPerDay * 7
		pct := report.GoalProgress(summary, weekGoal)
		rows = append(rows, fmt.Sprintf("  %-14s %s %d%%", "Goal "+name, renderBar(pct, 20, colorSuccess), pct))
	}

	rows = append(rows, "", r.chart.View(), "")
	rows = append(rows, r.renderActivityRows(summary, items)...)
	rows = append(rows, "", mutedStyle.Render("  ←/→: week  x: export"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (r reportModel) renderActivityRows(summary report.Summary, items []report.Item) []string {
	if len(items) == 0 {
		return []string{mutedStyle.Render("  No tracked time this week.")}
	}

	var rows []string
	for _, it := range items {
		pct := report.Percent(it.Minutes, summary.TotalMinutes)
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(it.ColorHex)).Render("●")
		bar := renderBar(pct, 24, lipgloss.Color(it.ColorHex))
		rows = append(rows, fmt.Sprintf("  %s %-14s %s %3d%%  %s",
			dot, it.Name, bar, pct, mutedStyle.Render(report.MinutesToLabel(it.Minutes)),
		))
	}
	return rows
}

func renderBar(pct, width int, color lipgloss.Color) string {
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(color).Render(bar)
}
