package tui

import (
	"github.com/sadopc/daygrid/internal/store"
	"github.com/sadopc/daygrid/internal/timeline"
)

// viewState represents the currently active view.
type viewState int

const (
	viewToday viewState = iota
	viewPlanner
	viewCalendar
	viewReport
	viewActivities
	viewSettings
)

var viewNames = []string{"Today", "Planner", "Calendar", "Report", "Activities", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

// openDayMsg asks the root model to open a specific day in the Today view.
type openDayMsg struct {
	dateKey string
}

type todayDataMsg struct {
	state *store.BootstrapState
}

type plannerDataMsg struct {
	record *timeline.DailyRecord
}

type calendarDataMsg struct {
	records    map[string]*timeline.DailyRecord
	settings   timeline.Settings
	activities []timeline.Activity
}

type reportDataMsg struct {
	records    []*timeline.DailyRecord
	activities []timeline.Activity
	settings   timeline.Settings
	goals      []timeline.Goal
	weekKeys   []string
}

type activitiesDataMsg struct {
	activities []timeline.Activity
}

type settingsDataMsg struct {
	settings *timeline.Settings
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func activityByID(activities []timeline.Activity, id string) *timeline.Activity {
	for i := range activities {
		if activities[i].ID == id {
			return &activities[i]
		}
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
