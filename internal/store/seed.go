package store

import (
	"github.com/google/uuid"
	"github.com/sadopc/daygrid/internal/timeline"
)

// SeedActivities is the first-run palette.
func SeedActivities() []timeline.Activity {
	return []timeline.Activity{
		{ID: "coding", Name: "Coding", ColorHex: "#5B8CFF", SortOrder: 1},
		{ID: "study", Name: "Study", ColorHex: "#6BCB77", SortOrder: 2},
		{ID: "exercise", Name: "Exercise", ColorHex: "#FF8A5B", SortOrder: 3},
		{ID: "play", Name: "Play", ColorHex: "#B56BFF", SortOrder: 4},
		{ID: "sleep", Name: "Sleep", ColorHex: "#3A4A5F", SortOrder: 5},
	}
}

// DefaultSettings covers 08:00 through 24:00 in half-hour slots.
func DefaultSettings() timeline.Settings {
	return timeline.Settings{
		StartTime:   "08:00",
		EndTime:     "24:00",
		SlotMinutes: 30,
		WeekStart:   "monday",
	}
}

func SeedGoals() []timeline.Goal {
	return []timeline.Goal{
		{
			ID:                  "goal_coding_daily",
			ActivityID:          "coding",
			TargetMinutesPerDay: 120,
			Enabled:             true,
		},
	}
}

// NewRecord builds an all-empty day with n slots and one starter card.
func NewRecord(dateKey string, n int) *timeline.DailyRecord {
	return &timeline.DailyRecord{
		DateKey: dateKey,
		Blocks:  make([]timeline.TimeBlock, n),
		Cards:   []timeline.TaskCard{NewCard("Today")},
	}
}

// NewCard builds a card with a single empty checklist item; cards never have
// an empty item list.
func NewCard(title string) timeline.TaskCard {
	return timeline.TaskCard{
		ID:    uuid.NewString(),
		Title: title,
		Items: []timeline.ChecklistItem{NewItem("")},
	}
}

func NewItem(text string) timeline.ChecklistItem {
	return timeline.ChecklistItem{ID: uuid.NewString(), Text: text}
}
