package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/sadopc/daygrid/internal/timeline"
)

// UnknownColor is the neutral fill for slots whose activity was deleted.
const UnknownColor = "#999999"

// Item is one summary row enriched with activity display data.
type Item struct {
	ID       string
	Name     string
	ColorHex string
	Minutes  int
}

// Series is a chart-ready row for the presentation layer.
type Series struct {
	Label    string
	ColorHex string
	Value    float64
}

// Items enriches each summary bucket with its activity's name and color.
// Dangling references degrade to "unknown" and a neutral gray. Rows come back
// in id order; callers filter zero rows and sort by minutes for display.
func Items(summary Summary, activities []timeline.Activity) []Item {
	byID := make(map[string]timeline.Activity, len(activities))
	for _, a := range activities {
		byID[a.ID] = a
	}

	ids := make([]string, 0, len(summary.ByActivity))
	for id := range summary.ByActivity {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		it := Item{ID: id, Name: "unknown", ColorHex: UnknownColor, Minutes: summary.ByActivity[id]}
		if a, ok := byID[id]; ok {
			it.Name = a.Name
			it.ColorHex = a.ColorHex
		}
		items = append(items, it)
	}
	return items
}

// TopActivity returns the highest-minutes item, or nil for an empty list.
// Ties keep the earliest item in slice order.
func TopActivity(items []Item) *Item {
	var top *Item
	for i := range items {
		if top == nil || items[i].Minutes > top.Minutes {
			top = &items[i]
		}
	}
	return top
}

// MinutesToLabel renders minutes as "2h 30m", dropping a zero component.
// Zero total is "0m", never an empty string.
func MinutesToLabel(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// Percent is the rounded share of total, 0 when total is 0.
func Percent(minutes, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(minutes) / float64(total) * 100))
}

// ChartSeries converts report items into neutral chart rows.
func ChartSeries(items []Item) []Series {
	series := make([]Series, len(items))
	for i, it := range items {
		series[i] = Series{Label: it.Name, ColorHex: it.ColorHex, Value: float64(it.Minutes)}
	}
	return series
}

// SortByMinutes orders items descending by minutes for display. Ties keep
// their original relative order.
func SortByMinutes(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Minutes > items[j].Minutes
	})
}

// FilterZero drops rows with no tracked time.
func FilterZero(items []Item) []Item {
	out := items[:0]
	for _, it := range items {
		if it.Minutes > 0 {
			out = append(out, it)
		}
	}
	return out
}

// GoalProgress is the percent of a daily goal covered by the summary, capped
// at 100. Disabled goals and non-positive targets report 0.
func GoalProgress(summary Summary, goal timeline.Goal) int {
	if !goal.Enabled || goal.TargetMinutesPerDay <= 0 {
		return 0
	}
	pct := Percent(summary.ByActivity[goal.ActivityID], goal.TargetMinutesPerDay)
	if pct > 100 {
		return 100
	}
	return pct
}
