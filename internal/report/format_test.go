package report

import (
	"reflect"
	"testing"

	"github.com/sadopc/daygrid/internal/timeline"
)

var testActivities = []timeline.Activity{
	{ID: "coding", Name: "Coding", ColorHex: "#5B8CFF", SortOrder: 1},
	{ID: "study", Name: "Study", ColorHex: "#6BCB77", SortOrder: 2},
}

func TestItemsEnriches(t *testing.T) {
	s := Summary{TotalMinutes: 90, ByActivity: map[string]int{"coding": 60, "study": 30}}
	items := Items(s, testActivities)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	// Deterministic id order
	if items[0].ID != "coding" || items[1].ID != "study" {
		t.Fatalf("unexpected order: %+v", items)
	}
	if items[0].Name != "Coding" || items[0].ColorHex != "#5B8CFF" || items[0].Minutes != 60 {
		t.Fatalf("coding item wrong: %+v", items[0])
	}
}

func TestItemsDanglingReferenceFallsBack(t *testing.T) {
	// A deleted activity still referenced by old slots degrades gracefully.
	s := Summary{TotalMinutes: 30, ByActivity: map[string]int{"ghost": 30}}
	items := Items(s, testActivities)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "unknown" || items[0].ColorHex != UnknownColor {
		t.Fatalf("dangling reference should fall back: %+v", items[0])
	}
	if items[0].Minutes != 30 {
		t.Fatal("minutes must survive the fallback")
	}
}

func TestItemsEmptySummary(t *testing.T) {
	items := Items(ZeroSummary(), testActivities)
	if len(items) != 0 {
		t.Fatalf("expected no items, got %+v", items)
	}
}

func TestTopActivity(t *testing.T) {
	items := []Item{
		{ID: "a", Minutes: 30},
		{ID: "b", Minutes: 90},
		{ID: "c", Minutes: 60},
	}
	top := TopActivity(items)
	if top == nil || top.ID != "b" {
		t.Fatalf("top = %+v, want b", top)
	}
}

func TestTopActivityTieKeepsFirst(t *testing.T) {
	items := []Item{
		{ID: "a", Minutes: 60},
		{ID: "b", Minutes: 60},
	}
	top := TopActivity(items)
	if top == nil || top.ID != "a" {
		t.Fatalf("tie should keep the earliest item, got %+v", top)
	}
}

func TestTopActivityEmpty(t *testing.T) {
	if top := TopActivity(nil); top != nil {
		t.Fatalf("empty list should yield nil, got %+v", top)
	}
}

func TestMinutesToLabel(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0m"},
		{30, "30m"},
		{60, "1h"},
		{90, "1h 30m"},
		{120, "2h"},
		{180, "3h"},
		{61, "1h 1m"},
	}
	for _, c := range cases {
		if got := MinutesToLabel(c.in); got != c.want {
			t.Errorf("MinutesToLabel(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		minutes, total, want int
	}{
		{30, 120, 25},
		{120, 120, 100},
		{40, 120, 33},
		{50, 120, 42}, // rounds, not floors
		{0, 120, 0},
	}
	for _, c := range cases {
		if got := Percent(c.minutes, c.total); got != c.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", c.minutes, c.total, got, c.want)
		}
	}
}

func TestPercentZeroTotal(t *testing.T) {
	// Must guard division by zero: 0, never a panic or NaN artifact.
	if got := Percent(0, 0); got != 0 {
		t.Fatalf("Percent(0, 0) = %d, want 0", got)
	}
	if got := Percent(30, 0); got != 0 {
		t.Fatalf("Percent(30, 0) = %d, want 0", got)
	}
}

func TestSortByMinutesDescending(t *testing.T) {
	items := []Item{
		{ID: "a", Minutes: 30},
		{ID: "b", Minutes: 90},
		{ID: "c", Minutes: 90},
		{ID: "d", Minutes: 60},
	}
	SortByMinutes(items)
	got := []string{items[0].ID, items[1].ID, items[2].ID, items[3].ID}
	// Stable: b stays ahead of c on the tie.
	want := []string{"b", "c", "d", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestFilterZero(t *testing.T) {
	items := []Item{
		{ID: "a", Minutes: 30},
		{ID: "b", Minutes: 0},
		{ID: "c", Minutes: 60},
	}
	got := FilterZero(items)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("FilterZero = %+v", got)
	}
}

func TestChartSeries(t *testing.T) {
	items := []Item{{ID: "a", Name: "Coding", ColorHex: "#111111", Minutes: 90}}
	series := ChartSeries(items)
	if len(series) != 1 {
		t.Fatalf("expected 1 series, got %d", len(series))
	}
	s := series[0]
	if s.Label != "Coding" || s.ColorHex != "#111111" || s.Value != 90 {
		t.Fatalf("series wrong: %+v", s)
	}
}

func TestGoalProgress(t *testing.T) {
	goal := timeline.Goal{ID: "g", ActivityID: "coding", TargetMinutesPerDay: 120, Enabled: true}

	s := Summary{TotalMinutes: 60, ByActivity: map[string]int{"coding": 60}}
	if got := GoalProgress(s, goal); got != 50 {
		t.Fatalf("progress = %d, want 50", got)
	}

	// Overachieving caps at 100.
	s = Summary{TotalMinutes: 300, ByActivity: map[string]int{"coding": 300}}
	if got := GoalProgress(s, goal); got != 100 {
		t.Fatalf("progress = %d, want cap 100", got)
	}

	// Disabled goals report nothing.
	goal.Enabled = false
	if got := GoalProgress(s, goal); got != 0 {
		t.Fatalf("disabled goal = %d, want 0", got)
	}
}
