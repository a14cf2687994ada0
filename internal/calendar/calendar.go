package calendar

import (
	"fmt"
	"time"
)

// MonthCell is one day cell of the 6x7 month grid. InMonth is false for the
// leading/trailing days that pad the grid to full weeks.
type MonthCell struct {
	Date    time.Time
	DateKey string
	InMonth bool
}

// ToDateKey formats a date as YYYY-MM-DD in local time.
func ToDateKey(d time.Time) string {
	return d.Format("2006-01-02")
}

// FromDateKey parses a YYYY-MM-DD key back into a local midnight time.
// Malformed keys come back as the zero time.
func FromDateKey(key string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", key, time.Local)
	if err != nil {
		return time.Time{}
	}
	return d
}

func TodayKey() string {
	return ToDateKey(time.Now())
}

func AddDays(d time.Time, days int) time.Time {
	return d.AddDate(0, 0, days)
}

// weekOffset returns how many days back the week containing d starts.
func weekOffset(d time.Time, weekStart time.Weekday) int {
	return (int(d.Weekday()) - int(weekStart) + 7) % 7
}

// WeekStartDay maps the settings value to a weekday; anything but "sunday"
// means Monday.
func WeekStartDay(weekStart string) time.Weekday {
	if weekStart == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// WeekKeys returns the 7 date keys of the week containing d.
func WeekKeys(d time.Time, weekStart time.Weekday) []string {
	start := AddDays(d, -weekOffset(d, weekStart))
	keys := make([]string, 7)
	for i := range keys {
		keys[i] = ToDateKey(AddDays(start, i))
	}
	return keys
}

// MonthMatrix lays the month containing cursor out as 6 rows of 7 cells,
// padded with out-of-month days so every row is a full week.
func MonthMatrix(cursor time.Time, weekStart time.Weekday) [][]MonthCell {
	first := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, time.Local)
	gridStart := AddDays(first, -weekOffset(first, weekStart))

	matrix := make([][]MonthCell, 6)
	for r := range matrix {
		row := make([]MonthCell, 7)
		for c := range row {
			date := AddDays(gridStart, r*7+c)
			row[c] = MonthCell{
				Date:    date,
				DateKey: ToDateKey(date),
				InMonth: date.Month() == cursor.Month(),
			}
		}
		matrix[r] = row
	}
	return matrix
}

func FormatMonthTitle(d time.Time) string {
	return fmt.Sprintf("%d / %02d", d.Year(), int(d.Month()))
}
