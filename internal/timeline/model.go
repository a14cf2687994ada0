package timeline

// Activity is process-wide reference data; timeline slots reference it by ID
// only, so renames and recolors apply retroactively to past records.
type Activity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ColorHex  string `json:"color_hex"`
	SortOrder int    `json:"sort_order"`
}

// TimeBlock is one fixed-resolution slot of a day. An empty ActivityID means
// the slot is unassigned. Skipped excludes the single slot from aggregation.
type TimeBlock struct {
	ActivityID string `json:"activity_id"`
	Skipped    bool   `json:"skipped"`
}

type ChecklistItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

type TaskCard struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Items []ChecklistItem `json:"items"`
}

// DailyRecord holds one calendar day. Skipped is the whole-day exclusion
// flag: it locks out editing and zeroes the day's aggregation contribution.
type DailyRecord struct {
	DateKey string      `json:"date_key"`
	Blocks  []TimeBlock `json:"blocks"`
	Cards   []TaskCard  `json:"cards"`
	Skipped bool        `json:"skipped"`
}

// Settings drive the slot grid. Times are "HH:MM" strings; EndTime may exceed
// "24:00" (e.g. "26:00") for schedules running past midnight.
type Settings struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	SlotMinutes int    `json:"slot_minutes"`
	WeekStart   string `json:"week_start"` // "monday" or "sunday"
}

// Goal is a per-activity daily target in minutes.
type Goal struct {
	ID                  string `json:"id"`
	ActivityID          string `json:"activity_id"`
	TargetMinutesPerDay int    `json:"target_minutes_per_day"`
	Enabled             bool   `json:"enabled"`
}

// ResizeBlocks aligns a block slice to n slots: extra slots are truncated,
// missing slots are padded with unassigned blocks. Records written under old
// settings are never an error, they are resized on read.
func ResizeBlocks(blocks []TimeBlock, n int) []TimeBlock {
	if n < 0 {
		n = 0
	}
	if len(blocks) == n {
		return blocks
	}
	if len(blocks) > n {
		return blocks[:n]
	}
	out := make([]TimeBlock, n)
	copy(out, blocks)
	return out
}
