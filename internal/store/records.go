package store

import (
	"sort"

	"github.com/sadopc/daygrid/internal/timeline"
)

const (
	keyActivities = "activities"
	keySettings   = "settings"
	keyGoals      = "goals"
	recordPrefix  = "record:"
)

func recordKey(dateKey string) string {
	return recordPrefix + dateKey
}

// LoadActivities returns the stored activity list sorted by SortOrder, or nil
// when nothing (or garbage) is stored.
func (s *Store) LoadActivities() ([]timeline.Activity, error) {
	var activities []timeline.Activity
	ok, err := s.load(keyActivities, &activities)
	if err != nil || !ok {
		return nil, err
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].SortOrder < activities[j].SortOrder
	})
	return activities, nil
}

func (s *Store) SaveActivities(activities []timeline.Activity) error {
	return s.save(keyActivities, activities)
}

func (s *Store) LoadSettings() (*timeline.Settings, error) {
	var settings timeline.Settings
	ok, err := s.load(keySettings, &settings)
	if err != nil || !ok {
		return nil, err
	}
	return &settings, nil
}

func (s *Store) SaveSettings(settings timeline.Settings) error {
	return s.save(keySettings, settings)
}

func (s *Store) LoadGoals() ([]timeline.Goal, error) {
	var goals []timeline.Goal
	ok, err := s.load(keyGoals, &goals)
	if err != nil || !ok {
		return nil, err
	}
	return goals, nil
}

func (s *Store) SaveGoals(goals []timeline.Goal) error {
	return s.save(keyGoals, goals)
}

// LoadRecord returns the day record for dateKey, or nil when the day was
// never visited.
func (s *Store) LoadRecord(dateKey string) (*timeline.DailyRecord, error) {
	var rec timeline.DailyRecord
	ok, err := s.load(recordKey(dateKey), &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) SaveRecord(rec *timeline.DailyRecord) error {
	return s.save(recordKey(rec.DateKey), rec)
}

// OpenRecord loads a day for editing, creating it empty on first access.
// Existing records are resized to the current settings and guaranteed at
// least one card, so settings changes never surface as errors.
func (s *Store) OpenRecord(dateKey string, settings timeline.Settings) (*timeline.DailyRecord, error) {
	rec, err := s.LoadRecord(dateKey)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = NewRecord(dateKey, settings.TotalSlots())
		if err := s.SaveRecord(rec); err != nil {
			return nil, err
		}
		return rec, nil
	}
	rec.Blocks = timeline.ResizeBlocks(rec.Blocks, settings.TotalSlots())
	if len(rec.Cards) == 0 {
		rec.Cards = []timeline.TaskCard{NewCard("Today")}
	}
	return rec, nil
}

// LoadWeek loads the records for the given date keys, keeping nil entries for
// days never visited. Aggregation treats those as absent, not as empty days.
func (s *Store) LoadWeek(dateKeys []string) ([]*timeline.DailyRecord, error) {
	records := make([]*timeline.DailyRecord, len(dateKeys))
	for i, key := range dateKeys {
		rec, err := s.LoadRecord(key)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// BootstrapState is everything the presentation layer needs at startup.
type BootstrapState struct {
	Activities []timeline.Activity
	Settings   timeline.Settings
	Goals      []timeline.Goal
	Record     *timeline.DailyRecord
}

// Bootstrap loads reference data and today's record, seeding and persisting
// defaults on first run so subsequent loads are stable.
func (s *Store) Bootstrap(dateKey string) (*BootstrapState, error) {
	activities, err := s.LoadActivities()
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		activities = SeedActivities()
		if err := s.SaveActivities(activities); err != nil {
			return nil, err
		}
	}

	settings, err := s.LoadSettings()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		def := DefaultSettings()
		settings = &def
		if err := s.SaveSettings(def); err != nil {
			return nil, err
		}
	}

	goals, err := s.LoadGoals()
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		goals = SeedGoals()
		if err := s.SaveGoals(goals); err != nil {
			return nil, err
		}
	}

	rec, err := s.OpenRecord(dateKey, *settings)
	if err != nil {
		return nil, err
	}

	return &BootstrapState{
		Activities: activities,
		Settings:   *settings,
		Goals:      goals,
		Record:     rec,
	}, nil
}
