package timeline

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToMinutes parses "HH:MM" into minutes since midnight. Hours are not
// reduced modulo 24, so "26:00" is a valid 1560.
func TimeToMinutes(t string) (int, error) {
	h, m, ok := strings.Cut(t, ":")
	if !ok {
		return 0, fmt.Errorf("parse time %q: missing colon", t)
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", t, err)
	}
	mins, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", t, err)
	}
	return hours*60 + mins, nil
}

// StartMinutes returns the start of the grid in minutes since midnight, or 0
// if the stored time is malformed.
func (s Settings) StartMinutes() int {
	m, err := TimeToMinutes(s.StartTime)
	if err != nil {
		return 0
	}
	return m
}

// TotalSlots derives the slot count from the configured range. Inverted or
// empty ranges and malformed times yield 0, a valid degenerate grid.
func (s Settings) TotalSlots() int {
	if s.SlotMinutes <= 0 {
		return 0
	}
	start, err := TimeToMinutes(s.StartTime)
	if err != nil {
		return 0
	}
	end, err := TimeToMinutes(s.EndTime)
	if err != nil {
		return 0
	}
	n := (end - start) / s.SlotMinutes
	if n < 0 {
		return 0
	}
	return n
}

// SlotLabel formats the clock time at which slot idx begins. Hours keep
// counting past 23 to match the unbounded end-time design.
func SlotLabel(startMin, idx, slotMinutes int) string {
	m := startMin + idx*slotMinutes
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
