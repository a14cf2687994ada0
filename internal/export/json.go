package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/daygrid/internal/report"
)

type jsonExport struct {
	ExportedAt   string     `json:"exported_at"`
	WeekStart    string     `json:"week_start"`
	WeekEnd      string     `json:"week_end"`
	TotalMinutes int        `json:"total_minutes"`
	Total        string     `json:"total"`
	Activities   []jsonItem `json:"activities"`
}

type jsonItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ColorHex string `json:"color_hex"`
	Minutes  int    `json:"minutes"`
	Duration string `json:"duration"`
	Percent  int    `json:"percent"`
}

// ToJSON writes a week report with per-activity breakdown.
func ToJSON(items []report.Item, summary report.Summary, weekKeys []string, path string) error {
	from, to := weekRange(weekKeys)
	out := jsonExport{
		ExportedAt:   time.Now().UTC().Format(time.RFC3339),
		WeekStart:    from,
		WeekEnd:      to,
		TotalMinutes: summary.TotalMinutes,
		Total:        report.MinutesToLabel(summary.TotalMinutes),
	}

	for _, it := range items {
		out.Activities = append(out.Activities, jsonItem{
			ID:       it.ID,
			Name:     it.Name,
			ColorHex: it.ColorHex,
			Minutes:  it.Minutes,
			Duration: report.MinutesToLabel(it.Minutes),
			Percent:  report.Percent(it.Minutes, summary.TotalMinutes),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
