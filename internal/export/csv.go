package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sadopc/daygrid/internal/report"
)

// ToCSV writes a week report as one row per activity plus a total row.
func ToCSV(items []report.Item, summary report.Summary, weekKeys []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Week Start", "Week End", "Activity", "Minutes", "Duration", "Percent"}); err != nil {
		return err
	}

	from, to := weekRange(weekKeys)
	for _, it := range items {
		row := []string{
			from,
			to,
			it.Name,
			fmt.Sprintf("%d", it.Minutes),
			report.MinutesToLabel(it.Minutes),
			fmt.Sprintf("%d", report.Percent(it.Minutes, summary.TotalMinutes)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	total := []string{from, to, "TOTAL",
		fmt.Sprintf("%d", summary.TotalMinutes),
		report.MinutesToLabel(summary.TotalMinutes),
		"100",
	}
	if err := w.Write(total); err != nil {
		return err
	}

	return w.Error()
}

func weekRange(weekKeys []string) (string, string) {
	if len(weekKeys) == 0 {
		return "", ""
	}
	return weekKeys[0], weekKeys[len(weekKeys)-1]
}
