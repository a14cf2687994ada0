package report

import (
	"github.com/sadopc/daygrid/internal/timeline"
)

// Summary is the aggregate of painted time. It is always derived on demand
// from records, never persisted.
type Summary struct {
	TotalMinutes int
	ByActivity   map[string]int
}

func ZeroSummary() Summary {
	return Summary{ByActivity: map[string]int{}}
}

// SummarizeDay rolls one day's blocks into a summary. Blocks are aligned to
// the current settings first, so records written under older settings never
// index out of bounds. Unassigned slots, per-slot skips and whole-day-skipped
// records contribute nothing.
func SummarizeDay(rec timeline.DailyRecord, settings timeline.Settings) Summary {
	out := ZeroSummary()
	if rec.Skipped {
		return out
	}
	blocks := timeline.ResizeBlocks(rec.Blocks, settings.TotalSlots())
	for _, b := range blocks {
		if b.ActivityID == "" || b.Skipped {
			continue
		}
		out.TotalMinutes += settings.SlotMinutes
		out.ByActivity[b.ActivityID] += settings.SlotMinutes
	}
	return out
}

// Merge combines two summaries additively. Keys present on only one side pass
// through unchanged; the operation is associative and commutative.
func Merge(a, b Summary) Summary {
	out := Summary{
		TotalMinutes: a.TotalMinutes + b.TotalMinutes,
		ByActivity:   make(map[string]int, len(a.ByActivity)+len(b.ByActivity)),
	}
	for id, m := range a.ByActivity {
		out.ByActivity[id] += m
	}
	for id, m := range b.ByActivity {
		out.ByActivity[id] += m
	}
	return out
}

// SummarizeWeek folds day records into one summary. Nil entries are days that
// were never visited; they contribute nothing, unlike a visited empty day.
func SummarizeWeek(records []*timeline.DailyRecord, settings timeline.Settings) Summary {
	out := ZeroSummary()
	for _, rec := range records {
		if rec == nil {
			continue
		}
		out = Merge(out, SummarizeDay(*rec, settings))
	}
	return out
}
