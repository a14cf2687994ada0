package timeline

// Mode selects what a paint gesture writes into slots.
type Mode int

const (
	ModePaint Mode = iota
	ModeErase
)

type dragState int

const (
	dragIdle dragState = iota
	dragPainting
)

// Editor mutates one day's block slice. It owns the paint selection, the
// paint/erase mode, a depth-1 undo snapshot and the drag state machine.
//
// Every mutating operation is a no-op while the day is skipped; the skip flag
// locks the whole timeline.
type Editor struct {
	blocks   []TimeBlock
	selected string
	mode     Mode

	undo []TimeBlock // nil when there is nothing to undo

	drag      dragState
	dragStart int
	dragBase  []TimeBlock

	daySkipped bool
}

func NewEditor(blocks []TimeBlock, daySkipped bool) *Editor {
	return &Editor{blocks: blocks, daySkipped: daySkipped}
}

func (e *Editor) Blocks() []TimeBlock { return e.blocks }
func (e *Editor) Mode() Mode          { return e.mode }
func (e *Editor) Selected() string    { return e.selected }
func (e *Editor) DaySkipped() bool    { return e.daySkipped }
func (e *Editor) Painting() bool      { return e.drag == dragPainting }
func (e *Editor) CanUndo() bool       { return e.undo != nil && !e.daySkipped }

// Select sets the current paint activity. It does not touch slot contents.
func (e *Editor) Select(activityID string) { e.selected = activityID }

// ToggleMode flips paint/erase without touching slot contents.
func (e *Editor) ToggleMode() {
	if e.mode == ModePaint {
		e.mode = ModeErase
	} else {
		e.mode = ModePaint
	}
}

// SetDaySkipped flips the whole-day lock. An active drag is discarded so a
// skip mid-gesture cannot leave the editor stuck painting.
func (e *Editor) SetDaySkipped(skipped bool) {
	e.daySkipped = skipped
	if skipped {
		e.EndDrag()
	}
}

// Toggle applies a point edit at index i. In erase mode the slot is cleared
// unconditionally. In paint mode the slot toggles off if it already holds the
// selection, otherwise it is overwritten; with no selection it is a no-op.
// Returns whether the blocks changed.
func (e *Editor) Toggle(i int) bool {
	if e.daySkipped || i < 0 || i >= len(e.blocks) {
		return false
	}
	if e.mode == ModePaint && e.selected == "" {
		return false
	}
	e.snapshot()
	if e.mode == ModeErase || e.blocks[i].ActivityID == e.selected {
		e.blocks[i].ActivityID = ""
	} else {
		e.blocks[i].ActivityID = e.selected
	}
	return true
}

// StartDrag begins a range gesture anchored at index i. The pre-drag blocks
// are captured once; every DragTo reapplies the full range onto that base, so
// an overshooting drag that returns never leaves stray edits behind.
func (e *Editor) StartDrag(i int) {
	if e.daySkipped || i < 0 || i >= len(e.blocks) {
		return
	}
	if e.mode == ModePaint && e.selected == "" {
		return
	}
	e.snapshot()
	e.dragBase = cloneBlocks(e.blocks)
	e.dragStart = i
	e.drag = dragPainting
	e.applyRange(i, i)
}

// DragTo extends the active gesture to index i, recomputing from the base
// snapshot rather than the current state.
func (e *Editor) DragTo(i int) {
	if e.drag != dragPainting {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(e.blocks) {
		i = len(e.blocks) - 1
	}
	e.blocks = cloneBlocks(e.dragBase)
	e.applyRange(e.dragStart, i)
}

// EndDrag finalizes the gesture. The last applied state is already the
// committed state; only the tracking references are dropped.
func (e *Editor) EndDrag() {
	e.drag = dragIdle
	e.dragStart = 0
	e.dragBase = nil
}

// CancelDrag handles gesture interruption. The clearing is identical to a
// normal release so an interrupted drag cannot block future edits.
func (e *Editor) CancelDrag() { e.EndDrag() }

// Clear resets every slot to unassigned, capturing an undo snapshot first.
func (e *Editor) Clear() bool {
	if e.daySkipped || len(e.blocks) == 0 {
		return false
	}
	e.snapshot()
	for i := range e.blocks {
		e.blocks[i].ActivityID = ""
	}
	return true
}

// Undo restores the last captured snapshot exactly once. Returns false when
// there is nothing to undo or the day is skipped.
func (e *Editor) Undo() bool {
	if e.daySkipped || e.undo == nil {
		return false
	}
	e.blocks = e.undo
	e.undo = nil
	return true
}

func (e *Editor) snapshot() {
	e.undo = cloneBlocks(e.blocks)
}

func (e *Editor) applyRange(from, to int) {
	if from > to {
		from, to = to, from
	}
	for i := from; i <= to; i++ {
		if e.mode == ModeErase {
			e.blocks[i].ActivityID = ""
		} else {
			e.blocks[i].ActivityID = e.selected
		}
	}
}

func cloneBlocks(blocks []TimeBlock) []TimeBlock {
	out := make([]TimeBlock, len(blocks))
	copy(out, blocks)
	return out
}
