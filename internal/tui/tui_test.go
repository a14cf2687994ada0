package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/daygrid/internal/store"
	"github.com/sadopc/daygrid/internal/timeline"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// loadedToday builds a today model with a bootstrapped day.
func loadedToday(t *testing.T, s *store.Store, dateKey string) todayModel {
	t.Helper()
	tm := newTodayModel(s)
	tm.dateKey = dateKey

	msg := tm.load(dateKey)()
	data, ok := msg.(todayDataMsg)
	if !ok {
		t.Fatalf("load returned %T: %v", msg, msg)
	}
	tm, _ = tm.update(data)
	return tm
}

// ============================================================
// Today model
// ============================================================

func TestTodayLoadBootstraps(t *testing.T) {
	s := newTestStore(t)
	tm := loadedToday(t, s, "2026-08-31")

	if tm.editor == nil {
		t.Fatal("editor should be ready after load")
	}
	if len(tm.activities) != 5 {
		t.Fatalf("expected 5 seed activities, got %d", len(tm.activities))
	}
	if len(tm.editor.Blocks()) != tm.settings.TotalSlots() {
		t.Fatal("editor should hold one block per slot")
	}
}

func TestTodayDigitSelectsActivity(t *testing.T) {
	s := newTestStore(t)
	tm := loadedToday(t, s, "2026-08-31")

	tm, _ = tm.update(keyRunes('1'))
	if tm.editor.Selected() != tm.activities[0].ID {
		t.Fatalf("digit 1 should select the first activity, got %q", tm.editor.Selected())
	}

	tm, _ = tm.update(keyRunes('0'))
	if tm.editor.Selected() != "" {
		t.Fatal("digit 0 should deselect")
	}

	// Digit beyond the palette is a no-op.
	tm, _ = tm.update(keyRunes('9'))
	if tm.editor.Selected() != "" {
		t.Fatal("out-of-palette digit should not select")
	}
}

func TestTodayPaintPersists(t *testing.T) {
	s := newTestStore(t)
	tm := loadedToday(t, s, "2026-08-31")

	tm, _ = tm.update(keyRunes('1'))
	tm, _ = tm.update(keyRunes(' '))

	if tm.editor.Blocks()[0].ActivityID != "coding" {
		t.Fatalf("slot 0 = %q, want coding", tm.editor.Blocks()[0].ActivityID)
	}

	rec, err := s.LoadRecord("2026-08-31")
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	if rec.Blocks[0].ActivityID != "coding" {
		t.Fatal("paint should persist to the store")
	}
}

func TestTodayPaintWithoutSelection(t *testing.T) {
	s := newTestStore(t)
	tm := loadedToday(t, s, "2026-08-31")

	tm, _ = tm.update(keyRunes(' '))
	if tm.editor.Blocks()[0].ActivityID != "" {
		t.Fatal("paint with no selection should do nothing")
	}
}

func TestTodayRangePaint(t *testing.T) {
	s := newTestStore(t)
	tm := loadedToday(t, s, "2026-08-31")

	tm, _ = tm.update(keyRunes('1'))
	tm, _ = tm.update(keyRunes('v'))
	if !tm.editor.Painting() {
		t.Fatal("v should start a range")
	}
	tm, _ = tm.update(tea.KeyMsg{Type: tea.KeyDown})
	tm, _ = tm.update(tea.KeyMsg{Type: tea.KeyDown})
	tm, _ = tm.update(tea.KeyMsg{Type: tea.KeyEnter})
	if tm.editor.Painting() {
		t.Fatal("enter should end the range")
	}

	rec, err := s.LoadRecord("2026-08-31")
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	for i := 0; i <= 2; i++ {
		if rec.Blocks[i].ActivityID != "coding" {
			t.Fatalf("slot %d should be painted after range commit", i)
		}
	}
	if rec.Blocks[3].ActivityID != "" {
		t.Fatal("slots past the range must stay empty")
	}
}

func TestTodayRangeKeyTogglesOff(t *testing.T) {
	s := newTestStore(t)
	tm := loadedToday(t, s, "2026-08-31")

	tm, _ = tm.update(keyRunes('1'))
	tm, _ = tm.update(keyRunes('v'))
	tm, _ = tm.update(keyRunes('v'))
	if tm.editor.Painting() {
		t.Fatal("second v should end the range")
	}
}

func TestTodayUndoEmptyReportsStatus(t *testing.T) {
	s := newTestStore(t)
	tm := loadedToday(t, s, "2026-08-31")

	_, cmd := tm.update(keyRunes('u'))
	if cmd == nil {
		t.Fatal("undo with empty buffer should report a status")
	}
	status, ok := cmd().(statusMsg)
	if !ok || status.text != "Nothing to undo" {
		t.Fatalf("unexpected message: %+v", status)
	}
}

func TestTodayUndoRevertsPersistedState(t *testing.T) {
	s := newTestStore(t)
	tm := loadedToday(t, s, "2026-08-31")

	tm, _ = tm.update(keyRunes('1'))
	tm, _ = tm.update(keyRunes(' '))
	tm, _ = tm.update(keyRunes('u'))

	rec, err := s.LoadRecord("2026-08-31")
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	if rec.Blocks[0].ActivityID != "" {
		t.Fatal("undo should persist the restored state")
	}
}

func TestTodaySkipDayLocksEditing(t *testing.T) {
	s := newTestStore(t)
	tm := loadedToday(t, s, "2026-08-31")

	tm, _ = tm.update(keyRunes('S'))
	if !tm.record.Skipped {
		t.Fatal("S should mark the day skipped")
	}

	tm, _ = tm.update(keyRunes('1'))
	tm, _ = tm.update(keyRunes(' '))
	if tm.editor.Blocks()[0].ActivityID != "" {
		t.Fatal("skipped day must reject edits")
	}

	tm, _ = tm.update(keyRunes('S'))
	if tm.record.Skipped {
		t.Fatal("S should toggle the skip off again")
	}
	tm, _ = tm.update(keyRunes(' '))
	if tm.editor.Blocks()[0].ActivityID != "coding" {
		t.Fatal("edits should work after unskip")
	}
}

func TestTodayCursorStaysInRange(t *testing.T) {
	s := newTestStore(t)
	tm := loadedToday(t, s, "2026-08-31")

	tm, _ = tm.update(tea.KeyMsg{Type: tea.KeyUp})
	if tm.cursor != 0 {
		t.Fatal("cursor should not go above the first slot")
	}

	for i := 0; i < 100; i++ {
		tm, _ = tm.update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if tm.cursor != len(tm.editor.Blocks())-1 {
		t.Fatalf("cursor = %d, want last slot", tm.cursor)
	}
}

func TestTodayOpenDaySwitchesDate(t *testing.T) {
	s := newTestStore(t)
	tm := loadedToday(t, s, "2026-08-31")

	tm, cmd := tm.update(openDayMsg{dateKey: "2026-09-01"})
	if tm.dateKey != "2026-09-01" {
		t.Fatalf("dateKey = %q", tm.dateKey)
	}
	if cmd == nil {
		t.Fatal("open day should trigger a load")
	}
	data, ok := cmd().(todayDataMsg)
	if !ok {
		t.Fatalf("load returned %T", cmd())
	}
	if data.state.Record.DateKey != "2026-09-01" {
		t.Fatalf("loaded record for %q", data.state.Record.DateKey)
	}
}

func TestTodayViewRenders(t *testing.T) {
	s := newTestStore(t)
	tm := loadedToday(t, s, "2026-08-31")
	tm.setSize(120, 40)

	out := tm.view()
	if out == "" {
		t.Fatal("view should render")
	}
	if !strings.Contains(out, "2026-08-31") {
		t.Fatal("view should show the date")
	}
}

// ============================================================
// Planner model
// ============================================================

func loadedPlanner(t *testing.T, s *store.Store, dateKey string) plannerModel {
	t.Helper()
	p := newPlannerModel(s)
	p.dateKey = dateKey

	msg := p.refresh()()
	data, ok := msg.(plannerDataMsg)
	if !ok {
		t.Fatalf("refresh returned %T: %v", msg, msg)
	}
	p, _ = p.update(data)
	return p
}

func TestPlannerStartsWithOneCard(t *testing.T) {
	s := newTestStore(t)
	p := loadedPlanner(t, s, "2026-08-31")

	if len(p.record.Cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(p.record.Cards))
	}
	if len(p.record.Cards[0].Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(p.record.Cards[0].Items))
	}
}

func TestPlannerToggleDonePersists(t *testing.T) {
	s := newTestStore(t)
	p := loadedPlanner(t, s, "2026-08-31")

	p, _ = p.update(keyRunes(' '))
	if !p.record.Cards[0].Items[0].Done {
		t.Fatal("space should toggle done")
	}

	rec, err := s.LoadRecord("2026-08-31")
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	if !rec.Cards[0].Items[0].Done {
		t.Fatal("done toggle should persist")
	}

	p, _ = p.update(keyRunes(' '))
	if p.record.Cards[0].Items[0].Done {
		t.Fatal("space should toggle done back off")
	}
}

func TestPlannerDeleteLastItemRefills(t *testing.T) {
	s := newTestStore(t)
	p := loadedPlanner(t, s, "2026-08-31")

	p, _ = p.update(keyRunes('d'))
	if len(p.record.Cards[0].Items) != 1 {
		t.Fatal("deleting the last item should leave a fresh empty one")
	}
	if p.record.Cards[0].Items[0].Text != "" || p.record.Cards[0].Items[0].Done {
		t.Fatal("refill item should be blank and undone")
	}
}

func TestPlannerDeleteLastCardRefills(t *testing.T) {
	s := newTestStore(t)
	p := loadedPlanner(t, s, "2026-08-31")

	p, _ = p.update(keyRunes('D'))
	if len(p.record.Cards) != 1 {
		t.Fatal("deleting the last card should leave a fresh one")
	}
	if p.record.Cards[0].Title != "Today" {
		t.Fatalf("refill card title = %q", p.record.Cards[0].Title)
	}
	if len(p.record.Cards[0].Items) != 1 {
		t.Fatal("refill card should carry one item")
	}
}

func TestPlannerNewCardFormOpens(t *testing.T) {
	s := newTestStore(t)
	p := loadedPlanner(t, s, "2026-08-31")

	p, _ = p.update(keyRunes('n'))
	if !p.formActive {
		t.Fatal("n should open the card form")
	}
	if p.formType != "card" {
		t.Fatalf("formType = %q", p.formType)
	}

	// Esc abandons the form without touching the record.
	p, _ = p.update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.formActive {
		t.Fatal("esc should close the form")
	}
	if len(p.record.Cards) != 1 {
		t.Fatal("abandoned form must not add a card")
	}
}

func TestPlannerViewRenders(t *testing.T) {
	s := newTestStore(t)
	p := loadedPlanner(t, s, "2026-08-31")
	p.setSize(120, 40)

	out := p.view()
	if out == "" {
		t.Fatal("view should render")
	}
	if !strings.Contains(out, "Planner") {
		t.Fatal("view should carry the title")
	}
}

// ============================================================
// View state
// ============================================================

func TestViewNames(t *testing.T) {
	if len(viewNames) != 6 {
		t.Fatalf("expected 6 view names, got %d", len(viewNames))
	}
	expected := []string{"Today", "Planner", "Calendar", "Report", "Activities", "Settings"}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
}

func TestViewStateConstants(t *testing.T) {
	if viewToday != 0 || viewPlanner != 1 || viewCalendar != 2 ||
		viewReport != 3 || viewActivities != 4 || viewSettings != 5 {
		t.Fatal("view state constants out of order")
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)

	if app.activeView != viewToday {
		t.Fatal("default view should be today")
	}
	if app.showHelp {
		t.Fatal("help should be hidden by default")
	}
	if app.exportPicking {
		t.Fatal("export picker should be hidden by default")
	}
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppTabSwitching(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(App)
	if app.activeView != viewPlanner {
		t.Fatalf("tab should advance to planner, got %d", app.activeView)
	}

	// Digit shortcuts work outside the Today view.
	model, _ = app.Update(keyRunes('4'))
	app = model.(App)
	if app.activeView != viewReport {
		t.Fatalf("4 should open the report view, got %d", app.activeView)
	}

	model, _ = app.Update(keyRunes('1'))
	app = model.(App)
	if app.activeView != viewToday {
		t.Fatal("1 should return to today")
	}
}

func TestAppTodayOwnsDigits(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)

	// On the Today view, digits go to the palette, not tab switching.
	model, _ := app.Update(keyRunes('2'))
	app = model.(App)
	if app.activeView != viewToday {
		t.Fatal("digits on the today view must not switch tabs")
	}
}

func TestAppOpenDayRoutesToToday(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)
	app.activeView = viewCalendar

	model, cmd := app.Update(openDayMsg{dateKey: "2026-08-31"})
	app = model.(App)
	if app.activeView != viewToday {
		t.Fatal("opening a day should switch to the today view")
	}
	if cmd == nil {
		t.Fatal("opening a day should trigger a load")
	}
}

func TestAppExportPicker(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)

	model, _ := app.Update(keyRunes('x'))
	app = model.(App)
	if !app.exportPicking {
		t.Fatal("x should open the export picker")
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(App)
	if app.exportPicking {
		t.Fatal("esc should close the export picker")
	}
}

func TestAppExportWithoutReportData(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)

	cmd := app.doExport(0)
	status, ok := cmd().(statusMsg)
	if !ok || !status.isError {
		t.Fatalf("export before the report view loads should fail, got %+v", status)
	}
}

func TestAppStatusMessage(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)
	app.width = 120
	app.height = 40

	model, _ := app.Update(statusMsg{text: "saved"})
	app = model.(App)

	footer := app.renderFooter()
	if !strings.Contains(footer, "saved") {
		t.Fatal("footer should show the status message")
	}
}

func TestAppLoadingState(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)

	if out := app.View(); out != "Loading..." {
		t.Fatalf("unsized app should show Loading..., got %q", out)
	}
}

func TestAppViewStates(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)
	app.width = 120
	app.height = 40

	views := []viewState{viewToday, viewPlanner, viewCalendar, viewReport, viewActivities, viewSettings}
	for _, v := range views {
		app.activeView = v
		if out := app.View(); out == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s)
	app.width = 120
	app.height = 40

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

// ============================================================
// Helpers
// ============================================================

func TestActivityByID(t *testing.T) {
	activities := []timeline.Activity{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
	}
	if got := activityByID(activities, "b"); got == nil || got.Name != "B" {
		t.Fatalf("activityByID(b) = %+v", got)
	}
	if got := activityByID(activities, "nope"); got != nil {
		t.Fatal("unknown id should yield nil")
	}
}

func TestMinMax(t *testing.T) {
	if min(3, 5) != 3 || min(5, 3) != 3 || min(3, 3) != 3 {
		t.Fatal("min wrong")
	}
	if max(3, 5) != 5 || max(5, 3) != 5 || max(3, 3) != 3 {
		t.Fatal("max wrong")
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	bindings := keys.ShortHelp()
	if len(bindings) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles (smoke test — just verify they don't panic)
// ============================================================

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"activePanel", func() string { return activePanelStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"success", func() string { return successStyle.Render("test") }},
		{"warning", func() string { return warningStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"highlight", func() string { return highlightStyle.Render("test") }},
		{"header", func() string { return headerStyle.Render("test") }},
		{"footer", func() string { return footerStyle.Render("test") }},
		{"selectedItem", func() string { return selectedItemStyle.Render("test") }},
		{"normalItem", func() string { return normalItemStyle.Render("test") }},
	}

	for _, s := range styles {
		if s.fn() == "" {
			t.Fatalf("style %q rendered empty", s.name)
		}
	}
}
