package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/daygrid/internal/calendar"
	"github.com/sadopc/daygrid/internal/store"
	"github.com/sadopc/daygrid/internal/timeline"
)

// plannerModel edits the checklist cards of today's record. A record always
// keeps at least one card, and a card at least one item; deletes collapse to
// a fresh empty one instead of leaving nothing.
type plannerModel struct {
	store  *store.Store
	width  int
	height int

	dateKey    string
	record     *timeline.DailyRecord
	cardCursor int
	itemCursor int

	formActive bool
	form       *huh.Form
	formType   string // "card", "item", "edit_item", "edit_card"

	formText *string
}

func newPlannerModel(s *store.Store) plannerModel {
	text := ""
	return plannerModel{store: s, dateKey: calendar.TodayKey(), formText: &text}
}

func (p *plannerModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p plannerModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, err := p.store.LoadSettings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		if settings == nil {
			def := store.DefaultSettings()
			settings = &def
		}
		rec, err := p.store.OpenRecord(p.dateKey, *settings)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		return plannerDataMsg{record: rec}
	}
}

func (p plannerModel) update(msg tea.Msg) (plannerModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	switch msg := msg.(type) {
	case plannerDataMsg:
		p.record = msg.record
		p.cardCursor = min(p.cardCursor, max(0, len(p.record.Cards)-1))
		p.clampItemCursor()
		return p, nil

	case tea.KeyMsg:
		if p.record == nil {
			return p, nil
		}
		return p.updateKeys(msg)
	}
	return p, nil
}

func (p *plannerModel) clampItemCursor() {
	if p.record == nil || len(p.record.Cards) == 0 {
		p.itemCursor = 0
		return
	}
	p.itemCursor = min(p.itemCursor, max(0, len(p.record.Cards[p.cardCursor].Items)-1))
}

func (p plannerModel) updateKeys(msg tea.KeyMsg) (plannerModel, tea.Cmd) {
	card := &p.record.Cards[p.cardCursor]

	switch {
	case key.Matches(msg, keys.Up):
		if p.itemCursor > 0 {
			p.itemCursor--
		}
	case key.Matches(msg, keys.Down):
		if p.itemCursor < len(card.Items)-1 {
			p.itemCursor++
		}
	case key.Matches(msg, keys.Left):
		if p.cardCursor > 0 {
			p.cardCursor--
			p.clampItemCursor()
		}
	case key.Matches(msg, keys.Right):
		if p.cardCursor < len(p.record.Cards)-1 {
			p.cardCursor++
			p.clampItemCursor()
		}

	case key.Matches(msg, keys.Paint): // space toggles done
		card.Items[p.itemCursor].Done = !card.Items[p.itemCursor].Done
		return p, p.persist()

	case key.Matches(msg, keys.New):
		return p.showForm("card", "")

	case key.Matches(msg, keys.Enter):
		return p.showForm("item", "")

	case key.Matches(msg, keys.Edit):
		return p.showForm("edit_item", card.Items[p.itemCursor].Text)

	case msg.String() == "t":
		return p.showForm("edit_card", card.Title)

	case key.Matches(msg, keys.Delete):
		card.Items = append(card.Items[:p.itemCursor], card.Items[p.itemCursor+1:]...)
		if len(card.Items) == 0 {
			card.Items = []timeline.ChecklistItem{store.NewItem("")}
		}
		p.clampItemCursor()
		return p, p.persist()

	case msg.String() == "D":
		p.record.Cards = append(p.record.Cards[:p.cardCursor], p.record.Cards[p.cardCursor+1:]...)
		if len(p.record.Cards) == 0 {
			p.record.Cards = []timeline.TaskCard{store.NewCard("Today")}
		}
		p.cardCursor = min(p.cardCursor, len(p.record.Cards)-1)
		p.clampItemCursor()
		return p, p.persist()
	}
	return p, nil
}

func (p plannerModel) showForm(formType, initial string) (plannerModel, tea.Cmd) {
	*p.formText = initial
	p.formType = formType

	title := map[string]string{
		"card":      "Card Title",
		"edit_card": "Card Title",
		"item":      "Checklist Item",
		"edit_item": "Checklist Item",
	}[formType]

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(title).Value(p.formText),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p plannerModel) updateForm(msg tea.Msg) (plannerModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		text := strings.TrimSpace(*p.formText)
		card := &p.record.Cards[p.cardCursor]

		switch p.formType {
		case "card":
			if text != "" {
				p.record.Cards = append(p.record.Cards, store.NewCard(text))
				p.cardCursor = len(p.record.Cards) - 1
				p.itemCursor = 0
			}
		case "edit_card":
			if text != "" {
				card.Title = text
			}
		case "item":
			card.Items = append(card.Items, store.NewItem(text))
			p.itemCursor = len(card.Items) - 1
		case "edit_item":
			card.Items[p.itemCursor].Text = text
		}
		return p, p.persist()
	}

	return p, cmd
}

func (p plannerModel) persist() tea.Cmd {
	if err := p.store.SaveRecord(p.record); err != nil {
		return func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
	}
	return nil
}

func (p plannerModel) view() string {
	w := p.width - 4

	if p.formActive && p.form != nil {
		title := titleStyle.Render("Planner")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View()),
		)
	}

	if p.record == nil {
		return mutedStyle.Render("Loading...")
	}

	title := titleStyle.Render(fmt.Sprintf("Planner — %s", p.dateKey))

	var cardTabs []string
	for i, c := range p.record.Cards {
		label := c.Title
		if label == "" {
			label = "(untitled)"
		}
		if i == p.cardCursor {
			cardTabs = append(cardTabs, activeTabStyle.Render(label))
		} else {
			cardTabs = append(cardTabs, inactiveTabStyle.Render(label))
		}
	}

	card := p.record.Cards[p.cardCursor]
	var rows []string
	for i, item := range card.Items {
		cursor := "  "
		style := normalItemStyle
		if i == p.itemCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		box := "[ ]"
		if item.Done {
			box = successStyle.Render("[✓]")
		}
		text := item.Text
		if text == "" {
			text = mutedStyle.Render("(empty)")
		}
		rows = append(rows, style.Render(cursor)+box+" "+style.Render(text))
	}

	hint := mutedStyle.Render("  space: done  enter: add item  e: edit  d: delete  n: new card  t: title  D: delete card  ←/→: cards")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			lipgloss.JoinHorizontal(lipgloss.Bottom, cardTabs...),
			"",
			strings.Join(rows, "\n"),
			"",
			hint,
		),
	)
}
