package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/twodo-app/twodo/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.List, Action: "list view"},
		{Key: m.Keys.Kanban, Action: "kanban view"},
		{Key: m.Keys.Calendar, Action: "calendar view"},
		{Key: m.Keys.Mini, Action: "mini view"},
		{Key: m.Keys.Settings, Action: "settings view"},
		{Key: "n", Action: "quick add"},
		{Key: "alt+o", Action: "toggle overdue"},
		{Key: "/", Action: "command palette"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewList:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "space", Action: "toggle done"},
			{Key: "enter", Action: "open detail"},
			{Key: "p", Action: "cycle priority"},
			{Key: "x", Action: "delete task"},
			{Key: "tab", Action: "next list"},
			{Key: "N/X", Action: "add / delete list"},
		}
	case ViewKanban:
		return []KeyBinding{
			{Key: "h/l", Action: "switch column"},
			{Key: "j/k", Action: "move cursor"},
			{Key: "space", Action: "move card right"},
			{Key: "enter", Action: "open detail"},
			{Key: "a", Action: "add to column"},
			{Key: "drag", Action: "move card with mouse"},
		}
	case ViewCalendar:
		return []KeyBinding{
			{Key: "h/l", Action: "previous/next month"},
			{Key: "t", Action: "jump to today"},
			{Key: "arrows", Action: "move day cursor"},
			{Key: "enter", Action: "open day"},
		}
	case ViewMini:
		return []KeyBinding{
			{Key: "a", Action: "add task"},
			{Key: "P", Action: "pin/unpin"},
			{Key: "+/-", Action: "resize"},
		}
	case ViewSettings:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "enter", Action: "toggle setting"},
			{Key: "e/i", Action: "export / import"},
			{Key: "u/d/U", Action: "check / download / install update"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}
