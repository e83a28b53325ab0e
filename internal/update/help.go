package update

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Tab       key.Binding
	Insert    key.Binding
	Toggle    key.Binding
	Quit      key.Binding
	Commit    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch list")),
		Insert:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "new item")),
		Toggle:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle done")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
	}
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) helpBindings() []key.Binding {
	if m.ctrl.Mode() == ModeInserting {
		return []key.Binding{m.keys.Commit, m.keys.Cancel, m.keys.Backspace}
	}
	return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Tab, m.keys.Insert, m.keys.Toggle, m.keys.Quit}
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	return m.helpModel.View(helpKeyMap{
		short: bindings,
		full:  [][]key.Binding{bindings},
	})
}
