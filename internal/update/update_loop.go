package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/todoterm/internal/model"
	"github.com/sandeepkv93/todoterm/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.helpModel.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		changed := false
		for _, ev := range eventsFromTea(typed) {
			out := m.ctrl.Handle(ev)
			if out.Action == ActionQuit {
				m.Quitting = true
				return m, tea.Quit
			}
			changed = m.applyOutcome(out) || changed
		}
		m.syncBubbleData()
		if changed {
			return m, m.clearStatusAfter(statusTTL)
		}
		return m, nil
	case ClearStatusMsg:
		if typed.seq == m.Status.seq {
			m.Status.Text = ""
		}
		return m, nil
	}
	return m, nil
}

// applyOutcome reports whether it set a new status line.
func (m *Model) applyOutcome(out Outcome) bool {
	var text string
	switch out.Action {
	case ActionToggled:
		verb := "reopened"
		if out.Item.Completed {
			verb = "done"
		}
		text = fmt.Sprintf("%s: %s", verb, out.Item.Text)
	case ActionCommitted:
		text = fmt.Sprintf("added: %s", out.Item.Text)
	case ActionCancelled:
		text = "insert cancelled"
	case ActionInsertStarted:
		text = "insert mode"
	case ActionSwitched:
		text = fmt.Sprintf("showing %s", m.ctrl.Category().Title())
	default:
		return false
	}
	m.Status = StatusBar{Text: text, seq: m.Status.seq + 1}
	return true
}

func (m Model) clearStatusAfter(d time.Duration) tea.Cmd {
	seq := m.Status.seq
	return tea.Tick(d, func(time.Time) tea.Msg { return ClearStatusMsg{seq: seq} })
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	frame := m.ctrl.Frame()
	emptyText := "no open items, press i to add one"
	if frame.Category == model.CategoryCompleted {
		emptyText = "nothing done yet"
	}
	return views.RenderApp(views.AppData{
		Header: m.headerText,
		Tabs: []views.TabData{
			{Title: model.CategoryActive.Title(), Count: frame.Active, Active: frame.Category == model.CategoryActive},
			{Title: model.CategoryCompleted.Title(), Count: frame.Completed, Active: frame.Category == model.CategoryCompleted},
		},
		List: views.ListPanelData{
			Rows:     frame.Rows,
			Selected: frame.Selected,
			Empty:    emptyText,
		},
		Input: views.InputPanelData{
			Active: frame.Inserting,
			View:   m.inputBox.View(),
		},
		StatusLine: m.Status.Text,
		Footer:     m.renderHelpView(),
		Width:      m.width,
	})
}
