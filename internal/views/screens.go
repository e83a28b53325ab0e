package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TabData struct {
	Title  string
	Count  int
	Active bool
}

type ListPanelData struct {
	Rows []string
	// Selected is -1 when no row should be highlighted.
	Selected int
	Empty    string
}

type InputPanelData struct {
	Active bool
	View   string
}

type ChecklistItem struct {
	Text string
	Done bool
}

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
	selectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	emptyStyle       = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
	inputPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("10")).Padding(0, 1)
)

func RenderTabs(tabs []TabData) string {
	cells := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		label := fmt.Sprintf("%s (%d)", tab.Title, tab.Count)
		if tab.Active {
			cells = append(cells, activeTabStyle.Render(label))
			continue
		}
		cells = append(cells, inactiveTabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func RenderListPanel(data ListPanelData) string {
	if len(data.Rows) == 0 {
		empty := data.Empty
		if empty == "" {
			empty = "nothing here"
		}
		return emptyStyle.Render(empty)
	}
	var b strings.Builder
	for i, row := range data.Rows {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == data.Selected {
			b.WriteString(selectedRowStyle.Render("> " + row))
			continue
		}
		b.WriteString("  " + row)
	}
	return b.String()
}

func RenderInputPanel(data InputPanelData, width int) string {
	return inputPanelStyle.Width(width).Render(data.View)
}

// RenderChecklist writes items as a markdown task list.
func RenderChecklist(title string, items []ChecklistItem) string {
	var b strings.Builder
	if title != "" {
		b.WriteString("# " + title + "\n\n")
	}
	if len(items) == 0 {
		b.WriteString("_no items_\n")
		return b.String()
	}
	for _, it := range items {
		mark := " "
		if it.Done {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", mark, it.Text)
	}
	return b.String()
}
