package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Tabs       []TabData
	List       ListPanelData
	Input      InputPanelData
	StatusLine string
	Footer     string
	Width      int
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const defaultPanelWidth = 58

// RenderApp lays out one frame: header, tabs, the input box while
// inserting, the list, then status and footer.
func RenderApp(data AppData) string {
	width := defaultPanelWidth
	if data.Width > 4 && data.Width-4 < width {
		width = data.Width - 4
	}

	lines := []string{
		headerStyle.Render(data.Header),
		RenderTabs(data.Tabs),
	}
	if data.Input.Active {
		lines = append(lines, RenderInputPanel(data.Input, width))
	}
	lines = append(lines, panelStyle.Width(width).Render(RenderListPanel(data.List)))

	if data.StatusLine != "" {
		lines = append(lines, statusStyle.Render(data.StatusLine))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
