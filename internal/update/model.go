package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/todoterm/internal/model"
)

// statusTTL is how long a status line stays up after the key that set it.
const statusTTL = 2 * time.Second

type StatusBar struct {
	Text string
	seq  int
}

// Model adapts the Controller to Bubble Tea. The controller is shared by
// pointer, so copies of Model made by the runtime see the same list.
type Model struct {
	Status   StatusBar
	Quitting bool

	ctrl       *Controller
	keys       keyMap
	inputBox   textinput.Model
	helpModel  help.Model
	width      int
	headerText string
}

// ClearStatusMsg clears the status line unless a newer status replaced it.
type ClearStatusMsg struct {
	seq int
}

func NewModel(list *model.List) Model {
	m := Model{
		ctrl:       NewController(list),
		keys:       defaultKeyMap(),
		headerText: "todoterm",
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

// NewModelWithTitle labels the header, usually with the storage path.
func NewModelWithTitle(list *model.List, title string) Model {
	m := NewModel(list)
	if title != "" {
		m.headerText = "todoterm | " + title
	}
	return m
}

func (m *Model) initBubbleComponents() {
	m.inputBox = textinput.New()
	m.inputBox.Prompt = "> "
	m.inputBox.Placeholder = "new item"
	m.inputBox.Width = 48

	m.helpModel = help.New()
}

// syncBubbleData mirrors controller state into the widgets used to draw it.
// The editor stays the single owner of the buffer text.
func (m *Model) syncBubbleData() {
	text, ok := m.ctrl.Buffer()
	if !ok {
		m.inputBox.Blur()
		m.inputBox.SetValue("")
		return
	}
	if !m.inputBox.Focused() {
		m.inputBox.Focus()
	}
	m.inputBox.SetValue(text)
	m.inputBox.SetCursor(m.ctrl.Cursor().Col())
}

func (m Model) Controller() *Controller { return m.ctrl }

// Items is what gets saved when the program exits.
func (m Model) Items() []model.Item { return m.ctrl.List().Items() }
