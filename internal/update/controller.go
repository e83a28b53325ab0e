package update

import (
	"log"

	"github.com/sandeepkv93/todoterm/internal/model"
)

type Mode int

const (
	ModeNavigating Mode = iota
	ModeInserting
)

func (m Mode) String() string {
	if m == ModeInserting {
		return "inserting"
	}
	return "navigating"
}

// mode is closed over navigating and *inserting. Only *inserting carries
// an editor, so a navigating controller cannot hold a pending buffer.
type mode interface {
	kind() Mode
}

type navigating struct{}

func (navigating) kind() Mode { return ModeNavigating }

type inserting struct {
	editor    *Editor
	returnRow int
}

func (*inserting) kind() Mode { return ModeInserting }

type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionMoved
	ActionSwitched
	ActionInsertStarted
	ActionEdited
	ActionToggled
	ActionCommitted
	ActionCancelled
)

// Outcome tells the caller what a key did, so it can report it.
type Outcome struct {
	Action Action
	Item   model.Item
}

// Controller is the navigate/insert state machine over one item list.
type Controller struct {
	list     *model.List
	category model.Category
	cursor   Cursor
	state    mode
	view     model.FilteredView
}

func NewController(list *model.List) *Controller {
	if list == nil {
		list = model.NewList(nil)
	}
	c := &Controller{
		list:     list,
		category: model.CategoryActive,
		state:    navigating{},
	}
	c.Refresh()
	return c
}

// Refresh reprojects the view and rebounds the cursor. Handle calls it
// before and after dispatch.
func (c *Controller) Refresh() {
	c.view = model.Project(c.list.Items(), c.category)
	if c.state.kind() == ModeInserting {
		c.cursor.SetMax(0)
		return
	}
	c.cursor.SetMax(c.view.Len() - 1)
}

func (c *Controller) Handle(ev KeyEvent) Outcome {
	if ev.Kind != KeyPress {
		return Outcome{}
	}
	c.Refresh()
	var out Outcome
	switch st := c.state.(type) {
	case navigating:
		out = c.handleNav(ev)
	case *inserting:
		out = c.handleInsert(st, ev)
	}
	c.Refresh()
	return out
}

func (c *Controller) handleNav(ev KeyEvent) Outcome {
	switch ev.Code {
	case KeyInterrupt:
		return Outcome{Action: ActionQuit}
	case KeyChar:
		switch ev.Rune {
		case 'q':
			return Outcome{Action: ActionQuit}
		case 'i':
			c.state = &inserting{editor: newEditor(&c.cursor), returnRow: c.cursor.Row()}
			c.cursor.Reset(0, 0)
			log.Printf("mode: %s -> %s", ModeNavigating, ModeInserting)
			return Outcome{Action: ActionInsertStarted}
		}
	case KeyTab:
		c.category = c.category.Next()
		c.cursor.Reset(0, 0)
		return Outcome{Action: ActionSwitched}
	case KeyUp:
		c.cursor.MoveUp()
		return Outcome{Action: ActionMoved}
	case KeyDown:
		c.cursor.MoveDown()
		return Outcome{Action: ActionMoved}
	case KeyEnter:
		return c.toggleSelected()
	}
	return Outcome{}
}

func (c *Controller) toggleSelected() Outcome {
	row := c.cursor.Row()
	if row >= c.view.Len() {
		return Outcome{}
	}
	id := c.list.Get(c.view.Resolve(row)).ID
	item, ok := c.list.Toggle(id)
	if !ok {
		panic("update: resolved item vanished from list")
	}
	log.Printf("toggle: id=%d completed=%v", item.ID, item.Completed)
	return Outcome{Action: ActionToggled, Item: item}
}

func (c *Controller) handleInsert(st *inserting, ev KeyEvent) Outcome {
	switch ev.Code {
	case KeyInterrupt:
		return Outcome{Action: ActionQuit}
	case KeyChar:
		// q never quits here and is not typed either.
		if ev.Rune == 'q' {
			return Outcome{}
		}
		st.editor.InsertChar(ev.Rune)
		return Outcome{Action: ActionEdited}
	case KeyBackspace:
		st.editor.Backspace()
		return Outcome{Action: ActionEdited}
	case KeyEnter:
		item := c.list.Append(st.editor.Commit())
		c.state = navigating{}
		c.cursor.Reset(0, 0)
		log.Printf("mode: %s -> %s (committed id=%d)", ModeInserting, ModeNavigating, item.ID)
		return Outcome{Action: ActionCommitted, Item: item}
	case KeyEsc:
		st.editor.Cancel()
		c.state = navigating{}
		c.cursor.Reset(0, st.returnRow)
		log.Printf("mode: %s -> %s (cancelled)", ModeInserting, ModeNavigating)
		return Outcome{Action: ActionCancelled}
	}
	return Outcome{}
}

func (c *Controller) Mode() Mode               { return c.state.kind() }
func (c *Controller) Category() model.Category { return c.category }
func (c *Controller) Cursor() Cursor           { return c.cursor }
func (c *Controller) View() model.FilteredView { return c.view }
func (c *Controller) List() *model.List        { return c.list }

// Buffer reports the pending text; ok is false while navigating.
func (c *Controller) Buffer() (text string, ok bool) {
	st, ok := c.state.(*inserting)
	if !ok {
		return "", false
	}
	return st.editor.Value(), true
}

// Frame is everything a renderer needs for one screen.
type Frame struct {
	Category  model.Category
	Active    int
	Completed int
	Rows      []string
	Selected  int
	Inserting bool
	Buffer    string
	Caret     int
}

func (c *Controller) Frame() Frame {
	c.Refresh()
	items := c.list.Items()
	rows := make([]string, 0, c.view.Len())
	for i := 0; i < c.view.Len(); i++ {
		rows = append(rows, items[c.view.Resolve(i)].Text)
	}
	active, completed := c.list.Counts()
	f := Frame{
		Category:  c.category,
		Active:    active,
		Completed: completed,
		Rows:      rows,
		Selected:  -1,
		Caret:     c.cursor.Col(),
	}
	if text, ok := c.Buffer(); ok {
		f.Inserting = true
		f.Buffer = text
	} else if len(rows) > 0 {
		f.Selected = c.cursor.Row()
	}
	return f
}
