package update

// Editor buffers the text of a new item. Edits happen only at the tail, so
// the caret column always equals the buffer length.
type Editor struct {
	buf    []rune
	cursor *Cursor
}

func newEditor(cursor *Cursor) *Editor {
	return &Editor{cursor: cursor}
}

func (e *Editor) InsertChar(r rune) {
	e.buf = append(e.buf, r)
	e.cursor.MoveRight()
}

func (e *Editor) Backspace() {
	if len(e.buf) == 0 {
		return
	}
	e.buf = e.buf[:len(e.buf)-1]
	e.cursor.MoveLeft()
}

// Commit returns the text, empty or not, and clears the buffer.
func (e *Editor) Commit() string {
	text := string(e.buf)
	e.buf = e.buf[:0]
	return text
}

func (e *Editor) Cancel() {
	e.buf = e.buf[:0]
}

func (e *Editor) Value() string { return string(e.buf) }
func (e *Editor) Len() int       { return len(e.buf) }
