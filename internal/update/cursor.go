package update

// Cursor is a (col, row) position. Row stays within [0, max] once SetMax
// has run; col is the text caret and only matters while inserting.
type Cursor struct {
	col    int
	row    int
	maxRow int
}

func (c Cursor) Col() int { return c.col }
func (c Cursor) Row() int { return c.row }
func (c Cursor) Max() int { return c.maxRow }

func (c *Cursor) MoveUp() {
	if c.row > 0 {
		c.row--
	}
}

func (c *Cursor) MoveDown() {
	if c.row < c.maxRow {
		c.row++
	}
}

func (c *Cursor) MoveLeft() {
	if c.col > 0 {
		c.col--
	}
}

func (c *Cursor) MoveRight() {
	c.col++
}

// SetMax must run before movement every tick; the row count changes as
// items move between categories.
func (c *Cursor) SetMax(n int) {
	if n < 0 {
		n = 0
	}
	c.maxRow = n
	if c.row > c.maxRow {
		c.row = c.maxRow
	}
}

// Reset does not clamp; the next SetMax does.
func (c *Cursor) Reset(col, row int) {
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	c.col = col
	c.row = row
}
