package model

// List is the ordered, in-memory item collection. Insertion order is kept
// and items are never removed.
type List struct {
	items  []Item
	nextID uint64
}

// NewList copies items and assigns fresh IDs in order, starting at 1.
func NewList(items []Item) *List {
	l := &List{items: make([]Item, 0, len(items)), nextID: 1}
	for _, it := range items {
		it.ID = l.nextID
		l.nextID++
		l.items = append(l.items, it)
	}
	return l
}

func (l *List) Len() int { return len(l.items) }

// Items returns a copy so callers cannot mutate the list behind its back.
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Get(index int) Item {
	return l.items[index]
}

// Append always creates a not-completed item, even for empty text.
func (l *List) Append(text string) Item {
	it := Item{ID: l.nextID, Text: text}
	l.nextID++
	l.items = append(l.items, it)
	return it
}

func (l *List) Toggle(id uint64) (Item, bool) {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Completed = !l.items[i].Completed
			return l.items[i], true
		}
	}
	return Item{}, false
}

func (l *List) Counts() (active int, completed int) {
	for _, it := range l.items {
		if it.Completed {
			completed++
		} else {
			active++
		}
	}
	return active, completed
}
