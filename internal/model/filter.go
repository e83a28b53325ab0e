package model

import "fmt"

// FilteredView holds indices into a List, in list order, for the items that
// match a category.
type FilteredView []int

// Project must be called again after every toggle or append.
func Project(items []Item, c Category) FilteredView {
	view := make(FilteredView, 0, len(items))
	for i, it := range items {
		if c.Matches(it) {
			view = append(view, i)
		}
	}
	return view
}

func (v FilteredView) Len() int { return len(v) }

// Resolve maps a view-local row to a list index. An out-of-range row means
// the cursor bound was not kept in sync, so it panics instead of clamping.
func (v FilteredView) Resolve(local int) int {
	if local < 0 || local >= len(v) {
		panic(fmt.Sprintf("model: view index %d out of range [0,%d)", local, len(v)))
	}
	return v[local]
}
