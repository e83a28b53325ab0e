package model

import (
	"errors"
	"fmt"
)

var ErrInvalidState = errors.New("model: invalid item state")

// State is the token persisted in front of every item.
type State string

const (
	StateTodo State = "TODO"
	StateDone State = "DONE"
)

func (s State) IsValid() bool {
	switch s {
	case StateTodo, StateDone:
		return true
	default:
		return false
	}
}

// ParseState is case-sensitive: "todo" is rejected.
func ParseState(raw string) (State, error) {
	s := State(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidState, raw)
	}
	return s, nil
}

func StateOf(completed bool) State {
	if completed {
		return StateDone
	}
	return StateTodo
}

func (s State) Completed() bool {
	return s == StateDone
}

type Category int

const (
	CategoryActive Category = iota
	CategoryCompleted
)

func (c Category) Next() Category {
	if c == CategoryActive {
		return CategoryCompleted
	}
	return CategoryActive
}

func (c Category) Title() string {
	return string(c.State())
}

func (c Category) State() State {
	return StateOf(c == CategoryCompleted)
}

func (c Category) Matches(it Item) bool {
	return it.Completed == (c == CategoryCompleted)
}

func (c Category) String() string {
	if c == CategoryCompleted {
		return "completed"
	}
	return "active"
}

type Item struct {
	ID        uint64
	Text      string
	Completed bool
}

func (it Item) State() State {
	return StateOf(it.Completed)
}
