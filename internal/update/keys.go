package update

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyCode int

const (
	KeyChar KeyCode = iota
	KeyBackspace
	KeyEnter
	KeyEsc
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	// KeyInterrupt is ctrl+c, which raw mode delivers as a key.
	KeyInterrupt
)

type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRelease
	KeyRepeat
)

type KeyEvent struct {
	Code KeyCode
	Rune rune
	Kind KeyKind
}

func Press(code KeyCode) KeyEvent {
	return KeyEvent{Code: code, Kind: KeyPress}
}

func Char(r rune) KeyEvent {
	return KeyEvent{Code: KeyChar, Rune: r, Kind: KeyPress}
}

// Chars expands s into one press event per rune.
func Chars(s string) []KeyEvent {
	out := make([]KeyEvent, 0, len(s))
	for _, r := range s {
		out = append(out, Char(r))
	}
	return out
}

// eventsFromTea translates a Bubble Tea key message. Bubble Tea only reports
// presses; a pasted run of runes becomes one event per rune.
func eventsFromTea(msg tea.KeyMsg) []KeyEvent {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		out := make([]KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				out = append(out, Char(r))
			}
		}
		return out
	case tea.KeySpace:
		return []KeyEvent{Char(' ')}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []KeyEvent{Press(KeyBackspace)}
	case tea.KeyEnter:
		return []KeyEvent{Press(KeyEnter)}
	case tea.KeyEsc:
		return []KeyEvent{Press(KeyEsc)}
	case tea.KeyTab:
		return []KeyEvent{Press(KeyTab)}
	case tea.KeyUp:
		return []KeyEvent{Press(KeyUp)}
	case tea.KeyDown:
		return []KeyEvent{Press(KeyDown)}
	case tea.KeyLeft:
		return []KeyEvent{Press(KeyLeft)}
	case tea.KeyRight:
		return []KeyEvent{Press(KeyRight)}
	case tea.KeyCtrlC:
		return []KeyEvent{Press(KeyInterrupt)}
	default:
		return nil
	}
}
