// Package input turns terminal key messages into the small set of events
// the session understands.
package input

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Type classifies an Event
type Type int

const (
	// Rune is a printable character
	Rune Type = iota
	Backspace
	Enter
	Escape
	// Key is any other named key, e.g. "up" or "ctrl+r"
	Key
)

// Event is one decoded keystroke.
type Event struct {
	Type Type
	Rune rune
	Name string
}

func RuneEvent(r rune) Event {
	return Event{Type: Rune, Rune: r, Name: string(r)}
}

func KeyEvent(name string) Event {
	return Event{Type: Key, Name: name}
}

// String is the key name used by the key map
func (e Event) String() string {
	switch e.Type {
	case Rune:
		return string(e.Rune)
	case Backspace:
		return "backspace"
	case Enter:
		return "enter"
	case Escape:
		return "esc"
	default:
		return e.Name
	}
}

// FromTea decodes a key message. Pasted or buffered input arrives as
// several runes in one message and yields one event per rune.
func FromTea(msg tea.KeyMsg) []Event {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return []Event{KeyEvent(msg.String())}
		}
		events := make([]Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, RuneEvent(r))
		}
		return events
	case tea.KeySpace:
		return []Event{RuneEvent(' ')}
	case tea.KeyBackspace:
		return []Event{{Type: Backspace}}
	case tea.KeyEnter:
		return []Event{{Type: Enter}}
	case tea.KeyEsc:
		return []Event{{Type: Escape}}
	default:
		return []Event{KeyEvent(msg.String())}
	}
}
