package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestFromTea(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []Event
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, []Event{RuneEvent('j')}},
		{"pasted", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, []Event{RuneEvent('a'), RuneEvent('b')}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []Event{RuneEvent(' ')}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []Event{{Type: Backspace}}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []Event{{Type: Enter}}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, []Event{{Type: Escape}}},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, []Event{KeyEvent("up")}},
		{"ctrl", tea.KeyMsg{Type: tea.KeyCtrlR}, []Event{KeyEvent("ctrl+r")}},
		{"alt", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, []Event{KeyEvent("alt+x")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromTea(tt.msg))
		})
	}
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "j", RuneEvent('j').String())
	assert.Equal(t, "backspace", Event{Type: Backspace}.String())
	assert.Equal(t, "enter", Event{Type: Enter}.String())
	assert.Equal(t, "esc", Event{Type: Escape}.String())
	assert.Equal(t, "home", KeyEvent("home").String())
}
