package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/rover/internal/input"
	"github.com/LFroesch/rover/internal/mode"
)

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("rover"),
		m.watchStatus(),
	)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width == m.width && msg.Height == m.height {
			return m, nil
		}
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.getSafeWidth()
		m.keepCursorVisible()
		return m, nil

	case statusClearMsg:
		if msg.gen == m.statusGen {
			m.session.ClearStatus()
		}
		return m, nil

	case externalDoneMsg:
		m.session.FinishExternal(msg.err)
		m.keepCursorVisible()
		return m, m.watchStatus()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	_, navigating := m.session.Mode().(mode.Navigation)
	if navigating && key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		// any other key closes the help overlay
		m.showHelp = false
		if msg.Type == tea.KeyEsc {
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for _, ev := range input.FromTea(msg) {
		out := m.session.HandleKey(ev)
		if cmd := m.perform(out); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if out.Quit || out.Exec != nil {
			// the rest of a pasted burst is dropped
			break
		}
	}

	m.syncPrompt()
	m.keepCursorVisible()
	cmds = append(cmds, m.watchStatus())
	return m, tea.Batch(cmds...)
}

// syncPrompt mirrors the Colon buffer or Input response into the text
// input used to render the prompt line.
func (m *model) syncPrompt() {
	switch md := m.session.Mode().(type) {
	case mode.Colon:
		m.prompt.Prompt = ""
		m.prompt.SetValue(md.Buffer)
	case mode.Input:
		m.prompt.Prompt = m.session.Prompt()
		m.prompt.SetValue(md.Response)
	default:
		m.prompt.Prompt = ""
		m.prompt.SetValue("")
	}
	m.prompt.CursorEnd()
}
