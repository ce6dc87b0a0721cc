package main

import (
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/rover/internal/logger"
	"github.com/LFroesch/rover/internal/session"
)

// perform carries out what the session handed back
func (m *model) perform(out session.Outcome) tea.Cmd {
	switch {
	case out.Quit:
		m.result = m.session.Dir()
		return tea.Quit
	case out.Exec != nil:
		return m.execProcess(out.Exec)
	case out.Open != "":
		return m.openFile(out.Open)
	case out.Yank != "":
		m.copyPath(out.Yank)
	}
	return nil
}

// execProcess hands the terminal to an external program and refreshes
// once it exits.
func (m *model) execProcess(req *session.ExecRequest) tea.Cmd {
	if !m.lookPath(req.Name) {
		m.session.FinishExternal(&exec.Error{Name: req.Name, Err: exec.ErrNotFound})
		return nil
	}

	cmd := exec.Command(req.Name, req.Args...)
	cmd.Dir = req.Dir
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return externalDoneMsg{err: err}
	})
}

// openFile uses the system default application
func (m *model) openFile(path string) tea.Cmd {
	openPath := m.openPath
	return func() tea.Msg {
		return externalDoneMsg{err: openPath(path)}
	}
}

func (m *model) copyPath(path string) {
	if err := m.yank(path); err != nil {
		logger.Warn("Failed to copy %s to the clipboard: %v", path, err)
		m.session.SetStatus("clipboard unavailable: " + err.Error())
	}
}

// watchStatus schedules clearing of the current status message. Each new
// message bumps the generation so older timers become no-ops.
func (m *model) watchStatus() tea.Cmd {
	if m.session.Status() == "" {
		return nil
	}
	m.statusGen++
	gen := m.statusGen
	return tea.Tick(m.statusDuration(), func(time.Time) tea.Msg {
		return statusClearMsg{gen: gen}
	})
}

func (m *model) statusDuration() time.Duration {
	if d := m.cfg.StatusDuration(); d > 0 {
		return d
	}
	return 4 * time.Second
}
