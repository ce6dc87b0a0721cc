package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/afero"

	"github.com/LFroesch/rover/internal/command"
	"github.com/LFroesch/rover/internal/config"
	"github.com/LFroesch/rover/internal/logger"
	"github.com/LFroesch/rover/internal/session"
	"github.com/LFroesch/rover/internal/utils"
)

// Terminal dimension constants
const (
	minTerminalWidth  = 40
	minTerminalHeight = 6
	uiOverhead        = 3 // header + status bar + prompt/help line
)

// statusClearMsg clears the status line unless a newer status replaced it
type statusClearMsg struct{ gen int }

// externalDoneMsg reports an external process or opener finishing
type externalDoneMsg struct{ err error }

type model struct {
	session *session.Session
	cfg     *config.Config
	keys    command.KeyMap

	help   help.Model
	prompt textinput.Model

	width    int
	height   int
	scroll   int
	showHelp bool

	statusGen int
	result    string

	// system integrations, swapped out in tests
	yank     func(string) error
	openPath func(string) error
	lookPath func(string) bool
}

func newModel(fs afero.Fs, dir string, cfg *config.Config) (*model, error) {
	keys, errs := cfg.KeyMap()
	for _, err := range errs {
		logger.Warn("Ignoring key binding: %v", err)
	}

	s, err := session.New(session.Options{
		Fs:         fs,
		Dir:        dir,
		Keys:       keys,
		SearchMode: cfg.Strategy(),
		Shell:      cfg.ShellCommand(),
		Pager:      cfg.PagerCommand(),
		Editor:     cfg.EditorCommand(),
	})
	if err != nil {
		logger.Error("Cannot start in %s: %v", dir, err)
		return nil, err
	}
	if len(errs) > 0 {
		s.SetStatus(fmt.Sprintf("%d key binding(s) ignored, see log", len(errs)))
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.PromptStyle = promptStyle
	ti.CharLimit = 256
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	return &model{
		session:  s,
		cfg:      cfg,
		keys:     keys,
		help:     help.New(),
		prompt:   ti,
		yank:     clipboard.WriteAll,
		openPath: open.Start,
		lookPath: utils.CommandExists,
	}, nil
}

func (m *model) getSafeWidth() int {
	if m.width < minTerminalWidth {
		return minTerminalWidth
	}
	return m.width
}

func (m *model) getSafeHeight() int {
	if m.height < minTerminalHeight {
		return minTerminalHeight
	}
	return m.height
}

// getContentHeight returns the rows available for the listing
func (m *model) getContentHeight() int {
	h := m.getSafeHeight() - uiOverhead
	if h < 1 {
		h = 1
	}
	return h
}

// keepCursorVisible adjusts scroll so the focused row is on screen
func (m *model) keepCursorVisible() {
	rows := m.getContentHeight()
	idx := m.session.Cursor().Index()
	total := m.session.Cursor().Len()

	if idx < m.scroll {
		m.scroll = idx
	}
	if idx >= m.scroll+rows {
		m.scroll = idx - rows + 1
	}
	if maxScroll := total - rows; m.scroll > maxScroll {
		m.scroll = max(maxScroll, 0)
	}
}
