// Package session is the dispatcher at the centre of rover. It owns the
// cursor, history, clipboard and mode, and turns key events into
// filesystem operations and cursor updates.
//
// A Session is not safe for concurrent use; the bubbletea program drives it
// from Update only.
package session

import (
	"fmt"
	"path/filepath"

	"github.com/samber/mo"
	"github.com/spf13/afero"

	"github.com/LFroesch/rover/internal/clipboard"
	"github.com/LFroesch/rover/internal/command"
	"github.com/LFroesch/rover/internal/cursor"
	"github.com/LFroesch/rover/internal/fileops"
	"github.com/LFroesch/rover/internal/history"
	"github.com/LFroesch/rover/internal/input"
	"github.com/LFroesch/rover/internal/listing"
	"github.com/LFroesch/rover/internal/logger"
	"github.com/LFroesch/rover/internal/mode"
	"github.com/LFroesch/rover/internal/search"
)

// Options configures a Session. Zero values fall back to sensible
// defaults except Fs and Dir, which are required.
type Options struct {
	Fs         afero.Fs
	Dir        string // absolute start directory
	Keys       command.KeyMap
	SearchMode search.Strategy
	Shell      string
	Pager      string
	Editor     string
}

// ExecRequest is a process the caller should run with the terminal handed
// over, then report back through FinishExternal.
type ExecRequest struct {
	Name string
	Args []string
	Dir  string
}

// Outcome is what the caller must do after a key was handled. The zero
// value means nothing beyond re-rendering.
type Outcome struct {
	Quit bool
	Exec *ExecRequest
	Open string // path for the system opener
	Yank string // text for the system clipboard
}

func (o Outcome) empty() bool {
	return !o.Quit && o.Exec == nil && o.Open == "" && o.Yank == ""
}

type Session struct {
	ops      *fileops.Ops
	keys     command.KeyMap
	strategy search.Strategy
	shell    string
	pager    string
	editor   string

	cursor  cursor.Cursor
	history *history.History
	clip    clipboard.Clipboard
	mode    mode.Mode

	lastQuery    string
	origin       mo.Option[cursor.Cursor] // focus when a live search began
	searchMissed bool
	running      string // name of the external process in flight
}

// New lists opts.Dir and focuses its first entry. Failing to read the
// start directory is the only fatal error.
func New(opts Options) (*Session, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if !filepath.IsAbs(opts.Dir) {
		return nil, fmt.Errorf("start directory must be absolute: %q", opts.Dir)
	}
	dir := filepath.Clean(opts.Dir)

	entries, err := listing.Read(opts.Fs, dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", dir, err)
	}
	c, err := cursor.New(entries)
	if err != nil {
		return nil, err
	}

	if opts.Keys.Bindings() == nil {
		opts.Keys = command.DefaultKeyMap()
	}
	if opts.SearchMode == "" {
		opts.SearchMode = search.Prefix
	}

	return &Session{
		ops:      fileops.New(opts.Fs),
		keys:     opts.Keys,
		strategy: opts.SearchMode,
		shell:    orDefault(opts.Shell, "sh"),
		pager:    orDefault(opts.Pager, "less"),
		editor:   orDefault(opts.Editor, "vi"),
		cursor:   c,
		history:  history.New(opts.Fs, dir),
		mode:     mode.Navigation{},
		origin:   mo.None[cursor.Cursor](),
	}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Dir is the current directory
func (s *Session) Dir() string {
	return s.history.Current()
}

func (s *Session) Cursor() cursor.Cursor {
	return s.cursor
}

func (s *Session) Mode() mode.Mode {
	return s.mode
}

func (s *Session) History() *history.History {
	return s.history
}

func (s *Session) Clipboard() *clipboard.Clipboard {
	return &s.clip
}

func (s *Session) KeyMap() command.KeyMap {
	return s.keys
}

// LastQuery is the query repeated by the Search command
func (s *Session) LastQuery() string {
	return s.lastQuery
}

// SearchMissed reports whether the live search query currently matches
// nothing.
func (s *Session) SearchMissed() bool {
	return s.searchMissed
}

// Status is the Navigation status message, empty in other modes
func (s *Session) Status() string {
	if nav, ok := s.mode.(mode.Navigation); ok {
		return nav.Status
	}
	return ""
}

// SetStatus returns to Navigation showing msg
func (s *Session) SetStatus(msg string) {
	s.mode = mode.Navigation{Status: msg}
}

// ClearStatus drops the status message if still in Navigation
func (s *Session) ClearStatus() {
	if _, ok := s.mode.(mode.Navigation); ok {
		s.mode = mode.Navigation{}
	}
}

// Prompt is the text shown before the response in Input mode
func (s *Session) Prompt() string {
	in, ok := s.mode.(mode.Input)
	if !ok {
		return ""
	}
	subject := s.cursor.Focus().Name
	if in.Command == mode.Paste {
		if path, ok := s.clip.Content(); ok {
			subject = filepath.Base(path)
		}
	}
	return in.Command.Prompt(subject)
}

// FocusPath is the absolute path of the focused entry
func (s *Session) FocusPath() string {
	return filepath.Join(s.Dir(), s.cursor.Focus().Name)
}

// HandleKey feeds one key event to the active mode
func (s *Session) HandleKey(ev input.Event) Outcome {
	switch m := s.mode.(type) {
	case mode.Colon:
		return s.handleColon(m, ev)
	case mode.Input:
		s.handleInput(m, ev)
		return Outcome{}
	default:
		return s.handleNavigation(ev)
	}
}

func (s *Session) handleNavigation(ev input.Event) Outcome {
	cmd, ok := s.keys.Resolve(ev.String())
	if !ok {
		if ev.Type == input.Escape {
			s.ClearStatus()
			return Outcome{}
		}
		s.SetStatus("unbound key: " + ev.String())
		return Outcome{}
	}
	return s.Execute(cmd)
}

// Refresh re-lists the current directory, keeping focus on the same name
// or, failing that, the same offset from the top.
func (s *Session) Refresh() error {
	return s.refreshFocus(s.cursor.Focus().Name)
}

// refreshFocus re-lists and focuses name when present. A listing failure
// keeps the old cursor.
func (s *Session) refreshFocus(name string) error {
	entries, err := listing.Read(s.ops.Fs(), s.Dir())
	if err != nil {
		logger.Warn("Failed to refresh %s: %v", s.Dir(), err)
		return err
	}
	c, err := cursor.Rebuild(entries, name, s.cursor.Index())
	if err != nil {
		return err
	}
	s.cursor = c
	return nil
}
