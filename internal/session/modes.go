package session

import (
	"fmt"

	"github.com/samber/mo"

	"github.com/LFroesch/rover/internal/clipboard"
	"github.com/LFroesch/rover/internal/command"
	"github.com/LFroesch/rover/internal/cursor"
	"github.com/LFroesch/rover/internal/errors"
	"github.com/LFroesch/rover/internal/input"
	"github.com/LFroesch/rover/internal/listing"
	"github.com/LFroesch/rover/internal/logger"
	"github.com/LFroesch/rover/internal/mode"
	"github.com/LFroesch/rover/internal/search"
)

// prompt opens Input mode for cmd
func (s *Session) prompt(cmd command.WithInput) {
	switch c := cmd.(type) {
	case command.CreateContent:
		if c.Kind == listing.Directory {
			s.mode = mode.Input{Command: mode.CreateDirectory}
		} else {
			s.mode = mode.Input{Command: mode.CreateFile}
		}
	case command.ModifySelected:
		if c.Modification == command.Rename {
			s.mode = mode.Input{Command: mode.Rename}
		} else {
			s.mode = mode.Input{Command: mode.Remove}
		}
	case command.PasteClipboard:
		if s.clip.Empty() {
			s.SetStatus(clipboard.ErrEmpty.Error())
			return
		}
		s.mode = mode.Input{Command: mode.Paste}
	}
}

func (s *Session) handleColon(m mode.Colon, ev input.Event) Outcome {
	switch ev.Type {
	case input.Rune:
		next := m.Append(ev.Rune)
		s.mode = next
		if next.IsSearch() {
			s.liveSearch(next.Query())
		}
	case input.Backspace:
		next, ok := m.Backspace()
		if !ok {
			s.cancelColon()
			return Outcome{}
		}
		s.mode = next
		if next.IsSearch() {
			s.liveSearch(next.Query())
		}
	case input.Escape:
		s.cancelColon()
	case input.Enter:
		return s.submitColon(m)
	}
	// other named keys do nothing on the command line
	return Outcome{}
}

// searchOrigin is the cursor a live search runs from
func (s *Session) searchOrigin() cursor.Cursor {
	return s.origin.OrElse(s.cursor)
}

// liveSearch moves focus to the first match of query after the origin. An
// empty query, or one that matches nothing, leaves focus on the origin.
func (s *Session) liveSearch(query string) {
	origin := s.searchOrigin()
	s.cursor = origin
	s.searchMissed = false
	if query == "" {
		return
	}

	pred, err := search.NewMatcher(s.strategy, query)
	if err != nil {
		// incomplete glob while typing
		s.searchMissed = true
		return
	}
	if found, ok := origin.CircularSearch(pred).Get(); ok {
		s.cursor = found
		return
	}
	s.searchMissed = true
}

func (s *Session) cancelColon() {
	s.cursor = s.searchOrigin()
	s.endSearch()
	s.mode = mode.Navigation{}
}

func (s *Session) endSearch() {
	s.origin = mo.None[cursor.Cursor]()
	s.searchMissed = false
}

func (s *Session) submitColon(m mode.Colon) Outcome {
	meta := mode.ParseMeta(m.Buffer)
	if meta.Kind != mode.MetaSearch {
		s.endSearch()
	}

	switch meta.Kind {
	case mode.MetaQuit:
		s.mode = mode.Navigation{}
		return Outcome{Quit: true}
	case mode.MetaRun:
		s.mode = mode.Navigation{}
		return s.external(command.External{Action: command.Run, Line: meta.Arg})
	case mode.MetaChangeDir:
		s.mode = mode.Navigation{}
		s.changeDir(meta.Arg)
	case mode.MetaSearch:
		s.submitSearch(meta.Arg)
	default:
		s.SetStatus("not a command: " + m.Buffer)
	}
	return Outcome{}
}

func (s *Session) submitSearch(query string) {
	origin := s.searchOrigin()
	s.endSearch()
	s.cursor = origin
	if query == "" {
		s.mode = mode.Navigation{}
		return
	}

	s.lastQuery = query
	pred, err := search.NewMatcher(s.strategy, query)
	if err != nil {
		s.fail(err)
		return
	}
	found, ok := origin.CircularSearch(pred).Get()
	if !ok {
		s.SetStatus("no match for " + query)
		return
	}
	s.cursor = found
	s.mode = mode.Navigation{}
}

func (s *Session) handleInput(m mode.Input, ev input.Event) {
	switch ev.Type {
	case input.Rune:
		s.mode = m.Append(ev.Rune)
	case input.Backspace:
		s.mode = m.Backspace()
	case input.Escape:
		s.mode = mode.Navigation{}
	case input.Enter:
		s.submitInput(m)
	}
}

// submitInput dispatches a finished response. Whatever the result, the
// listing is refreshed and the session returns to Navigation.
func (s *Session) submitInput(m mode.Input) {
	dir := s.Dir()
	focus := s.cursor.Focus()

	var (
		status string
		land   = focus.Name
		err    error
	)

	switch m.Command {
	case mode.CreateFile, mode.CreateDirectory:
		kind := listing.File
		if m.Command == mode.CreateDirectory {
			kind = listing.Directory
		}
		err = s.ops.CreateSafe(dir, listing.Entry{Name: m.Response, Kind: kind})
		if err == nil {
			land = m.Response
			status = fmt.Sprintf("created %s %s", kind, m.Response)
		}

	case mode.Remove:
		if focus.IsAnchor() {
			s.mode = mode.Navigation{}
			s.refreshQuietly(land)
			return
		}
		if !m.Confirmed() {
			err = errors.NewCancelled()
			break
		}
		err = s.ops.RemoveSafe(dir, focus)
		if err == nil {
			status = "removed " + focus.Name
		}

	case mode.Rename:
		err = s.ops.RenameSafe(dir, focus, m.Response)
		if err == nil {
			land = m.Response
			status = fmt.Sprintf("renamed %s to %s", focus.Name, m.Response)
		}

	case mode.Paste:
		if !m.Confirmed() {
			err = errors.NewCancelled()
			break
		}
		verb := "pasted"
		if s.clip.Mode() == clipboard.Move {
			verb = "moved"
		}
		var name string
		name, err = s.clip.Paste(s.ops, dir)
		if err == nil {
			land = name
			status = verb + " " + name
		}
	}

	s.mode = mode.Navigation{}
	s.refreshQuietly(land)

	if err != nil {
		if errors.IsCancelled(err) {
			s.SetStatus(err.Error())
			return
		}
		s.fail(err)
		return
	}
	logger.Info("%s in %s", status, dir)
	s.SetStatus(status)
}

// refreshQuietly refreshes, reporting a listing failure in the status line
func (s *Session) refreshQuietly(focusName string) {
	if err := s.refreshFocus(focusName); err != nil {
		s.fail(errors.Wrap(err, s.Dir()))
	}
}
