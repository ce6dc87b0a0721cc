package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/mo"
	"github.com/spf13/afero"

	"github.com/LFroesch/rover/internal/command"
	"github.com/LFroesch/rover/internal/cursor"
	"github.com/LFroesch/rover/internal/errors"
	"github.com/LFroesch/rover/internal/listing"
	"github.com/LFroesch/rover/internal/logger"
	"github.com/LFroesch/rover/internal/mode"
	"github.com/LFroesch/rover/internal/search"
)

// Execute runs a resolved command from Navigation mode
func (s *Session) Execute(cmd command.Command) Outcome {
	switch c := cmd.(type) {
	case command.NoInput:
		return s.run(c)
	case command.WithInput:
		s.prompt(c)
		return Outcome{}
	case command.Sequence:
		return s.sequence(c)
	case command.External:
		return s.external(c)
	}
	return Outcome{}
}

// sequence runs its steps in order. A step that hands work back to the
// caller, or leaves Navigation, ends the sequence early.
func (s *Session) sequence(seq command.Sequence) Outcome {
	for _, step := range seq.Steps {
		out := s.run(step)
		if !out.empty() {
			return out
		}
		if _, ok := s.mode.(mode.Navigation); !ok {
			return Outcome{}
		}
	}
	if seq.Then != nil {
		s.prompt(seq.Then)
	}
	return Outcome{}
}

func (s *Session) run(cmd command.NoInput) Outcome {
	switch c := cmd.(type) {
	case command.MoveCursor:
		s.move(c.Direction)
	case command.ToClipboard:
		s.toClipboard(c)
	case command.HistoryOp:
		s.historyOp(c.Direction)
	case command.Search:
		s.repeatSearch()
	case command.NavigateSelected:
		return s.navigateSelected()
	case command.NavigateParent:
		s.leave()
	case command.StartColon:
		s.mode = mode.Colon{Buffer: ":"}
	case command.StartSearch:
		s.origin = mo.Some(s.cursor)
		s.searchMissed = false
		s.mode = mode.Colon{Buffer: "/"}
	case command.YankPath:
		path := s.FocusPath()
		s.SetStatus("yanked " + path)
		return Outcome{Yank: path}
	}
	return Outcome{}
}

func (s *Session) move(d command.Direction) {
	switch d {
	case command.Next:
		s.cursor = s.cursor.Next().OrElse(s.cursor)
	case command.Prev:
		s.cursor = s.cursor.Prev().OrElse(s.cursor)
	case command.First:
		s.cursor = s.cursor.First()
	case command.Last:
		s.cursor = s.cursor.Last()
	}
	s.ClearStatus()
}

func (s *Session) toClipboard(c command.ToClipboard) {
	focus := s.cursor.Focus()
	if err := s.clip.Set(s.FocusPath(), focus.Kind, c.Mode); err != nil {
		s.fail(err)
		return
	}
	s.SetStatus(fmt.Sprintf("%s %s", c.Mode, focus.Name))
}

func (s *Session) historyOp(d command.HistoryDirection) {
	from := s.Dir()
	step, verb := s.history.Undo, "back"
	if d == command.Redo {
		step, verb = s.history.Redo, "forward"
	}

	target, err := step()
	if err != nil {
		logger.Warn("History %s failed: %v", verb, err)
		s.SetStatus(err.Error() + " (history cleared)")
		return
	}
	dir, ok := target.Get()
	if !ok {
		s.SetStatus("nothing to go " + verb + " to")
		return
	}
	s.show(dir, childName(dir, from))
}

// childName is the entry of dir that leads to path, or "" when path is not
// directly below dir.
func childName(dir, path string) string {
	if filepath.Dir(path) == dir {
		return filepath.Base(path)
	}
	return ""
}

func (s *Session) repeatSearch() {
	if s.lastQuery == "" {
		s.SetStatus("no previous search")
		return
	}
	pred, err := search.NewMatcher(s.strategy, s.lastQuery)
	if err != nil {
		s.fail(err)
		return
	}
	next, ok := s.cursor.SearchForward(pred).Get()
	if !ok {
		s.SetStatus("no more matches for " + s.lastQuery)
		return
	}
	s.cursor = next
	s.SetStatus("/" + s.lastQuery)
}

func (s *Session) navigateSelected() Outcome {
	focus := s.cursor.Focus()
	switch {
	case focus.Name == listing.Self:
		if err := s.Refresh(); err != nil {
			s.fail(err)
		} else {
			s.ClearStatus()
		}
	case focus.Name == listing.Parent:
		s.leave()
	case focus.IsDir():
		s.enter(s.FocusPath())
	default:
		return s.external(command.External{Action: command.Preview})
	}
	return Outcome{}
}

// enter moves into dir and records the visit
func (s *Session) enter(dir string) {
	entries, err := listing.Read(s.ops.Fs(), dir)
	if err != nil {
		s.fail(errors.Wrap(err, dir))
		return
	}
	c, err := cursor.New(entries)
	if err != nil {
		s.fail(err)
		return
	}
	s.history.Push(dir)
	s.cursor = c
	s.ClearStatus()
	logger.Debug("Entered %s", dir)
}

// leave moves to the parent directory, focusing the directory just left
func (s *Session) leave() {
	cur := s.Dir()
	parent := filepath.Dir(cur)
	if parent == cur {
		s.SetStatus("already at " + cur)
		return
	}
	entries, err := listing.Read(s.ops.Fs(), parent)
	if err != nil {
		s.fail(errors.Wrap(err, parent))
		return
	}
	c, err := cursor.Rebuild(entries, filepath.Base(cur), 0)
	if err != nil {
		s.fail(err)
		return
	}
	s.history.Leave(parent)
	s.cursor = c
	s.ClearStatus()
}

// show lists dir, which history already made current, focusing name
func (s *Session) show(dir, name string) {
	entries, err := listing.Read(s.ops.Fs(), dir)
	if err != nil {
		s.fail(errors.Wrap(err, dir))
		return
	}
	c, err := cursor.Rebuild(entries, name, 0)
	if err != nil {
		s.fail(err)
		return
	}
	s.cursor = c
	s.ClearStatus()
}

// changeDir handles ":cd path". Relative paths resolve against the current
// directory, and "~" against the home directory.
func (s *Session) changeDir(arg string) {
	target := expandHome(arg)
	if !filepath.IsAbs(target) {
		target = filepath.Join(s.Dir(), target)
	}
	target = filepath.Clean(target)

	if ok, _ := afero.DirExists(s.ops.Fs(), target); !ok {
		s.fail(errors.NewNotFound(target))
		return
	}
	if target == s.Dir() {
		s.ClearStatus()
		return
	}
	s.enter(target)
}

var userHomeDir = os.UserHomeDir

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := userHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// fail reports err in the status line
func (s *Session) fail(err error) {
	logger.Warn("%v", err)
	s.SetStatus(err.Error())
}
