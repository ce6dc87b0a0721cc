package session

import (
	"path/filepath"
	"strings"

	"github.com/LFroesch/rover/internal/command"
	"github.com/LFroesch/rover/internal/logger"
	"github.com/LFroesch/rover/internal/mode"
)

// external builds the request for an External command. The caller runs it
// and reports back through FinishExternal.
func (s *Session) external(c command.External) Outcome {
	dir := s.Dir()
	focus := s.cursor.Focus()
	path := s.FocusPath()

	var req *ExecRequest
	switch c.Action {
	case command.Preview:
		if focus.IsDir() {
			s.SetStatus(focus.Name + " is a directory")
			return Outcome{}
		}
		req = program(s.pager, dir, path)
	case command.Edit:
		req = program(s.editor, dir, path)
	case command.Shell:
		req = program(s.shell, dir)
	case command.Run:
		if strings.TrimSpace(c.Line) == "" {
			s.ClearStatus()
			return Outcome{}
		}
		req = program(s.shell, dir, "-c", c.Line)
	case command.Open:
		s.running = "open"
		return Outcome{Open: path}
	default:
		return Outcome{}
	}

	s.running = filepath.Base(req.Name)
	logger.Info("Running %s %v in %s", req.Name, req.Args, dir)
	return Outcome{Exec: req}
}

// program splits a configured command such as "code -w" and appends args
func program(configured, dir string, args ...string) *ExecRequest {
	fields := strings.Fields(configured)
	if len(fields) == 0 {
		fields = []string{"sh"}
	}
	return &ExecRequest{
		Name: fields[0],
		Args: append(fields[1:], args...),
		Dir:  dir,
	}
}

// FinishExternal is called once an external process or opener has
// returned. The directory is re-listed either way; a failure is reported
// without aborting.
func (s *Session) FinishExternal(err error) {
	name := s.running
	s.running = ""
	s.mode = mode.Navigation{}

	if rerr := s.Refresh(); rerr != nil {
		s.fail(rerr)
		return
	}
	if err != nil {
		logger.Warn("%s failed: %v", name, err)
		s.SetStatus(name + ": " + err.Error())
	}
}
