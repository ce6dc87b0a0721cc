// Package mode holds the input-mode states. Exactly one Mode is active at
// a time; the session owns the transitions between them.
package mode

import (
	"strings"
)

// Mode is one of Navigation, Colon or Input.
type Mode interface {
	isMode()
}

// Navigation is the initial mode: keys are resolved to commands.
type Navigation struct {
	Status string
}

// Colon is the command line. Buffer includes the leading ':' or '/'.
type Colon struct {
	Buffer string
}

// Input collects a response for a command that needs one.
type Input struct {
	Command  InputCommand
	Response string
}

func (Navigation) isMode() {}
func (Colon) isMode()      {}
func (Input) isMode()      {}

// InputCommand is the operation waiting on an Input response.
type InputCommand int

const (
	CreateFile InputCommand = iota
	CreateDirectory
	Remove
	Rename
	Paste
)

func (c InputCommand) String() string {
	switch c {
	case CreateFile:
		return "new file"
	case CreateDirectory:
		return "new directory"
	case Remove:
		return "remove"
	case Rename:
		return "rename"
	case Paste:
		return "paste"
	default:
		return "input"
	}
}

// Confirms reports whether the command takes a y/n answer instead of a name
func (c InputCommand) Confirms() bool {
	return c == Remove || c == Paste
}

// Prompt is the text shown before the response. subject is the focused
// entry or clipboard name.
func (c InputCommand) Prompt(subject string) string {
	switch c {
	case CreateFile:
		return "new file: "
	case CreateDirectory:
		return "new directory: "
	case Remove:
		return "remove " + subject + "? (y/N) "
	case Rename:
		return "rename " + subject + " to: "
	case Paste:
		return "paste " + subject + " here? (y/N) "
	default:
		return "> "
	}
}

// printable drops runes that would break the single-line invariant
func printable(r rune) bool {
	return r != '\n' && r != '\r'
}

func (c Colon) Append(r rune) Colon {
	if !printable(r) {
		return c
	}
	return Colon{Buffer: c.Buffer + string(r)}
}

// Backspace removes the last rune. ok is false when at most one character
// follows the trigger, which cancels the command line.
func (c Colon) Backspace() (next Colon, ok bool) {
	runes := []rune(c.Buffer)
	if len(runes) <= 2 {
		return Colon{}, false
	}
	return Colon{Buffer: string(runes[:len(runes)-1])}, true
}

// IsSearch reports whether the buffer is a '/' search
func (c Colon) IsSearch() bool {
	return strings.HasPrefix(c.Buffer, "/")
}

// Query is the search text after '/'
func (c Colon) Query() string {
	return strings.TrimPrefix(c.Buffer, "/")
}

func (i Input) Append(r rune) Input {
	if !printable(r) {
		return i
	}
	return Input{Command: i.Command, Response: i.Response + string(r)}
}

// Backspace is a no-op on an empty response
func (i Input) Backspace() Input {
	runes := []rune(i.Response)
	if len(runes) == 0 {
		return i
	}
	return Input{Command: i.Command, Response: string(runes[:len(runes)-1])}
}

// Confirmed is true only for a literal "y"
func (i Input) Confirmed() bool {
	return i.Response == "y"
}
