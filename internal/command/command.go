// Package command defines what a resolved keystroke asks the session to
// do, and the key map that resolves keystrokes in Navigation mode.
package command

import (
	"github.com/LFroesch/rover/internal/clipboard"
	"github.com/LFroesch/rover/internal/listing"
)

// Command is any resolved command
type Command interface {
	isCommand()
}

// NoInput commands run immediately.
type NoInput interface {
	Command
	noInput()
}

// WithInput commands open an Input prompt and run on Enter.
type WithInput interface {
	Command
	withInput()
}

type Direction int

const (
	Next Direction = iota
	Prev
	First
	Last
)

type HistoryDirection int

const (
	Undo HistoryDirection = iota
	Redo
)

type Modification int

const (
	Remove Modification = iota
	Rename
)

// ExternalAction is what an External command runs.
type ExternalAction int

const (
	// Preview pages the focused file
	Preview ExternalAction = iota
	// Edit opens the focused entry in the editor
	Edit
	// Shell starts an interactive shell in the current directory
	Shell
	// Open hands the focused entry to the system's default application
	Open
	// Run executes Line through the shell
	Run
)

type (
	MoveCursor       struct{ Direction Direction }
	ToClipboard      struct{ Mode clipboard.Mode }
	HistoryOp        struct{ Direction HistoryDirection }
	Search           struct{}
	NavigateSelected struct{}
	NavigateParent   struct{}
	StartColon       struct{}
	StartSearch      struct{}
	YankPath         struct{}
)

type (
	CreateContent  struct{ Kind listing.Kind }
	ModifySelected struct{ Modification Modification }
	PasteClipboard struct{}
)

// Sequence runs Steps in order, then opens Then's prompt if set.
type Sequence struct {
	Steps []NoInput
	Then  WithInput
}

// External runs a process (or the system opener) and refreshes afterwards.
type External struct {
	Action ExternalAction
	Line   string
}

func (MoveCursor) isCommand()       {}
func (ToClipboard) isCommand()      {}
func (HistoryOp) isCommand()        {}
func (Search) isCommand()           {}
func (NavigateSelected) isCommand() {}
func (NavigateParent) isCommand()   {}
func (StartColon) isCommand()       {}
func (StartSearch) isCommand()      {}
func (YankPath) isCommand()         {}
func (CreateContent) isCommand()    {}
func (ModifySelected) isCommand()   {}
func (PasteClipboard) isCommand()   {}
func (Sequence) isCommand()         {}
func (External) isCommand()         {}

func (MoveCursor) noInput()       {}
func (ToClipboard) noInput()      {}
func (HistoryOp) noInput()        {}
func (Search) noInput()           {}
func (NavigateSelected) noInput() {}
func (NavigateParent) noInput()   {}
func (StartColon) noInput()       {}
func (StartSearch) noInput()      {}
func (YankPath) noInput()         {}

func (CreateContent) withInput()  {}
func (ModifySelected) withInput() {}
func (PasteClipboard) withInput() {}
