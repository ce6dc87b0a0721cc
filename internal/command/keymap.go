package command

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/LFroesch/rover/internal/clipboard"
	"github.com/LFroesch/rover/internal/listing"
)

// Binding ties a named command to its keys.
type Binding struct {
	Name    string
	Key     key.Binding
	Command Command
	group   int
}

// KeyMap resolves Navigation-mode keys. Help and Quit are handled by the
// program itself and never reach the session.
type KeyMap struct {
	bindings []Binding
	Help     key.Binding
	Quit     key.Binding
}

type bindingDef struct {
	name    string
	command Command
	keys    []string
	desc    string
	group   int
}

const (
	groupMove = iota
	groupNav
	groupFiles
	groupExternal
	groupCustom
)

var defaults = []bindingDef{
	{"down", MoveCursor{Next}, []string{"j", "down"}, "down", groupMove},
	{"up", MoveCursor{Prev}, []string{"k", "up"}, "up", groupMove},
	{"top", MoveCursor{First}, []string{"g", "home"}, "top", groupMove},
	{"bottom", MoveCursor{Last}, []string{"G", "end"}, "bottom", groupMove},
	{"search", StartSearch{}, []string{"/"}, "search", groupMove},
	{"search-next", Search{}, []string{"n"}, "next match", groupMove},

	{"enter", NavigateSelected{}, []string{"l", "right", "enter"}, "open", groupNav},
	{"parent", NavigateParent{}, []string{"h", "left", "backspace"}, "parent", groupNav},
	{"undo", HistoryOp{Undo}, []string{"u"}, "back", groupNav},
	{"redo", HistoryOp{Redo}, []string{"U", "ctrl+r"}, "forward", groupNav},
	{"command", StartColon{}, []string{":"}, "command", groupNav},

	{"new-file", CreateContent{listing.File}, []string{"a"}, "new file", groupFiles},
	{"new-dir", CreateContent{listing.Directory}, []string{"A"}, "new dir", groupFiles},
	{"rename", ModifySelected{Rename}, []string{"r"}, "rename", groupFiles},
	{"remove", ModifySelected{Remove}, []string{"D"}, "remove", groupFiles},
	{"copy", ToClipboard{clipboard.Replicate}, []string{"y"}, "copy", groupFiles},
	{"cut", ToClipboard{clipboard.Move}, []string{"x"}, "cut", groupFiles},
	{"paste", PasteClipboard{}, []string{"p"}, "paste", groupFiles},

	{"preview", External{Action: Preview}, []string{"v"}, "page", groupExternal},
	{"edit", External{Action: Edit}, []string{"e"}, "edit", groupExternal},
	{"open", External{Action: Open}, []string{"o"}, "open with", groupExternal},
	{"shell", External{Action: Shell}, []string{"!"}, "shell", groupExternal},
	{"yank-path", YankPath{}, []string{"Y"}, "yank path", groupExternal},
}

func newKey(keys []string, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(keys, "/"), desc))
}

// DefaultKeyMap returns the built-in bindings
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Help: newKey([]string{"?"}, "help"),
		Quit: newKey([]string{"ctrl+c"}, "quit"),
	}
	for _, s := range defaults {
		km.bindings = append(km.bindings, Binding{
			Name:    s.name,
			Key:     newKey(s.keys, s.desc),
			Command: s.command,
			group:   s.group,
		})
	}
	return km
}

// Lookup returns the built-in command called name
func Lookup(name string) (Command, bool) {
	for _, s := range defaults {
		if s.name == name {
			return s.command, true
		}
	}
	return nil, false
}

// Names lists the built-in command names in help order
func Names() []string {
	names := make([]string, len(defaults))
	for i, s := range defaults {
		names[i] = s.name
	}
	return names
}

// Resolve returns the command bound to k, a key name as produced by
// tea.KeyMsg.String().
func (km KeyMap) Resolve(k string) (Command, bool) {
	for _, b := range km.bindings {
		if b.Key.Enabled() && slices.Contains(b.Key.Keys(), k) {
			return b.Command, true
		}
	}
	return nil, false
}

// Bindings returns a copy of the bindings in resolution order
func (km KeyMap) Bindings() []Binding {
	return slices.Clone(km.bindings)
}

// Rebind replaces the keys of the command called name. The keys are taken
// away from any other binding that had them.
func (km *KeyMap) Rebind(name string, keys []string) error {
	idx := slices.IndexFunc(km.bindings, func(b Binding) bool { return b.Name == name })
	if idx < 0 {
		return fmt.Errorf("unknown command %q", name)
	}
	if len(keys) == 0 {
		return fmt.Errorf("no keys for %q", name)
	}
	km.release(keys)
	desc := km.bindings[idx].Key.Help().Desc
	km.bindings[idx].Key = newKey(keys, desc)
	return nil
}

// AddSequence binds keys to a compound command built from command names:
// any number of immediate commands, optionally ending in one that prompts.
func (km *KeyMap) AddSequence(keys []string, names []string) error {
	seq, err := ParseSequence(names)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("no keys for sequence %v", names)
	}
	km.release(keys)
	b := Binding{
		Name:    strings.Join(names, ","),
		Key:     newKey(keys, strings.Join(names, " → ")),
		Command: seq,
		group:   groupCustom,
	}
	km.bindings = append([]Binding{b}, km.bindings...)
	return nil
}

// ParseSequence builds a Sequence from command names
func ParseSequence(names []string) (Sequence, error) {
	var seq Sequence
	if len(names) == 0 {
		return seq, fmt.Errorf("empty sequence")
	}
	for i, name := range names {
		cmd, ok := Lookup(name)
		if !ok {
			return seq, fmt.Errorf("unknown command %q", name)
		}
		switch c := cmd.(type) {
		case NoInput:
			seq.Steps = append(seq.Steps, c)
		case WithInput:
			if i != len(names)-1 {
				return seq, fmt.Errorf("%q prompts for input and must come last", name)
			}
			seq.Then = c
		default:
			return seq, fmt.Errorf("%q cannot be part of a sequence", name)
		}
	}
	return seq, nil
}

// release removes keys from every binding that holds them
func (km *KeyMap) release(keys []string) {
	for i := range km.bindings {
		b := &km.bindings[i]
		kept := slices.DeleteFunc(slices.Clone(b.Key.Keys()), func(k string) bool {
			return slices.Contains(keys, k)
		})
		if len(kept) == len(b.Key.Keys()) {
			continue
		}
		if len(kept) == 0 {
			b.Key.SetEnabled(false)
			continue
		}
		b.Key = newKey(kept, b.Key.Help().Desc)
	}
}

// ShortHelp implements help.KeyMap
func (km KeyMap) ShortHelp() []key.Binding {
	short := []key.Binding{km.Help}
	for _, name := range []string{"enter", "parent", "search", "command"} {
		for _, b := range km.bindings {
			if b.Name == name && b.Key.Enabled() {
				short = append(short, b.Key)
			}
		}
	}
	return short
}

// FullHelp implements help.KeyMap
func (km KeyMap) FullHelp() [][]key.Binding {
	columns := make([][]key.Binding, groupCustom+1)
	for _, b := range km.bindings {
		if b.Key.Enabled() {
			columns[b.group] = append(columns[b.group], b.Key)
		}
	}
	columns[groupNav] = append(columns[groupNav], km.Help, km.Quit)

	out := columns[:0]
	for _, col := range columns {
		if len(col) > 0 {
			out = append(out, col)
		}
	}
	return out
}
