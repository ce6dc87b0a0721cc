package mode

import "strings"

// MetaKind is what a command-line buffer resolves to on Enter.
type MetaKind int

const (
	MetaUnknown MetaKind = iota
	MetaQuit
	MetaRun
	MetaSearch
	MetaChangeDir
)

// Meta is a parsed command line
type Meta struct {
	Kind MetaKind
	Arg  string
}

// ParseMeta resolves a Colon buffer:
//
//	:q, :quit      terminate
//	:run <cmd>     run cmd through the shell, then refresh
//	:cd <path>     change directory
//	/<query>       search
func ParseMeta(buffer string) Meta {
	if strings.HasPrefix(buffer, "/") {
		return Meta{Kind: MetaSearch, Arg: buffer[1:]}
	}
	if !strings.HasPrefix(buffer, ":") {
		return Meta{}
	}

	line := strings.TrimSpace(buffer[1:])
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "q", "quit":
		if arg == "" {
			return Meta{Kind: MetaQuit}
		}
	case "run", "!":
		if arg != "" {
			return Meta{Kind: MetaRun, Arg: arg}
		}
	case "cd":
		if arg != "" {
			return Meta{Kind: MetaChangeDir, Arg: arg}
		}
	}
	return Meta{}
}
