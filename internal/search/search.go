package search

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"

	"github.com/LFroesch/rover/internal/cursor"
	"github.com/LFroesch/rover/internal/listing"
)

// Strategy selects how a query matches entry names.
type Strategy string

const (
	Prefix Strategy = "prefix"
	Fuzzy  Strategy = "fuzzy"
	Glob   Strategy = "glob"
)

// ParseStrategy maps a config value to a Strategy, defaulting to Prefix
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", Prefix:
		return Prefix, nil
	case Fuzzy:
		return Fuzzy, nil
	case Glob:
		return Glob, nil
	}
	return Prefix, fmt.Errorf("unknown search mode %q", s)
}

// NewMatcher builds the predicate for query. An empty query matches
// nothing and returns a nil predicate.
func NewMatcher(strategy Strategy, query string) (cursor.Predicate, error) {
	if query == "" {
		return nil, nil
	}

	fold := cases.Fold()
	folded := fold.String(query)

	switch strategy {
	case Fuzzy:
		return func(e listing.Entry) bool {
			if e.IsAnchor() {
				return false
			}
			return len(fuzzy.Find(folded, []string{fold.String(e.Name)})) > 0
		}, nil

	case Glob:
		g, err := glob.Compile(folded)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", query, err)
		}
		return func(e listing.Entry) bool {
			return g.Match(fold.String(e.Name))
		}, nil

	default:
		return func(e listing.Entry) bool {
			return strings.HasPrefix(fold.String(e.Name), folded)
		}, nil
	}
}
