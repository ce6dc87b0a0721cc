package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LFroesch/rover/internal/listing"
)

var names = []string{
	".",
	"..",
	"File1.txt",
	"file2.txt",
	"document.pdf",
	"readme.md",
	"config.json",
	"Żółw.go",
}

// matchNames returns the names matching query, in order
func matchNames(strategy Strategy, query string, names []string) []string {
	pred, err := NewMatcher(strategy, query)
	if err != nil || pred == nil {
		return nil
	}
	var out []string
	for _, n := range names {
		if pred(listing.Entry{Name: n}) {
			out = append(out, n)
		}
	}
	return out
}

func TestPrefixMatchNames(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"exact match", "file1.txt", []string{"File1.txt"}},
		{"prefix match", "file", []string{"File1.txt", "file2.txt"}},
		{"case insensitive", "FILE", []string{"File1.txt", "file2.txt"}},
		{"not a substring", "ment", nil},
		{"unicode folding", "ŻÓŁ", []string{"Żółw.go"}},
		{"no match", "xyz", nil},
		{"empty query", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchNames(Prefix, tt.query, names))
		})
	}
}

func TestFuzzyMatchNames(t *testing.T) {
	assert.Equal(t, []string{"document.pdf"}, matchNames(Fuzzy, "dcpdf", names))
	assert.Equal(t, []string{"config.json"}, matchNames(Fuzzy, "CFGJ", names))
	assert.Nil(t, matchNames(Fuzzy, "..", names), "anchors never fuzzy match")
}

func TestGlobMatchNames(t *testing.T) {
	assert.Equal(t, []string{"File1.txt", "file2.txt"}, matchNames(Glob, "*.TXT", names))
	assert.Equal(t, []string{"readme.md"}, matchNames(Glob, "r?adme.*", names))
}

func TestGlobBadPattern(t *testing.T) {
	_, err := NewMatcher(Glob, "[")
	assert.Error(t, err)
}

func TestEmptyQueryHasNoPredicate(t *testing.T) {
	pred, err := NewMatcher(Prefix, "")
	require.NoError(t, err)
	assert.Nil(t, pred)
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]Strategy{"": Prefix, "prefix": Prefix, " Fuzzy ": Fuzzy, "glob": Glob} {
		got, err := ParseStrategy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := ParseStrategy("regex")
	assert.Error(t, err)
	assert.Equal(t, Prefix, got)
}
