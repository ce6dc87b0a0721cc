package utils

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestGetEntryIcon(t *testing.T) {
	tests := []struct {
		name  string
		isDir bool
		want  string
	}{
		{"..", true, "📂"},
		{"src", true, "📁"},
		{"main.go", false, "🐹"},
		{"README.MD", false, "📝"},
		{"noext", false, "📄"},
	}
	for _, tt := range tests {
		if got := GetEntryIcon(tt.name, tt.isDir); got != tt.want {
			t.Errorf("GetEntryIcon(%q, %v) = %q, want %q", tt.name, tt.isDir, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate kept %q", got)
	}
	if got := Truncate("a-very-long-name.txt", 8); runewidth.StringWidth(got) > 8 {
		t.Errorf("Truncate(…, 8) = %q is %d cells", got, runewidth.StringWidth(got))
	}
	if got := Truncate("日本語のファイル", 6); runewidth.StringWidth(got) > 6 {
		t.Errorf("wide runes not counted: %q", got)
	}
	if got := Truncate("x", 0); got != "" {
		t.Errorf("Truncate to zero = %q", got)
	}
}

func TestTruncateLeft(t *testing.T) {
	got := TruncateLeft("/home/user/projects/rover", 10)
	if runewidth.StringWidth(got) > 10 {
		t.Errorf("TruncateLeft = %q is %d cells", got, runewidth.StringWidth(got))
	}
	if got[len(got)-5:] != "rover" {
		t.Errorf("TruncateLeft lost the tail: %q", got)
	}
	if got := TruncateLeft("/tmp", 10); got != "/tmp" {
		t.Errorf("TruncateLeft changed a short path: %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
}

func TestCommandExists(t *testing.T) {
	if CommandExists("definitely-not-a-real-command-xyz") {
		t.Error("expected missing command")
	}
}
