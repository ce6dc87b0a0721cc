package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LFroesch/rover/internal/mode"
	"github.com/LFroesch/rover/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("240")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	dirStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("105"))
	fileStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var body string
	if m.showHelp {
		body = m.renderHelpView()
	} else {
		body = m.renderFileList()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderStatusBar(),
		m.renderBottomLine(),
	)
}

func (m *model) renderHeader() string {
	width := m.getSafeWidth()
	prefix := "🧭 rover - "
	room := width - 2 - lipgloss.Width(prefix)
	title := prefix + utils.TruncateLeft(m.session.Dir(), room)
	return titleStyle.Width(width).Render(title)
}

// renderFileList renders the visible window of the listing
func (m *model) renderFileList() string {
	width := m.getSafeWidth()
	rows := m.getContentHeight()
	c := m.session.Cursor()
	entries := c.Entries()

	clipPath, clipped := m.session.Clipboard().Content()
	clipMode := m.session.Clipboard().Mode()

	lines := make([]string, 0, rows)
	for i := m.scroll; i < len(entries) && len(lines) < rows; i++ {
		e := entries[i]
		name := e.Name
		if e.IsDir() && !e.IsAnchor() {
			name += "/"
		}

		var marker string
		if clipped && filepath.Join(m.session.Dir(), e.Name) == clipPath {
			marker = " [" + clipMode.String() + "]"
		}

		icon := utils.GetEntryIcon(e.Name, e.IsDir())
		room := width - lipgloss.Width(icon) - lipgloss.Width(marker) - 3
		line := fmt.Sprintf(" %s %s", icon, utils.Truncate(name, room))

		switch {
		case i == c.Index():
			line = selectedStyle.Render(utils.PadRight(line+marker, width))
		case e.IsDir():
			line = dirStyle.Render(line) + dimStyle.Render(marker)
		default:
			line = fileStyle.Render(line) + dimStyle.Render(marker)
		}
		lines = append(lines, line)
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m *model) renderStatusBar() string {
	width := m.getSafeWidth()
	c := m.session.Cursor()

	statusText := fmt.Sprintf("%d/%d", c.Index()+1, c.Len())
	if path, ok := m.session.Clipboard().Content(); ok {
		statusText += fmt.Sprintf(" | %s: %s", m.session.Clipboard().Mode(), filepath.Base(path))
	}
	if q := m.session.LastQuery(); q != "" {
		statusText += " | /" + q
	}
	if msg := m.session.Status(); msg != "" {
		statusText += " | " + msg
	}

	rightSide := "? for help"
	room := width - 2 - lipgloss.Width(rightSide) - 1
	statusText = utils.Truncate(statusText, room)
	padding := room - lipgloss.Width(statusText) + 1
	if padding < 1 {
		padding = 1
	}

	return statusStyle.Width(width).Render(statusText + strings.Repeat(" ", padding) + rightSide)
}

// renderBottomLine shows the command line or prompt, or short help
func (m *model) renderBottomLine() string {
	switch m.session.Mode().(type) {
	case mode.Colon:
		if m.session.SearchMissed() {
			return missStyle.Render(m.prompt.View())
		}
		return m.prompt.View()
	case mode.Input:
		return m.prompt.View()
	default:
		m.help.ShowAll = false
		return m.help.View(m.keys)
	}
}

func (m *model) renderHelpView() string {
	m.help.ShowAll = true
	body := m.help.View(m.keys)
	return lipgloss.NewStyle().
		Height(m.getContentHeight()).
		MaxHeight(m.getContentHeight()).
		Padding(0, 1).
		Render(body)
}
