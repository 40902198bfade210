package form

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// CursorMarker is the prefix shown on the selected contact row.
const CursorMarker = "▸ "

// MinColumnWidth is the narrowest a list column is allowed to get.
const MinColumnWidth = 6

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedText    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	errorText    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
	successText  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})
	selectedText = lipgloss.NewStyle().Bold(true)
)

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// ColumnWidths splits the usable row width into name, email and phone
// columns in a 4:4:3 ratio. Each column gets at least MinColumnWidth.
func ColumnWidths(totalWidth int) (nome, email, telefone int) {
	// Two single-space gaps between the three columns.
	usable := totalWidth - 2
	if usable < 3*MinColumnWidth {
		return MinColumnWidth, MinColumnWidth, MinColumnWidth
	}
	nome = usable * 4 / 11
	email = usable * 4 / 11
	telefone = usable - nome - email
	return nome, email, telefone
}

// cell truncates s to width and pads it so columns line up.
func cell(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(ansi.Truncate(s, width, "…"))
}
