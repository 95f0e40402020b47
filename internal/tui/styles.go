package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/algodemo/internal/ui"
)

// Style variables for the playground.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle        lipgloss.Style
	focusedPanelStyle lipgloss.Style
	titleStyle        lipgloss.Style
	versionStyle      lipgloss.Style
	labelStyle        lipgloss.Style
	valueStyle        lipgloss.Style
	successStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	warningStyle      lipgloss.Style
	deletedStyle      lipgloss.Style
	capitalizedStyle  lipgloss.Style
	keptStyle         lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Dim).
		Foreground(t.Text).
		Padding(0, 1)

	focusedPanelStyle = panelStyle.
		BorderForeground(t.Border)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	successStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	warningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	deletedStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Strikethrough(true)

	capitalizedStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Underline(true)

	keptStyle = lipgloss.NewStyle().
		Foreground(t.Text)
}
