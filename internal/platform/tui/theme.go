package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles drawn around the board.
type Theme struct {
	// Toast line under the board
	Toast      lipgloss.Style
	ToastAlert lipgloss.Style

	// Help bar
	Help lipgloss.Style

	// Difficulty picker and scoreboard
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	Muted           lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Toast:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		ToastAlert: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Muted:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
