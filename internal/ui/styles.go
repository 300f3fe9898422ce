package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used across the TUI.

var (
	appStyle = lipgloss.NewStyle().Margin(0, 1)

	// Header
	brandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true).
			Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("63")).
			Padding(0, 1)

	navStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	navActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true).
			Underline(true)

	// Notices
	noticeInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray
	noticeErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")). // Red
				Bold(true)
	noticeSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46")). // Green
				Bold(true)

	// Body
	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFF")).
				Background(lipgloss.Color("63")). // Purple
				Padding(0, 1).
				MarginBottom(1)

	itemStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(0).
				Foreground(lipgloss.Color("170")) // Magenta
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	outStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4B400"))
	shippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	totalStyle    = lipgloss.NewStyle().Bold(true).MarginTop(1)
	detailStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			MarginTop(1)

	// Forms
	formStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Width(18).Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().MarginTop(1)
)
