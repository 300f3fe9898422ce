package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const asciiLogo = `
  ___ _                 __                _   
 / __| |_ ___ _ _ ___  / _|_ _ ___ _ _ | |_ 
 \__ \  _/ _ \ '_/ -_)|  _| '_/ _ \ ' \|  _|
 |___/\__\___/_| \___||_| |_| \___/_||_|\__|
`

// GenerateLogo returns the gradient styled logo
func GenerateLogo() string {
	lines := strings.Split(strings.Trim(asciiLogo, "\n"), "\n")
	colors := []string{"#00BFFF", "#4169E1", "#8A2BE2", "#FF00FF"}

	var coloredLines []string
	for i, line := range lines {
		color := "#FFF"
		if i < len(colors) {
			color = colors[i]
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
		coloredLines = append(coloredLines, style.Render(line))
	}

	return strings.Join(coloredLines, "\n")
}
