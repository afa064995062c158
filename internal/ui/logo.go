package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var logoLines = []string{
	` __    __ _____ _____ ___  ___  ___   __  __`,
	`\ \  / /|_   _/ ____|_   _| _ \/ __| |  \/  |`,
	` \ \/ /   | | \___ \  | | | |  \__ \ | |\/| |`,
	`  \  /   _| |_ ___) | | | | |\\__) || |  | |`,
	`   \/   |_____|____/  |_| |_|  |___/ |_|  |_|`,
	`                                              `,
}

// LogoFrame renders a single animated frame, cycling foreground colors
// down the palette by line and frame offset.
func LogoFrame(frame int) string {
	lines := make([]string, len(logoLines))
	for i, line := range logoLines {
		color := Palette[(frame+i)%len(Palette)]
		lines[i] = lipgloss.NewStyle().Foreground(color).Render(line)
	}
	return strings.Join(lines, "\n")
}

// LogoStatic renders the logo in a single badge color, for one-shot
// output like `vtstream version`.
func LogoStatic(badge lipgloss.Color) string {
	lines := make([]string, len(logoLines))
	style := lipgloss.NewStyle().Foreground(badge)
	for i, line := range logoLines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
