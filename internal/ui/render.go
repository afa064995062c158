package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/vtstream-dev/vtstream/internal/vtparse"
)

// StatusLine formats a one-line, colored summary of the most recently
// classified control sequence, for a status bar under a live session.
func StatusLine(kind vtparse.ControlSequenceType, params []string) string {
	if kind == "" {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(Primary).Bold(true).Render(string(kind))
	if len(params) == 0 {
		return fmt.Sprintf("vtstream: %s", label)
	}
	args := lipgloss.NewStyle().Foreground(Muted).Render(fmt.Sprintf("%v", params))
	return fmt.Sprintf("vtstream: %s %s", label, args)
}

// TransientPreview renders the in-progress text run, truncated to at
// most width terminal columns without splitting a grapheme cluster.
func TransientPreview(text string, width int) string {
	if width <= 0 {
		return ""
	}
	truncated := truncateToWidth(text, width)
	return lipgloss.NewStyle().Foreground(Secondary).Render(truncated)
}

func truncateToWidth(s string, width int) string {
	var out []byte
	col := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		var boundaries int
		cluster, s, boundaries, state = uniseg.StepString(s, state)
		clusterWidth := boundaries >> uniseg.ShiftWidth
		if col+clusterWidth > width {
			break
		}
		out = append(out, cluster...)
		col += clusterWidth
	}
	return string(out)
}
