package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// renderRows lays out label/value pairs in two aligned columns.
func renderRows(rows [][2]string) string {
	width := 0
	for _, row := range rows {
		if w := lipgloss.Width(row[0]); w > width {
			width = w
		}
	}

	var b strings.Builder
	label := labelStyle.Width(width + 2)
	for _, row := range rows {
		value := row[1]
		if value == "" {
			value = mutedStyle.Render("-")
		} else {
			value = valueStyle.Render(value)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render(row[0]), value))
		b.WriteString("\n")
	}
	return b.String()
}
