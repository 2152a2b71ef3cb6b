// Package ui is the planner's small CLI theme: a handful of reusable
// lipgloss styles and rendering helpers.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cPrimary = lipgloss.Color("39")  // blue
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true)
)

// Heading renders a bold section heading.
func Heading(title string) string {
	return Title.Render(title)
}

// LabelValue renders a "label: value" pair with a bold label.
func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Checkbox renders a completion marker.
func Checkbox(done bool) string {
	if done {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}

// CapacityText colors a capacity percentage by its status band.
func CapacityText(percent int, status string) string {
	text := fmt.Sprintf("%d%%", percent)
	switch status {
	case "danger":
		return Bad.Render(text)
	case "warning":
		return Warn.Render(text)
	default:
		return Good.Render(text)
	}
}

// Bar renders a vertical value as a horizontal bar of the given width.
func Bar(width int) string {
	if width < 0 {
		width = 0
	}
	return Title.Render(strings.Repeat("█", width))
}
