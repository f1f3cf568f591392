// Package ui renders diagnostics through named lipgloss styles, instead of raw ANSI escapes, so color can be disabled
// wholesale via config or NO_COLOR.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	MutedStyle   lipgloss.Style
	CommandStyle lipgloss.Style
)

func init() {
	SetColorEnabled(colorDefault())
}

// colorDefault honors NO_COLOR per https://no-color.org before any config
// has been loaded.
func colorDefault() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return !set
}

// SetColorEnabled rebuilds the style set, either with the terminal's
// detected palette or as a profile that renders no escape codes at all.
func SetColorEnabled(enabled bool) {
	if !enabled {
		ErrorStyle = lipgloss.NewStyle()
		WarningStyle = lipgloss.NewStyle()
		MutedStyle = lipgloss.NewStyle()
		CommandStyle = lipgloss.NewStyle()
		return
	}

	red, peach, overlay, green := paletteFor(lipgloss.HasDarkBackground())
	ErrorStyle = lipgloss.NewStyle().Foreground(red).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(peach)
	MutedStyle = lipgloss.NewStyle().Foreground(overlay)
	CommandStyle = lipgloss.NewStyle().Foreground(green).Bold(true)
}

// paletteFor returns (error, warning, muted, command) colors, Catppuccin
// Mocha for a dark terminal background and Latte for a light one.
func paletteFor(dark bool) (red, peach, overlay, green lipgloss.Color) {
	if dark {
		return "#f38ba8", "#fab387", "#7f849c", "#a6e3a1"
	}
	return "#d20f39", "#fe640b", "#8c8fa1", "#40a02b"
}
