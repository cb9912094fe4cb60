package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/foresight/internal/engine"
)

// Theme contains the visual styles used by the printer.
type Theme struct {
	// Tile colors, indexed by engine.Color
	Tiles [engine.ColorCount]lipgloss.Style
	Stone lipgloss.Style
	Empty lipgloss.Style

	// Prediction outcomes
	Correct lipgloss.Style
	Wrong   lipgloss.Style

	// Text styles
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
}

// DefaultTheme returns the default visual theme bound to a renderer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Tiles: [engine.ColorCount]lipgloss.Style{
			engine.ColorRed:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			engine.ColorGreen:  r.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
			engine.ColorBlue:   r.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
			engine.ColorYellow: r.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
			engine.ColorPurple: r.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),
		},
		Stone: r.NewStyle().Foreground(lipgloss.Color("244")), // Gray
		Empty: r.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray

		Correct: r.NewStyle().Foreground(lipgloss.Color("46")),
		Wrong:   r.NewStyle().Foreground(lipgloss.Color("88")), // Dark red

		Title: r.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Label: r.NewStyle().Foreground(lipgloss.Color("245")),
		Value: r.NewStyle().Foreground(lipgloss.Color("255")),
	}
}
