package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - cycles
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleOK for acyclic/success output.
	StyleOK = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleCycle for multi-vertex components.
	StyleCycle = lipgloss.NewStyle().Bold(true).Foreground(colorRed)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
)

// formatComponent renders one component for terminal output. Singletons
// print as the bare vertex; multi-vertex components are joined and flagged
// as a cycle.
func formatComponent(index int, comp []string) string {
	prefix := StyleDim.Render(fmt.Sprintf("%3d.", index+1))
	if len(comp) == 1 {
		return fmt.Sprintf("%s %s", prefix, comp[0])
	}
	joined := strings.Join(comp, " <-> ")
	return fmt.Sprintf("%s %s %s", prefix, StyleCycle.Render(joined), StyleDim.Render("(cycle)"))
}
