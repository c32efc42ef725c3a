package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for commands the user should run and for project names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "written" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "patched" file status and warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for error messages.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for tree descriptions and other chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project slugs, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleCommand styles shell commands in the completion instructions.
	StyleCommand = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleBold styles headings such as the tree root.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleError styles user-facing error messages.
	StyleError = lipgloss.NewStyle().Foreground(ColorBoldRed)
)

// File status constants used in run reports.
const (
	StatusWritten = "written"
	StatusCopied  = "copied"
	StatusPatched = "patched"
	StatusSkipped = "skipped"
)

// StatusStyle returns the lipgloss style for a file status.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusWritten, StatusCopied:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusPatched:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCommand renders a shell command the user should run next.
func FormatCommand(cmd string) string {
	return StyleCommand.Render(cmd)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatWarning renders a yellow warning marker with a message.
func FormatWarning(msg string) string {
	mark := lipgloss.NewStyle().Foreground(ColorYellow).Render("!")
	return mark + " " + msg
}

// FormatStatuses joins statuses, each in its own style.
func FormatStatuses(statuses ...string) string {
	parts := make([]string, 0, len(statuses))
	for _, s := range statuses {
		parts = append(parts, StatusStyle(s).Render(s))
	}
	return strings.Join(parts, ", ")
}
