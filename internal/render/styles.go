// Package render turns a loaded manifest into terminal cards or structured output.
package render

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	accentColor  = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	linkColor    = lipgloss.AdaptiveColor{Light: "#1F6FEB", Dark: "#58A6FF"}

	// TitleStyle is used for the site title
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// SubtitleStyle is used for section headers and item titles
	SubtitleStyle = lipgloss.NewStyle().
			Bold(true)

	// DescriptionStyle is used for descriptions and placeholders
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// LabelStyle is used for field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(9)

	// LinkStyle is used for URLs
	LinkStyle = lipgloss.NewStyle().
			Foreground(linkColor).
			Underline(true)

	// TagStyle is used for tag chips
	TagStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	// CardStyle is used for bordered item cards
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	// HeaderStyle is used for the overview box
	HeaderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)
)

// swatch renders a colored block for a theme hex code
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
}
