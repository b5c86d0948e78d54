package render

import "github.com/charmbracelet/lipgloss"

// Styles groups the console styles. They are bound to a renderer so the
// colour profile follows the output stream rather than the process stdout.
type Styles struct {
	Banner  lipgloss.Style
	Digest  lipgloss.Style
	Menu    lipgloss.Style
	Hint    lipgloss.Style
	Error   lipgloss.Style
	Win     lipgloss.Style
	Lose    lipgloss.Style
	Draw    lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Border  lipgloss.Style
	Success lipgloss.Style
}

// NewStyles builds the palette for r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Banner: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),

		Digest: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),

		Menu: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),

		Hint: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),

		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		Win: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),

		Lose: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		Draw: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),

		Header: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Center),

		Cell: r.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Center),

		Border: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),

		Success: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
	}
}
