package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	Title        lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Owner        lipgloss.Style
	Date         lipgloss.Style
	Body         lipgloss.Style
	Media        lipgloss.Style
	PageNum      lipgloss.Style
	PageActive   lipgloss.Style
	Ellipsis     lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
	Error        lipgloss.Style
	Status       lipgloss.Style
	Modal        lipgloss.Style
	HintKey      lipgloss.Style
	HintDesc     lipgloss.Style
	QuizPrompt   lipgloss.Style
	QuizOk       lipgloss.Style
	QuizFail     lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Grayscale with a single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	danger := lipgloss.AdaptiveColor{Light: "#8B4A4A", Dark: "#A05F5F"}
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Tab: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Item: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Owner: lipgloss.NewStyle().
			Foreground(subtle),

		Date: lipgloss.NewStyle().
			Foreground(subtle),

		Body: lipgloss.NewStyle().
			Foreground(primary),

		Media: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),

		PageNum: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 1),

		PageActive: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1),

		Ellipsis: lipgloss.NewStyle().
			Foreground(subtle),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		Error: lipgloss.NewStyle().
			Foreground(danger),

		Status: lipgloss.NewStyle().
			Foreground(subtle),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(1, 2),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		QuizPrompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(1, 2),

		QuizOk: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		QuizFail: lipgloss.NewStyle().
			Foreground(danger).
			Bold(true),
	}
}
