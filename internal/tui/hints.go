package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "save")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a *App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for the bottom bar:
// "j/k:move h/l:page /:search"
func (a *App) renderHints(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals:
// "Enter confirm  Esc cancel"
func (a *App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// contextualHints returns the hints for the current mode and screen.
func (a *App) contextualHints() []Hint {
	switch a.mode {
	case modeSearch:
		return []Hint{
			{Key: "type", Desc: "search"},
			{Key: "Enter", Desc: "apply"},
			{Key: "Esc", Desc: "clear"},
		}
	case modeJump:
		return []Hint{
			{Key: "type", Desc: "match"},
			{Key: "j/k", Desc: "move"},
			{Key: "Enter", Desc: "jump"},
			{Key: "Esc", Desc: "cancel"},
		}
	case modeForm:
		return []Hint{
			{Key: "Tab", Desc: "next"},
			{Key: "Enter", Desc: "save"},
			{Key: "Esc", Desc: "cancel"},
		}
	case modeConfirm, modeHelp:
		// Hints live inside the modal itself.
		return nil
	}

	if a.active == screenQuiz {
		if a.quiz.input.Focused() {
			return []Hint{
				{Key: "type", Desc: "answer"},
				{Key: "Enter", Desc: "check"},
				{Key: "Esc", Desc: "commands"},
			}
		}
		return []Hint{
			{Key: "n", Desc: "draw"},
			{Key: "a", Desc: "add"},
			{Key: "e", Desc: "edit"},
			{Key: "d", Desc: "del"},
			{Key: "1-4", Desc: "screen"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	}
	return []Hint{
		{Key: "j/k", Desc: "move"},
		{Key: "h/l", Desc: "page"},
		{Key: "/", Desc: "search"},
		{Key: "s", Desc: "jump"},
		{Key: "a", Desc: "add"},
		{Key: "e", Desc: "edit"},
		{Key: "d", Desc: "del"},
		{Key: "1-4", Desc: "screen"},
		{Key: "?", Desc: "help"},
		{Key: "q", Desc: "quit"},
	}
}
