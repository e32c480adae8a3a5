package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tsudoi-club/tsudoi/internal/collection"
	"github.com/tsudoi-club/tsudoi/internal/sanitize"
)

func (a *App) View() string {
	switch a.mode {
	case modeForm, modeConfirm:
		return a.renderModal()
	case modeHelp:
		return a.renderHelpOverlay()
	}

	var body string
	if a.active == screenQuiz {
		body = a.renderQuiz()
	} else {
		body = a.renderList()
	}

	content := a.styles.App.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		a.renderTabs(),
		"",
		body,
		a.renderStatusBar(),
		a.styles.Help.Render(a.renderHints(a.contextualHints())),
	))
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderTabs renders the screen tabs with the active one highlighted.
func (a *App) renderTabs() string {
	names := []string{"1 Board", "2 Activities", "3 Japanese", "4 Quiz"}
	parts := make([]string, len(names))
	for i, name := range names {
		if i == a.active {
			parts[i] = a.styles.TabActive.Render(name)
		} else {
			parts[i] = a.styles.Tab.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) renderList() string {
	s := a.screens[a.active]
	view := s.ctrl.View()

	var content strings.Builder

	// Search input or active-term indicator above the list.
	if a.mode == modeSearch {
		content.WriteString("/" + a.search.View() + "\n\n")
	} else if view.Term != "" {
		content.WriteString(a.styles.Owner.Render("/"+view.Term) + "\n\n")
	}

	if a.mode == modeJump {
		return content.String() + a.renderJump()
	}

	// The pre-error view stays in place; the error is a banner on top.
	if view.Err != nil {
		content.WriteString(a.styles.Error.Render("Error: " + view.Err.Error()))
		content.WriteString("  " + a.styles.Empty.Render("(r to retry)") + "\n\n")
	}

	switch {
	case len(view.Items) == 0 && view.Err != nil:
		// Banner above already explains the situation.
	case len(view.Items) == 0 && view.Loading:
		content.WriteString(a.styles.Empty.Render("Loading..."))
	case len(view.Items) == 0 && view.Term != "":
		content.WriteString(a.styles.Empty.Render("(no matches)"))
	case len(view.Items) == 0:
		content.WriteString(a.styles.Empty.Render("(no posts yet)"))
	default:
		for i, item := range view.Items {
			selected := i == s.cursor
			title := item.Title
			if selected {
				content.WriteString(a.styles.ItemSelected.Render(title))
			} else {
				content.WriteString(a.styles.Item.Render(title))
			}
			content.WriteString("\n")

			meta := a.styles.Owner.Render(item.Owner) + "  " +
				a.styles.Date.Render(item.CreatedAt.Format("2006-01-02"))
			if item.MediaRef != "" {
				meta += "  " + a.styles.Media.Render("[media]")
			}
			content.WriteString(" " + meta + "\n")

			if selected && item.Body != "" {
				body := sanitize.PlainText(item.Body)
				content.WriteString(" " + a.styles.Body.Render(truncate(body, 72)) + "\n")
			}
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(a.renderPagination(view))
	return content.String()
}

// renderPagination renders the page markers plus a count summary, e.g.
// "1 … 4 5 6 … 9   page 5/9 · 87 posts".
func (a *App) renderPagination(view collection.ViewState) string {
	if view.TotalPages == 0 {
		return a.styles.Empty.Render("0 posts")
	}

	var bar strings.Builder
	for _, m := range view.Window {
		if m.Ellipsis {
			bar.WriteString(a.styles.Ellipsis.Render("…"))
			continue
		}
		num := strconv.Itoa(m.Page)
		if m.Page == view.CurrentPage {
			bar.WriteString(a.styles.PageActive.Render(num))
		} else {
			bar.WriteString(a.styles.PageNum.Render(num))
		}
	}

	summary := fmt.Sprintf("page %d/%d · %d posts", view.CurrentPage, view.TotalPages, view.TotalItems)
	if view.Loading {
		summary += " · loading"
	}
	return bar.String() + "  " + a.styles.Status.Render(summary)
}

func (a *App) renderJump() string {
	var content strings.Builder
	content.WriteString("> " + a.jump.Input.View() + "\n\n")

	if len(a.jump.Matches) == 0 {
		content.WriteString(a.styles.Empty.Render("No matches"))
		return content.String()
	}

	const maxVisible = 10
	for i, m := range a.jump.Matches {
		if i >= maxVisible {
			content.WriteString(a.styles.Empty.Render(
				fmt.Sprintf("  ... and %d more", len(a.jump.Matches)-maxVisible)) + "\n")
			break
		}
		if i == a.jump.Cursor {
			content.WriteString(a.styles.ItemSelected.Render("▸ " + m.Item.Title))
		} else {
			content.WriteString(a.styles.Item.Render("  " + m.Item.Title))
		}
		content.WriteString("\n")
	}
	return content.String()
}

func (a *App) renderQuiz() string {
	q := a.quiz
	var content strings.Builder

	switch {
	case q.loading:
		content.WriteString(a.styles.Empty.Render("Loading questions..."))
	case q.err != nil:
		content.WriteString(a.styles.Error.Render("Error: " + q.err.Error()))
		content.WriteString("\n")
		content.WriteString(a.styles.Empty.Render("Press r to retry"))
	case len(q.questions) == 0:
		content.WriteString(a.styles.Empty.Render("(no questions yet, press a to add one)"))
	case !q.drawn:
		content.WriteString(a.styles.Empty.Render("Press n to draw a question"))
	default:
		content.WriteString(a.styles.QuizPrompt.Render(q.current.Prompt))
		content.WriteString("\n\n")
		content.WriteString(q.input.View())
		content.WriteString("\n\n")
		switch q.result {
		case resultOk:
			content.WriteString(a.styles.QuizOk.Render("Correct!"))
		case resultFail:
			content.WriteString(a.styles.QuizFail.Render("Not quite. Answer: " + q.current.Answer))
		}
		content.WriteString("\n\n")
		content.WriteString(a.styles.Empty.Render(
			fmt.Sprintf("%d questions · by %s", len(q.questions), q.current.Author)))
	}
	return content.String()
}

func (a *App) renderStatusBar() string {
	if a.status == "" {
		return ""
	}
	return a.styles.Status.Render(a.status)
}

// renderModal renders the form and delete-confirm dialogs centered over
// the screen.
func (a *App) renderModal() string {
	var title, content strings.Builder

	switch a.mode {
	case modeForm:
		switch {
		case a.active == screenQuiz && a.form.EditID != 0:
			title.WriteString("Edit Question\n\n")
		case a.active == screenQuiz:
			title.WriteString("Add Question\n\n")
		case a.form.EditID != 0:
			title.WriteString("Edit Post\n\n")
		default:
			title.WriteString("New Post\n\n")
		}

		labels := []string{"Title:", "Body:", "Media:"}
		if a.active == screenQuiz {
			labels = []string{"Question:", "Answer:"}
		}
		inputs := a.formInputs()
		for i, input := range inputs {
			content.WriteString(labels[i] + "\n")
			content.WriteString(input.View())
			if i < len(inputs)-1 {
				content.WriteString("\n\n")
			}
		}

	case modeConfirm:
		if a.confirm.Quiz {
			title.WriteString("Delete Question?\n\n")
		} else {
			title.WriteString("Delete Post?\n\n")
		}
		content.WriteString("\"" + truncate(a.confirm.Title, 48) + "\"\n\n")
		content.WriteString(a.styles.Help.Render("This action cannot be undone.") + "\n\n")
		content.WriteString(a.renderHintsInline([]Hint{
			{Key: "Enter", Desc: "confirm"},
			{Key: "Esc", Desc: "cancel"},
		}))
	}

	modal := a.styles.Modal.Render(a.styles.Title.Render(title.String()) + content.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderHelpOverlay renders the full key reference.
func (a *App) renderHelpOverlay() string {
	var left strings.Builder
	left.WriteString(a.styles.Title.Render("nav") + "\n")
	left.WriteString("j/k  move\n")
	left.WriteString("h/l  prev/next page\n")
	left.WriteString("g    first page\n")
	left.WriteString("G    last page\n")
	left.WriteString("1-4  switch screen\n")
	left.WriteString("Tab  next screen\n")
	left.WriteString("\n")
	left.WriteString(a.styles.Title.Render("find") + "\n")
	left.WriteString("/    search\n")
	left.WriteString("s    fuzzy jump\n")
	left.WriteString("r    refresh\n")

	var right strings.Builder
	right.WriteString(a.styles.Title.Render("edit") + "\n")
	right.WriteString("a    add\n")
	right.WriteString("e    edit\n")
	right.WriteString("d    delete\n")
	right.WriteString("Y    yank media link\n")
	right.WriteString("\n")
	right.WriteString(a.styles.Title.Render("quiz") + "\n")
	right.WriteString("n    draw question\n")
	right.WriteString("Enter check answer\n")
	right.WriteString("\n")
	right.WriteString(a.styles.Help.Render("[?/esc] close  [q] quit"))

	leftCol := lipgloss.NewStyle().Width(26).Render(left.String())
	rightCol := lipgloss.NewStyle().Width(26).Render(right.String())
	cols := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "  ", rightCol)

	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 2).Render(cols))
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
