package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/tsudoi-club/tsudoi/internal/collection"
	"github.com/tsudoi-club/tsudoi/internal/model"
)

// mode is the app's interaction mode. Exactly one is active at a time;
// everything but modeNormal renders on top of, or instead of, the list.
type mode int

const (
	modeNormal mode = iota
	modeSearch      // typing in the search input
	modeJump        // fuzzy jump across loaded items
	modeForm        // create/edit form
	modeConfirm     // delete confirmation
	modeHelp
)

// listScreen is one paginated collection screen. Each screen owns its
// controller and a context that is cancelled when the user navigates
// away, so a late response cannot touch another screen's state.
type listScreen struct {
	col    model.Collection
	ctrl   *collection.Controller
	cursor int
	loaded bool // at least one fetch has been issued

	ctx    context.Context
	cancel context.CancelFunc
}

func newListScreen(col model.Collection, m collection.Mode, pageSize int) *listScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &listScreen{
		col:    col,
		ctrl:   collection.New(m, pageSize),
		ctx:    ctx,
		cancel: cancel,
	}
}

// abort cancels any in-flight fetch and arms a fresh context for the
// next one.
func (s *listScreen) abort() {
	s.cancel()
	s.ctx, s.cancel = context.WithCancel(context.Background())
}

// clampCursor keeps the cursor inside the visible slice after the page
// contents changed under it.
func (s *listScreen) clampCursor() {
	n := len(s.ctrl.View().Items)
	if n == 0 {
		s.cursor = 0
		return
	}
	if s.cursor >= n {
		s.cursor = n - 1
	}
}

// selected returns the item under the cursor, or false when the page is
// empty.
func (s *listScreen) selected() (model.Item, bool) {
	items := s.ctrl.View().Items
	if len(items) == 0 || s.cursor >= len(items) {
		return model.Item{}, false
	}
	return items[s.cursor], true
}

// formState holds the create/edit form. For list screens the fields are
// title/body/media; the quiz reuses title for the prompt and body for
// the answer.
type formState struct {
	Title  textinput.Model
	Body   textinput.Model
	Media  textinput.Model
	Focus  int   // index of the focused input
	EditID int64 // 0 = creating
}

func newFormState() formState {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 120
	title.Width = 48

	body := textinput.New()
	body.Placeholder = "Body"
	body.CharLimit = 2000
	body.Width = 48

	media := textinput.New()
	media.Placeholder = "Media file path (optional)"
	media.CharLimit = 256
	media.Width = 48

	return formState{Title: title, Body: body, Media: media}
}

// Reset clears the form for a new session and restores the default
// placeholders, which the quiz form overrides.
func (f *formState) Reset() {
	f.Title.Reset()
	f.Body.Reset()
	f.Media.Reset()
	f.Title.Placeholder = "Title"
	f.Body.Placeholder = "Body"
	f.Focus = 0
	f.EditID = 0
}

// inputs returns the form's inputs in focus order. The media field is
// only offered for collections that carry attachments.
func (f *formState) inputs(withMedia bool) []*textinput.Model {
	if withMedia {
		return []*textinput.Model{&f.Title, &f.Body, &f.Media}
	}
	return []*textinput.Model{&f.Title, &f.Body}
}

// confirmState holds the pending delete.
type confirmState struct {
	ItemID int64
	Title  string
	Quiz   bool // deleting the drawn quiz question instead of a list item
}

// jumpState holds the fuzzy jump input and its current matches.
type jumpState struct {
	Input   textinput.Model
	Matches []jumpMatch
	Cursor  int
}

type jumpMatch struct {
	Index int // index into the visible+loaded item list
	Item  model.Item
}

func newJumpState() jumpState {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "Jump to..."
	input.CharLimit = 64
	input.Width = 32
	return jumpState{Input: input}
}

// Reset clears the jump state for a new session.
func (j *jumpState) Reset() {
	j.Input.Reset()
	j.Matches = nil
	j.Cursor = 0
}

// quizScreen holds the special screen: the drawn question, the answer
// input, and the pass/fail feedback for the last submission.
type quizScreen struct {
	questions []model.Question
	current   model.Question
	drawn     bool
	input     textinput.Model
	result    string // "", resultOk or resultFail
	loading   bool
	err       error

	ctx    context.Context
	cancel context.CancelFunc
}

const (
	resultOk   = "success"
	resultFail = "fail"
)

func newQuizScreen() *quizScreen {
	input := textinput.New()
	input.Placeholder = "Answer..."
	input.CharLimit = 200
	input.Width = 48

	ctx, cancel := context.WithCancel(context.Background())
	return &quizScreen{input: input, ctx: ctx, cancel: cancel}
}

func (q *quizScreen) abort() {
	q.cancel()
	q.ctx, q.cancel = context.WithCancel(context.Background())
}
