package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/tsudoi-club/tsudoi/internal/api"
	"github.com/tsudoi-club/tsudoi/internal/cache"
	"github.com/tsudoi-club/tsudoi/internal/collection"
	"github.com/tsudoi-club/tsudoi/internal/config"
	"github.com/tsudoi-club/tsudoi/internal/model"
	"github.com/tsudoi-club/tsudoi/internal/quiz"
)

// Screen indices. The first three are paginated list screens, the last
// is the quiz.
const (
	screenBoard = iota
	screenActivities
	screenJapanese
	screenQuiz
	screenCount
)

// App is the root bubbletea model. It owns one controller-backed screen
// per collection plus the quiz screen, and routes every async completion
// back to the screen that started it.
type App struct {
	client  *api.Client
	cache   *cache.Cache // nil when caching is disabled
	session model.Session

	keys   KeyMap
	styles Styles

	screens [3]*listScreen
	quiz    *quizScreen
	active  int

	mode    mode
	search  textinput.Model
	form    formState
	confirm confirmState
	jump    jumpState

	status string
	width  int
	height int
}

// New builds the App from an authenticated client. cacheStore may be
// nil.
func New(client *api.Client, cacheStore *cache.Cache, cfg *config.Config, session model.Session) *App {
	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "Search owner or title..."
	search.CharLimit = 64
	search.Width = 32

	return &App{
		client:  client,
		cache:   cacheStore,
		session: session,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		screens: [3]*listScreen{
			newListScreen(model.Board, collection.ModeServer, cfg.BoardPageSize),
			newListScreen(model.Activities, collection.ModeLocal, cfg.ActivitiesPageSize),
			newListScreen(model.Japanese, collection.ModeLocal, cfg.JapanesePageSize),
		},
		quiz:   newQuizScreen(),
		search: search,
		form:   newFormState(),
		jump:   newJumpState(),
	}
}

func (a *App) Init() tea.Cmd {
	return a.enterScreen(screenBoard)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case pageFetchedMsg:
		return a, a.handlePageFetched(msg)

	case cachedPageMsg:
		if msg.ok && msg.screen < len(a.screens) {
			s := a.screens[msg.screen]
			if s.ctrl.Seed(msg.res) {
				s.clampCursor()
			}
		}
		return a, nil

	case mutationDoneMsg:
		return a, a.handleMutationDone(msg)

	case questionsLoadedMsg:
		if errors.Is(msg.err, context.Canceled) {
			return a, nil
		}
		a.quiz.loading = false
		a.quiz.err = msg.err
		if msg.err == nil {
			a.quiz.questions = msg.questions
			a.drawQuestion()
		}
		return a, nil

	case questionMutatedMsg:
		if msg.err != nil {
			a.status = "quiz: " + msg.err.Error()
			return a, nil
		}
		return a, a.loadQuestionsCmd()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

// handlePageFetched routes a fetch outcome into the right controller and
// chases any follow-up request it produces.
func (a *App) handlePageFetched(msg pageFetchedMsg) tea.Cmd {
	// Leaving a screen cancels its fetch; the torn-down response must
	// not surface as an error when the user comes back.
	if msg.err != nil && errors.Is(msg.err, context.Canceled) {
		return nil
	}
	s := a.screens[msg.screen]
	follow, applied := s.ctrl.Apply(msg.token, msg.res, msg.err)
	if !applied {
		return nil
	}
	s.clampCursor()
	if follow != nil {
		return a.fetchCmd(msg.screen, *follow)
	}
	return nil
}

func (a *App) handleMutationDone(msg mutationDoneMsg) tea.Cmd {
	if msg.err != nil {
		a.status = msg.err.Error()
		return nil
	}
	s := a.screens[msg.screen]
	var req collection.Request
	switch msg.kind {
	case mutationCreate:
		a.status = "created"
		req = s.ctrl.AfterCreate()
	case mutationUpdate:
		a.status = "updated"
		req = s.ctrl.AfterUpdate()
	case mutationDelete:
		a.status = "deleted"
		req = s.ctrl.AfterDelete()
	}
	return a.fetchCmd(msg.screen, req)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeJump:
		return a.handleJumpKey(msg)
	case modeForm:
		return a.handleFormKey(msg)
	case modeConfirm:
		return a.handleConfirmKey(msg)
	case modeHelp:
		a.mode = modeNormal
		return a, nil
	}

	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}
	a.status = ""

	switch {
	case key.Matches(msg, a.keys.Screen1):
		return a, a.switchScreen(screenBoard)
	case key.Matches(msg, a.keys.Screen2):
		return a, a.switchScreen(screenActivities)
	case key.Matches(msg, a.keys.Screen3):
		return a, a.switchScreen(screenJapanese)
	case key.Matches(msg, a.keys.Screen4):
		return a, a.switchScreen(screenQuiz)
	case key.Matches(msg, a.keys.NextTab):
		return a, a.switchScreen((a.active + 1) % screenCount)
	case key.Matches(msg, a.keys.Help):
		a.mode = modeHelp
		return a, nil
	}

	if a.active == screenQuiz {
		return a.handleQuizKey(msg)
	}
	return a.handleListKey(msg)
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := a.screens[a.active]
	view := s.ctrl.View()

	switch {
	case key.Matches(msg, a.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if s.cursor < len(view.Items)-1 {
			s.cursor++
		}
	case key.Matches(msg, a.keys.PrevPage):
		s.cursor = 0
		return a, a.maybeFetch(s.ctrl.Prev())
	case key.Matches(msg, a.keys.NextPage):
		s.cursor = 0
		return a, a.maybeFetch(s.ctrl.Next())
	case key.Matches(msg, a.keys.FirstPage):
		s.cursor = 0
		return a, a.maybeFetch(s.ctrl.GoTo(1))
	case key.Matches(msg, a.keys.LastPage):
		s.cursor = 0
		return a, a.maybeFetch(s.ctrl.GoTo(view.TotalPages))
	case key.Matches(msg, a.keys.Refresh):
		return a, a.fetchCmd(a.active, s.ctrl.Refresh())
	case key.Matches(msg, a.keys.Search):
		a.mode = modeSearch
		a.search.SetValue(s.ctrl.Term())
		a.search.CursorEnd()
		return a, a.search.Focus()
	case key.Matches(msg, a.keys.Jump):
		a.mode = modeJump
		a.jump.Reset()
		a.refreshJumpMatches()
		return a, a.jump.Input.Focus()
	case key.Matches(msg, a.keys.Add):
		a.form.Reset()
		a.mode = modeForm
		return a, a.form.Title.Focus()
	case key.Matches(msg, a.keys.Edit):
		item, ok := s.selected()
		if !ok {
			return a, nil
		}
		if !item.OwnedBy(a.session.Email) {
			a.status = "only the author can edit this post"
			return a, nil
		}
		a.form.Reset()
		a.form.EditID = item.ID
		a.form.Title.SetValue(item.Title)
		a.form.Body.SetValue(item.Body)
		a.mode = modeForm
		return a, a.form.Title.Focus()
	case key.Matches(msg, a.keys.Delete):
		item, ok := s.selected()
		if !ok {
			return a, nil
		}
		if !item.OwnedBy(a.session.Email) {
			a.status = "only the author can delete this post"
			return a, nil
		}
		a.confirm = confirmState{ItemID: item.ID, Title: item.Title}
		a.mode = modeConfirm
		return a, nil
	case key.Matches(msg, a.keys.YankLink):
		item, ok := s.selected()
		if !ok || item.MediaRef == "" {
			a.status = "no media link on this post"
			return a, nil
		}
		if err := clipboard.WriteAll(item.MediaRef); err != nil {
			a.status = "clipboard: " + err.Error()
			return a, nil
		}
		a.status = "media link copied"
		return a, nil
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := a.screens[a.active]
	switch {
	case key.Matches(msg, a.keys.Confirm):
		a.mode = modeNormal
		a.search.Blur()
		return a, nil
	case key.Matches(msg, a.keys.Cancel):
		a.mode = modeNormal
		a.search.Blur()
		a.search.Reset()
		s.cursor = 0
		return a, a.maybeFetch(s.ctrl.SetSearch(""))
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)

	// Live search: every keystroke narrows the view immediately.
	if req := s.ctrl.SetSearch(a.search.Value()); req != nil {
		s.cursor = 0
		return a, tea.Batch(cmd, a.fetchCmd(a.active, *req))
	}
	s.clampCursor()
	return a, cmd
}

func (a *App) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := a.screens[a.active]
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.mode = modeNormal
		a.jump.Input.Blur()
		return a, nil
	case key.Matches(msg, a.keys.Confirm):
		a.mode = modeNormal
		a.jump.Input.Blur()
		if len(a.jump.Matches) == 0 {
			return a, nil
		}
		target := a.jump.Matches[a.jump.Cursor]
		if s.ctrl.Mode() == collection.ModeServer {
			// Only the current page is loaded; the index is already
			// page-relative.
			s.cursor = target.Index
			return a, nil
		}
		page := target.Index/s.ctrl.PageSize() + 1
		s.cursor = target.Index % s.ctrl.PageSize()
		return a, a.maybeFetch(s.ctrl.GoTo(page))
	case key.Matches(msg, a.keys.Up):
		if a.jump.Cursor > 0 {
			a.jump.Cursor--
		}
		return a, nil
	case key.Matches(msg, a.keys.Down):
		if a.jump.Cursor < len(a.jump.Matches)-1 {
			a.jump.Cursor++
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.jump.Input, cmd = a.jump.Input.Update(msg)
	a.refreshJumpMatches()
	return a, cmd
}

// refreshJumpMatches fuzzy-matches the jump pattern against every loaded
// item's title.
func (a *App) refreshJumpMatches() {
	s := a.screens[a.active]
	items := s.ctrl.Matches()
	a.jump.Matches = a.jump.Matches[:0]
	a.jump.Cursor = 0

	pattern := a.jump.Input.Value()
	if pattern == "" {
		for i, item := range items {
			a.jump.Matches = append(a.jump.Matches, jumpMatch{Index: i, Item: item})
		}
		return
	}

	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	for _, m := range fuzzy.Find(pattern, titles) {
		a.jump.Matches = append(a.jump.Matches, jumpMatch{Index: m.Index, Item: items[m.Index]})
	}
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.mode = modeNormal
		return a, nil
	case key.Matches(msg, a.keys.Confirm):
		return a, a.submitForm()
	case msg.String() == "tab", msg.String() == "shift+tab":
		inputs := a.formInputs()
		inputs[a.form.Focus].Blur()
		if msg.String() == "tab" {
			a.form.Focus = (a.form.Focus + 1) % len(inputs)
		} else {
			a.form.Focus = (a.form.Focus + len(inputs) - 1) % len(inputs)
		}
		return a, inputs[a.form.Focus].Focus()
	}

	inputs := a.formInputs()
	var cmd tea.Cmd
	*inputs[a.form.Focus], cmd = inputs[a.form.Focus].Update(msg)
	return a, cmd
}

func (a *App) formInputs() []*textinput.Model {
	if a.active == screenQuiz {
		return a.form.inputs(false)
	}
	return a.form.inputs(a.screens[a.active].col != model.Board)
}

func (a *App) submitForm() tea.Cmd {
	title := strings.TrimSpace(a.form.Title.Value())
	body := strings.TrimSpace(a.form.Body.Value())
	if title == "" {
		a.status = "title must not be empty"
		return nil
	}
	if a.active == screenQuiz && body == "" {
		a.status = "answer must not be empty"
		return nil
	}

	a.mode = modeNormal
	if a.active == screenQuiz {
		return a.mutateQuestionCmd(a.form.EditID, title, body)
	}

	s := a.screens[a.active]
	draft := api.Draft{
		Title:     title,
		Body:      body,
		MediaPath: strings.TrimSpace(a.form.Media.Value()),
	}
	if id := a.form.EditID; id != 0 {
		return a.mutateCmd(a.active, mutationUpdate, func(ctx context.Context) error {
			_, err := a.client.UpdateItem(ctx, s.col, id, draft)
			return err
		})
	}
	return a.mutateCmd(a.active, mutationCreate, func(ctx context.Context) error {
		_, err := a.client.CreateItem(ctx, s.col, draft)
		return err
	})
}

func (a *App) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.mode = modeNormal
		return a, nil
	case key.Matches(msg, a.keys.Confirm):
		a.mode = modeNormal
		if a.confirm.Quiz {
			id := a.confirm.ItemID
			return a, func() tea.Msg {
				return questionMutatedMsg{err: a.client.DeleteQuestion(a.quiz.ctx, id)}
			}
		}
		s := a.screens[a.active]
		id := a.confirm.ItemID
		return a, a.mutateCmd(a.active, mutationDelete, func(ctx context.Context) error {
			return a.client.DeleteItem(ctx, s.col, id)
		})
	}
	return a, nil
}

func (a *App) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := a.quiz

	if q.input.Focused() {
		switch {
		case key.Matches(msg, a.keys.Cancel):
			q.input.Blur()
			return a, nil
		case key.Matches(msg, a.keys.Confirm):
			if !q.drawn {
				return a, nil
			}
			if quiz.Check(q.current, q.input.Value()) {
				q.result = resultOk
			} else {
				q.result = resultFail
			}
			q.input.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Draw), key.Matches(msg, a.keys.Confirm):
		a.drawQuestion()
		if q.drawn {
			return a, q.input.Focus()
		}
	case key.Matches(msg, a.keys.Refresh):
		return a, a.loadQuestionsCmd()
	case key.Matches(msg, a.keys.Add):
		a.form.Reset()
		a.mode = modeForm
		a.form.Title.Placeholder = "Question"
		a.form.Body.Placeholder = "Answer"
		return a, a.form.Title.Focus()
	case key.Matches(msg, a.keys.Edit):
		if !q.drawn {
			return a, nil
		}
		if q.current.Author != a.session.Email {
			a.status = "only the author can edit this question"
			return a, nil
		}
		a.form.Reset()
		a.form.EditID = q.current.ID
		a.form.Title.SetValue(q.current.Prompt)
		a.form.Body.SetValue(q.current.Answer)
		a.mode = modeForm
		return a, a.form.Title.Focus()
	case key.Matches(msg, a.keys.Delete):
		if !q.drawn {
			return a, nil
		}
		if q.current.Author != a.session.Email {
			a.status = "only the author can delete this question"
			return a, nil
		}
		a.confirm = confirmState{ItemID: q.current.ID, Title: q.current.Prompt, Quiz: true}
		a.mode = modeConfirm
	}
	return a, nil
}

// drawQuestion picks a fresh random question and resets the answer
// state.
func (a *App) drawQuestion() {
	q := a.quiz
	q.input.Reset()
	q.result = ""
	q.current, q.drawn = quiz.Draw(q.questions)
}

// switchScreen moves to another screen, cancelling whatever the old one
// had in flight.
func (a *App) switchScreen(idx int) tea.Cmd {
	if idx == a.active {
		return nil
	}
	if a.active == screenQuiz {
		a.quiz.abort()
	} else {
		a.screens[a.active].abort()
	}
	a.status = ""
	return a.enterScreen(idx)
}

// enterScreen activates a screen and refetches it, mirroring the
// refetch-on-entry behavior of the web client. The first visit to a list
// screen also paints the cached copy while the fetch is in flight.
func (a *App) enterScreen(idx int) tea.Cmd {
	a.active = idx
	if idx == screenQuiz {
		return a.loadQuestionsCmd()
	}

	s := a.screens[idx]
	req := s.ctrl.Refresh()
	if !s.loaded {
		s.loaded = true
		return tea.Batch(a.seedCmd(idx, req), a.fetchCmd(idx, req))
	}
	return a.fetchCmd(idx, req)
}

// maybeFetch wraps an optional controller request into a command.
func (a *App) maybeFetch(req *collection.Request) tea.Cmd {
	if req == nil {
		return nil
	}
	return a.fetchCmd(a.active, *req)
}

// fetchCmd executes one controller request against the API. A request
// without a page asks for the whole collection. Fetched pages are
// written through to the cache.
func (a *App) fetchCmd(idx int, req collection.Request) tea.Cmd {
	s := a.screens[idx]
	ctx := s.ctx
	return func() tea.Msg {
		var res collection.PageResult
		var err error
		if req.Page == 0 {
			res, err = a.client.ListAll(ctx, s.col)
		} else {
			res, err = a.client.ListPage(ctx, s.col, req.Page, req.PageSize, req.Term)
		}
		if err == nil && a.cache != nil {
			// Best effort; a failed cache write must not fail the fetch.
			_ = a.cache.Put(s.col, req.Page, req.PageSize, req.Term, res)
		}
		return pageFetchedMsg{screen: idx, token: req.Token, res: res, err: err}
	}
}

// seedCmd reads the cached copy of the page a request is about to fetch.
func (a *App) seedCmd(idx int, req collection.Request) tea.Cmd {
	if a.cache == nil {
		return nil
	}
	s := a.screens[idx]
	return func() tea.Msg {
		res, _, ok, err := a.cache.Get(s.col, req.Page, req.PageSize, req.Term)
		if err != nil || !ok {
			return cachedPageMsg{screen: idx, ok: false}
		}
		return cachedPageMsg{screen: idx, res: res, ok: true}
	}
}

// mutateCmd runs a mutation and reports its completion. The collection's
// cache is dropped on success since any cached page may now be stale.
func (a *App) mutateCmd(idx int, kind mutationKind, run func(context.Context) error) tea.Cmd {
	s := a.screens[idx]
	ctx := s.ctx
	return func() tea.Msg {
		err := run(ctx)
		if err == nil && a.cache != nil {
			_ = a.cache.Clear(s.col)
		}
		return mutationDoneMsg{screen: idx, kind: kind, err: err}
	}
}

func (a *App) loadQuestionsCmd() tea.Cmd {
	a.quiz.loading = true
	ctx := a.quiz.ctx
	return func() tea.Msg {
		questions, err := a.client.ListQuestions(ctx)
		return questionsLoadedMsg{questions: questions, err: err}
	}
}

func (a *App) mutateQuestionCmd(id int64, prompt, answer string) tea.Cmd {
	ctx := a.quiz.ctx
	return func() tea.Msg {
		var err error
		if id != 0 {
			_, err = a.client.UpdateQuestion(ctx, id, prompt, answer)
		} else {
			_, err = a.client.CreateQuestion(ctx, prompt, answer)
		}
		if err != nil {
			err = fmt.Errorf("save question: %w", err)
		}
		return questionMutatedMsg{err: err}
	}
}
