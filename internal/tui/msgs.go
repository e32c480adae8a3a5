package tui

import (
	"github.com/tsudoi-club/tsudoi/internal/collection"
	"github.com/tsudoi-club/tsudoi/internal/model"
)

// mutationKind distinguishes the three mutations for reconciliation.
type mutationKind int

const (
	mutationCreate mutationKind = iota
	mutationUpdate
	mutationDelete
)

// pageFetchedMsg delivers the outcome of a list fetch. The token ties it
// back to the controller request that issued it; the controller discards
// tokens superseded by a newer request.
type pageFetchedMsg struct {
	screen int
	token  string
	res    collection.PageResult
	err    error
}

// cachedPageMsg delivers a locally cached page for the first paint.
type cachedPageMsg struct {
	screen int
	res    collection.PageResult
	ok     bool
}

// mutationDoneMsg reports a completed create/update/delete call.
type mutationDoneMsg struct {
	screen int
	kind   mutationKind
	err    error
}

// questionsLoadedMsg delivers the quiz question set.
type questionsLoadedMsg struct {
	questions []model.Question
	err       error
}

// questionMutatedMsg reports a completed quiz-question mutation.
type questionMutatedMsg struct {
	err error
}
