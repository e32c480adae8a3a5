// Package quiz holds the question draw and answer checking for the
// special screen. The draw is a plain uniform pick over whatever
// questions the server returned.
package quiz

import (
	"math/rand/v2"
	"strings"

	"github.com/tsudoi-club/tsudoi/internal/model"
)

// Draw picks one question uniformly at random. It reports false when
// there are no questions to draw from.
func Draw(questions []model.Question) (model.Question, bool) {
	if len(questions) == 0 {
		return model.Question{}, false
	}
	return questions[rand.N(len(questions))], true
}

// Check compares the user's input against the question's answer.
// Surrounding whitespace is ignored; the comparison itself is exact.
func Check(q model.Question, input string) bool {
	return strings.TrimSpace(input) == strings.TrimSpace(q.Answer)
}
