package quiz

import (
	"testing"

	"github.com/tsudoi-club/tsudoi/internal/model"
)

func TestDraw_Empty(t *testing.T) {
	if _, ok := Draw(nil); ok {
		t.Error("draw from an empty set should report false")
	}
}

func TestDraw_SingleQuestion(t *testing.T) {
	questions := []model.Question{{ID: 1, Prompt: "猫", Answer: "고양이"}}
	q, ok := Draw(questions)
	if !ok || q.ID != 1 {
		t.Errorf("draw = %+v ok=%v", q, ok)
	}
}

func TestDraw_CoversAllQuestions(t *testing.T) {
	questions := []model.Question{
		{ID: 1}, {ID: 2}, {ID: 3},
	}

	seen := map[int64]bool{}
	for i := 0; i < 200; i++ {
		q, ok := Draw(questions)
		if !ok {
			t.Fatal("draw failed")
		}
		seen[q.ID] = true
	}
	if len(seen) != 3 {
		t.Errorf("200 draws over 3 questions hit only %d of them", len(seen))
	}
}

func TestCheck(t *testing.T) {
	q := model.Question{Prompt: "ありがとう", Answer: "고마워"}

	tests := []struct {
		input string
		want  bool
	}{
		{"고마워", true},
		{"  고마워  ", true},
		{"고마워요", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Check(q, tt.input); got != tt.want {
			t.Errorf("Check(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
