package sanitize

import "testing"

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"tags removed", "<p>hello <b>world</b></p>", "hello world"},
		{"adjacent elements keep a space", "<li>one</li><li>two</li>", "one two"},
		{"entities decoded", "fish &amp; chips", "fish & chips"},
		{"whitespace collapsed", "a\n\n  b\tc", "a b c"},
		{"empty", "", ""},
		{"only markup", "<br/><hr/>", ""},
		{"korean and japanese preserved", "<div>今日の단어</div>", "今日の단어"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.in); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
