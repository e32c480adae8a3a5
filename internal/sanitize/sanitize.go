// Package sanitize turns server-supplied rich-text bodies into plain
// text the terminal can render. Post bodies may carry HTML markup from
// the web client; everything but the text is dropped.
package sanitize

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainText strips all HTML tags from s and collapses runs of
// whitespace into single spaces. Input without markup passes through
// with only the whitespace normalization applied.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return collapse(s)
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return collapse(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			// Block-ish boundaries become whitespace so words from
			// adjacent elements don't run together.
			b.WriteByte(' ')
		}
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
