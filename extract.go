package mdtoc

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractHeadings parses markdown and returns its headings as ordered
// (level, text) pairs. Inline markup inside a heading contributes its text
// content only; fenced code blocks cannot produce headings because the
// extraction walks the parsed AST rather than scanning lines.
func ExtractHeadings(markdown string) []Entry {
	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var entries []Entry
	// Walk error is impossible: the visitor never returns one.
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		entries = append(entries, Entry{
			Level: heading.Level,
			Text:  headingText(heading, source),
		})
		return ast.WalkSkipChildren, nil
	})

	return entries
}

// headingText collects the plain text content of a heading node, including
// text nested inside inline markup such as emphasis or code spans.
func headingText(heading *ast.Heading, source []byte) string {
	var buf bytes.Buffer
	collectText(heading, source, &buf)
	return strings.TrimSpace(buf.String())
}

func collectText(n ast.Node, source []byte, buf *bytes.Buffer) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			collectText(child, source, buf)
		}
	}
}
