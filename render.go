package mdtoc

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
)

// DefaultPermalinkSymbol is the visible permalink marker rendered next to
// each heading.
const DefaultPermalinkSymbol = "¶"

// Render emits the anchored outline for a heading tree as output lines.
//
// Each node renders as a heading element carrying id = slug, its text as a
// self-link, and a visible permalink symbol targeting #slug; children
// follow, nested one level deeper. The tree is read-only during rendering,
// so rendering the same tree twice yields byte-identical output. An empty
// tree renders to no lines.
func Render(tree []*Heading) []string {
	return RenderWithSymbol(tree, DefaultPermalinkSymbol)
}

// RenderWithSymbol is Render with a custom permalink symbol.
func RenderWithSymbol(tree []*Heading, symbol string) []string {
	var lines []string
	for _, h := range tree {
		lines = renderNode(lines, h, 1, symbol)
	}
	return lines
}

// RenderTo writes the outline to w, one entry per line.
func RenderTo(w io.Writer, tree []*Heading) error {
	for _, line := range Render(tree) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// renderNode appends one outline entry and its subtree to lines.
func renderNode(lines []string, h *Heading, depth int, symbol string) []string {
	// Deeper outline levels clamp to <h6> but still nest through indentation.
	tag := depth
	if tag > MaxHeadingLevel {
		tag = MaxHeadingLevel
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth-1))
	b.WriteString("<h")
	b.WriteString(strconv.Itoa(tag))
	b.WriteString(` id="`)
	b.WriteString(html.EscapeString(h.Slug))
	b.WriteString(`"><a href="#`)
	b.WriteString(html.EscapeString(h.Slug))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(h.Text))
	b.WriteString(`</a> <a class="permalink" href="#`)
	b.WriteString(html.EscapeString(h.Slug))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(symbol))
	b.WriteString("</a></h")
	b.WriteString(strconv.Itoa(tag))
	b.WriteString(">")

	lines = append(lines, b.String())
	for _, child := range h.Children {
		lines = renderNode(lines, child, depth+1, symbol)
	}
	return lines
}

// RenderNav emits a linked table-of-contents fragment for a heading tree:
// a <nav class="toc"> wrapping nested lists whose entries jump to the
// corresponding anchors. An empty tree produces an empty string. Like
// Render, the pass is read-only and idempotent.
func RenderNav(tree []*Heading, title string) string {
	if len(tree) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<nav class="toc">`)

	if title != "" {
		b.WriteString(`<h2 class="toc-title">`)
		b.WriteString(html.EscapeString(title))
		b.WriteString(`</h2>`)
	}

	renderNavList(&b, tree, `<ul class="toc-list">`)
	b.WriteString(`</nav>`)
	return b.String()
}

// renderNavList writes one nesting level of the nav fragment.
func renderNavList(b *strings.Builder, nodes []*Heading, open string) {
	b.WriteString(open)
	for _, h := range nodes {
		b.WriteString(`<li><a href="#`)
		b.WriteString(html.EscapeString(h.Slug))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(h.Text))
		b.WriteString(`</a>`)
		if len(h.Children) > 0 {
			renderNavList(b, h.Children, "<ul>")
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
}
