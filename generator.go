package mdtoc

import (
	"context"
	"fmt"
	"strings"
)

// Compile-time interface implementation checks.
var _ htmlConverter = (*goldmarkConverter)(nil)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	permalinkSymbol string
	tocTitle        string
}

// Option configures a Generator.
type Option func(*Generator)

// WithPermalinkSymbol sets the visible permalink marker rendered next to
// each heading. Panics if symbol is empty (programmer error).
func WithPermalinkSymbol(symbol string) Option {
	if symbol == "" {
		panic("mdtoc: WithPermalinkSymbol symbol must not be empty")
	}
	return func(g *Generator) {
		g.cfg.permalinkSymbol = symbol
	}
}

// WithTOCTitle sets the default title of the injected TOC nav.
// Input.Title overrides it per document.
func WithTOCTitle(title string) Option {
	return func(g *Generator) {
		g.cfg.tocTitle = title
	}
}

// Generator orchestrates the markdown-to-TOC pipeline.
// Create with NewGenerator and use Generate per document; a Generator is
// safe for concurrent use since generation holds no shared mutable state.
type Generator struct {
	cfg       generatorConfig
	converter htmlConverter
}

// NewGenerator creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithPermalinkSymbol).
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		cfg:       generatorConfig{permalinkSymbol: DefaultPermalinkSymbol},
		converter: newGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate runs the pipeline over one document.
//
// It preprocesses the markdown, extracts the heading sequence, builds the
// slugged outline tree, and renders the anchored outline. When input.Page
// is set it additionally converts the document to HTML, rewrites every
// heading to carry its anchor and permalink, and injects the TOC nav and
// optional CSS. The context is used for cancellation. Recovers from
// internal panics to prevent crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	md := preprocessMarkdown(input.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Slugs are assigned over the full heading sequence before depth
	// filtering so page anchors and TOC links agree even when the TOC
	// shows a subset of levels.
	entries := ExtractHeadings(md)
	slugs := assignSlugs(entries)
	tocEntries, tocSlugs := filterDepth(entries, slugs, input.Depth)

	tree, err := buildTree(tocEntries, tocSlugs)
	if err != nil {
		return nil, err
	}

	result = &Result{Tree: tree, TOC: joinLines(RenderWithSymbol(tree, g.cfg.permalinkSymbol))}

	if input.Page {
		page, err := g.converter.ToHTML(ctx, md)
		if err != nil {
			return nil, err
		}
		page = anchorHeadings(page, slugs, g.cfg.permalinkSymbol)

		title := input.Title
		if title == "" {
			title = g.cfg.tocTitle
		}
		page = injectTOC(page, RenderNav(tree, title))
		page = injectCSS(page, input.CSS)
		result.Page = page
	}

	return result, nil
}

// filterDepth drops entries (and their slugs) outside the depth range.
func filterDepth(entries []Entry, slugs []string, depth *DepthRange) ([]Entry, []string) {
	if depth == nil {
		return entries, slugs
	}

	kept := make([]Entry, 0, len(entries))
	keptSlugs := make([]string, 0, len(slugs))
	for i, e := range entries {
		if depth.includes(e.Level) {
			kept = append(kept, e)
			keptSlugs = append(keptSlugs, slugs[i])
		}
	}
	return kept, keptSlugs
}

// joinLines assembles rendered outline lines into a document, one entry per
// line with a trailing newline; no lines means an empty document.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
