package mdtoc

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const sampleMarkdown = `# concepts

intro text

## modules

## dependencies

# tools

## node
`

func TestGenerateTOC(t *testing.T) {
	t.Parallel()

	gen := NewGenerator()
	result, err := gen.Generate(context.Background(), Input{Markdown: sampleMarkdown})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(result.Tree) != 2 {
		t.Fatalf("len(result.Tree) = %d, want 2", len(result.Tree))
	}

	for _, want := range []string{
		`<h1 id="concepts">`,
		`  <h2 id="modules">`,
		`  <h2 id="dependencies">`,
		`<h1 id="tools">`,
		`  <h2 id="node">`,
		`href="#concepts"`,
	} {
		if !strings.Contains(result.TOC, want) {
			t.Errorf("TOC missing %q:\n%s", want, result.TOC)
		}
	}

	if result.Page != "" {
		t.Errorf("Page = %q, want empty without page mode", result.Page)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	t.Parallel()

	gen := NewGenerator()

	first, err := gen.Generate(context.Background(), Input{Markdown: sampleMarkdown})
	if err != nil {
		t.Fatalf("first Generate() error = %v", err)
	}
	second, err := gen.Generate(context.Background(), Input{Markdown: sampleMarkdown})
	if err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}

	if first.TOC != second.TOC {
		t.Errorf("repeated generation differs:\n%s\n---\n%s", first.TOC, second.TOC)
	}
}

func TestGenerateDepthFilter(t *testing.T) {
	t.Parallel()

	md := "# a\n\n## b\n\n### c\n"
	gen := NewGenerator()

	result, err := gen.Generate(context.Background(), Input{
		Markdown: md,
		Depth:    &DepthRange{Min: 1, Max: 2},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if strings.Contains(result.TOC, `id="c"`) {
		t.Errorf("level-3 heading leaked into depth-limited TOC:\n%s", result.TOC)
	}
	if !strings.Contains(result.TOC, `id="b"`) {
		t.Errorf("level-2 heading missing:\n%s", result.TOC)
	}
}

func TestGenerateStructureError(t *testing.T) {
	t.Parallel()

	gen := NewGenerator()
	_, err := gen.Generate(context.Background(), Input{Markdown: "# A\n\n### B\n"})

	var structErr *StructureError
	if !errors.As(err, &structErr) {
		t.Fatalf("errors.As(err, *StructureError) = false, err = %v", err)
	}
	if structErr.Text != "B" || structErr.Position != 1 {
		t.Errorf("StructureError = %q at %d, want \"B\" at 1", structErr.Text, structErr.Position)
	}
}

func TestGenerateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "empty markdown",
			input:   Input{},
			wantErr: ErrEmptyMarkdown,
		},
		{
			name:    "depth min out of range",
			input:   Input{Markdown: "# a", Depth: &DepthRange{Min: 0, Max: 3}},
			wantErr: ErrInvalidDepth,
		},
		{
			name:    "depth max out of range",
			input:   Input{Markdown: "# a", Depth: &DepthRange{Min: 1, Max: 7}},
			wantErr: ErrInvalidDepth,
		},
		{
			name:    "depth min exceeds max",
			input:   Input{Markdown: "# a", Depth: &DepthRange{Min: 3, Max: 2}},
			wantErr: ErrInvalidDepth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewGenerator().Generate(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateNoHeadings(t *testing.T) {
	t.Parallel()

	result, err := NewGenerator().Generate(context.Background(), Input{Markdown: "plain text only"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.TOC != "" || len(result.Tree) != 0 {
		t.Errorf("headingless document produced TOC %q with %d roots", result.TOC, len(result.Tree))
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator().Generate(ctx, Input{Markdown: "# a"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() error = %v, want context.Canceled", err)
	}
}

func TestGeneratePage(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(WithTOCTitle("Contents"))
	result, err := gen.Generate(context.Background(), Input{
		Markdown: sampleMarkdown,
		CSS:      "body { margin: 0; }",
		Page:     true,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, want := range []string{
		`<!DOCTYPE html>`,
		`<nav class="toc">`,
		`<h2 class="toc-title">Contents</h2>`,
		`<h1 id="concepts">`,
		`<a class="permalink" href="#concepts">`,
		`<style>body { margin: 0; }</style>`,
	} {
		if !strings.Contains(result.Page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestGeneratePageTitleOverride(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(WithTOCTitle("Default"))
	result, err := gen.Generate(context.Background(), Input{
		Markdown: "# a",
		Title:    "Override",
		Page:     true,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !strings.Contains(result.Page, `<h2 class="toc-title">Override</h2>`) {
		t.Errorf("per-input title not applied")
	}
	if strings.Contains(result.Page, "Default") {
		t.Errorf("generator default title leaked into page")
	}
}

func TestGeneratePageDepthFilterKeepsAnchors(t *testing.T) {
	t.Parallel()

	// A depth-limited TOC must still link to the anchors the page carries,
	// even when deeper headings share text with included ones.
	md := "# intro\n\n## intro\n\n### intro\n"
	result, err := NewGenerator().Generate(context.Background(), Input{
		Markdown: md,
		Depth:    &DepthRange{Min: 1, Max: 2},
		Page:     true,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// All three headings are anchored in the page.
	for _, want := range []string{`id="intro"`, `id="intro-1"`, `id="intro-2"`} {
		if !strings.Contains(result.Page, want) {
			t.Errorf("page missing anchor %q", want)
		}
	}

	// The nav links only to the two included levels, with matching slugs.
	if !strings.Contains(result.Page, `<a href="#intro-1">`) {
		t.Errorf("nav link for included level-2 heading missing")
	}
	if strings.Contains(result.TOC, "intro-2") {
		t.Errorf("excluded level-3 heading leaked into TOC:\n%s", result.TOC)
	}
}

func TestWithPermalinkSymbol(t *testing.T) {
	t.Parallel()

	result, err := NewGenerator(WithPermalinkSymbol("#")).
		Generate(context.Background(), Input{Markdown: "# a"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(result.TOC, `>#</a>`) {
		t.Errorf("custom permalink symbol not used:\n%s", result.TOC)
	}
}

func TestWithPermalinkSymbolPanicsOnEmpty(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Errorf("WithPermalinkSymbol(\"\") did not panic")
		}
	}()
	WithPermalinkSymbol("")
}
