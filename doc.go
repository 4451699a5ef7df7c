// Package mdtoc builds navigable tables of contents for Markdown documents.
//
// # Quick Start
//
// Create a generator and run it over markdown content:
//
//	gen := mdtoc.NewGenerator()
//	result, err := gen.Generate(ctx, mdtoc.Input{
//	    Markdown: "# Concepts\n\n## Modules\n\n## Dependencies",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("toc.html", []byte(result.TOC), 0644)
//
// The result contains the anchored outline (result.TOC) and, when
// Input.Page is set, a complete HTML page with the outline injected as a
// <nav> element and every heading rewritten to carry its anchor and a
// permalink (result.Page).
//
// # Pipeline
//
// Generation follows these stages:
//
//  1. Markdown preprocessing (line normalization, blank-line compression)
//  2. Heading extraction via the Goldmark AST
//  3. Tree building from the flat (level, text) sequence, with slug
//     assignment and duplicate disambiguation
//  4. Outline rendering (and full-page assembly in page mode)
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen := mdtoc.NewGenerator(
//	    mdtoc.WithPermalinkSymbol("#"),
//	    mdtoc.WithTOCTitle("Contents"),
//	)
//
// Per-document options are passed via Input:
//
//	result, err := gen.Generate(ctx, mdtoc.Input{
//	    Markdown: content,
//	    Depth:    &mdtoc.DepthRange{Min: 1, Max: 3},
//	    Page:     true,
//	    CSS:      "body { max-width: 42rem; }",
//	})
//
// # Lower-Level API
//
// The individual stages are exported for callers that already have a
// heading sequence from their own parser: BuildTree turns ordered
// (level, text) pairs into a tree of *Heading, Render emits the anchored
// outline, and RenderNav emits the linked <nav> fragment. Heading
// sequences that nest more than one level at a time are rejected with a
// *StructureError naming the offending heading and its position.
package mdtoc
