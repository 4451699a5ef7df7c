package mdtoc

import (
	"strings"
	"testing"
)

func TestAnchorHeadings(t *testing.T) {
	t.Parallel()

	html := `<body><h1>Concepts</h1><p>x</p><h2>Modules</h2></body>`
	got := anchorHeadings(html, []string{"concepts", "modules"}, "¶")

	for _, want := range []string{
		`<h1 id="concepts">Concepts <a class="permalink" href="#concepts">¶</a></h1>`,
		`<h2 id="modules">Modules <a class="permalink" href="#modules">¶</a></h2>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("anchored HTML missing %q:\n%s", want, got)
		}
	}
}

func TestAnchorHeadingsKeepsAttributes(t *testing.T) {
	t.Parallel()

	html := `<h2 class="fancy">Topic</h2>`
	got := anchorHeadings(html, []string{"topic"}, "¶")
	if !strings.Contains(got, `<h2 class="fancy" id="topic">`) {
		t.Errorf("existing attributes lost: %s", got)
	}
}

func TestAnchorHeadingsInlineMarkup(t *testing.T) {
	t.Parallel()

	html := `<h1>Hello <em>World</em></h1>`
	got := anchorHeadings(html, []string{"hello-world"}, "¶")
	if !strings.Contains(got, `<h1 id="hello-world">Hello <em>World</em> <a class="permalink"`) {
		t.Errorf("inner markup not preserved: %s", got)
	}
}

func TestAnchorHeadingsExtraHeadingsUntouched(t *testing.T) {
	t.Parallel()

	html := `<h1>A</h1><h1>B</h1>`
	got := anchorHeadings(html, []string{"a"}, "¶")
	if !strings.Contains(got, `<h1 id="a">A `) {
		t.Errorf("first heading not anchored: %s", got)
	}
	if !strings.Contains(got, `<h1>B</h1>`) {
		t.Errorf("heading beyond slug list was modified: %s", got)
	}
}

func TestInjectTOC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		toc  string
		want string
	}{
		{
			name: "after body tag",
			html: `<html><body class="doc"><p>x</p></body></html>`,
			toc:  `<nav class="toc"></nav>`,
			want: `<body class="doc">` + "\n" + `<nav class="toc"></nav><p>x</p>`,
		},
		{
			name: "no body tag prepends",
			html: `<p>x</p>`,
			toc:  `<nav></nav>`,
			want: `<nav></nav><p>x</p>`,
		},
		{
			name: "empty fragment unchanged",
			html: `<body><p>x</p></body>`,
			toc:  "",
			want: `<body><p>x</p></body>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injectTOC(tt.html, tt.toc)
			if !strings.Contains(got, tt.want) {
				t.Errorf("injectTOC() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		css  string
		want string
	}{
		{
			name: "before closing head",
			html: `<html><head><title>t</title></head><body></body></html>`,
			css:  "body { margin: 0; }",
			want: `<style>body { margin: 0; }</style></head>`,
		},
		{
			name: "after body when no head",
			html: `<body class="doc"><p>x</p></body>`,
			css:  "p { color: red; }",
			want: `<body class="doc"><style>p { color: red; }</style>`,
		},
		{
			name: "prepend fallback",
			html: `<p>x</p>`,
			css:  "p {}",
			want: `<style>p {}</style><p>x</p>`,
		},
		{
			name: "empty css unchanged",
			html: `<head></head>`,
			css:  "",
			want: `<head></head>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injectCSS(tt.html, tt.css)
			if !strings.Contains(got, tt.want) {
				t.Errorf("injectCSS() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	css := `body {} </style><script>alert(1)</script>`
	got := sanitizeCSS(css)
	if strings.Contains(got, "</style>") || strings.Contains(got, "</script>") {
		t.Errorf("closing sequences survived sanitization: %q", got)
	}
}
