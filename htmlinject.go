package mdtoc

import (
	"html"
	"regexp"
	"strings"
)

// headingPattern matches h1-h6 elements including their inner HTML.
// Captures: 1=level, 2=attributes, 3=inner HTML (may contain inline tags).
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])(\s[^>]*)?>(.*?)</h[1-6]>`)

// anchorHeadings rewrites every heading element in htmlContent to carry its
// slug as id and a trailing permalink anchor targeting that slug. slugs must
// be in document order; headings beyond len(slugs) are left untouched.
// Headings are matched positionally, which is safe because the HTML was
// rendered from the same source the slugs were extracted from.
func anchorHeadings(htmlContent string, slugs []string, symbol string) string {
	i := 0
	return headingPattern.ReplaceAllStringFunc(htmlContent, func(match string) string {
		if i >= len(slugs) {
			return match
		}
		m := headingPattern.FindStringSubmatch(match)
		slug := html.EscapeString(slugs[i])
		i++

		var b strings.Builder
		b.WriteString("<h")
		b.WriteString(m[1])
		b.WriteString(m[2])
		b.WriteString(` id="`)
		b.WriteString(slug)
		b.WriteString(`">`)
		b.WriteString(m[3])
		b.WriteString(` <a class="permalink" href="#`)
		b.WriteString(slug)
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(symbol))
		b.WriteString("</a></h")
		b.WriteString(m[1])
		b.WriteString(">")
		return b.String()
	})
}

// injectTOC inserts a rendered TOC fragment after the opening <body> tag.
// Falls back to prepending when no body tag is found. Empty fragments leave
// the document unchanged.
func injectTOC(htmlContent, tocHTML string) string {
	if tocHTML == "" {
		return htmlContent
	}

	lowerHTML := strings.ToLower(htmlContent)
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + "\n" + tocHTML + htmlContent[insertPos:]
		}
	}

	return tocHTML + htmlContent
}

// injectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func injectCSS(htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	// Escape </ sequences to prevent closing the style tag prematurely
	return strings.ReplaceAll(css, "</", `<\/`)
}
