package mdtoc

import (
	"strconv"
	"strings"
	"unicode"
)

// fallbackSlug is used when normalization consumes the entire heading text.
const fallbackSlug = "section"

// SlugSet tracks slugs already assigned within a single document. Scoped to
// one BuildTree call, never process-wide, so slugs cannot leak across
// documents.
type SlugSet map[string]struct{}

// Slugify normalizes heading text into a unique URL-safe anchor identifier.
//
// Normalization lowercases the text and collapses every run of whitespace
// and non-alphanumeric characters into a single hyphen, trimming hyphens at
// both ends. Text that normalizes to nothing becomes "section". When the
// normalized slug is already in seen, the smallest -N suffix producing an
// unused slug is appended, so duplicate headings disambiguate in document
// order. The final slug is recorded in seen before returning; a nil seen is
// treated as a fresh one-off set. Slugify never fails.
func Slugify(text string, seen SlugSet) string {
	if seen == nil {
		seen = make(SlugSet, 1)
	}

	slug := normalizeSlug(text)
	if slug == "" {
		slug = fallbackSlug
	}

	if _, taken := seen[slug]; taken {
		for n := 1; ; n++ {
			candidate := slug + "-" + strconv.Itoa(n)
			if _, taken := seen[candidate]; !taken {
				slug = candidate
				break
			}
		}
	}

	seen[slug] = struct{}{}
	return slug
}

// normalizeSlug applies the character rules without collision handling.
func normalizeSlug(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		// Whitespace and punctuation collapse into one separator.
		pendingHyphen = true
	}

	return b.String()
}
