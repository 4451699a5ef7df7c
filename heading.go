package mdtoc

// Entry is one extracted heading before tree building: its raw depth and
// display text in document order.
type Entry struct {
	Level int
	Text  string
}

// Heading is one node of the document outline. Built once by BuildTree and
// immutable afterwards; the tree is discarded after rendering.
type Heading struct {
	Level    int
	Text     string
	Slug     string
	Children []*Heading
}

// BuildTree converts a flat, ordered heading sequence into a nested tree.
//
// Nesting follows a stack of open ancestors: each entry closes every open
// heading at its own level or deeper, then attaches to the remaining top of
// stack (or to the root when none remains). An entry more than one level
// deeper than that attachment point has no well-defined parent; BuildTree
// refuses to guess and returns a *StructureError naming the entry and its
// zero-based position. An entry arriving on an empty stack attaches at the
// root regardless of its raw level.
//
// Slugs are assigned in the same document order, deduplicated within this
// call only; repeated calls on equal input yield equal trees.
func BuildTree(entries []Entry) ([]*Heading, error) {
	return buildTree(entries, assignSlugs(entries))
}

// assignSlugs produces the slug for each entry in document order, using a
// seen-set scoped to this call.
func assignSlugs(entries []Entry) []string {
	seen := make(SlugSet, len(entries))
	slugs := make([]string, len(entries))
	for i, e := range entries {
		slugs[i] = Slugify(e.Text, seen)
	}
	return slugs
}

// buildTree nests entries whose slugs are already assigned. slugs must be
// index-aligned with entries.
func buildTree(entries []Entry, slugs []string) ([]*Heading, error) {
	var roots []*Heading
	var stack []*Heading

	for i, e := range entries {
		// Close every open heading at this level or deeper.
		for len(stack) > 0 && stack[len(stack)-1].Level >= e.Level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) > 0 && e.Level > stack[len(stack)-1].Level+1 {
			return nil, &StructureError{Text: e.Text, Position: i}
		}

		h := &Heading{Level: e.Level, Text: e.Text, Slug: slugs[i]}

		if len(stack) == 0 {
			roots = append(roots, h)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, h)
		}
		stack = append(stack, h)
	}

	return roots, nil
}
