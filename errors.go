package mdtoc

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// Structure validation errors.
	ErrStructure = errors.New("invalid heading structure")

	// Depth validation errors.
	ErrInvalidDepth = errors.New("invalid heading depth")
)

// StructureError reports a heading that nests more than one level deeper
// than its surrounding outline allows. Position is the zero-based index of
// the offending heading in the input sequence.
type StructureError struct {
	Text     string
	Position int
}

// Error implements the error interface.
func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid heading structure: %q at position %d skips a level", e.Text, e.Position)
}

// Is reports that a StructureError matches ErrStructure, so callers can use
// errors.Is without asserting the concrete type.
func (e *StructureError) Is(target error) bool {
	return target == ErrStructure
}
