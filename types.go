package mdtoc

import "fmt"

// Heading level bounds.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// DepthRange restricts which heading levels appear in the generated TOC.
type DepthRange struct {
	Min int // shallowest included level (1-6)
	Max int // deepest included level (1-6)
}

// DefaultDepthRange returns the range covering every heading level.
func DefaultDepthRange() *DepthRange {
	return &DepthRange{Min: MinHeadingLevel, Max: MaxHeadingLevel}
}

// Validate checks that the range is within heading-level bounds.
// Returns nil if d is nil (nil means include all levels).
func (d *DepthRange) Validate() error {
	if d == nil {
		return nil
	}

	if d.Min < MinHeadingLevel || d.Min > MaxHeadingLevel {
		return fmt.Errorf("%w: min %d (must be between %d and %d)", ErrInvalidDepth, d.Min, MinHeadingLevel, MaxHeadingLevel)
	}
	if d.Max < MinHeadingLevel || d.Max > MaxHeadingLevel {
		return fmt.Errorf("%w: max %d (must be between %d and %d)", ErrInvalidDepth, d.Max, MinHeadingLevel, MaxHeadingLevel)
	}
	if d.Min > d.Max {
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidDepth, d.Min, d.Max)
	}

	return nil
}

// includes reports whether a heading level falls inside the range.
func (d *DepthRange) includes(level int) bool {
	if d == nil {
		return true
	}
	return level >= d.Min && level <= d.Max
}

// Input contains generation parameters for one document.
type Input struct {
	Markdown string      // Markdown content (required)
	Title    string      // TOC nav title (optional, overrides generator default)
	Depth    *DepthRange // Included heading levels (optional, nil = all)
	CSS      string      // Custom CSS for page mode (optional)
	Page     bool        // Assemble a full HTML page with the TOC injected
}

// Validate checks that the input is usable.
func (i Input) Validate() error {
	if i.Markdown == "" {
		return ErrEmptyMarkdown
	}
	return i.Depth.Validate()
}

// Result holds the outputs of one generation.
type Result struct {
	Tree []*Heading // Outline tree, document order
	TOC  string     // Anchored outline document
	Page string     // Full HTML page (only when Input.Page)
}
