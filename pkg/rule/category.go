package rule

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCategory is returned when a category label is not one of the known values.
var ErrInvalidCategory = errors.New("invalid rule category")

// Category governs how a rule's header is rendered for Cursor.
type Category int

const (
	// CategoryAlways rules are attached to every request.
	CategoryAlways Category = iota
	// CategoryManual rules are only used when referenced explicitly.
	CategoryManual
	// CategorySpecificFiles rules are attached when a matching file is in context.
	CategorySpecificFiles
	// CategoryIntelligently rules are picked by the agent based on their description.
	CategoryIntelligently
)

// Category labels as they appear in frontmatter and output.
const (
	LabelAlways        = "always"
	LabelManual        = "manual"
	LabelSpecificFiles = "specificFiles"
	LabelIntelligently = "intelligently"
)

// Categories returns all categories in declaration order.
func Categories() []Category {
	return []Category{CategoryAlways, CategoryManual, CategorySpecificFiles, CategoryIntelligently}
}

// String returns the frontmatter label for the category.
func (c Category) String() string {
	switch c {
	case CategoryAlways:
		return LabelAlways
	case CategoryManual:
		return LabelManual
	case CategorySpecificFiles:
		return LabelSpecificFiles
	case CategoryIntelligently:
		return LabelIntelligently
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// IsValid reports whether c is one of the four known categories.
func (c Category) IsValid() bool {
	return c >= CategoryAlways && c <= CategoryIntelligently
}

// ParseCategory converts a label into a Category.
// Labels are matched exactly; "specificfiles" is not accepted.
func ParseCategory(label string) (Category, error) {
	switch label {
	case LabelAlways:
		return CategoryAlways, nil
	case LabelManual:
		return CategoryManual, nil
	case LabelSpecificFiles:
		return CategorySpecificFiles, nil
	case LabelIntelligently:
		return CategoryIntelligently, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected always, manual, specificFiles or intelligently)",
			ErrInvalidCategory, label)
	}
}

// MarshalYAML encodes the category as its label.
func (c Category) MarshalYAML() (any, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
	}
	return c.String(), nil
}

// UnmarshalYAML decodes a category label.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	var label string
	if err := node.Decode(&label); err != nil {
		return fmt.Errorf("decode category: %w", err)
	}

	parsed, err := ParseCategory(label)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler so categories render as labels in JSON.
func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
	}
	return []byte(c.String()), nil
}
