package classifier

import (
	"fmt"
	"io"
)

type labelSpec struct {
	Classes []string `json:"classes"`
}

// LabelEncoder decodes class indices into category names.
type LabelEncoder struct {
	classes []string
}

// LoadLabelEncoder reads a label decoder artifact from path.
func LoadLabelEncoder(path string) (*LabelEncoder, error) {
	return loadLabelEncoder(path, nil)
}

func loadLabelEncoder(path string, digest io.Writer) (*LabelEncoder, error) {
	var spec labelSpec
	if err := readArtifact(path, &spec, digest); err != nil {
		return nil, fmt.Errorf("label encoder %s: %w", path, err)
	}
	if len(spec.Classes) == 0 {
		return nil, fmt.Errorf("label encoder %s: no classes", path)
	}
	return &LabelEncoder{classes: spec.Classes}, nil
}

// Decode returns the category name for an encoded label.
func (e *LabelEncoder) Decode(idx int) (string, error) {
	if idx < 0 || idx >= len(e.classes) {
		return "", fmt.Errorf("label %d outside decoder range [0,%d)", idx, len(e.classes))
	}
	return e.classes[idx], nil
}

// Classes returns the category names in encoded order.
func (e *LabelEncoder) Classes() []string {
	return append([]string(nil), e.classes...)
}
