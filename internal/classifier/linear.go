package classifier

import (
	"fmt"
	"io"
)

// linearSpec is the JSON export of a fitted linear classifier.
type linearSpec struct {
	Classes   []int       `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

// LinearClassifier scores feature vectors with one weight row per class, or a single
// row for a binary model.
type LinearClassifier struct {
	classes   []int
	coef      [][]float64
	intercept []float64
	features  int
}

// LoadLinearClassifier reads a classifier artifact from path.
func LoadLinearClassifier(path string) (*LinearClassifier, error) {
	return loadLinearClassifier(path, nil)
}

func loadLinearClassifier(path string, digest io.Writer) (*LinearClassifier, error) {
	var spec linearSpec
	if err := readArtifact(path, &spec, digest); err != nil {
		return nil, fmt.Errorf("classifier %s: %w", path, err)
	}
	clf, err := newLinearClassifier(spec)
	if err != nil {
		return nil, fmt.Errorf("classifier %s: %w", path, err)
	}
	return clf, nil
}

func newLinearClassifier(spec linearSpec) (*LinearClassifier, error) {
	if len(spec.Classes) < 2 {
		return nil, fmt.Errorf("need at least two classes, got %d", len(spec.Classes))
	}
	rows := len(spec.Classes)
	if rows == 2 {
		rows = 1
	}
	if len(spec.Coef) != rows {
		return nil, fmt.Errorf("coef has %d rows, want %d for %d classes", len(spec.Coef), rows, len(spec.Classes))
	}
	if len(spec.Intercept) != rows {
		return nil, fmt.Errorf("intercept has %d entries, want %d", len(spec.Intercept), rows)
	}
	features := len(spec.Coef[0])
	if features == 0 {
		return nil, fmt.Errorf("coef rows are empty")
	}
	for i, row := range spec.Coef {
		if len(row) != features {
			return nil, fmt.Errorf("coef row %d has %d columns, want %d", i, len(row), features)
		}
	}
	return &LinearClassifier{
		classes:   spec.Classes,
		coef:      spec.Coef,
		intercept: spec.Intercept,
		features:  features,
	}, nil
}

// NumFeatures returns the expected input width.
func (c *LinearClassifier) NumFeatures() int {
	return c.features
}

// Classes returns the encoded labels the classifier can emit.
func (c *LinearClassifier) Classes() []int {
	return append([]int(nil), c.classes...)
}

// DecisionFunction returns one score per weight row.
func (c *LinearClassifier) DecisionFunction(x SparseVector) []float64 {
	scores := make([]float64, len(c.coef))
	for i, row := range c.coef {
		scores[i] = x.Dot(row) + c.intercept[i]
	}
	return scores
}

// Predict returns the encoded label with the highest score. Ties go to the lower index.
func (c *LinearClassifier) Predict(x SparseVector) int {
	scores := c.DecisionFunction(x)
	if len(scores) == 1 {
		if scores[0] > 0 {
			return c.classes[1]
		}
		return c.classes[0]
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return c.classes[best]
}
