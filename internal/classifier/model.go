// Package classifier runs inference with the pre-fitted ticket category model:
// word and char TF-IDF vectorizers, a linear classifier and a label decoder.
package classifier

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/config"
)

// Model bundles the four loaded artifacts. It is never mutated after Load.
type Model struct {
	word       *Vectorizer
	char       *Vectorizer
	classifier *LinearClassifier
	labels     *LabelEncoder

	fingerprint string
}

// Load reads every artifact named in cfg and checks they fit together.
func Load(cfg config.ModelConfig) (*Model, error) {
	digest := sha256.New()
	word, err := loadVectorizer(cfg.Path(cfg.WordVectorizerFile), digest)
	if err != nil {
		return nil, err
	}
	char, err := loadVectorizer(cfg.Path(cfg.CharVectorizerFile), digest)
	if err != nil {
		return nil, err
	}
	clf, err := loadLinearClassifier(cfg.Path(cfg.ClassifierFile), digest)
	if err != nil {
		return nil, err
	}
	labels, err := loadLabelEncoder(cfg.Path(cfg.LabelEncoderFile), digest)
	if err != nil {
		return nil, err
	}
	m, err := NewModel(word, char, clf, labels)
	if err != nil {
		return nil, err
	}
	m.fingerprint = hex.EncodeToString(digest.Sum(nil))[:16]
	return m, nil
}

// NewModel assembles a model from already loaded parts.
func NewModel(word, char *Vectorizer, clf *LinearClassifier, labels *LabelEncoder) (*Model, error) {
	if word == nil || char == nil || clf == nil || labels == nil {
		return nil, fmt.Errorf("model: missing artifact")
	}
	if want := word.NumFeatures() + char.NumFeatures(); clf.NumFeatures() != want {
		return nil, fmt.Errorf("model: classifier expects %d features, vectorizers produce %d (word %d + char %d)",
			clf.NumFeatures(), want, word.NumFeatures(), char.NumFeatures())
	}
	for _, class := range clf.Classes() {
		if _, err := labels.Decode(class); err != nil {
			return nil, fmt.Errorf("model: classifier class %d: %w", class, err)
		}
	}
	return &Model{word: word, char: char, classifier: clf, labels: labels}, nil
}

// Features builds the combined word+char feature row for normalized text.
func (m *Model) Features(text string) SparseVector {
	return m.word.Transform(text).HStack(m.char.Transform(text), m.word.NumFeatures())
}

// Predict returns the category name for normalized ticket text.
func (m *Model) Predict(text string) (string, error) {
	class := m.classifier.Predict(m.Features(text))
	return m.labels.Decode(class)
}

// Fingerprint identifies the artifact set the model was loaded from. Models built
// with NewModel have an empty fingerprint.
func (m *Model) Fingerprint() string {
	return m.fingerprint
}

// Categories lists every category the decoder knows.
func (m *Model) Categories() []string {
	return m.labels.Classes()
}
