package classifier

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// vectorizerSpec is the JSON export of a fitted TF-IDF vectorizer.
type vectorizerSpec struct {
	Analyzer     string         `json:"analyzer"`
	NgramRange   [2]int         `json:"ngram_range"`
	Lowercase    *bool          `json:"lowercase"`
	StripAccents string         `json:"strip_accents"`
	TokenPattern string         `json:"token_pattern"`
	StopWords    []string       `json:"stop_words"`
	Binary       bool           `json:"binary"`
	UseIDF       *bool          `json:"use_idf"`
	SublinearTF  bool           `json:"sublinear_tf"`
	Norm         *string        `json:"norm"`
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
}

// UnmarshalJSON keeps scikit-learn's reading of an explicit null: norm=None turns
// normalization off and a null flag is false. An absent key keeps the default.
func (s *vectorizerSpec) UnmarshalJSON(data []byte) error {
	type plain vectorizerSpec
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	isNull := func(key string) bool {
		raw, ok := keys[key]
		return ok && string(raw) == "null"
	}
	if isNull("norm") {
		none := ""
		p.Norm = &none
	}
	if isNull("use_idf") {
		off := false
		p.UseIDF = &off
	}
	if isNull("lowercase") {
		off := false
		p.Lowercase = &off
	}
	*s = vectorizerSpec(p)
	return nil
}

// Vectorizer maps a document to TF-IDF weights over a fixed vocabulary.
// It is immutable after loading and safe for concurrent use.
type Vectorizer struct {
	analyze     analyzer
	vocabulary  map[string]int
	idf         []float64
	useIDF      bool
	binary      bool
	sublinearTF bool
	norm        string
	features    int
}

// LoadVectorizer reads a vectorizer artifact from path.
func LoadVectorizer(path string) (*Vectorizer, error) {
	return loadVectorizer(path, nil)
}

func loadVectorizer(path string, digest io.Writer) (*Vectorizer, error) {
	var spec vectorizerSpec
	if err := readArtifact(path, &spec, digest); err != nil {
		return nil, fmt.Errorf("vectorizer %s: %w", path, err)
	}
	v, err := newVectorizer(spec)
	if err != nil {
		return nil, fmt.Errorf("vectorizer %s: %w", path, err)
	}
	return v, nil
}

func newVectorizer(spec vectorizerSpec) (*Vectorizer, error) {
	if spec.NgramRange == [2]int{} {
		spec.NgramRange = [2]int{1, 1}
	}
	if spec.NgramRange[0] < 1 || spec.NgramRange[0] > spec.NgramRange[1] {
		return nil, fmt.Errorf("invalid ngram_range %v", spec.NgramRange)
	}
	if len(spec.Vocabulary) == 0 {
		return nil, fmt.Errorf("empty vocabulary")
	}

	features := 0
	seen := make(map[int]string, len(spec.Vocabulary))
	for term, idx := range spec.Vocabulary {
		if idx < 0 {
			return nil, fmt.Errorf("negative column %d for term %q", idx, term)
		}
		if prev, dup := seen[idx]; dup {
			return nil, fmt.Errorf("terms %q and %q share column %d", prev, term, idx)
		}
		seen[idx] = term
		if idx+1 > features {
			features = idx + 1
		}
	}
	if features != len(spec.Vocabulary) {
		return nil, fmt.Errorf("vocabulary columns are not contiguous: %d terms, max column %d", len(spec.Vocabulary), features-1)
	}

	useIDF := spec.UseIDF == nil || *spec.UseIDF
	if useIDF && len(spec.IDF) != features {
		return nil, fmt.Errorf("idf has %d weights for %d features", len(spec.IDF), features)
	}

	normName := "l2"
	if spec.Norm != nil {
		normName = *spec.Norm
	}
	switch normName {
	case "l1", "l2", "":
	default:
		return nil, fmt.Errorf("unsupported norm %q", normName)
	}

	analyze, err := buildAnalyzer(spec)
	if err != nil {
		return nil, err
	}

	return &Vectorizer{
		analyze:     analyze,
		vocabulary:  spec.Vocabulary,
		idf:         spec.IDF,
		useIDF:      useIDF,
		binary:      spec.Binary,
		sublinearTF: spec.SublinearTF,
		norm:        normName,
		features:    features,
	}, nil
}

// NumFeatures returns the width of vectors produced by Transform.
func (v *Vectorizer) NumFeatures() int {
	return v.features
}

// Transform weighs the document's in-vocabulary terms. Unknown terms are ignored.
func (v *Vectorizer) Transform(doc string) SparseVector {
	counts := make(map[int]float64)
	for _, term := range v.analyze(doc) {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
		}
	}

	for idx, tf := range counts {
		switch {
		case v.binary:
			tf = 1
		case v.sublinearTF:
			tf = math.Log(tf) + 1
		}
		if v.useIDF {
			tf *= v.idf[idx]
		}
		counts[idx] = tf
	}

	vec := sparseFromMap(counts)
	vec.normalize(v.norm)
	return vec
}
