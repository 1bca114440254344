package classifier

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/triage"
)

const defaultTokenPattern = `(?u)\b\w\w+\b`

// analyzer turns a document into the list of terms the vocabulary is keyed on.
type analyzer func(doc string) []string

func buildAnalyzer(spec vectorizerSpec) (analyzer, error) {
	preprocess, err := buildPreprocessor(spec)
	if err != nil {
		return nil, err
	}
	minN, maxN := spec.NgramRange[0], spec.NgramRange[1]

	switch spec.Analyzer {
	case "word", "":
		tokenize, err := buildTokenizer(spec.TokenPattern)
		if err != nil {
			return nil, err
		}
		stop := make(map[string]struct{}, len(spec.StopWords))
		for _, w := range spec.StopWords {
			stop[w] = struct{}{}
		}
		return func(doc string) []string {
			return wordNgrams(tokenize(preprocess(doc)), stop, minN, maxN)
		}, nil
	case "char":
		return func(doc string) []string {
			return charNgrams(preprocess(doc), minN, maxN)
		}, nil
	case "char_wb":
		return func(doc string) []string {
			return charWBNgrams(preprocess(doc), minN, maxN)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported analyzer %q", spec.Analyzer)
	}
}

func buildPreprocessor(spec vectorizerSpec) (func(string) string, error) {
	var strip func(string) string
	switch spec.StripAccents {
	case "":
	case "unicode":
		strip = stripAccentsUnicode
	case "ascii":
		strip = stripAccentsASCII
	default:
		return nil, fmt.Errorf("unsupported strip_accents %q", spec.StripAccents)
	}
	lowercase := spec.Lowercase == nil || *spec.Lowercase

	return func(doc string) string {
		if lowercase {
			doc = triage.Lower(doc)
		}
		if strip != nil {
			doc = strip(doc)
		}
		return doc
	}, nil
}

// stripAccentsUnicode decomposes with NFKD and drops code points with a non-zero
// combining class.
func stripAccentsUnicode(s string) string {
	decomposed := norm.NFKD.String(s)
	if decomposed == s && isASCII(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(decomposed))
	for i := 0; i < len(decomposed); {
		props := norm.NFKD.PropertiesString(decomposed[i:])
		size := props.Size()
		if size == 0 {
			size = 1
		}
		if props.CCC() == 0 {
			b.WriteString(decomposed[i : i+size])
		}
		i += size
	}
	return b.String()
}

func stripAccentsASCII(s string) string {
	decomposed := norm.NFKD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func buildTokenizer(pattern string) (func(string) []string, error) {
	if pattern == "" || pattern == defaultTokenPattern {
		return wordTokens, nil
	}
	// RE2 has no (?u) flag; \w and \b are ASCII-only in custom patterns.
	re, err := regexp.Compile(strings.TrimPrefix(pattern, "(?u)"))
	if err != nil {
		return nil, fmt.Errorf("token_pattern: %w", err)
	}
	switch re.NumSubexp() {
	case 0:
		return func(doc string) []string {
			return re.FindAllString(doc, -1)
		}, nil
	case 1:
		return func(doc string) []string {
			matches := re.FindAllStringSubmatch(doc, -1)
			out := make([]string, 0, len(matches))
			for _, m := range matches {
				out = append(out, m[1])
			}
			return out
		}, nil
	default:
		return nil, fmt.Errorf("token_pattern: more than one capturing group")
	}
}

// wordTokens returns every maximal run of two or more word characters, where a
// word character is a Unicode letter, number or underscore.
func wordTokens(doc string) []string {
	var tokens []string
	start, count := -1, 0
	flush := func(end int) {
		if start >= 0 && count >= 2 {
			tokens = append(tokens, doc[start:end])
		}
		start, count = -1, 0
	}
	for i, r := range doc {
		if isWordChar(r) {
			if start < 0 {
				start = i
			}
			count++
			continue
		}
		flush(i)
	}
	flush(len(doc))
	return tokens
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func wordNgrams(tokens []string, stop map[string]struct{}, minN, maxN int) []string {
	if len(stop) > 0 {
		kept := tokens[:0:0]
		for _, tok := range tokens {
			if _, drop := stop[tok]; !drop {
				kept = append(kept, tok)
			}
		}
		tokens = kept
	}
	if maxN == 1 {
		return tokens
	}

	original := tokens
	var out []string
	if minN == 1 {
		out = append(out, original...)
		minN++
	}
	for n := minN; n <= maxN && n <= len(original); n++ {
		for i := 0; i+n <= len(original); i++ {
			out = append(out, strings.Join(original[i:i+n], " "))
		}
	}
	return out
}

// collapseMultiSpace replaces runs of two or more whitespace characters with one
// space; a lone whitespace character is left untouched.
func collapseMultiSpace(doc []rune) []rune {
	out := make([]rune, 0, len(doc))
	for i := 0; i < len(doc); {
		if !triage.IsSpace(doc[i]) {
			out = append(out, doc[i])
			i++
			continue
		}
		j := i
		for j < len(doc) && triage.IsSpace(doc[j]) {
			j++
		}
		if j-i >= 2 {
			out = append(out, ' ')
		} else {
			out = append(out, doc[i])
		}
		i = j
	}
	return out
}

func charNgrams(doc string, minN, maxN int) []string {
	text := collapseMultiSpace([]rune(doc))
	var out []string
	if minN == 1 {
		for _, r := range text {
			out = append(out, string(r))
		}
		minN++
	}
	for n := minN; n <= maxN && n <= len(text); n++ {
		for i := 0; i+n <= len(text); i++ {
			out = append(out, string(text[i:i+n]))
		}
	}
	return out
}

func charWBNgrams(doc string, minN, maxN int) []string {
	text := string(collapseMultiSpace([]rune(doc)))
	var out []string
	for _, word := range strings.FieldsFunc(text, triage.IsSpace) {
		w := []rune(" " + word + " ")
		for n := minN; n <= maxN; n++ {
			offset := 0
			out = append(out, string(w[offset:min(offset+n, len(w))]))
			for offset+n < len(w) {
				offset++
				out = append(out, string(w[offset:min(offset+n, len(w))]))
			}
			// a word shorter than n is counted once
			if offset == 0 {
				break
			}
		}
	}
	return out
}
