package pulse

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrConflictingEntry is returned when a word lands in two tables that must stay disjoint.
	ErrConflictingEntry = errors.New("conflicting lexicon entry")

	// ErrInvalidWeight is returned when a weight or factor is outside its table's range.
	ErrInvalidWeight = errors.New("invalid lexicon weight")
)

// PhraseScore is a multi-word phrase with a fixed score contribution.
type PhraseScore struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// Lexicon holds the word tables used by an Analyzer. A Lexicon is never
// modified after construction, so one value can be shared by any number of
// goroutines.
type Lexicon struct {
	positive     map[string]float64
	negative     map[string]float64
	negations    map[string]bool
	intensifiers map[string]float64
	diminishers  map[string]float64

	attrition    []string
	mentalHealth []string
	critical     []string

	positivePhrases []PhraseScore
	negativePhrases []PhraseScore
}

// LexiconFile is the JSON layout of an external lexicon extension.
type LexiconFile struct {
	Positive        []WordEntry     `json:"positive,omitempty"`
	Negative        []WordEntry     `json:"negative,omitempty"`
	Negations       []string        `json:"negations,omitempty"`
	Intensifiers    []ModifierEntry `json:"intensifiers,omitempty"`
	Diminishers     []ModifierEntry `json:"diminishers,omitempty"`
	Attrition       []string        `json:"attrition,omitempty"`
	MentalHealth    []string        `json:"mental_health,omitempty"`
	Critical        []string        `json:"critical,omitempty"`
	PositivePhrases []PhraseScore   `json:"positive_phrases,omitempty"`
	NegativePhrases []PhraseScore   `json:"negative_phrases,omitempty"`
}

// WordEntry represents a sentiment word in JSON format
type WordEntry struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

// ModifierEntry represents a modifier word in JSON format
type ModifierEntry struct {
	Word   string  `json:"word"`
	Factor float64 `json:"factor"`
}

var defaultLexicon = newBaseLexicon()

// DefaultLexicon returns the built-in HR feedback lexicon.
func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

func newBaseLexicon() *Lexicon {
	lex := &Lexicon{
		positive:        copyWeights(basePositive),
		negative:        copyWeights(baseNegative),
		negations:       make(map[string]bool, len(baseNegations)),
		intensifiers:    copyWeights(baseIntensifiers),
		diminishers:     copyWeights(baseDiminishers),
		attrition:       append([]string(nil), baseAttrition...),
		mentalHealth:    append([]string(nil), baseMentalHealth...),
		critical:        append([]string(nil), baseCritical...),
		positivePhrases: append([]PhraseScore(nil), basePositivePhrases...),
		negativePhrases: append([]PhraseScore(nil), baseNegativePhrases...),
	}
	for _, w := range baseNegations {
		lex.negations[w] = true
	}
	return lex
}

// LoadLexicon reads a JSON extension file and merges it over the default lexicon.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}

	var file LexiconFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing lexicon JSON: %w", err)
	}

	lex, err := DefaultLexicon().Merge(file)
	if err != nil {
		return nil, fmt.Errorf("failed to merge lexicon %s: %w", path, err)
	}
	return lex, nil
}

// Merge returns a new Lexicon with the entries of file layered over lex.
//
// A word moved into the positive table is dropped from the negative one and
// vice versa; the same goes for intensifiers and diminishers. Listing a word in
// both tables of the same file is an error.
func (lex *Lexicon) Merge(file LexiconFile) (*Lexicon, error) {
	if err := file.validate(); err != nil {
		return nil, err
	}

	out := lex.clone()

	for _, e := range file.Positive {
		w := normalizeKey(e.Word)
		out.positive[w] = e.Weight
		delete(out.negative, w)
	}
	for _, e := range file.Negative {
		w := normalizeKey(e.Word)
		out.negative[w] = e.Weight
		delete(out.positive, w)
	}
	for _, w := range file.Negations {
		out.negations[normalizeKey(w)] = true
	}
	for _, e := range file.Intensifiers {
		w := normalizeKey(e.Word)
		out.intensifiers[w] = e.Factor
		delete(out.diminishers, w)
	}
	for _, e := range file.Diminishers {
		w := normalizeKey(e.Word)
		out.diminishers[w] = e.Factor
		delete(out.intensifiers, w)
	}

	out.attrition = appendPhrases(out.attrition, file.Attrition)
	out.mentalHealth = appendPhrases(out.mentalHealth, file.MentalHealth)
	out.critical = appendPhrases(out.critical, file.Critical)
	out.positivePhrases = mergePhraseScores(out.positivePhrases, file.PositivePhrases)
	out.negativePhrases = mergePhraseScores(out.negativePhrases, file.NegativePhrases)

	return out, nil
}

func (file LexiconFile) validate() error {
	positive := make(map[string]bool, len(file.Positive))
	for _, e := range file.Positive {
		if e.Weight <= 0 {
			return fmt.Errorf("positive word %q has weight %v: %w", e.Word, e.Weight, ErrInvalidWeight)
		}
		positive[normalizeKey(e.Word)] = true
	}
	for _, e := range file.Negative {
		if e.Weight >= 0 {
			return fmt.Errorf("negative word %q has weight %v: %w", e.Word, e.Weight, ErrInvalidWeight)
		}
		if positive[normalizeKey(e.Word)] {
			return fmt.Errorf("word %q is both positive and negative: %w", e.Word, ErrConflictingEntry)
		}
	}

	intensifiers := make(map[string]bool, len(file.Intensifiers))
	for _, e := range file.Intensifiers {
		if e.Factor <= 1 {
			return fmt.Errorf("intensifier %q has factor %v: %w", e.Word, e.Factor, ErrInvalidWeight)
		}
		intensifiers[normalizeKey(e.Word)] = true
	}
	for _, e := range file.Diminishers {
		if e.Factor <= 0 || e.Factor >= 1 {
			return fmt.Errorf("diminisher %q has factor %v: %w", e.Word, e.Factor, ErrInvalidWeight)
		}
		if intensifiers[normalizeKey(e.Word)] {
			return fmt.Errorf("modifier %q is both intensifier and diminisher: %w", e.Word, ErrConflictingEntry)
		}
	}
	return nil
}

func (lex *Lexicon) clone() *Lexicon {
	out := &Lexicon{
		positive:        copyWeights(lex.positive),
		negative:        copyWeights(lex.negative),
		negations:       make(map[string]bool, len(lex.negations)),
		intensifiers:    copyWeights(lex.intensifiers),
		diminishers:     copyWeights(lex.diminishers),
		attrition:       append([]string(nil), lex.attrition...),
		mentalHealth:    append([]string(nil), lex.mentalHealth...),
		critical:        append([]string(nil), lex.critical...),
		positivePhrases: append([]PhraseScore(nil), lex.positivePhrases...),
		negativePhrases: append([]PhraseScore(nil), lex.negativePhrases...),
	}
	for w := range lex.negations {
		out.negations[w] = true
	}
	return out
}

// Positive returns the weight of a positive word.
func (lex *Lexicon) Positive(word string) (float64, bool) {
	w, ok := lex.positive[word]
	return w, ok
}

// Negative returns the (negative) weight of a negative word.
func (lex *Lexicon) Negative(word string) (float64, bool) {
	w, ok := lex.negative[word]
	return w, ok
}

// Polarity reports which single-word table contains word.
func (lex *Lexicon) Polarity(word string) Polarity {
	if _, ok := lex.positive[word]; ok {
		return PolarityPositive
	}
	if _, ok := lex.negative[word]; ok {
		return PolarityNegative
	}
	return PolarityNeutral
}

// IsNegation checks if word is a negation
func (lex *Lexicon) IsNegation(word string) bool {
	return lex.negations[word]
}

// Modifier returns the intensity multiplier for word. Intensifiers are
// checked before diminishers.
func (lex *Lexicon) Modifier(word string) (float64, bool) {
	if f, ok := lex.intensifiers[word]; ok {
		return f, true
	}
	if f, ok := lex.diminishers[word]; ok {
		return f, true
	}
	return 1.0, false
}

// Size returns the number of single sentiment words.
func (lex *Lexicon) Size() int {
	return len(lex.positive) + len(lex.negative)
}

func copyWeights(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func appendPhrases(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, p := range dst {
		seen[p] = true
	}
	for _, p := range src {
		p = normalizeKey(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		dst = append(dst, p)
	}
	return dst
}

func mergePhraseScores(dst, src []PhraseScore) []PhraseScore {
	index := make(map[string]int, len(dst))
	for i, p := range dst {
		index[p.Phrase] = i
	}
	for _, p := range src {
		p.Phrase = normalizeKey(p.Phrase)
		if p.Phrase == "" {
			continue
		}
		if i, ok := index[p.Phrase]; ok {
			dst[i].Score = p.Score
			continue
		}
		index[p.Phrase] = len(dst)
		dst = append(dst, p)
	}
	return dst
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
