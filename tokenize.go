package pulse

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits feedback text into lowercase scoring tokens.
type Tokenizer interface {
	Tokenize(string) []string
}

// defaultForm is the normalization applied to text before any matching.
const defaultForm = norm.NFC

// normalizer is implemented by tokenizers that normalize text before
// splitting it. The analyzer matches phrases in the same form.
type normalizer interface {
	Form() norm.Form
}

// RuneTester reports whether a rune survives token cleaning.
type RuneTester func(rune) bool

// wordTokenizer lowercases, strips punctuation and splits on whitespace.
type wordTokenizer struct {
	form norm.Form
	keep RuneTester
}

type TokenizerOptFunc func(*wordTokenizer)

// UsingNormalization sets the Unicode normalization form applied before lowercasing.
func UsingNormalization(f norm.Form) TokenizerOptFunc {
	return func(tok *wordTokenizer) {
		tok.form = f
	}
}

// UsingKeep replaces the rune filter. Whitespace is always kept so tokens can be split.
func UsingKeep(x RuneTester) TokenizerOptFunc {
	return func(tok *wordTokenizer) {
		if x != nil {
			tok.keep = x
		}
	}
}

// NewWordTokenizer returns the default tokenizer: NFC, lowercase, keep ASCII word
// characters, apostrophes and hyphens.
func NewWordTokenizer(opts ...TokenizerOptFunc) Tokenizer {
	tok := &wordTokenizer{
		form: defaultForm,
		keep: isWordRune,
	}
	for _, applyOpt := range opts {
		applyOpt(tok)
	}
	return tok
}

// Tokenize returns the cleaned tokens of text. Empty or whitespace-only input
// yields no tokens.
func (t *wordTokenizer) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || t.keep(r) {
			return r
		}
		return -1
	}, lowerText(text, t.form))
	return strings.Fields(clean)
}

// Form returns the Unicode normalization form applied before lowercasing.
func (t *wordTokenizer) Form() norm.Form {
	return t.form
}

// lowerText is the normalized lowercase form used by every phrase matcher.
func lowerText(text string, form norm.Form) string {
	return strings.ToLower(form.String(text))
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '\'', r == '-':
		return true
	}
	return false
}

// countFields is the whitespace token count of the raw input.
func countFields(text string) int {
	return len(strings.Fields(text))
}
