package pulse

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestWordTokenizer(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{"", nil, "Empty"},
		{"   \t\n", nil, "Whitespace only"},
		{"Hello, World!", []string{"hello", "world"}, "Punctuation stripped"},
		{"don't  stop", []string{"don't", "stop"}, "Apostrophes kept"},
		{"work-life balance", []string{"work-life", "balance"}, "Hyphens kept"},
		{"snake_case 42", []string{"snake_case", "42"}, "Underscores and digits kept"},
		{"café au lait", []string{"caf", "au", "lait"}, "Non-ASCII letters dropped"},
		{"!!! ???", nil, "Only punctuation"},
		{"line\none", []string{"line", "one"}, "Newlines split"},
	}

	tok := NewWordTokenizer()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := tok.Tokenize(tt.text)
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWordTokenizer_Options(t *testing.T) {
	tok := NewWordTokenizer(UsingKeep(func(r rune) bool {
		return unicode.IsLetter(r)
	}))
	assert.Equal(t, []string{"café", "au", "lait"}, tok.Tokenize("café au lait!"))
	assert.Equal(t, []string{"dont"}, tok.Tokenize("don't"))

	// The combining accent is not a letter, so it only survives once composed.
	decomposed := "cafe\u0301"
	tok = NewWordTokenizer(UsingKeep(unicode.IsLetter), UsingNormalization(norm.NFC))
	assert.Equal(t, []string{"caf\u00e9"}, tok.Tokenize(decomposed))
	tok = NewWordTokenizer(UsingKeep(unicode.IsLetter), UsingNormalization(norm.NFD))
	assert.Equal(t, []string{"cafe"}, tok.Tokenize(decomposed))

	// nil keeps the default filter.
	tok = NewWordTokenizer(UsingKeep(nil))
	assert.Equal(t, []string{"hello"}, tok.Tokenize("Hello!"))
}

func TestWordTokenizer_Form(t *testing.T) {
	assert.Equal(t, norm.NFC, NewWordTokenizer().(normalizer).Form())
	assert.Equal(t, norm.NFKC, NewWordTokenizer(UsingNormalization(norm.NFKC)).(normalizer).Form())

	// Custom tokenizers without a form fall back to NFC.
	a := NewAnalyzer(nil, DefaultConfig(), UsingTokenizer(fixedTokenizer{"great"}))
	assert.Equal(t, norm.NFC, a.form)
}

func TestCountFields(t *testing.T) {
	assert.Equal(t, 0, countFields(""))
	assert.Equal(t, 3, countFields("  one two\tthree "))
}

func BenchmarkTokenize(b *testing.B) {
	tok := NewWordTokenizer()
	text := "My manager doesn't listen, and the workload is completely overwhelming."
	for i := 0; i < b.N; i++ {
		tok.Tokenize(text)
	}
}
