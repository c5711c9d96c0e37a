package pulse

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bbalet/stopwords"
)

const (
	defaultCloudSize = 50
	minCloudFont     = 12.0
	maxCloudFont     = 48.0
	minCloudRunes    = 3
)

// WordCloud counts the content words of texts and sizes them for display.
// Stop words, tokens shorter than three runes and tokens without letters are
// skipped. At most limit words are returned (50 when limit <= 0), most
// frequent first; equal counts keep first-seen order.
func (a *Analyzer) WordCloud(texts []string, limit int) []CloudWord {
	if limit <= 0 {
		limit = defaultCloudSize
	}

	stop := newStopWordFilter(a.config.StopWords)
	index := make(map[string]int)
	words := []CloudWord{}
	for _, text := range texts {
		for _, tok := range a.tokenizer.Tokenize(text) {
			tok = strings.Trim(tok, "'-")
			if !isCloudCandidate(tok) || stop.isStopWord(tok) {
				continue
			}
			if i, ok := index[tok]; ok {
				words[i].Count++
				continue
			}
			index[tok] = len(words)
			words = append(words, CloudWord{Word: tok, Sentiment: a.lexicon.Polarity(tok), Count: 1})
		}
	}

	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Count > words[j].Count
	})
	if len(words) > limit {
		words = words[:limit]
	}
	scaleCloud(words)
	return words
}

// scaleCloud maps counts linearly onto [12, 48]. When every count is equal the
// words share the middle size.
func scaleCloud(words []CloudWord) {
	if len(words) == 0 {
		return
	}
	lo, hi := words[0].Count, words[0].Count
	for _, w := range words {
		lo = min(lo, w.Count)
		hi = max(hi, w.Count)
	}
	for i := range words {
		if hi == lo {
			words[i].Size = (minCloudFont + maxCloudFont) / 2
			continue
		}
		words[i].Size = minCloudFont + float64(words[i].Count-lo)/float64(hi-lo)*(maxCloudFont-minCloudFont)
	}
}

func isCloudCandidate(tok string) bool {
	if utf8.RuneCountInString(tok) < minCloudRunes {
		return false
	}
	for _, r := range tok {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// Language is an ISO 639-1 code understood by the stop-word filter.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	German  Language = "de"
)

// stopWordFilter memoizes stop-word checks for one language.
type stopWordFilter struct {
	lang  string
	cache map[string]bool
}

func newStopWordFilter(lang Language) *stopWordFilter {
	return &stopWordFilter{lang: string(lang), cache: make(map[string]bool)}
}

// isStopWord asks the stopwords library whether word is filtered out.
func (f *stopWordFilter) isStopWord(word string) bool {
	if stop, ok := f.cache[word]; ok {
		return stop
	}
	cleaned := strings.TrimSpace(stopwords.CleanString(word, f.lang, false))
	stop := cleaned == ""
	f.cache[word] = stop
	return stop
}
