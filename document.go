package pulse

import (
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

var (
	segmenterOnce sync.Once
	segmenter     *sentences.DefaultSentenceTokenizer
)

// punktSegmenter returns the shared English Punkt tokenizer, or nil when its
// training data could not be loaded.
func punktSegmenter() *sentences.DefaultSentenceTokenizer {
	segmenterOnce.Do(func() {
		tok, err := english.NewSentenceTokenizer(nil)
		if err == nil {
			segmenter = tok
		}
	})
	return segmenter
}

// span is a sentence with its byte offsets in the source text.
type span struct {
	text       string
	start, end int
}

// segment splits text into sentences. Without a segmenter the whole trimmed
// text is a single sentence.
func segment(text string) []span {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	tok := punktSegmenter()
	if tok == nil {
		return []span{locate(text, strings.TrimSpace(text), 0)}
	}

	var spans []span
	cursor := 0
	for _, s := range tok.Tokenize(text) {
		t := strings.TrimSpace(s.Text)
		if t == "" {
			continue
		}
		sp := locate(text, t, cursor)
		cursor = sp.end
		spans = append(spans, sp)
	}
	return spans
}

// locate finds sentence in text at or after cursor.
func locate(text, sentence string, cursor int) span {
	start := cursor
	if i := strings.Index(text[cursor:], sentence); i >= 0 {
		start = cursor + i
	}
	end := min(start+len(sentence), len(text))
	return span{text: sentence, start: start, end: end}
}

// AnalyzeDocument scores text as a whole and sentence by sentence.
func (a *Analyzer) AnalyzeDocument(text string) Document {
	if a.config.StripMarkdown {
		text = PlainText(text)
	}

	doc := Document{
		Overall:      a.analyzePlain(text),
		Sentences:    []SentenceResult{},
		MostNegative: -1,
	}

	lowest := 0.0
	for i, sp := range segment(text) {
		r := a.analyzePlain(sp.text)
		doc.Sentences = append(doc.Sentences, SentenceResult{
			Text:   sp.text,
			Start:  sp.start,
			End:    sp.end,
			Result: r,
		})
		if r.Label == Negative && (doc.MostNegative < 0 || r.Score < lowest) {
			doc.MostNegative = i
			lowest = r.Score
		}
	}
	return doc
}
