package pulse

import (
	"strings"
	"sync"

	"github.com/jonreiter/govader"
)

var (
	vaderOnce sync.Once
	vader     *govader.SentimentIntensityAnalyzer
)

func vaderAnalyzer() *govader.SentimentIntensityAnalyzer {
	vaderOnce.Do(func() {
		vader = govader.NewSentimentIntensityAnalyzer()
	})
	return vader
}

// VADER scores text with the general-purpose VADER model. Blank text is
// neutral.
func VADER(text string) VADERScores {
	if strings.TrimSpace(text) == "" {
		return VADERScores{Neutral: 1}
	}
	s := vaderAnalyzer().PolarityScores(text)
	return VADERScores{
		Compound: s.Compound,
		Positive: s.Positive,
		Neutral:  s.Neutral,
		Negative: s.Negative,
	}
}

// Compare scores text with both the HR lexicon and VADER. The engines agree
// when their scores map to the same Label.
func (a *Analyzer) Compare(text string) Comparison {
	if a.config.StripMarkdown {
		text = PlainText(text)
	}
	lexical := a.analyzePlain(text)
	v := VADER(text)
	return Comparison{
		Lexical: lexical,
		VADER:   v,
		Agree:   lexical.Label == LabelFor(v.Compound),
	}
}
