package pulse

import (
	"math"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Scoring constants shared by every Analyzer.
const (
	negatedPositiveFactor = 0.8
	negatedNegativeFactor = 0.3

	positiveThreshold = 0.15
	negativeThreshold = -0.15

	maxKeywordLimit = 15
)

// Analyzer scores free-text feedback against a Lexicon.
type Analyzer struct {
	lexicon   *Lexicon
	tokenizer Tokenizer
	form      norm.Form
	config    Config
}

// Config configures sentiment analysis
type Config struct {
	NegationWindow        int      // Preceding tokens checked for a negation
	MaxKeywords           int      // Keywords kept in a Result, at most 15
	ModifierSkipsNegation bool     // Apply a modifier at i-2 when i-1 is a negation ("really not happy")
	StripMarkdown         bool     // Render markdown to plain text before scoring
	StopWords             Language // Stop-word list used by WordCloud
}

// DefaultConfig returns standard configuration
func DefaultConfig() Config {
	return Config{
		NegationWindow:        2,
		MaxKeywords:           maxKeywordLimit,
		ModifierSkipsNegation: false,
		StripMarkdown:         false,
		StopWords:             English,
	}
}

// An Option changes how an Analyzer is built.
type Option func(*Analyzer)

// UsingTokenizer specifies the Tokenizer to use.
func UsingTokenizer(t Tokenizer) Option {
	return func(a *Analyzer) {
		if t != nil {
			a.tokenizer = t
		}
	}
}

// NewAnalyzer creates a sentiment analyzer. A nil lexicon selects DefaultLexicon.
func NewAnalyzer(lex *Lexicon, config Config, opts ...Option) *Analyzer {
	if lex == nil {
		lex = DefaultLexicon()
	}
	if config.NegationWindow < 0 {
		config.NegationWindow = 0
	}
	if config.MaxKeywords <= 0 || config.MaxKeywords > maxKeywordLimit {
		config.MaxKeywords = maxKeywordLimit
	}
	if config.StopWords == "" {
		config.StopWords = English
	}

	a := &Analyzer{
		lexicon:   lex,
		tokenizer: NewWordTokenizer(),
		config:    config,
	}
	for _, applyOpt := range opts {
		applyOpt(a)
	}
	a.form = defaultForm
	if n, ok := a.tokenizer.(normalizer); ok {
		a.form = n.Form()
	}
	return a
}

// Lexicon returns the analyzer's lexicon.
func (a *Analyzer) Lexicon() *Lexicon {
	return a.lexicon
}

var defaultAnalyzer = NewAnalyzer(nil, DefaultConfig())

// Analyze scores text with the default lexicon and configuration.
func Analyze(text string) Result {
	return defaultAnalyzer.Analyze(text)
}

// scan is the running state of one analysis.
type scan struct {
	total    float64
	count    int
	evidence []Keyword
}

// Analyze scores a single text. It never fails: text without any lexicon
// match scores 0 with the base confidence.
func (a *Analyzer) Analyze(text string) Result {
	if a.config.StripMarkdown {
		text = PlainText(text)
	}
	return a.analyzePlain(text)
}

func (a *Analyzer) analyzePlain(text string) Result {
	s := a.scanTokens(a.tokenizer.Tokenize(text))

	lower := lowerText(text, a.form)
	flags := a.lexicon.detectFlags(lower)
	for _, p := range flagPenalties {
		if p.set(flags) {
			s.total -= p.penalty
			s.count += p.evidence
		}
	}

	phraseScore, phraseCount := a.lexicon.scorePhrases(lower)
	s.total += phraseScore
	s.count += phraseCount

	score := 0.0
	if s.count > 0 {
		score = clampScore(s.total / float64(s.count))
	}

	keywords := dedupeKeywords(s.evidence)
	textLength := countFields(text)
	confidence := computeConfidence(s.count, textLength, keywords)

	if len(keywords) > a.config.MaxKeywords {
		keywords = keywords[:a.config.MaxKeywords]
	}

	return Result{
		Score:      score,
		Label:      LabelFor(score),
		Confidence: confidence,
		Keywords:   keywords,
		Metadata: Metadata{
			AttritionRisk:       flags.attritionRisk,
			MentalHealthConcern: flags.mentalHealthConcern,
			CriticalIssue:       flags.criticalIssue,
			TextLength:          textLength,
			WordCount:           s.count,
		},
	}
}

// scanTokens walks the tokens applying negation and intensity context.
func (a *Analyzer) scanTokens(tokens []string) scan {
	var s scan
	lex := a.lexicon

	for i, word := range tokens {
		prev := ""
		if i > 0 {
			prev = tokens[i-1]
		}

		weight, positive := lex.Positive(word)
		if !positive {
			var negative bool
			if weight, negative = lex.Negative(word); !negative {
				continue
			}
		}

		negated := a.checkNegation(tokens, i)
		raw := weight * a.intensity(tokens, i)

		var kw Keyword
		var contrib float64
		switch {
		case positive && negated:
			contrib = -math.Abs(raw) * negatedPositiveFactor
			kw = Keyword{Word: prev + " " + word, Sentiment: PolarityNegative, Weight: math.Abs(contrib)}
		case positive:
			contrib = raw
			kw = Keyword{Word: word, Sentiment: PolarityPositive, Weight: math.Abs(raw)}
		case negated:
			contrib = math.Abs(raw) * negatedNegativeFactor
			kw = Keyword{Word: prev + " " + word, Sentiment: PolarityNeutral, Weight: math.Abs(contrib)}
		default:
			contrib = raw
			kw = Keyword{Word: word, Sentiment: PolarityNegative, Weight: math.Abs(raw)}
		}

		s.evidence = append(s.evidence, kw)
		s.total += contrib
		s.count++
	}
	return s
}

// checkNegation detects a negation within the configured lookback window.
func (a *Analyzer) checkNegation(tokens []string, position int) bool {
	for k := 1; k <= a.config.NegationWindow && position-k >= 0; k++ {
		if a.lexicon.IsNegation(tokens[position-k]) {
			return true
		}
	}
	return false
}

// intensity returns the multiplier of the modifier preceding position.
func (a *Analyzer) intensity(tokens []string, position int) float64 {
	if position == 0 {
		return 1.0
	}
	prev := tokens[position-1]
	if f, ok := a.lexicon.Modifier(prev); ok {
		return f
	}
	if a.config.ModifierSkipsNegation && position >= 2 && a.lexicon.IsNegation(prev) {
		if f, ok := a.lexicon.Modifier(tokens[position-2]); ok {
			return f
		}
	}
	return 1.0
}

// dedupeKeywords keeps the last evidence for each surface word at the position
// of its first occurrence, then sorts by descending weight. Equal weights keep
// their order.
func dedupeKeywords(evidence []Keyword) []Keyword {
	index := make(map[string]int, len(evidence))
	out := make([]Keyword, 0, len(evidence))
	for _, kw := range evidence {
		if i, ok := index[kw.Word]; ok {
			out[i] = kw
			continue
		}
		index[kw.Word] = len(out)
		out = append(out, kw)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight > out[j].Weight
	})
	return out
}

// LabelFor maps a score to its Label. Scores within ±0.15 are Neutral.
func LabelFor(score float64) Label {
	if score > positiveThreshold {
		return Positive
	}
	if score < negativeThreshold {
		return Negative
	}
	return Neutral
}

// EmojiFor returns a face matching the score.
func EmojiFor(score float64) string {
	switch {
	case score > 0.5:
		return "😊"
	case score > positiveThreshold:
		return "🙂"
	case score > negativeThreshold:
		return "😐"
	case score > -0.5:
		return "😟"
	default:
		return "😢"
	}
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
