package pulse

// Label is the coarse sentiment class of a score.
type Label string

const (
	Positive Label = "Positive"
	Neutral  Label = "Neutral"
	Negative Label = "Negative"
)

// Polarity tags a single piece of keyword evidence.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
	PolarityNeutral  Polarity = "neutral"
)

// A Keyword is one piece of lexical evidence found in the text.
type Keyword struct {
	Word      string   `json:"word"`      // Surface text, "prev word" for negated matches
	Sentiment Polarity `json:"sentiment"` // Direction after negation
	Weight    float64  `json:"weight"`    // Absolute contribution
}

// Metadata holds the critical flags and size measures of an analyzed text.
type Metadata struct {
	AttritionRisk       bool `json:"attritionRisk"`
	MentalHealthConcern bool `json:"mentalHealthConcern"`
	CriticalIssue       bool `json:"criticalIssue"`
	TextLength          int  `json:"textLength"` // Whitespace-separated tokens in the input
	WordCount           int  `json:"wordCount"`  // Evidence units behind the score
}

// Result represents the sentiment analysis of one text.
type Result struct {
	Score      float64   `json:"score"`      // -1.0 (negative) to 1.0 (positive)
	Label      Label     `json:"label"`      // Derived from Score via LabelFor
	Confidence int       `json:"confidence"` // 0 to 100
	Keywords   []Keyword `json:"keywords"`   // Sorted by descending weight
	Metadata   Metadata  `json:"metadata"`
}

// UrgencyLevel ranks how fast a piece of feedback needs a response.
type UrgencyLevel string

const (
	Critical UrgencyLevel = "Critical"
	High     UrgencyLevel = "High"
	Medium   UrgencyLevel = "Medium"
	Low      UrgencyLevel = "Low"
)

// Urgency is the recommended follow-up for a Result.
type Urgency struct {
	Level        UrgencyLevel `json:"level"`
	ResponseTime string       `json:"responseTime"`
	Action       string       `json:"action"`
}

// Trend describes the direction of sentiment over time.
type Trend string

const (
	Improving Trend = "improving"
	Stable    Trend = "stable"
	Declining Trend = "declining"
	Volatile  Trend = "volatile"
)

// TrendAssessment compares a current score against its history.
type TrendAssessment struct {
	Trend          Trend   `json:"trend"`
	ChangeRate     float64 `json:"changeRate"`
	Recommendation string  `json:"recommendation"`
}

// KeywordFrequency counts how many texts produced a keyword.
type KeywordFrequency struct {
	Word      string   `json:"word"`
	Sentiment Polarity `json:"sentiment"`
	Frequency int      `json:"frequency"`
}

// AggregateResult summarizes the analysis of several texts.
type AggregateResult struct {
	OverallScore           float64            `json:"overallScore"`
	OverallLabel           Label              `json:"overallLabel"`
	AverageConfidence      int                `json:"averageConfidence"`
	TopKeywords            []KeywordFrequency `json:"topKeywords"`
	HasAttritionRisk       bool               `json:"hasAttritionRisk"`
	HasMentalHealthConcern bool               `json:"hasMentalHealthConcern"`
	HasCriticalIssue       bool               `json:"hasCriticalIssue"`
}

// A SentenceResult is the analysis of a single segmented sentence.
type SentenceResult struct {
	Text   string `json:"text"`
	Start  int    `json:"start"` // Byte offset in the original text
	End    int    `json:"end"`
	Result Result `json:"result"`
}

// Document holds an overall analysis plus its sentence breakdown.
type Document struct {
	Overall      Result           `json:"overall"`
	Sentences    []SentenceResult `json:"sentences"`
	MostNegative int              `json:"mostNegative"` // Index into Sentences, -1 if none is negative
}

// CloudWord is one entry of a feedback word cloud.
type CloudWord struct {
	Word      string   `json:"word"`
	Sentiment Polarity `json:"sentiment"`
	Count     int      `json:"count"`
	Size      float64  `json:"size"` // Font size in pixels, 12 to 48
}

// VADERScores are the polarity scores reported by govader.
type VADERScores struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// Comparison puts the lexical result next to a VADER reading of the same text.
type Comparison struct {
	Lexical Result      `json:"lexical"`
	VADER   VADERScores `json:"vader"`
	Agree   bool        `json:"agree"` // Both engines produce the same Label
}
