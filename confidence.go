package pulse

import "math"

const (
	baseConfidence     = 30
	confidencePerUnit  = 12
	longTextTokens     = 50
	veryLongTextTokens = 100
)

// computeConfidence estimates how much evidence supports a score, 0 to 100.
// keywords must be deduplicated but not yet truncated.
func computeConfidence(evidence, textLength int, keywords []Keyword) int {
	conf := math.Min(100, float64(evidence*confidencePerUnit+baseConfidence))

	if textLength > longTextTokens {
		conf = math.Min(100, conf+10)
	}
	if textLength > veryLongTextTokens {
		conf = math.Min(100, conf+5)
	}

	if contradiction(keywords) > 0.5 {
		conf *= 0.8
	}

	return int(math.Max(0, math.Min(100, math.Round(conf))))
}

// contradiction is min(pos,neg)/max(pos,neg,1) over the keyword tags.
func contradiction(keywords []Keyword) float64 {
	var pos, neg int
	for _, kw := range keywords {
		switch kw.Sentiment {
		case PolarityPositive:
			pos++
		case PolarityNegative:
			neg++
		}
	}
	return float64(min(pos, neg)) / float64(max(pos, neg, 1))
}
