package pulse

import "gonum.org/v1/gonum/stat"

const (
	volatileVariance = 0.15
	trendChange      = 0.2
)

// AnalyzeTrend compares current against the chronological history of scores.
// Volatility wins over direction: a history whose population variance exceeds
// 0.15 is reported as volatile whatever the change.
func AnalyzeTrend(current float64, history []float64) TrendAssessment {
	if len(history) == 0 {
		return TrendAssessment{
			Trend:          Stable,
			ChangeRate:     0,
			Recommendation: "Establish baseline. Continue monitoring over next 3 months.",
		}
	}

	mean, variance := stat.PopMeanVariance(history, nil)
	change := current - mean

	switch {
	case variance > volatileVariance:
		return TrendAssessment{
			Trend:          Volatile,
			ChangeRate:     change,
			Recommendation: "Inconsistent sentiment patterns. Investigate environmental factors causing fluctuations.",
		}
	case change > trendChange:
		return TrendAssessment{
			Trend:          Improving,
			ChangeRate:     change,
			Recommendation: "Sentiment improving. Document successful interventions for replication.",
		}
	case change < -trendChange:
		return TrendAssessment{
			Trend:          Declining,
			ChangeRate:     change,
			Recommendation: "Sentiment declining. Immediate manager check-in required to address concerns.",
		}
	}
	return TrendAssessment{
		Trend:          Stable,
		ChangeRate:     change,
		Recommendation: "Sentiment stable. Maintain current engagement practices.",
	}
}
