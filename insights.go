package pulse

import (
	"math"
	"strings"
)

// insightRule appends at most one message for a result and its lowercased text.
type insightRule func(r Result, lower string) (string, bool)

// insightRules run in order and independently; none suppresses another.
var insightRules = []insightRule{
	flagInsight(func(m Metadata) bool { return m.CriticalIssue },
		"⚠️ CRITICAL: Potential legal/HR violation detected. Immediate escalation required."),
	flagInsight(func(m Metadata) bool { return m.MentalHealthConcern },
		"🆘 URGENT: Mental health concern identified. Employee may need crisis support."),
	flagInsight(func(m Metadata) bool { return m.AttritionRisk },
		"🚨 HIGH RISK: Employee expressing intent to leave. Retention intervention needed."),

	func(r Result, lower string) (string, bool) {
		return "👤 Manager relationship issue detected. Consider skip-level meeting.",
			strings.Contains(lower, "manager") && r.Score < -0.3
	},
	topicInsight([]string{"workload", "overtime", "hours"},
		"⏰ Workload concern mentioned. Review project assignments and staffing.", ""),
	topicInsight([]string{"compensation", "pay", "salary"},
		"💰 Compensation mentioned. Consider salary review and market analysis.", ""),
	topicInsight([]string{"growth", "career", "promotion"},
		"✨ Positive career sentiment. Employee engaged with growth opportunities.",
		"📈 Career growth concern. Discuss development plan and advancement opportunities."),
	topicInsight([]string{"team", "colleague"},
		"🤝 Positive team sentiment. Strong collaborative environment.",
		"👥 Team dynamics issue. May need team building or conflict resolution."),
	func(r Result, lower string) (string, bool) {
		return "🏆 Recognition gap. Employee may feel underappreciated. Increase acknowledgment.",
			r.Score < 0 && containsAny(lower, []string{"recognition", "appreciated", "valued"})
	},

	func(r Result, _ string) (string, bool) {
		return "💚 Strong positive sentiment. Employee is highly engaged. Continue current approach.",
			r.Score > 0.5 && r.Confidence > 70
	},
	func(r Result, _ string) (string, bool) {
		return "🔄 Mixed signals detected. Deep dive conversation recommended to understand full context.",
			hasSentiment(r.Keywords, PolarityPositive) && hasSentiment(r.Keywords, PolarityNegative) &&
				math.Abs(r.Score) < 0.2
	},

	func(r Result, _ string) (string, bool) {
		return "📝 Detailed feedback provided. Employee is engaged in communication.",
			r.Metadata.TextLength > 100
	},
	func(r Result, _ string) (string, bool) {
		return "⚡ Brief negative feedback. May indicate disengagement or frustration.",
			r.Metadata.TextLength < 20 && r.Score < 0
	},
}

// ExtractInsights returns human-readable follow-up notes for r, in rule order.
func ExtractInsights(r Result, text string) []string {
	return defaultAnalyzer.ExtractInsights(r, text)
}

// ExtractInsights is the package-level ExtractInsights with keyword matching in
// the analyzer's normalization form.
func (a *Analyzer) ExtractInsights(r Result, text string) []string {
	lower := lowerText(text, a.form)
	insights := []string{}
	for _, rule := range insightRules {
		if msg, ok := rule(r, lower); ok {
			insights = append(insights, msg)
		}
	}
	return insights
}

func flagInsight(flag func(Metadata) bool, msg string) insightRule {
	return func(r Result, _ string) (string, bool) {
		return msg, flag(r.Metadata)
	}
}

// topicInsight fires when any keyword occurs. A negative score selects
// negativeMsg; an empty negativeMsg means the message ignores the score.
func topicInsight(keywords []string, msg, negativeMsg string) insightRule {
	return func(r Result, lower string) (string, bool) {
		if !containsAny(lower, keywords) {
			return "", false
		}
		if negativeMsg != "" && r.Score < 0 {
			return negativeMsg, true
		}
		return msg, true
	}
}

func hasSentiment(keywords []Keyword, p Polarity) bool {
	for _, kw := range keywords {
		if kw.Sentiment == p {
			return true
		}
	}
	return false
}
