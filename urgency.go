package pulse

// urgencyRule pairs a predicate with the assessment it produces.
type urgencyRule struct {
	match   func(Result) bool
	urgency Urgency
}

// urgencyRules are evaluated top to bottom; the first match wins. Later rules
// are catch-alls for what the earlier ones leave.
var urgencyRules = []urgencyRule{
	{
		match: func(r Result) bool { return r.Metadata.CriticalIssue },
		urgency: Urgency{
			Level:        Critical,
			ResponseTime: "Immediate",
			Action:       "Escalate to HR leadership and legal immediately",
		},
	},
	{
		match: func(r Result) bool { return r.Metadata.MentalHealthConcern },
		urgency: Urgency{
			Level:        Critical,
			ResponseTime: "Within 24 hours",
			Action:       "Contact employee personally, offer EAP resources",
		},
	},
	{
		match: func(r Result) bool { return r.Metadata.AttritionRisk || r.Score < -0.7 },
		urgency: Urgency{
			Level:        High,
			ResponseTime: "Within 2-3 days",
			Action:       "Schedule 1-on-1 with manager, assess retention risk",
		},
	},
	{
		match: func(r Result) bool { return r.Score < -0.4 },
		urgency: Urgency{
			Level:        High,
			ResponseTime: "Within 1 week",
			Action:       "Manager should address concerns in next check-in",
		},
	},
	{
		match: func(r Result) bool { return r.Score < negativeThreshold || r.Confidence < 50 },
		urgency: Urgency{
			Level:        Medium,
			ResponseTime: "Within 2 weeks",
			Action:       "Monitor situation, include in next team pulse survey",
		},
	},
}

var lowUrgency = Urgency{
	Level:        Low,
	ResponseTime: "Standard follow-up",
	Action:       "Continue regular engagement activities",
}

// AssessUrgency returns the recommended follow-up for r.
func AssessUrgency(r Result) Urgency {
	for _, rule := range urgencyRules {
		if rule.match(r) {
			return rule.urgency
		}
	}
	return lowUrgency
}
