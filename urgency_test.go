package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessUrgency(t *testing.T) {
	tests := []struct {
		result       Result
		level        UrgencyLevel
		responseTime string
		desc         string
	}{
		{Result{Score: 0.9, Confidence: 90, Metadata: Metadata{CriticalIssue: true, MentalHealthConcern: true}},
			Critical, "Immediate", "Critical issue first"},
		{Result{Score: 0.9, Confidence: 90, Metadata: Metadata{MentalHealthConcern: true, AttritionRisk: true}},
			Critical, "Within 24 hours", "Mental health before attrition"},
		{Result{Score: 0.9, Confidence: 90, Metadata: Metadata{AttritionRisk: true}},
			High, "Within 2-3 days", "Attrition risk"},
		{Result{Score: -0.71, Confidence: 90}, High, "Within 2-3 days", "Very negative score"},
		{Result{Score: -0.7, Confidence: 90}, High, "Within 1 week", "Boundary at -0.7"},
		{Result{Score: -0.41, Confidence: 90}, High, "Within 1 week", "Negative score"},
		{Result{Score: -0.4, Confidence: 90}, Medium, "Within 2 weeks", "Boundary at -0.4"},
		{Result{Score: -0.16, Confidence: 90}, Medium, "Within 2 weeks", "Mildly negative"},
		{Result{Score: 0.8, Confidence: 49}, Medium, "Within 2 weeks", "Low confidence"},
		{Result{Score: -0.15, Confidence: 50}, Low, "Standard follow-up", "Neutral boundary"},
		{Result{Score: 0.8, Confidence: 80}, Low, "Standard follow-up", "Positive"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			u := AssessUrgency(tt.result)
			assert.Equal(t, tt.level, u.Level)
			assert.Equal(t, tt.responseTime, u.ResponseTime)
			assert.NotEmpty(t, u.Action)
		})
	}
}

func TestAssessUrgency_Actions(t *testing.T) {
	assert.Equal(t, "Escalate to HR leadership and legal immediately",
		AssessUrgency(Result{Metadata: Metadata{CriticalIssue: true}}).Action)
	assert.Equal(t, "Continue regular engagement activities",
		AssessUrgency(Result{Confidence: 60}).Action)
}
