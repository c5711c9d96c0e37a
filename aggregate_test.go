package pulse

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Empty(t *testing.T) {
	for _, texts := range [][]string{nil, {}} {
		agg := Aggregate(texts)

		assert.Equal(t, 0.0, agg.OverallScore)
		assert.Equal(t, Neutral, agg.OverallLabel)
		assert.Equal(t, 0, agg.AverageConfidence)
		assert.NotNil(t, agg.TopKeywords)
		assert.Empty(t, agg.TopKeywords)
		assert.False(t, agg.HasAttritionRisk)
		assert.False(t, agg.HasMentalHealthConcern)
		assert.False(t, agg.HasCriticalIssue)
	}
}

func TestAggregate(t *testing.T) {
	agg := Aggregate([]string{"happy", "terrible"})

	assert.InDelta(t, -0.05, agg.OverallScore, 1e-9)
	assert.Equal(t, Neutral, agg.OverallLabel)
	assert.Equal(t, 42, agg.AverageConfidence)
	assert.Equal(t, []KeywordFrequency{
		{Word: "happy", Sentiment: PolarityPositive, Frequency: 1},
		{Word: "terrible", Sentiment: PolarityNegative, Frequency: 1},
	}, agg.TopKeywords)
}

func TestAggregate_RoundsConfidence(t *testing.T) {
	// 42 and 43 average to 42.5.
	assert.Equal(t, 43, Aggregate([]string{"happy", "happy but stressed"}).AverageConfidence)
}

func TestAggregate_KeywordFrequency(t *testing.T) {
	agg := Aggregate([]string{"not happy", "happy", "happy happy", "terrible"})

	require.Len(t, agg.TopKeywords, 3)
	assert.Equal(t, KeywordFrequency{Word: "happy", Sentiment: PolarityPositive, Frequency: 2}, agg.TopKeywords[0])
	assert.Equal(t, KeywordFrequency{Word: "not happy", Sentiment: PolarityNegative, Frequency: 1}, agg.TopKeywords[1])
	assert.Equal(t, "terrible", agg.TopKeywords[2].Word)
}

func TestAggregate_TopKeywordLimit(t *testing.T) {
	words := make([]string, 0, len(basePositive))
	for w := range basePositive {
		words = append(words, w)
	}
	sort.Strings(words)
	require.Greater(t, len(words), 20)

	agg := Aggregate(words)
	require.Len(t, agg.TopKeywords, 20)
	for i, kf := range agg.TopKeywords {
		assert.Equal(t, words[i], kf.Word)
	}
}

func TestAggregate_Flags(t *testing.T) {
	agg := Aggregate([]string{"I am happy", "considering leaving", "counseling helped"})

	assert.True(t, agg.HasAttritionRisk)
	assert.True(t, agg.HasMentalHealthConcern)
	assert.False(t, agg.HasCriticalIssue)
}

func TestAggregateContext_MatchesAggregate(t *testing.T) {
	texts := []string{
		"I love my team and feel very appreciated",
		"I am thinking of leaving, the workload is toxic and I feel harassed",
		"happy",
		"not happy",
		"I love my team and feel very appreciated",
		"",
		"the overtime is exhausting",
		"happy",
	}
	a := NewAnalyzer(nil, DefaultConfig())
	want := a.Aggregate(texts)

	for _, workers := range []int{0, 1, 3, 16} {
		got, err := a.AggregateContext(context.Background(), texts, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers %d", workers)
	}
}

func TestAggregateContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAnalyzer(nil, DefaultConfig()).AggregateContext(ctx, []string{"happy", "sad"}, 2)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestResultMemo(t *testing.T) {
	memo := newResultMemo(NewAnalyzer(nil, DefaultConfig()))

	first := memo.analyze("happy")
	assert.Len(t, memo.results, 1)
	assert.Equal(t, first, memo.analyze("happy"))
	assert.Len(t, memo.results, 1)
}

func BenchmarkAggregateContext(b *testing.B) {
	texts := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		texts = append(texts, "My manager never listens and the overtime is extremely exhausting")
	}
	a := NewAnalyzer(nil, DefaultConfig())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.AggregateContext(context.Background(), texts, 0)
	}
}
