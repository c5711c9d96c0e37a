package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDocument(t *testing.T) {
	text := "I love my team. The workload is awful."
	doc := NewAnalyzer(nil, DefaultConfig()).AnalyzeDocument(text)

	assert.Equal(t, Analyze(text), doc.Overall)
	require.Len(t, doc.Sentences, 2)

	assert.Equal(t, "I love my team.", doc.Sentences[0].Text)
	assert.Equal(t, Positive, doc.Sentences[0].Result.Label)
	assert.Equal(t, "The workload is awful.", doc.Sentences[1].Text)
	assert.Equal(t, Negative, doc.Sentences[1].Result.Label)
	assert.Equal(t, 1, doc.MostNegative)

	for _, s := range doc.Sentences {
		assert.Equal(t, s.Text, text[s.Start:s.End])
	}
}

func TestAnalyzeDocument_MostNegative(t *testing.T) {
	text := "Work is awful. I love lunch. My manager is toxic and I am miserable."
	doc := NewAnalyzer(nil, DefaultConfig()).AnalyzeDocument(text)

	require.Len(t, doc.Sentences, 3)
	assert.InDelta(t, -0.9, doc.Sentences[0].Result.Score, 1e-9)
	assert.InDelta(t, -0.95, doc.Sentences[2].Result.Score, 1e-9)
	assert.Equal(t, 2, doc.MostNegative)
}

func TestAnalyzeDocument_NoNegative(t *testing.T) {
	doc := NewAnalyzer(nil, DefaultConfig()).AnalyzeDocument("Great quarter. The team is happy.")

	assert.Len(t, doc.Sentences, 2)
	assert.Equal(t, -1, doc.MostNegative)
}

func TestAnalyzeDocument_Empty(t *testing.T) {
	doc := NewAnalyzer(nil, DefaultConfig()).AnalyzeDocument("  ")

	assert.NotNil(t, doc.Sentences)
	assert.Empty(t, doc.Sentences)
	assert.Equal(t, -1, doc.MostNegative)
	assert.Equal(t, 30, doc.Overall.Confidence)
}

func TestLocate(t *testing.T) {
	text := "Fine. Fine. Done."
	first := locate(text, "Fine.", 0)
	second := locate(text, "Fine.", first.end)

	assert.Equal(t, span{text: "Fine.", start: 0, end: 5}, first)
	assert.Equal(t, span{text: "Fine.", start: 6, end: 11}, second)
}
