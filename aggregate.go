package pulse

import (
	"context"
	"math"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

const maxTopKeywords = 20

// Aggregate analyzes every text with the default analyzer and summarizes them.
func Aggregate(texts []string) AggregateResult {
	return defaultAnalyzer.Aggregate(texts)
}

// Aggregate analyzes texts one after another and summarizes the results.
func (a *Analyzer) Aggregate(texts []string) AggregateResult {
	results := make([]Result, len(texts))
	for i, text := range texts {
		results[i] = a.Analyze(text)
	}
	return summarize(results)
}

// AggregateContext is Aggregate with the per-text analyses spread over at most
// workers goroutines (GOMAXPROCS when workers <= 0). Identical texts are scored
// once per call. The summary equals the one Aggregate returns for the same input.
func (a *Analyzer) AggregateContext(ctx context.Context, texts []string, workers int) (AggregateResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	memo := newResultMemo(a)
	results := make([]Result, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, text := range texts {
		if gctx.Err() != nil {
			break
		}
		i, text := i, text
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = memo.analyze(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return AggregateResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return AggregateResult{}, err
	}
	return summarize(results), nil
}

// resultMemo caches results for identical texts within one call.
type resultMemo struct {
	analyzer *Analyzer
	mu       sync.Mutex
	results  map[string]Result
}

func newResultMemo(a *Analyzer) *resultMemo {
	return &resultMemo{analyzer: a, results: make(map[string]Result)}
}

func (m *resultMemo) analyze(text string) Result {
	m.mu.Lock()
	r, ok := m.results[text]
	m.mu.Unlock()
	if ok {
		return r
	}

	r = m.analyzer.Analyze(text)

	m.mu.Lock()
	m.results[text] = r
	m.mu.Unlock()
	return r
}

// summarize folds per-text results, in input order, into one AggregateResult.
func summarize(results []Result) AggregateResult {
	if len(results) == 0 {
		return AggregateResult{
			OverallScore: 0,
			OverallLabel: Neutral,
			TopKeywords:  []KeywordFrequency{},
		}
	}

	scores := make([]float64, len(results))
	confidences := make([]float64, len(results))
	var out AggregateResult
	for i, r := range results {
		scores[i] = r.Score
		confidences[i] = float64(r.Confidence)
		out.HasAttritionRisk = out.HasAttritionRisk || r.Metadata.AttritionRisk
		out.HasMentalHealthConcern = out.HasMentalHealthConcern || r.Metadata.MentalHealthConcern
		out.HasCriticalIssue = out.HasCriticalIssue || r.Metadata.CriticalIssue
	}

	n := float64(len(results))
	out.OverallScore = clampScore(floats.Sum(scores) / n)
	out.OverallLabel = LabelFor(out.OverallScore)
	out.AverageConfidence = int(math.Round(floats.Sum(confidences) / n))
	out.TopKeywords = rankKeywords(results)
	return out
}

// rankKeywords counts each surface keyword across results. The first sighting
// fixes its sentiment; ties in frequency keep first-seen order.
func rankKeywords(results []Result) []KeywordFrequency {
	index := make(map[string]int)
	var freq []KeywordFrequency
	for _, r := range results {
		for _, kw := range r.Keywords {
			if i, ok := index[kw.Word]; ok {
				freq[i].Frequency++
				continue
			}
			index[kw.Word] = len(freq)
			freq = append(freq, KeywordFrequency{Word: kw.Word, Sentiment: kw.Sentiment, Frequency: 1})
		}
	}

	sort.SliceStable(freq, func(i, j int) bool {
		return freq[i].Frequency > freq[j].Frequency
	})
	if len(freq) > maxTopKeywords {
		freq = freq[:maxTopKeywords]
	}
	if freq == nil {
		freq = []KeywordFrequency{}
	}
	return freq
}
