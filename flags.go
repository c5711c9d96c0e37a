package pulse

import "strings"

// criticalFlags are the phrase-level alarms raised for one text.
type criticalFlags struct {
	attritionRisk       bool
	mentalHealthConcern bool
	criticalIssue       bool
}

// flagPenalty is the score and evidence adjustment for one raised flag.
type flagPenalty struct {
	set      func(criticalFlags) bool
	penalty  float64
	evidence int
}

// flagPenalties are stacked; every raised flag applies.
var flagPenalties = []flagPenalty{
	{set: func(f criticalFlags) bool { return f.attritionRisk }, penalty: 0.5, evidence: 2},
	{set: func(f criticalFlags) bool { return f.mentalHealthConcern }, penalty: 0.7, evidence: 3},
	{set: func(f criticalFlags) bool { return f.criticalIssue }, penalty: 1.0, evidence: 4},
}

// detectFlags runs substring matching over the lowercased, unstripped text.
func (lex *Lexicon) detectFlags(lower string) criticalFlags {
	return criticalFlags{
		attritionRisk:       containsAny(lower, lex.attrition),
		mentalHealthConcern: containsAny(lower, lex.mentalHealth),
		criticalIssue:       containsAny(lower, lex.critical),
	}
}

// scorePhrases adds the score of every positive and negative phrase present.
// Each phrase counts once however often it occurs.
func (lex *Lexicon) scorePhrases(lower string) (float64, int) {
	var score float64
	var count int
	for _, table := range [][]PhraseScore{lex.positivePhrases, lex.negativePhrases} {
		for _, p := range table {
			if strings.Contains(lower, p.Phrase) {
				score += p.Score
				count++
			}
		}
	}
	return score, count
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
