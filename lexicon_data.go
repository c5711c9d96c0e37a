package pulse

// Built-in HR feedback tables. Weights are tuned for short survey comments.

var basePositive = map[string]float64{
	"excellent": 1.0, "great": 0.8, "amazing": 0.9, "motivated": 0.8, "engaged": 0.7,
	"satisfied": 0.7, "happy": 0.8, "love": 0.9, "enjoy": 0.7, "fantastic": 0.9,
	"productive": 0.7, "supported": 0.7, "appreciated": 0.8, "growing": 0.6,
	"collaborative": 0.6, "innovative": 0.7, "inspiring": 0.8, "rewarding": 0.8,
	"thriving": 0.9, "proud": 0.7, "exciting": 0.7, "empowered": 0.8, "valued": 0.8,
	"positive": 0.6, "balanced": 0.5, "comfortable": 0.5, "flexible": 0.6,
	"helpful": 0.6, "successful": 0.7, "opportunity": 0.5, "growth": 0.6,
	"accomplished": 0.8, "energized": 0.7, "optimistic": 0.7, "passionate": 0.8,
	"fulfilled": 0.8, "recognized": 0.7, "talented": 0.6, "efficient": 0.6,
	"creative": 0.6, "dedicated": 0.6, "enthusiastic": 0.8, "confident": 0.7,
}

var baseNegative = map[string]float64{
	"stressed": -0.8, "overwhelmed": -0.9, "frustrated": -0.8, "burned": -0.9,
	"leaving": -1.0, "exhausted": -0.9, "unhappy": -0.8, "underpaid": -0.7,
	"toxic": -1.0, "micromanaged": -0.8, "ignored": -0.7, "overworked": -0.9,
	"demotivated": -0.8, "disconnected": -0.7, "boring": -0.5, "stagnant": -0.6,
	"undervalued": -0.8, "anxious": -0.7, "unfair": -0.8, "quit": -1.0,
	"burnout": -0.9, "terrible": -0.9, "hate": -0.9, "awful": -0.9, "dread": -0.8,
	"miserable": -0.9, "resentful": -0.7, "unsupported": -0.7, "chaotic": -0.7,
	"disorganized": -0.6, "pressure": -0.6, "conflict": -0.6, "struggle": -0.5,
	"depressed": -0.8, "hopeless": -0.9, "helpless": -0.8, "worthless": -0.9,
	"betrayed": -0.8, "abandoned": -0.8, "isolated": -0.7, "trapped": -0.8,
	"suffocating": -0.8, "mismanaged": -0.7, "incompetent": -0.7, "nightmare": -0.9,
}

var baseNegations = []string{
	"not", "no", "never", "neither", "nobody", "nothing", "nowhere",
	"hardly", "scarcely", "barely", "dont", "don't", "doesnt", "doesn't",
	"didnt", "didn't", "wont", "won't", "wouldnt", "wouldn't", "cant", "can't",
	"couldnt", "couldn't", "shouldnt", "shouldn't", "isnt", "isn't",
	"arent", "aren't", "wasnt", "wasn't", "werent", "weren't",
}

var baseIntensifiers = map[string]float64{
	"very": 1.5, "extremely": 2.0, "absolutely": 1.8, "completely": 1.7,
	"totally": 1.6, "really": 1.4, "quite": 1.3, "highly": 1.5,
	"incredibly": 1.8, "exceptionally": 1.7, "particularly": 1.4,
	"remarkably": 1.6, "extraordinarily": 1.9, "utterly": 1.8,
}

var baseDiminishers = map[string]float64{
	"somewhat": 0.5, "slightly": 0.4, "barely": 0.3, "hardly": 0.3,
	"almost": 0.6, "fairly": 0.7, "relatively": 0.6, "reasonably": 0.7,
	"moderately": 0.6, "rather": 0.7, "pretty": 0.8, "kind": 0.6, "sort": 0.6,
}

var baseAttrition = []string{
	"looking for other opportunities", "considering leaving", "planning to quit",
	"last day", "two weeks notice", "resignation", "job search", "looking elsewhere",
	"better offer", "interviewing", "found another job", "moving on",
	"had enough", "done with", "cannot do this anymore", "thinking of leaving",
	"update my resume", "updating resume", "polish my cv",
}

var baseMentalHealth = []string{
	"suicide", "kill myself", "end it all", "no point", "depressed",
	"anxiety", "panic", "therapy", "counseling", "mental health",
	"breakdown", "crying", "sleep", "insomnia", "medication",
}

var baseCritical = []string{
	"harassment", "harassed", "discrimination", "bullying", "abuse", "hostile",
	"illegal", "unsafe", "violation", "retaliation", "threatened",
	"lawsuit", "lawyer", "hr complaint", "report", "investigation",
}

var basePositivePhrases = []PhraseScore{
	{Phrase: "love my job", Score: 0.9},
	{Phrase: "great team", Score: 0.7},
	{Phrase: "feel valued", Score: 0.8},
	{Phrase: "work life balance", Score: 0.6},
	{Phrase: "excited about", Score: 0.8},
	{Phrase: "looking forward", Score: 0.7},
	{Phrase: "proud to", Score: 0.7},
	{Phrase: "best place", Score: 0.9},
}

var baseNegativePhrases = []PhraseScore{
	{Phrase: "hate my job", Score: -0.9},
	{Phrase: "want to quit", Score: -1.0},
	{Phrase: "cannot take", Score: -0.8},
	{Phrase: "had enough", Score: -0.9},
	{Phrase: "no work life balance", Score: -0.8},
	{Phrase: "thinking of leaving", Score: -1.0},
	{Phrase: "looking for new", Score: -0.9},
	{Phrase: "toxic environment", Score: -1.0},
	{Phrase: "worst place", Score: -0.9},
	{Phrase: "no longer care", Score: -0.8},
}
