package model

// Judge archetypes. The set is closed; JudgeOrder fixes the order in
// which scores are collected and aggregated.
const (
	JudgeHawk = "HAWK" // risk/compliance, aggressive
	JudgeDove = "DOVE" // business value, forgiving
	JudgeOwl  = "OWL"  // logic/tone, neutral
)

// JudgeOrder is the canonical HAWK, DOVE, OWL sequence.
var JudgeOrder = []string{JudgeHawk, JudgeDove, JudgeOwl}

// Verdict statuses
const (
	StatusScored = "SCORED"
	StatusError  = "ERROR"
)

// JudgeResult is one judge's score and rationale for a submission.
type JudgeResult struct {
	Score     int    `json:"score" bson:"score"`
	Reasoning string `json:"reasoning" bson:"reasoning"`
}

// Verdict is the complete output of one tribunal evaluation. It is
// built fresh per request and never mutated afterwards.
type Verdict struct {
	FinalScore float64                `json:"final_score" bson:"finalScore"`
	Variance   float64                `json:"variance" bson:"variance"`
	Status     string                 `json:"status" bson:"status"`
	Graders    map[string]JudgeResult `json:"graders" bson:"graders"`
	Citation   string                 `json:"citation" bson:"citation"`
}

// ParseOutcome tags how much of a model response survived strict
// parsing, so callers and tests can distinguish degrees of
// degradation instead of only seeing the defaulted values.
type ParseOutcome int

const (
	// ParseStrict: every judge and the citation parsed cleanly.
	ParseStrict ParseOutcome = iota
	// ParsePartiallyDefaulted: the JSON parsed but at least one judge
	// or the citation fell back to defaults.
	ParsePartiallyDefaulted
	// ParseFailed: the raw text was not valid JSON at all; every
	// field is defaulted.
	ParseFailed
)

func (o ParseOutcome) String() string {
	switch o {
	case ParseStrict:
		return "strict"
	case ParsePartiallyDefaulted:
		return "partially_defaulted"
	case ParseFailed:
		return "failed"
	default:
		return "unknown"
	}
}
