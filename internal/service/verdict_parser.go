package service

import (
	"encoding/json"

	"sybil/internal/model"
)

// defaultReasoning is the reasoning string filled in for a judge
// whose result was missing or malformed.
const defaultReasoning = "Analysis failed."

// defaultJudgeResult is filled in per judge on any parse or field
// failure. Each judge is defaulted independently; one bad judge never
// fails the whole verdict.
func defaultJudgeResult() model.JudgeResult {
	return model.JudgeResult{Score: 1, Reasoning: defaultReasoning}
}

// judgePayload mirrors one judge entry in the model response. Pointer
// fields distinguish "absent" from zero values.
type judgePayload struct {
	Score     *int    `json:"score"`
	Reasoning *string `json:"reasoning"`
}

// ParseVerdict validates the raw model completion against the
// three-judge schema and builds a SCORED verdict, defaulting every
// missing or malformed piece. It never fails: garbage in yields a
// fully defaulted verdict, tagged by the returned ParseOutcome.
// FinalScore and Variance are left for the aggregator.
func ParseVerdict(raw, citationFallback string) (*model.Verdict, model.ParseOutcome) {
	verdict := &model.Verdict{
		Status:   model.StatusScored,
		Graders:  make(map[string]model.JudgeResult, len(model.JudgeOrder)),
		Citation: citationFallback,
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		for _, judge := range model.JudgeOrder {
			verdict.Graders[judge] = defaultJudgeResult()
		}
		return verdict, model.ParseFailed
	}

	defaulted := false
	for _, judge := range model.JudgeOrder {
		result, ok := parseJudge(fields[judge])
		if !ok {
			defaulted = true
		}
		verdict.Graders[judge] = result
	}

	var citation string
	if raw, ok := fields["citation"]; ok && json.Unmarshal(raw, &citation) == nil {
		verdict.Citation = citation
	} else {
		defaulted = true
	}

	if defaulted {
		return verdict, model.ParsePartiallyDefaulted
	}
	return verdict, model.ParseStrict
}

// parseJudge decodes one judge entry, reporting whether the parsed
// values were usable or the default was substituted.
func parseJudge(raw json.RawMessage) (model.JudgeResult, bool) {
	if raw == nil {
		return defaultJudgeResult(), false
	}

	var payload judgePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return defaultJudgeResult(), false
	}
	if payload.Score == nil || payload.Reasoning == nil {
		return defaultJudgeResult(), false
	}

	return model.JudgeResult{Score: *payload.Score, Reasoning: *payload.Reasoning}, true
}
