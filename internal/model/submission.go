package model

import "time"

// Submission statuses. A submission starts PENDING and ends in the
// tribunal's verdict status.
const (
	SubmissionPending = "PENDING"
	SubmissionScored  = "SCORED"
	SubmissionError   = "ERROR"
)

// ActionSelection is one ordered action pick from the palette.
type ActionSelection struct {
	ActionID string `json:"action_id" bson:"actionId"`
	Order    int    `json:"order" bson:"order"`
}

// Submission records one graded justification and its verdict.
type Submission struct {
	ID              string            `json:"submissionId" bson:"_id"`
	ScenarioID      string            `json:"scenarioId" bson:"scenarioId"`
	SelectedActions []ActionSelection `json:"selectedActions" bson:"selectedActions"`
	ReasoningText   string            `json:"reasoningText" bson:"reasoningText"`

	HawkResult *JudgeResult `json:"hawkResult,omitempty" bson:"hawkResult,omitempty"`
	DoveResult *JudgeResult `json:"doveResult,omitempty" bson:"doveResult,omitempty"`
	OwlResult  *JudgeResult `json:"owlResult,omitempty" bson:"owlResult,omitempty"`

	FinalScore float64   `json:"finalScore" bson:"finalScore"`
	Variance   float64   `json:"variance" bson:"variance"`
	Citation   string    `json:"citation" bson:"citation"`
	Status     string    `json:"status" bson:"status"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// ApplyVerdict copies a tribunal verdict into the submission record.
func (s *Submission) ApplyVerdict(v *Verdict) {
	if hawk, ok := v.Graders[JudgeHawk]; ok {
		r := hawk
		s.HawkResult = &r
	}
	if dove, ok := v.Graders[JudgeDove]; ok {
		r := dove
		s.DoveResult = &r
	}
	if owl, ok := v.Graders[JudgeOwl]; ok {
		r := owl
		s.OwlResult = &r
	}
	s.FinalScore = v.FinalScore
	s.Variance = v.Variance
	s.Citation = v.Citation
	s.Status = v.Status
}
