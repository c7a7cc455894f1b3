package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"sybil/internal/model"
)

// TribunalService runs the full evaluation pipeline: precedent lookup,
// policy read, prompt build, inference, parse, aggregate. It is the
// graceful-degradation boundary of the system: Conduct never returns
// an error, only a well-formed Verdict.
type TribunalService struct {
	precedents *PrecedentIndex
	policy     *PolicyStore
	client     *OllamaClient
}

// NewTribunalService creates the tribunal orchestrator.
func NewTribunalService(precedents *PrecedentIndex, policy *PolicyStore, client *OllamaClient) *TribunalService {
	return &TribunalService{
		precedents: precedents,
		policy:     policy,
		client:     client,
	}
}

// Conduct evaluates the user's justification under the three judge
// personas and returns the reconciled verdict. The caller must reject
// empty userInput before calling. On any inference failure the
// returned verdict has status ERROR, zero scores, and diagnostic
// reasoning per judge; it is never nil.
func (s *TribunalService) Conduct(ctx context.Context, scenarioCtx, userInput string, actions []string, rubric map[string]string) *model.Verdict {
	precedent := s.precedents.Lookup(userInput)
	if precedent != nil {
		log.Printf("tribunal: precedent matched: %s (%s)", precedent.ID, precedent.Name)
	}

	// Policy is read once here and copied into the prompt; a swap
	// during the inference call does not affect this request.
	policy := s.policy.Current()

	prompt, citationFallback := BuildPrompt(scenarioCtx, userInput, actions, precedent, policy, rubric)

	raw, err := s.client.Generate(ctx, prompt)
	if err != nil {
		log.Printf("tribunal: inference failed: %v", err)
		return errorVerdict(err, citationFallback)
	}

	verdict, outcome := ParseVerdict(raw, citationFallback)
	if outcome != model.ParseStrict {
		log.Printf("tribunal: parse outcome %s, defaults applied", outcome)
	}

	scores := make([]int, 0, len(model.JudgeOrder))
	for _, judge := range model.JudgeOrder {
		scores = append(scores, verdict.Graders[judge].Score)
	}
	verdict.FinalScore, verdict.Variance = Reduce(scores)

	return verdict
}

// errorVerdict builds the ERROR verdict for a failed inference call.
// Each judge slot carries a diagnostic: HAWK names the failure class,
// DOVE gives the operator hint, OWL keeps the raw error.
func errorVerdict(err error, citation string) *model.Verdict {
	var (
		endpoint    *EndpointError
		unreachable *UnreachableError
	)

	hawk := "Tribunal evaluation failed"
	dove := "Unexpected error during inference"

	switch {
	case errors.As(err, &unreachable):
		hawk = "Ollama unreachable"
		dove = "Check that the Ollama server is running and OLLAMA_HOST is set"
	case errors.As(err, &endpoint):
		hawk = fmt.Sprintf("Ollama returned status %d", endpoint.Status)
		dove = "Inspect the Ollama server logs for the failed generation"
	}

	return &model.Verdict{
		FinalScore: 0,
		Variance:   0,
		Status:     model.StatusError,
		Citation:   citation,
		Graders: map[string]model.JudgeResult{
			model.JudgeHawk: {Score: 0, Reasoning: hawk},
			model.JudgeDove: {Score: 0, Reasoning: dove},
			model.JudgeOwl:  {Score: 0, Reasoning: err.Error()},
		},
	}
}
