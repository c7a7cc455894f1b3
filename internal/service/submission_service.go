package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"sybil/internal/cache"
	"sybil/internal/model"
	"sybil/internal/repository"
)

// ErrEmptyReasoning is returned when a submission carries no
// justification text at all.
var ErrEmptyReasoning = errors.New("no reasoning_text received")

// Broadcaster pushes live events to connected host dashboards. The ws
// hub implements it.
type Broadcaster interface {
	BroadcastVerdict(submissionID string, verdict *model.Verdict)
}

// SubmissionService ties the tribunal to persistence: it resolves the
// scenario and rubric, conducts the tribunal, records the submission,
// and fans the verdict out.
type SubmissionService struct {
	submissions repository.SubmissionRepo
	subCache    cache.SubmissionCache
	scenarioSvc *ScenarioService
	tribunal    *TribunalService
	broadcaster Broadcaster
}

// NewSubmissionService creates a new submission service.
func NewSubmissionService(submissions repository.SubmissionRepo, subCache cache.SubmissionCache, scenarioSvc *ScenarioService, tribunal *TribunalService) *SubmissionService {
	return &SubmissionService{
		submissions: submissions,
		subCache:    subCache,
		scenarioSvc: scenarioSvc,
		tribunal:    tribunal,
	}
}

// SetBroadcaster injects the live-feed broadcaster.
func (s *SubmissionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Submit runs the tribunal for one justification and persists the
// result. The tribunal itself never fails; persistence and cache
// problems are logged, not surfaced, so the caller always gets the
// verdict back.
func (s *SubmissionService) Submit(ctx context.Context, scenarioID string, selections []model.ActionSelection, reasoning string) (*model.Submission, *model.Verdict, error) {
	if reasoning == "" {
		return nil, nil, ErrEmptyReasoning
	}

	scenario, rubric := s.resolveScenario(ctx, scenarioID)

	actionIDs := make([]string, 0, len(selections))
	for _, sel := range selections {
		actionIDs = append(actionIDs, sel.ActionID)
	}

	verdict := s.tribunal.Conduct(ctx, scenario.ContextBrief, reasoning, actionIDs, rubric.Criteria)

	submission := &model.Submission{
		ID:              uuid.New().String(),
		ScenarioID:      scenario.ID,
		SelectedActions: selections,
		ReasoningText:   reasoning,
		Status:          model.SubmissionPending,
	}
	submission.ApplyVerdict(verdict)

	if err := s.submissions.Create(ctx, submission); err != nil {
		log.Printf("submission persist failed: %v", err)
	}
	if err := s.subCache.Set(ctx, submission); err != nil {
		log.Printf("submission cache set failed: %v", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastVerdict(submission.ID, verdict)
	}

	return submission, verdict, nil
}

// GetSubmission returns one recorded submission, cache first.
func (s *SubmissionService) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	if cached, err := s.subCache.Get(ctx, id); err == nil {
		return cached, nil
	}

	submission, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.subCache.Set(ctx, submission); err != nil {
		log.Printf("submission cache set failed: %v", err)
	}
	return submission, nil
}

// ListByScenario returns the most recent submissions for a scenario.
func (s *SubmissionService) ListByScenario(ctx context.Context, scenarioID string, limit int64) ([]*model.Submission, error) {
	return s.submissions.ListByScenario(ctx, scenarioID, limit)
}

// resolveScenario loads the scenario and its rubric, falling back to
// the built-in Freeze Friday scenario when the catalog has no match.
// The fallback keeps /submit usable on an empty database.
func (s *SubmissionService) resolveScenario(ctx context.Context, scenarioID string) (*model.Scenario, *model.Rubric) {
	if scenarioID == "" {
		scenarioID = model.DefaultScenarioID
	}

	scenario, err := s.scenarioSvc.GetScenario(ctx, scenarioID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("scenario lookup failed for %s: %v", scenarioID, err)
		}
		return model.DefaultScenario(), model.DefaultRubric()
	}

	rubric, err := s.scenarioSvc.GetRubric(ctx, scenarioID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("rubric lookup failed for %s: %v", scenarioID, err)
		}
		rubric = model.DefaultRubric()
	}

	return scenario, rubric
}
