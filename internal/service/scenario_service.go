package service

import (
	"context"
	"log"

	"sybil/internal/cache"
	"sybil/internal/model"
	"sybil/internal/repository"
)

// ScenarioService serves the scenario catalog with a read-through
// cache in front of mongo.
type ScenarioService struct {
	scenarios repository.ScenarioRepo
	rubrics   repository.RubricRepo
	cache     cache.ScenarioCache
}

// NewScenarioService creates a new scenario service.
func NewScenarioService(scenarios repository.ScenarioRepo, rubrics repository.RubricRepo, scenarioCache cache.ScenarioCache) *ScenarioService {
	return &ScenarioService{
		scenarios: scenarios,
		rubrics:   rubrics,
		cache:     scenarioCache,
	}
}

// GetScenario returns one scenario by ID, cache first.
func (s *ScenarioService) GetScenario(ctx context.Context, id string) (*model.Scenario, error) {
	if cached, err := s.cache.Get(ctx, id); err == nil {
		return cached, nil
	}

	scenario, err := s.scenarios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, scenario); err != nil {
		log.Printf("scenario cache set failed for %s: %v", id, err)
	}
	return scenario, nil
}

// ListScenarios returns the full catalog.
func (s *ScenarioService) ListScenarios(ctx context.Context) ([]*model.Scenario, error) {
	return s.scenarios.List(ctx)
}

// GetRubric returns the grading rubric for a scenario.
func (s *ScenarioService) GetRubric(ctx context.Context, scenarioID string) (*model.Rubric, error) {
	return s.rubrics.GetByScenarioID(ctx, scenarioID)
}
