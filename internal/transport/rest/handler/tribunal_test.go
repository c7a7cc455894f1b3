package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sybil/internal/config"
	"sybil/internal/model"
	"sybil/internal/repository"
	"sybil/internal/service"
)

// In-memory fakes for the mongo/redis collaborators.

type fakeScenarioRepo struct {
	scenarios map[string]*model.Scenario
}

func (f *fakeScenarioRepo) GetByID(ctx context.Context, id string) (*model.Scenario, error) {
	if s, ok := f.scenarios[id]; ok {
		return s, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeScenarioRepo) List(ctx context.Context) ([]*model.Scenario, error) {
	out := make([]*model.Scenario, 0, len(f.scenarios))
	for _, s := range f.scenarios {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeScenarioRepo) Upsert(ctx context.Context, s *model.Scenario) error {
	f.scenarios[s.ID] = s
	return nil
}

type fakeRubricRepo struct{}

func (f *fakeRubricRepo) GetByScenarioID(ctx context.Context, scenarioID string) (*model.Rubric, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeRubricRepo) Upsert(ctx context.Context, r *model.Rubric) error { return nil }

type fakeSubmissionRepo struct {
	submissions map[string]*model.Submission
}

func (f *fakeSubmissionRepo) Create(ctx context.Context, s *model.Submission) error {
	f.submissions[s.ID] = s
	return nil
}

func (f *fakeSubmissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	if s, ok := f.submissions[id]; ok {
		return s, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSubmissionRepo) ListByScenario(ctx context.Context, scenarioID string, limit int64) ([]*model.Submission, error) {
	var out []*model.Submission
	for _, s := range f.submissions {
		if s.ScenarioID == scenarioID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeScenarioCache struct{}

func (f *fakeScenarioCache) Set(ctx context.Context, s *model.Scenario) error { return nil }
func (f *fakeScenarioCache) Get(ctx context.Context, id string) (*model.Scenario, error) {
	return nil, repository.ErrNotFound
}
func (f *fakeScenarioCache) Delete(ctx context.Context, id string) error { return nil }

type fakeSubmissionCache struct{}

func (f *fakeSubmissionCache) Set(ctx context.Context, s *model.Submission) error { return nil }
func (f *fakeSubmissionCache) Get(ctx context.Context, id string) (*model.Submission, error) {
	return nil, repository.ErrNotFound
}

const scoredResponse = `{
	"HAWK": {"score": 5, "reasoning": "Freeze violation."},
	"DOVE": {"score": 4, "reasoning": "Unblocks revenue."},
	"OWL":  {"score": 3, "reasoning": "Coherent."},
	"citation": "The 'Black Friday' Ledger Corruption"
}`

func newTestHandler(t *testing.T, completion string) (*TribunalHandler, *fakeSubmissionRepo) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": completion})
	}))
	t.Cleanup(srv.Close)

	aiCfg := &config.AIConfig{
		Host:        srv.URL,
		Model:       "llama3.1:8b-instruct-q4_K_M",
		Timeout:     5 * time.Second,
		Temperature: 0.1,
		NumCtx:      4096,
	}

	tribunal := service.NewTribunalService(
		service.NewPrecedentIndex(model.DefaultIncidents()),
		service.NewPolicyStore(),
		service.NewOllamaClient(aiCfg),
	)

	scenarioSvc := service.NewScenarioService(
		&fakeScenarioRepo{scenarios: map[string]*model.Scenario{}},
		&fakeRubricRepo{},
		&fakeScenarioCache{},
	)

	subRepo := &fakeSubmissionRepo{submissions: map[string]*model.Submission{}}
	submissionSvc := service.NewSubmissionService(subRepo, &fakeSubmissionCache{}, scenarioSvc, tribunal)

	return NewTribunalHandler(submissionSvc), subRepo
}

func TestTribunalHandler_Submit(t *testing.T) {
	t.Run("empty reasoning is rejected with 400", func(t *testing.T) {
		h, _ := newTestHandler(t, scoredResponse)

		req := httptest.NewRequest(http.MethodPost, "/v1/submit", strings.NewReader(`{"scenario_id":"friday_deploy"}`))
		rec := httptest.NewRecorder()
		h.Submit(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No reasoning_text received.")
	})

	t.Run("scored submission returns verdict and persists", func(t *testing.T) {
		h, subRepo := newTestHandler(t, scoredResponse)

		body := `{"scenario_id":"friday_deploy","selected_actions":["B"],"reasoning_text":"we need to rush this hotfix to bypass QA on friday"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/submit", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Submit(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			SubmissionID string `json:"submissionId"`
			model.Verdict
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.SubmissionID)
		assert.Equal(t, model.StatusScored, resp.Status)
		assert.InDelta(t, 4.0, resp.FinalScore, 1e-9)
		assert.InDelta(t, 2.0, resp.Variance, 1e-9)
		assert.Equal(t, "The 'Black Friday' Ledger Corruption", resp.Citation)

		stored, err := subRepo.GetByID(context.Background(), resp.SubmissionID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusScored, stored.Status)
		require.NotNil(t, stored.HawkResult)
		assert.Equal(t, 5, stored.HawkResult.Score)
	})

	t.Run("alternate text fields are accepted", func(t *testing.T) {
		h, _ := newTestHandler(t, scoredResponse)

		req := httptest.NewRequest(http.MethodPost, "/v1/submit", strings.NewReader(`{"user_input":"refactoring variable names"}`))
		rec := httptest.NewRecorder()
		h.Submit(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTribunalHandler_GetSubmission(t *testing.T) {
	h, subRepo := newTestHandler(t, scoredResponse)

	sub := &model.Submission{ID: "sub-1", ScenarioID: "friday_deploy", Status: model.SubmissionScored}
	require.NoError(t, subRepo.Create(context.Background(), sub))

	t.Run("known submission is returned", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/submissions/sub-1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "sub-1"})
		rec := httptest.NewRecorder()
		h.GetSubmission(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got model.Submission
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "sub-1", got.ID)
	})

	t.Run("unknown submission is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/submissions/missing", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "missing"})
		rec := httptest.NewRecorder()
		h.GetSubmission(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
