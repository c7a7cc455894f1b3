package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionLifecycle(t *testing.T) {
	t.Run("starts pending, ends in the verdict status", func(t *testing.T) {
		sub := &Submission{ID: "sub-1", Status: SubmissionPending}

		sub.ApplyVerdict(&Verdict{
			FinalScore: 4.3,
			Variance:   1.0,
			Status:     StatusScored,
			Graders: map[string]JudgeResult{
				JudgeHawk: {Score: 5, Reasoning: "deploy freeze violated"},
				JudgeDove: {Score: 4, Reasoning: "revenue pressure acknowledged"},
				JudgeOwl:  {Score: 4, Reasoning: "argument is coherent"},
			},
			Citation: "The 'Black Friday' Ledger Corruption",
		})

		assert.Equal(t, SubmissionScored, sub.Status)
		assert.Equal(t, 4.3, sub.FinalScore)
		assert.Equal(t, 1.0, sub.Variance)
		assert.Equal(t, "The 'Black Friday' Ledger Corruption", sub.Citation)
		require.NotNil(t, sub.HawkResult)
		require.NotNil(t, sub.DoveResult)
		require.NotNil(t, sub.OwlResult)
		assert.Equal(t, 5, sub.HawkResult.Score)
	})

	t.Run("error verdict leaves judge pointers nil when graders are absent", func(t *testing.T) {
		sub := &Submission{ID: "sub-2", Status: SubmissionPending}

		sub.ApplyVerdict(&Verdict{Status: StatusError, Citation: "None"})

		assert.Equal(t, SubmissionError, sub.Status)
		assert.Nil(t, sub.HawkResult)
		assert.Equal(t, 0.0, sub.FinalScore)
	})
}
