package wizard

import (
	"testing"

	"github.com/sofiebrandt/prepdeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectMode_Routing(t *testing.T) {
	tests := []struct {
		mode domain.Mode
		want domain.Step
	}{
		{domain.ModeCustom, domain.StepQuestion},
		{domain.ModePrompted, domain.StepQuestion},
		{domain.ModeAiGenerated, domain.StepConfigure},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			c := NewController()
			require.NoError(t, c.SelectMode(tt.mode))
			assert.Equal(t, tt.want, c.Current())
			assert.True(t, c.Completed(domain.StepMode))
			assert.Equal(t, tt.mode, c.Mode())
		})
	}
}

func TestSelectMode_RejectsUnknownMode(t *testing.T) {
	c := NewController()
	assert.Error(t, c.SelectMode("telepathic"))
	assert.Equal(t, domain.StepMode, c.Current())
}

func TestCompleteStep_WalksEffectiveSequence(t *testing.T) {
	c := NewController()
	require.NoError(t, c.SelectMode(domain.ModeAiGenerated))

	require.NoError(t, c.CompleteStep(domain.StepConfigure, domain.SessionPatch{
		Topic:      "market entry",
		Difficulty: domain.DifficultyMedium,
	}))
	assert.Equal(t, domain.StepQuestion, c.Current())

	cs := &domain.CaseStudyDetails{Title: "Expanding Acme into LATAM"}
	require.NoError(t, c.CompleteStep(domain.StepQuestion, domain.SessionPatch{GeneratedCaseStudy: cs}))
	assert.Equal(t, domain.StepAnswer, c.Current())

	require.NoError(t, c.CompleteStep(domain.StepAnswer, domain.SessionPatch{UserAnswer: "We should..."}))
	assert.Equal(t, domain.StepFeedback, c.Current())

	s := c.Session()
	assert.Equal(t, "market entry", s.Topic)
	assert.Same(t, cs, s.GeneratedCaseStudy)
	assert.Equal(t, "We should...", s.UserAnswer)
}

func TestCompleteStep_WrongStepLeavesStateUntouched(t *testing.T) {
	c := NewController()
	require.NoError(t, c.SelectMode(domain.ModeCustom))

	err := c.CompleteStep(domain.StepAnswer, domain.SessionPatch{UserAnswer: "too early"})
	require.ErrorIs(t, err, ErrInvalidTransition)

	var ite *InvalidTransitionError
	require.ErrorAs(t, err, &ite)
	assert.Equal(t, domain.StepAnswer, ite.Requested)
	assert.Equal(t, domain.StepQuestion, ite.Current)

	// Atomicity: the patch was not applied and nothing advanced.
	assert.Empty(t, c.Session().UserAnswer)
	assert.Equal(t, domain.StepQuestion, c.Current())
	assert.False(t, c.Completed(domain.StepAnswer))
}

func TestNavigateTo_OnlyCompletedOrCurrent(t *testing.T) {
	c := NewController()
	require.NoError(t, c.SelectMode(domain.ModeCustom))
	require.NoError(t, c.CompleteStep(domain.StepQuestion, domain.SessionPatch{Question: "Tell me about a product you admire."}))

	// Back to a completed step and forward again.
	require.NoError(t, c.NavigateTo(domain.StepQuestion))
	assert.Equal(t, domain.StepQuestion, c.Current())
	require.NoError(t, c.NavigateTo(domain.StepAnswer))

	// Feedback was never visited.
	err := c.NavigateTo(domain.StepFeedback)
	require.ErrorIs(t, err, ErrStepNotAccessible)
	assert.Equal(t, domain.StepAnswer, c.Current())
}

func TestNavigateBackAndForth_PreservesAnswerText(t *testing.T) {
	c := NewController()
	require.NoError(t, c.SelectMode(domain.ModeCustom))
	require.NoError(t, c.CompleteStep(domain.StepQuestion, domain.SessionPatch{Question: "Walk me through a pricing decision."}))
	require.NoError(t, c.CompleteStep(domain.StepAnswer, domain.SessionPatch{UserAnswer: "I would segment the customer base first."}))

	require.NoError(t, c.NavigateTo(domain.StepQuestion))
	require.NoError(t, c.NavigateTo(domain.StepAnswer))

	assert.Equal(t, "I would segment the customer base first.", c.Session().UserAnswer)
}

func TestRestart_FullReset(t *testing.T) {
	c := NewController()
	require.NoError(t, c.SelectMode(domain.ModeAiGenerated))
	require.NoError(t, c.CompleteStep(domain.StepConfigure, domain.SessionPatch{Topic: "growth"}))

	c.Restart()

	assert.Equal(t, domain.StepMode, c.Current())
	assert.Equal(t, domain.Mode(""), c.Mode())
	assert.Equal(t, domain.PracticeSession{}, c.Session())
	for _, step := range domain.StepSequence {
		assert.False(t, c.Completed(step), "step %s should not be completed after restart", step)
	}
}

func TestGenerateAnother_KeepsConfiguration(t *testing.T) {
	c := NewController()
	require.NoError(t, c.SelectMode(domain.ModeAiGenerated))
	require.NoError(t, c.CompleteStep(domain.StepConfigure, domain.SessionPatch{
		Topic:      "churn",
		Difficulty: domain.DifficultyHard,
	}))
	require.NoError(t, c.CompleteStep(domain.StepQuestion, domain.SessionPatch{
		GeneratedCaseStudy: &domain.CaseStudyDetails{Title: "Churn at Acme"},
	}))
	require.NoError(t, c.CompleteStep(domain.StepAnswer, domain.SessionPatch{
		UserAnswer: "Retention cohorts...",
		Analysis:   &domain.AnalysisResult{UserScore: 61},
	}))

	require.NoError(t, c.GenerateAnother())

	assert.Equal(t, domain.StepConfigure, c.Current())
	assert.Equal(t, domain.ModeAiGenerated, c.Mode())

	s := c.Session()
	assert.Equal(t, "churn", s.Topic)
	assert.Equal(t, domain.DifficultyHard, s.Difficulty)
	assert.Nil(t, s.GeneratedCaseStudy)
	assert.Empty(t, s.UserAnswer)
	assert.Nil(t, s.Analysis)
}

func TestGenerateAnother_CustomModeReentersAtQuestion(t *testing.T) {
	c := NewController()
	require.NoError(t, c.SelectMode(domain.ModeCustom))
	require.NoError(t, c.CompleteStep(domain.StepQuestion, domain.SessionPatch{Question: "Describe a failed launch."}))
	require.NoError(t, c.CompleteStep(domain.StepAnswer, domain.SessionPatch{UserAnswer: "a"}))

	require.NoError(t, c.GenerateAnother())
	assert.Equal(t, domain.StepQuestion, c.Current())
}

func TestGenerateAnother_OnlyFromFeedback(t *testing.T) {
	c := NewController()
	require.NoError(t, c.SelectMode(domain.ModeCustom))
	assert.ErrorIs(t, c.GenerateAnother(), ErrInvalidTransition)
}

func TestGatewayFailure_StepDoesNotAdvance(t *testing.T) {
	// When a generation call fails, the caller simply never invokes
	// CompleteStep; the wizard must still be on the same step with the
	// session intact.
	c := NewController()
	require.NoError(t, c.SelectMode(domain.ModeAiGenerated))
	require.NoError(t, c.CompleteStep(domain.StepConfigure, domain.SessionPatch{Topic: "ops"}))

	assert.Equal(t, domain.StepQuestion, c.Current())
	assert.Equal(t, "ops", c.Session().Topic)
}
