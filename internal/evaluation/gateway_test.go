package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sofiebrandt/prepdeck/internal/domain"
	"github.com/sofiebrandt/prepdeck/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newProviderServer fakes an OpenAI-compatible provider that always answers
// with the given message content.
func newProviderServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"model": "test-model",
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
}

func newGateway(t *testing.T, endpoint string) Gateway {
	t.Helper()
	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.APIKey = "test-key"
	return NewGateway(llm.NewClient(cfg, llm.NoopObserver{}))
}

func TestValidateQuestion_ParsesVerdict(t *testing.T) {
	srv := newProviderServer(t, `{"is_valid": false, "feedback": "too vague to evaluate"}`)
	defer srv.Close()

	check, err := newGateway(t, srv.URL).ValidateQuestion(context.Background(), "tell me stuff?")
	require.NoError(t, err)
	assert.False(t, check.IsValid)
	assert.Equal(t, "too vague to evaluate", check.Feedback)
}

func TestValidateQuestion_ProviderDownDefaultsToValid(t *testing.T) {
	// Question validation is advisory: an outage must never block practice.
	check, err := newGateway(t, "http://127.0.0.1:1").ValidateQuestion(context.Background(), "any question at all")
	require.NoError(t, err)
	assert.True(t, check.IsValid)
}

func TestValidateQuestion_MalformedDefaultsToValid(t *testing.T) {
	srv := newProviderServer(t, "I cannot judge this question.")
	defer srv.Close()

	check, err := newGateway(t, srv.URL).ValidateQuestion(context.Background(), "is this fine?")
	require.NoError(t, err)
	assert.True(t, check.IsValid)
}

func TestGenerateOptimalAnswer_Success(t *testing.T) {
	srv := newProviderServer(t, `{"optimal_answer": "Start by sizing the market, then..."}`)
	defer srv.Close()

	got, err := newGateway(t, srv.URL).GenerateOptimalAnswer(context.Background(), "How would you price a new SaaS product?", "pricing")
	require.NoError(t, err)
	assert.Equal(t, "Start by sizing the market, then...", got)
}

func TestGenerateOptimalAnswer_QuotaExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newGateway(t, srv.URL).GenerateOptimalAnswer(context.Background(), "q", "t")
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func analysisJSON(score interface{}) string {
	return fmt.Sprintf(`{
		"optimal_answer": "reference",
		"user_score": %v,
		"strengths": ["clear structure"],
		"improvements": ["missing metrics"],
		"suggestions": ["quantify impact"],
		"detailed_feedback": "Solid overall."
	}`, score)
}

func TestAnalyzeAnswer_ClampsScoreInto1To10(t *testing.T) {
	tests := []struct {
		name  string
		score interface{}
		want  int
	}{
		{"in range", 7, 7},
		{"above max", 42, 10},
		{"below min", -3, 1},
		{"zero", 0, 1},
		{"fractional", 9.6, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newProviderServer(t, analysisJSON(tt.score))
			defer srv.Close()

			result, err := newGateway(t, srv.URL).AnalyzeAnswer(context.Background(), "q", "my answer", "reference", "topic")
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.UserScore)
		})
	}
}

func TestAnalyzeAnswer_ReferenceSectionOnlyWhenPresent(t *testing.T) {
	var prompts []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		prompts = append(prompts, req.Messages[len(req.Messages)-1].Content)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"model": "test-model",
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": analysisJSON(7)}},
			},
		})
	}))
	defer srv.Close()

	gw := newGateway(t, srv.URL)
	_, err := gw.AnalyzeAnswer(context.Background(), "q", "my answer", "", "topic")
	require.NoError(t, err)
	_, err = gw.AnalyzeAnswer(context.Background(), "q", "my answer", "size the market first", "topic")
	require.NoError(t, err)

	require.Len(t, prompts, 2)
	assert.NotContains(t, prompts[0], "Reference answer:", "no empty section when there is no reference answer")
	assert.Contains(t, prompts[1], "Reference answer:\nsize the market first")
}

func TestAnalyzeAnswer_NonNumericScoreDegradesToPlaceholder(t *testing.T) {
	srv := newProviderServer(t, analysisJSON(`"excellent"`))
	defer srv.Close()

	result, err := newGateway(t, srv.URL).AnalyzeAnswer(context.Background(), "q", "a", "ref", "topic")
	assert.ErrorIs(t, err, ErrMalformedResponse)

	// The placeholder keeps every field renderable.
	require.NotNil(t, result)
	assert.Equal(t, "ref", result.OptimalAnswer)
	assert.Equal(t, AnswerScale.Min, result.UserScore)
	assert.NotEmpty(t, result.Strengths)
	assert.NotEmpty(t, result.Improvements)
	assert.NotEmpty(t, result.Suggestions)
	assert.NotEmpty(t, result.DetailedFeedback)
}

func TestAnalyzeAnswer_ProseResponseDegradesToPlaceholder(t *testing.T) {
	srv := newProviderServer(t, "Great answer, well done!")
	defer srv.Close()

	result, err := newGateway(t, srv.URL).AnalyzeAnswer(context.Background(), "q", "a", "ref", "topic")
	assert.ErrorIs(t, err, ErrMalformedResponse)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.DetailedFeedback)
}

func TestEvaluateCaseStudy_ClampsScoreInto0To100(t *testing.T) {
	srv := newProviderServer(t, analysisJSON(150))
	defer srv.Close()

	cs := &domain.CaseStudyDetails{Title: "Churn at Acme", Challenge: "churn doubled"}
	result, err := newGateway(t, srv.URL).EvaluateCaseStudy(context.Background(), cs, "my answer")
	require.NoError(t, err)
	assert.Equal(t, 100, result.UserScore)

	srv2 := newProviderServer(t, analysisJSON(-5))
	defer srv2.Close()

	result, err = newGateway(t, srv2.URL).EvaluateCaseStudy(context.Background(), cs, "my answer")
	require.NoError(t, err)
	assert.Equal(t, 0, result.UserScore)
}

func TestGenerateCaseStudy_Success(t *testing.T) {
	srv := newProviderServer(t, `{
		"title": "Expanding FreshCart",
		"company": "FreshCart",
		"industry": "grocery delivery",
		"company_size": "300 employees",
		"challenge": "unit economics are negative in new cities",
		"detailed_challenge": "FreshCart launched in four cities last year...",
		"stakeholders": ["CEO", "VP Ops", "City GMs"],
		"constraints": ["6-month runway", "no new funding"],
		"objectives": ["reach contribution margin breakeven"],
		"timeframe": "two quarters"
	}`)
	defer srv.Close()

	cs, err := newGateway(t, srv.URL).GenerateCaseStudy(context.Background(), "unit economics", domain.DifficultyHard)
	require.NoError(t, err)
	assert.Equal(t, "Expanding FreshCart", cs.Title)
	assert.Len(t, cs.Stakeholders, 3)
}

func TestGenerateCaseStudy_RequestsCarryVarietyToken(t *testing.T) {
	var prompts []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		prompts = append(prompts, req.Messages[len(req.Messages)-1].Content)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"model": "test-model",
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant",
					"content": `{"title":"T","company":"C","industry":"I","company_size":"S","challenge":"ch","detailed_challenge":"d","stakeholders":["a"],"constraints":["b"],"objectives":["c"],"timeframe":"q"}`}},
			},
		})
	}))
	defer srv.Close()

	gw := newGateway(t, srv.URL)
	_, err := gw.GenerateCaseStudy(context.Background(), "growth", domain.DifficultyEasy)
	require.NoError(t, err)
	_, err = gw.GenerateCaseStudy(context.Background(), "growth", domain.DifficultyEasy)
	require.NoError(t, err)

	require.Len(t, prompts, 2)
	assert.Contains(t, prompts[0], "Variety token: ")
	assert.NotEqual(t, prompts[0], prompts[1], "identical configurations must still produce distinct requests")
}

func TestGenerateCaseStudy_QuotaExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newGateway(t, srv.URL).GenerateCaseStudy(context.Background(), "growth", domain.DifficultyEasy)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestFetchPromptedQuestions_EmptyListIsNotAnError(t *testing.T) {
	srv := newProviderServer(t, `{"questions": []}`)
	defer srv.Close()

	questions, err := newGateway(t, srv.URL).FetchPromptedQuestions(context.Background(), "obscure topic", domain.ExperienceSenior)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestFetchPromptedQuestions_FillsMissingTopicAndLevel(t *testing.T) {
	srv := newProviderServer(t, `{"questions": [{"text": "How do you prioritize a roadmap?"}]}`)
	defer srv.Close()

	questions, err := newGateway(t, srv.URL).FetchPromptedQuestions(context.Background(), "roadmaps", domain.ExperienceMid)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "roadmaps", questions[0].Topic)
	assert.Equal(t, domain.ExperienceMid, questions[0].ExperienceLevel)
}

func TestFetchPromptedQuestions_NetworkError(t *testing.T) {
	_, err := newGateway(t, "http://127.0.0.1:1").FetchPromptedQuestions(context.Background(), "t", domain.ExperienceJunior)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestScaleClamp(t *testing.T) {
	assert.Equal(t, 1, AnswerScale.Clamp(-100))
	assert.Equal(t, 10, AnswerScale.Clamp(100))
	assert.Equal(t, 5, AnswerScale.Clamp(5))
	assert.Equal(t, 0, CaseScale.Clamp(-1))
	assert.Equal(t, 100, CaseScale.Clamp(101))
}
