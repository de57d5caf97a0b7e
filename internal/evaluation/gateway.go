package evaluation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sofiebrandt/prepdeck/internal/domain"
	"github.com/sofiebrandt/prepdeck/internal/llm"
)

var (
	// ErrQuotaExceeded means the provider is at capacity. The user may try
	// again in a few minutes; the gateway never retries on its own.
	ErrQuotaExceeded = errors.New("evaluation service at capacity")

	// ErrMalformedResponse means the provider answered but the payload could
	// not be parsed. Operations returning an AnalysisResult degrade to a
	// deterministic placeholder alongside this error.
	ErrMalformedResponse = errors.New("malformed evaluation response")

	// ErrNetwork covers unreachable providers and timeouts. Retryable by a
	// fresh user action.
	ErrNetwork = errors.New("evaluation service unreachable")
)

// Scale is the inclusive score range of one evaluation operation. The two
// flows use different scales; callers must know which one applies.
type Scale struct {
	Min, Max int
}

var (
	// AnswerScale is used by AnalyzeAnswer.
	AnswerScale = Scale{Min: 1, Max: 10}
	// CaseScale is used by EvaluateCaseStudy.
	CaseScale = Scale{Min: 0, Max: 100}
)

// Clamp forces v into the scale's range. Provider scores are never trusted raw.
func (s Scale) Clamp(v int) int {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// QuestionCheck is the advisory result of a question suitability check.
type QuestionCheck struct {
	IsValid  bool   `json:"is_valid"`
	Feedback string `json:"feedback,omitempty"`
}

// Gateway mediates all calls to the external generation service and
// normalizes its failure modes into the package's error taxonomy.
type Gateway interface {
	// ValidateQuestion checks a candidate question's suitability. Advisory
	// only: on any provider failure it returns IsValid=true rather than an
	// error, because an outage must never block users from practicing.
	ValidateQuestion(ctx context.Context, text string) (QuestionCheck, error)

	// GenerateOptimalAnswer produces a reference answer for a question.
	GenerateOptimalAnswer(ctx context.Context, question, topic string) (string, error)

	// AnalyzeAnswer scores a submitted answer against the reference answer
	// on the 1-10 AnswerScale.
	AnalyzeAnswer(ctx context.Context, question, userAnswer, optimalAnswer, topic string) (*domain.AnalysisResult, error)

	// GenerateCaseStudy produces a full scenario. Every call requests fresh
	// content; generated case studies are deliberately never cached.
	GenerateCaseStudy(ctx context.Context, topic string, difficulty domain.Difficulty) (*domain.CaseStudyDetails, error)

	// EvaluateCaseStudy scores an answer to a case study on the 0-100
	// CaseScale. Same failure contract as AnalyzeAnswer.
	EvaluateCaseStudy(ctx context.Context, cs *domain.CaseStudyDetails, userAnswer string) (*domain.AnalysisResult, error)

	// FetchPromptedQuestions returns suggested questions for a topic and
	// experience level. An empty list is a valid, non-error outcome.
	FetchPromptedQuestions(ctx context.Context, topic string, level domain.ExperienceLevel) ([]domain.PromptedQuestion, error)
}

type llmGateway struct {
	client llm.Client
}

// NewGateway creates a Gateway backed by an LLM provider client.
func NewGateway(client llm.Client) Gateway {
	return &llmGateway{client: client}
}

type questionCheckResponse struct {
	IsValid  bool   `json:"is_valid"`
	Feedback string `json:"feedback"`
}

func (g *llmGateway) ValidateQuestion(ctx context.Context, text string) (QuestionCheck, error) {
	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskQuestionCheck,
		SystemPrompt: questionCheckSystemPrompt,
		UserPrompt:   "Candidate question:\n" + text,
	})
	if err != nil {
		// Validation is advisory, never a hard gate.
		return QuestionCheck{IsValid: true}, nil
	}

	parsed, err := llm.ExtractJSON[questionCheckResponse](resp.Text, nil)
	if err != nil {
		return QuestionCheck{IsValid: true}, nil
	}
	return QuestionCheck{IsValid: parsed.IsValid, Feedback: parsed.Feedback}, nil
}

type optimalAnswerResponse struct {
	OptimalAnswer string `json:"optimal_answer"`
}

func (g *llmGateway) GenerateOptimalAnswer(ctx context.Context, question, topic string) (string, error) {
	var b strings.Builder
	b.WriteString("Topic: ")
	b.WriteString(topic)
	b.WriteString("\nQuestion:\n")
	b.WriteString(question)

	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskOptimalAnswer,
		SystemPrompt: optimalAnswerSystemPrompt,
		UserPrompt:   b.String(),
	})
	if err != nil {
		return "", mapProviderError(err)
	}

	parsed, err := llm.ExtractJSON[optimalAnswerResponse](resp.Text, func(r optimalAnswerResponse) error {
		if strings.TrimSpace(r.OptimalAnswer) == "" {
			return fmt.Errorf("optimal_answer is empty")
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return parsed.OptimalAnswer, nil
}

// analysisResponse tolerates fractional scores; clamping happens after
// rounding toward zero.
type analysisResponse struct {
	OptimalAnswer    string   `json:"optimal_answer"`
	UserScore        float64  `json:"user_score"`
	Strengths        []string `json:"strengths"`
	Improvements     []string `json:"improvements"`
	Suggestions      []string `json:"suggestions"`
	DetailedFeedback string   `json:"detailed_feedback"`
}

func (g *llmGateway) AnalyzeAnswer(ctx context.Context, question, userAnswer, optimalAnswer, topic string) (*domain.AnalysisResult, error) {
	var b strings.Builder
	b.WriteString("Topic: ")
	b.WriteString(topic)
	b.WriteString("\nQuestion:\n")
	b.WriteString(question)
	if optimalAnswer != "" {
		b.WriteString("\n\nReference answer:\n")
		b.WriteString(optimalAnswer)
	}
	b.WriteString("\n\nCandidate answer:\n")
	b.WriteString(userAnswer)

	return g.runAnalysis(ctx, llm.TaskAnswerAnalysis, analyzeAnswerSystemPrompt, b.String(), AnswerScale, optimalAnswer)
}

func (g *llmGateway) EvaluateCaseStudy(ctx context.Context, cs *domain.CaseStudyDetails, userAnswer string) (*domain.AnalysisResult, error) {
	var b strings.Builder
	b.WriteString("Case study: ")
	b.WriteString(cs.Title)
	b.WriteString("\nCompany: ")
	b.WriteString(cs.Company)
	b.WriteString(" (")
	b.WriteString(cs.Industry)
	b.WriteString(", ")
	b.WriteString(cs.CompanySize)
	b.WriteString(")\nChallenge:\n")
	b.WriteString(cs.DetailedChallenge)
	b.WriteString("\nObjectives: ")
	b.WriteString(strings.Join(cs.Objectives, "; "))
	b.WriteString("\nConstraints: ")
	b.WriteString(strings.Join(cs.Constraints, "; "))
	b.WriteString("\n\nCandidate answer:\n")
	b.WriteString(userAnswer)

	return g.runAnalysis(ctx, llm.TaskCaseEvaluation, evaluateCaseSystemPrompt, b.String(), CaseScale, "")
}

// runAnalysis is the shared analyze/evaluate path: generate, extract, clamp.
// On a malformed payload it returns the deterministic placeholder together
// with ErrMalformedResponse so the UI always has a complete result to render.
func (g *llmGateway) runAnalysis(ctx context.Context, task llm.TaskType, system, user string, scale Scale, knownOptimal string) (*domain.AnalysisResult, error) {
	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         task,
		SystemPrompt: system,
		UserPrompt:   user,
	})
	if err != nil {
		return nil, mapProviderError(err)
	}

	parsed, err := llm.ExtractJSON[analysisResponse](resp.Text, validateAnalysis)
	if err != nil {
		return PlaceholderAnalysis(scale, knownOptimal), fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	result := &domain.AnalysisResult{
		OptimalAnswer:    parsed.OptimalAnswer,
		UserScore:        scale.Clamp(int(parsed.UserScore)),
		Strengths:        parsed.Strengths,
		Improvements:     parsed.Improvements,
		Suggestions:      parsed.Suggestions,
		DetailedFeedback: parsed.DetailedFeedback,
	}
	if result.OptimalAnswer == "" {
		result.OptimalAnswer = knownOptimal
	}
	return result, nil
}

func validateAnalysis(r analysisResponse) error {
	if strings.TrimSpace(r.DetailedFeedback) == "" {
		return fmt.Errorf("detailed_feedback is required")
	}
	return nil
}

func (g *llmGateway) GenerateCaseStudy(ctx context.Context, topic string, difficulty domain.Difficulty) (*domain.CaseStudyDetails, error) {
	var b strings.Builder
	b.WriteString("Topic: ")
	b.WriteString(topic)
	b.WriteString("\nDifficulty: ")
	b.WriteString(string(difficulty))
	// Variety token: repeated practice on the same configuration must yield
	// fresh scenarios, so every request carries a unique nonce that defeats
	// any response caching along the way.
	b.WriteString("\nVariety token: ")
	b.WriteString(uuid.New().String())

	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCaseStudy,
		SystemPrompt: caseStudySystemPrompt,
		UserPrompt:   b.String(),
	})
	if err != nil {
		return nil, mapProviderError(err)
	}

	parsed, err := llm.ExtractJSON[domain.CaseStudyDetails](resp.Text, func(cs domain.CaseStudyDetails) error {
		if cs.Title == "" || cs.Challenge == "" {
			return fmt.Errorf("title and challenge are required")
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &parsed, nil
}

type promptedQuestionsResponse struct {
	Questions []domain.PromptedQuestion `json:"questions"`
}

func (g *llmGateway) FetchPromptedQuestions(ctx context.Context, topic string, level domain.ExperienceLevel) ([]domain.PromptedQuestion, error) {
	var b strings.Builder
	b.WriteString("Topic: ")
	b.WriteString(topic)
	b.WriteString("\nExperience level: ")
	b.WriteString(string(level))

	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPromptedQuestion,
		SystemPrompt: promptedQuestionsSystemPrompt,
		UserPrompt:   b.String(),
	})
	if err != nil {
		return nil, mapProviderError(err)
	}

	parsed, err := llm.ExtractJSON[promptedQuestionsResponse](resp.Text, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	// An empty list is a legitimate outcome for a thin topic/level
	// combination, not an error.
	questions := parsed.Questions
	for i := range questions {
		if questions[i].Topic == "" {
			questions[i].Topic = topic
		}
		if questions[i].ExperienceLevel == "" {
			questions[i].ExperienceLevel = level
		}
	}
	return questions, nil
}

// mapProviderError translates transport-level failures into the gateway's
// taxonomy.
func mapProviderError(err error) error {
	switch {
	case errors.Is(err, llm.ErrQuotaExceeded):
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	case errors.Is(err, llm.ErrTimeout), errors.Is(err, llm.ErrProviderUnavailable):
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	default:
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
}
