package testutil

import (
	"context"

	"github.com/sofiebrandt/prepdeck/internal/domain"
	"github.com/sofiebrandt/prepdeck/internal/evaluation"
)

// FakeGateway is a scriptable evaluation.Gateway for tests. Each field
// overrides one operation; unset operations return cheap defaults.
type FakeGateway struct {
	ValidateQuestionFn       func(ctx context.Context, text string) (evaluation.QuestionCheck, error)
	GenerateOptimalAnswerFn  func(ctx context.Context, question, topic string) (string, error)
	AnalyzeAnswerFn          func(ctx context.Context, question, userAnswer, optimalAnswer, topic string) (*domain.AnalysisResult, error)
	GenerateCaseStudyFn      func(ctx context.Context, topic string, difficulty domain.Difficulty) (*domain.CaseStudyDetails, error)
	EvaluateCaseStudyFn      func(ctx context.Context, cs *domain.CaseStudyDetails, userAnswer string) (*domain.AnalysisResult, error)
	FetchPromptedQuestionsFn func(ctx context.Context, topic string, level domain.ExperienceLevel) ([]domain.PromptedQuestion, error)
}

func (f *FakeGateway) ValidateQuestion(ctx context.Context, text string) (evaluation.QuestionCheck, error) {
	if f.ValidateQuestionFn != nil {
		return f.ValidateQuestionFn(ctx, text)
	}
	return evaluation.QuestionCheck{IsValid: true}, nil
}

func (f *FakeGateway) GenerateOptimalAnswer(ctx context.Context, question, topic string) (string, error) {
	if f.GenerateOptimalAnswerFn != nil {
		return f.GenerateOptimalAnswerFn(ctx, question, topic)
	}
	return "reference answer", nil
}

func (f *FakeGateway) AnalyzeAnswer(ctx context.Context, question, userAnswer, optimalAnswer, topic string) (*domain.AnalysisResult, error) {
	if f.AnalyzeAnswerFn != nil {
		return f.AnalyzeAnswerFn(ctx, question, userAnswer, optimalAnswer, topic)
	}
	return &domain.AnalysisResult{
		OptimalAnswer:    optimalAnswer,
		UserScore:        7,
		Strengths:        []string{"clear"},
		Improvements:     []string{"depth"},
		Suggestions:      []string{"examples"},
		DetailedFeedback: "fine",
	}, nil
}

func (f *FakeGateway) GenerateCaseStudy(ctx context.Context, topic string, difficulty domain.Difficulty) (*domain.CaseStudyDetails, error) {
	if f.GenerateCaseStudyFn != nil {
		return f.GenerateCaseStudyFn(ctx, topic, difficulty)
	}
	return &domain.CaseStudyDetails{Title: "Test Case", Challenge: "test challenge"}, nil
}

func (f *FakeGateway) EvaluateCaseStudy(ctx context.Context, cs *domain.CaseStudyDetails, userAnswer string) (*domain.AnalysisResult, error) {
	if f.EvaluateCaseStudyFn != nil {
		return f.EvaluateCaseStudyFn(ctx, cs, userAnswer)
	}
	return &domain.AnalysisResult{
		UserScore:        70,
		Strengths:        []string{"structure"},
		Improvements:     []string{"numbers"},
		Suggestions:      []string{"quantify"},
		DetailedFeedback: "fine",
	}, nil
}

func (f *FakeGateway) FetchPromptedQuestions(ctx context.Context, topic string, level domain.ExperienceLevel) ([]domain.PromptedQuestion, error) {
	if f.FetchPromptedQuestionsFn != nil {
		return f.FetchPromptedQuestionsFn(ctx, topic, level)
	}
	return nil, nil
}
