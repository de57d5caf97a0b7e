package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sofiebrandt/prepdeck/internal/domain"
	"github.com/sofiebrandt/prepdeck/internal/evaluation"
)

type validateQuestionRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleValidateQuestion(w http.ResponseWriter, r *http.Request) {
	var req validateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if err := domain.ValidateQuestionText(req.Text); err != nil {
		if tooShort(w, err) {
			return
		}
	}

	// ValidateQuestion never surfaces provider failures; an unreachable
	// provider degrades to "valid" so local practice keeps working.
	check, _ := s.gateway.ValidateQuestion(r.Context(), req.Text)
	respondJSON(w, http.StatusOK, check)
}

type optimalAnswerRequest struct {
	Question string `json:"question"`
	Topic    string `json:"topic"`
}

func (s *Server) handleOptimalAnswer(w http.ResponseWriter, r *http.Request) {
	var req optimalAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "question is required")
		return
	}

	answer, err := s.gateway.GenerateOptimalAnswer(r.Context(), req.Question, req.Topic)
	if err != nil {
		respondProviderError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"optimal_answer": answer,
	})
}

type analyzeAnswerRequest struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	OptimalAnswer string `json:"optimal_answer,omitempty"`
	Topic         string `json:"topic"`
}

func (s *Server) handleAnalyzeAnswer(w http.ResponseWriter, r *http.Request) {
	var req analyzeAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "question is required")
		return
	}
	if err := domain.ValidateAnswerText(req.UserAnswer); err != nil {
		if tooShort(w, err) {
			return
		}
	}

	result, err := s.gateway.AnalyzeAnswer(r.Context(), req.Question, req.UserAnswer, req.OptimalAnswer, req.Topic)
	if err != nil {
		// A malformed provider reply still yields a complete placeholder
		// result; serve it with the degraded flag instead of failing.
		if errors.Is(err, evaluation.ErrMalformedResponse) && result != nil {
			respondDegraded(w, result)
			return
		}
		respondProviderError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type generateCaseStudyRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

func (s *Server) handleGenerateCaseStudy(w http.ResponseWriter, r *http.Request) {
	var req generateCaseStudyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Topic == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "topic is required")
		return
	}
	if !domain.ValidDifficulties[req.Difficulty] {
		respondError(w, http.StatusBadRequest, "validation_error", "invalid difficulty")
		return
	}

	cs, err := s.gateway.GenerateCaseStudy(r.Context(), req.Topic, domain.Difficulty(req.Difficulty))
	if err != nil {
		respondProviderError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cs)
}

type evaluateCaseStudyRequest struct {
	CaseStudy  domain.CaseStudyDetails `json:"case_study"`
	UserAnswer string                  `json:"user_answer"`
}

func (s *Server) handleEvaluateCaseStudy(w http.ResponseWriter, r *http.Request) {
	var req evaluateCaseStudyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.CaseStudy.Title == "" || req.CaseStudy.Challenge == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "case_study with title and challenge is required")
		return
	}
	if err := domain.ValidateAnswerText(req.UserAnswer); err != nil {
		if tooShort(w, err) {
			return
		}
	}

	result, err := s.gateway.EvaluateCaseStudy(r.Context(), &req.CaseStudy, req.UserAnswer)
	if err != nil {
		if errors.Is(err, evaluation.ErrMalformedResponse) && result != nil {
			respondDegraded(w, result)
			return
		}
		respondProviderError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type promptedQuestionsRequest struct {
	Topic           string `json:"topic"`
	ExperienceLevel string `json:"experience_level"`
}

func (s *Server) handlePromptedQuestions(w http.ResponseWriter, r *http.Request) {
	var req promptedQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Topic == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "topic is required")
		return
	}
	if !domain.ValidExperienceLevels[req.ExperienceLevel] {
		respondError(w, http.StatusBadRequest, "validation_error", "invalid experience_level")
		return
	}

	questions, err := s.gateway.FetchPromptedQuestions(r.Context(), req.Topic, domain.ExperienceLevel(req.ExperienceLevel))
	if err != nil {
		respondProviderError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"total":     len(questions),
	})
}
