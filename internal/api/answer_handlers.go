package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sofiebrandt/prepdeck/internal/domain"
)

type shareAnswerRequest struct {
	Author string `json:"author"`
	Text   string `json:"text"`
	Score  *int   `json:"score,omitempty"`
}

func (s *Server) handleShareAnswer(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "id")

	var req shareAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	a := &domain.SharedAnswer{
		QuestionID: questionID,
		Author:     req.Author,
		Text:       req.Text,
		Score:      req.Score,
	}
	if err := s.answers.Share(r.Context(), a); err != nil {
		if tooShort(w, err) {
			return
		}
		if notFound(err) {
			respondError(w, http.StatusNotFound, "not_found", "question not found")
			return
		}
		slog.Error("failed to share answer", "error", err, "question_id", questionID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to share answer")
		return
	}

	respondJSON(w, http.StatusCreated, a)
}

func (s *Server) handleListAnswers(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "id")

	answers, err := s.answers.ListByQuestion(r.Context(), questionID)
	if err != nil {
		slog.Error("failed to list answers", "error", err, "question_id", questionID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list answers")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"answers": answers,
		"total":   len(answers),
	})
}

type draftRequest struct {
	Text string `json:"text"`
}

func (s *Server) handlePutDraft(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "id")

	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := s.drafts.Save(r.Context(), questionID, req.Text); err != nil {
		slog.Error("failed to save draft", "error", err, "question_id", questionID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to save draft")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "draft saved",
	})
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "id")

	text, err := s.drafts.Load(r.Context(), questionID)
	if err != nil {
		slog.Error("failed to load draft", "error", err, "question_id", questionID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load draft")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"text": text,
	})
}

func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "id")

	if err := s.drafts.Discard(r.Context(), questionID); err != nil {
		slog.Error("failed to discard draft", "error", err, "question_id", questionID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to discard draft")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "draft discarded",
	})
}
