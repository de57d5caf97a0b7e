package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sofiebrandt/prepdeck/internal/domain"
	"github.com/sofiebrandt/prepdeck/internal/repository"
)

type createQuestionRequest struct {
	Topic           string `json:"topic"`
	ExperienceLevel string `json:"experience_level"`
	Text            string `json:"text"`
}

func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
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

	q := &domain.Question{
		Topic:           req.Topic,
		ExperienceLevel: domain.ExperienceLevel(req.ExperienceLevel),
		Text:            req.Text,
	}
	if err := s.questions.Create(r.Context(), q); err != nil {
		if tooShort(w, err) {
			return
		}
		slog.Error("failed to create question", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to create question")
		return
	}

	respondJSON(w, http.StatusCreated, q)
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	q, err := s.questions.GetByID(r.Context(), id)
	if err != nil {
		if notFound(err) {
			respondError(w, http.StatusNotFound, "not_found", "question not found")
			return
		}
		slog.Error("failed to get question", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get question")
		return
	}

	respondJSON(w, http.StatusOK, q)
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	filter := repository.QuestionFilter{
		Topic:           r.URL.Query().Get("topic"),
		ExperienceLevel: domain.ExperienceLevel(r.URL.Query().Get("experience_level")),
	}

	questions, err := s.questions.List(r.Context(), filter)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list questions")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"total":     len(questions),
	})
}

func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.questions.Delete(r.Context(), id); err != nil {
		if notFound(err) {
			respondError(w, http.StatusNotFound, "not_found", "question not found")
			return
		}
		slog.Error("failed to delete question", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to delete question")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "question deleted",
	})
}
