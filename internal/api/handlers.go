package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/sofiebrandt/prepdeck/internal/domain"
	"github.com/sofiebrandt/prepdeck/internal/evaluation"
	"github.com/sofiebrandt/prepdeck/internal/repository"
)

// Response helpers

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
	// Degraded marks responses built from placeholder content after the
	// provider returned something unusable.
	Degraded bool `json:"degraded,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondDegraded(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	resp := apiResponse{
		Success:  true,
		Data:     data,
		Degraded: true,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error: &apiError{
			Code:    code,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// respondProviderError maps gateway failures onto HTTP statuses. Quota maps
// to 429 so clients can distinguish "wait it out" from transport trouble.
func respondProviderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, evaluation.ErrQuotaExceeded):
		respondError(w, http.StatusTooManyRequests, "quota_exceeded", "provider quota exhausted, retry later")
	case errors.Is(err, evaluation.ErrNetwork):
		respondError(w, http.StatusBadGateway, "provider_unreachable", "could not reach the evaluation provider")
	default:
		slog.Error("provider call failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "evaluation failed")
	}
}

func notFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func tooShort(w http.ResponseWriter, err error) bool {
	var ts *domain.TooShortError
	if errors.As(err, &ts) {
		respondError(w, http.StatusBadRequest, "validation_error", ts.Error())
		return true
	}
	return false
}

// Health handler

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
