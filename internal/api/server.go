package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sofiebrandt/prepdeck/internal/config"
	"github.com/sofiebrandt/prepdeck/internal/evaluation"
	"github.com/sofiebrandt/prepdeck/internal/service"
)

// Server represents the HTTP API server
type Server struct {
	config    config.ServerConfig
	router    *chi.Mux
	questions service.QuestionService
	answers   service.SharedAnswerService
	drafts    service.DraftService
	gateway   evaluation.Gateway
}

// NewServer creates a new API server
func NewServer(
	cfg config.ServerConfig,
	questions service.QuestionService,
	answers service.SharedAnswerService,
	drafts service.DraftService,
	gateway evaluation.Gateway,
) *Server {
	s := &Server{
		config:    cfg,
		questions: questions,
		answers:   answers,
		drafts:    drafts,
		gateway:   gateway,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.requestTimeout()))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check (public)
	r.Get("/health", s.handleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.authenticate)

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", s.handleListQuestions)
			r.Post("/", s.handleCreateQuestion)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetQuestion)
				r.Delete("/", s.handleDeleteQuestion)
				r.Get("/answers", s.handleListAnswers)
				r.Post("/answers", s.handleShareAnswer)
				r.Get("/draft", s.handleGetDraft)
				r.Put("/draft", s.handlePutDraft)
				r.Delete("/draft", s.handleDeleteDraft)
			})
		})

		r.Route("/practice", func(r chi.Router) {
			r.Post("/validate-question", s.handleValidateQuestion)
			r.Post("/optimal-answer", s.handleOptimalAnswer)
			r.Post("/analyze-answer", s.handleAnalyzeAnswer)
			r.Post("/case-study", s.handleGenerateCaseStudy)
			r.Post("/case-study/evaluate", s.handleEvaluateCaseStudy)
			r.Post("/prompted-questions", s.handlePromptedQuestions)
		})
	})

	s.router = r
}

func (s *Server) requestTimeout() time.Duration {
	if s.config.RequestTimeout > 0 {
		return s.config.RequestTimeout
	}
	return 60 * time.Second
}

// loggingMiddleware logs HTTP requests using slog
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
