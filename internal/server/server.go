package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/careercrafters/careercoach/internal/journey"
)

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	controller     *journey.Controller
	logger         *zap.Logger
	maxUploadBytes int64
}

// Config holds server configuration
type Config struct {
	Port        int
	MaxUploadMB int
}

// New creates a new server instance
func New(cfg Config, controller *journey.Controller, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 10
	}

	s := &Server{
		controller:     controller,
		logger:         logger,
		maxUploadBytes: int64(cfg.MaxUploadMB) << 20,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Oracle calls have no imposed timeout
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// routes builds the request router.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Session lifecycle
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)

	// Onboarding
	mux.HandleFunc("POST /sessions/{id}/onboarding/file", s.handleUploadResume)
	mux.HandleFunc("POST /sessions/{id}/onboarding/advance", s.handleAdvanceOnboarding)
	mux.HandleFunc("POST /sessions/{id}/onboarding/retreat", s.handleRetreatOnboarding)
	mux.HandleFunc("POST /sessions/{id}/onboarding/restart", s.handleRestartOnboarding)
	mux.HandleFunc("PUT /sessions/{id}/onboarding/resume", s.handleUpdateResume)
	mux.HandleFunc("PUT /sessions/{id}/onboarding/profile", s.handleUpdateProfile)

	// Roadmap and progress
	mux.HandleFunc("GET /sessions/{id}/roadmap", s.handleGetRoadmap)
	mux.HandleFunc("GET /sessions/{id}/progress", s.handleGetProgress)
	mux.HandleFunc("POST /sessions/{id}/roadmap/skills/toggle", s.handleToggleSkill)

	// Interviews
	mux.HandleFunc("POST /sessions/{id}/interview", s.handleStartInterview)
	mux.HandleFunc("GET /sessions/{id}/interview", s.handleGetInterview)
	mux.HandleFunc("DELETE /sessions/{id}/interview", s.handleAbandonInterview)
	mux.HandleFunc("POST /sessions/{id}/interview/messages", s.handleChatMessage)
	mux.HandleFunc("POST /sessions/{id}/interview/speech/start", s.handleSpeechStart)
	mux.HandleFunc("POST /sessions/{id}/interview/speech/stop", s.handleSpeechStop)
	mux.HandleFunc("POST /sessions/{id}/interview/speech/segments", s.handleSpeechSegment)
	mux.HandleFunc("POST /sessions/{id}/interview/answer", s.handleSubmitAnswer)
	mux.HandleFunc("POST /sessions/{id}/interview/finish", s.handleFinishInterview)

	// Dashboard
	mux.HandleFunc("POST /sessions/{id}/navigate/dashboard", s.handleGoToDashboard)
	mux.HandleFunc("POST /sessions/{id}/navigate/roadmap", s.handleGoToRoadmap)
	mux.HandleFunc("POST /sessions/{id}/jobs", s.handleFindJobs)
	mux.HandleFunc("POST /sessions/{id}/jobs/{index}/application", s.handleApplicationContent)
	mux.HandleFunc("POST /sessions/{id}/clipboard", s.handleMarkCopied)
	mux.HandleFunc("GET /sessions/{id}/clipboard", s.handleClipboardState)

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// Handler exposes the configured handler stack for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// fail maps an error onto an HTTP status and writes it.
func (s *Server) fail(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
