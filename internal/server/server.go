// Package server provides the HTTP API the CV editor frontend talks to.
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

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/logging"
	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
)

// PDFExporter prints a CV to PDF bytes.
type PDFExporter interface {
	PDF(ctx context.Context, cv types.CVData, template types.TemplateID) ([]byte, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      *store.Store
	saver      *store.AutoSaver
	exporter   PDFExporter
	logger     *logging.Logger
}

// New creates a server wired to the given state store. Persisted state is
// loaded before the first request can arrive.
func New(cfg config.Config, logger *logging.Logger) (*Server, error) {
	files, err := store.NewFileStore(cfg.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}

	st := store.NewFromSnapshot(files.Load())
	saver := store.NewAutoSaver(st, files, cfg.AutoSaveInterval(), logger)
	exporter := export.New(cfg.ChromePath, cfg.ExportTimeout(), logger)

	s := &Server{
		store:    st,
		saver:    saver,
		exporter: exporter,
		logger:   logger,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF export can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux. Split out so tests can drive the handler
// stack without a listening socket.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Aggregate
	mux.HandleFunc("GET /cv", s.handleGetCV)
	mux.HandleFunc("POST /reset", s.handleReset)

	// Personal info and photo. Literal segments take precedence over the
	// {section} wildcard below.
	mux.HandleFunc("PATCH /cv/personal-info", s.handleUpdatePersonalInfo)
	mux.HandleFunc("POST /cv/photo", s.handleUploadPhoto)
	mux.HandleFunc("DELETE /cv/photo", s.handleRemovePhoto)

	// Repeatable sections; hobbies are addressed by index in the {id} slot.
	mux.HandleFunc("POST /cv/{section}", s.handleAddEntity)
	mux.HandleFunc("PATCH /cv/{section}/{id}", s.handleUpdateEntity)
	mux.HandleFunc("DELETE /cv/{section}/{id}", s.handleRemoveEntity)

	// Bullet points on work and volunteering entries.
	mux.HandleFunc("POST /cv/{section}/{id}/bullets", s.handleAddBullet)
	mux.HandleFunc("PATCH /cv/{section}/{id}/bullets/{index}", s.handleUpdateBullet)
	mux.HandleFunc("DELETE /cv/{section}/{id}/bullets/{index}", s.handleRemoveBullet)

	// Templates and output
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("GET /template", s.handleGetTemplate)
	mux.HandleFunc("PUT /template", s.handleSelectTemplate)
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("POST /export", s.handleExport)

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Pending edits must reach disk before exit.
	s.saver.Close()
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers so a browser frontend on another port can call
// the API.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"elapsed", time.Since(start).String())
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReset restores the empty CV and default template. The query flag
// guards against accidental calls; everything the user typed is destroyed.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		s.errorResponse(w, http.StatusBadRequest, "reset requires confirm=true")
		return
	}

	s.store.Reset()
	s.saver.Flush()
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "reset"})
}

// mutate applies fn to the current aggregate. The store runs fn under its
// write lock, so concurrent requests cannot lose each other's replacements.
func (s *Server) mutate(fn func(types.CVData) (types.CVData, bool)) bool {
	return s.store.Update(fn)
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("error encoding JSON response", "err", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
