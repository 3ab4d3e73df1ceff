package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/types"
)

// ---------------------------------------------------------------------
// Template selection
// ---------------------------------------------------------------------

func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.TemplateCatalog)
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"template": string(s.store.Template())})
}

// SelectTemplateRequest carries a template selection.
type SelectTemplateRequest struct {
	Template string `json:"template"`
}

func (s *Server) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	var req SelectTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !s.store.ReplaceTemplate(types.TemplateID(req.Template)) {
		err := &ErrUnknownTemplate{Template: req.Template}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"template": string(s.store.Template())})
}

// ---------------------------------------------------------------------
// Preview and export
// ---------------------------------------------------------------------

// handlePreview renders the current CV to HTML. An optional template query
// parameter previews a style other than the selected one.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	template := s.store.Template()
	if q := r.URL.Query().Get("template"); q != "" {
		id := types.TemplateID(q)
		if !types.KnownTemplate(id) {
			err := &ErrUnknownTemplate{Template: q}
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		template = id
	}

	html, err := rendering.Render(s.store.CV(), template)
	if err != nil {
		s.logger.Error("preview rendering failed", "err", err)
		s.errorResponse(w, http.StatusInternalServerError, "Rendering failed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, html)
}

// handleExport prints the current CV to PDF. Only one export runs at a time;
// a concurrent request gets 409 rather than queueing.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	// Make sure the latest edits are the ones being exported.
	s.saver.Flush()

	cv := s.store.CV()
	pdf, err := s.exporter.PDF(r.Context(), cv, s.store.Template())
	if err != nil {
		s.logger.Error("export failed", "err", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filename := export.SuggestedFilename(cv)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		s.logger.Error("error writing PDF response", "err", err)
	}
}
