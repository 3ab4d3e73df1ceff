package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/types"
)

// ---------------------------------------------------------------------
// Aggregate
// ---------------------------------------------------------------------

func (s *Server) handleGetCV(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.CV())
}

// ---------------------------------------------------------------------
// Personal info
// ---------------------------------------------------------------------

// FieldUpdateRequest carries a single field replacement.
type FieldUpdateRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

func (s *Server) handleUpdatePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var req FieldUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Field == "" {
		s.errorResponse(w, http.StatusBadRequest, "Field is required")
		return
	}

	value, ok := req.Value.(string)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Personal info values must be strings")
		return
	}

	s.mutate(func(cv types.CVData) (types.CVData, bool) {
		return editor.UpdatePersonalInfo(cv, req.Field, value), true
	})
	s.jsonResponse(w, http.StatusOK, s.store.CV().PersonalInfo)
}

// ---------------------------------------------------------------------
// Photo
// ---------------------------------------------------------------------

func (s *Server) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, editor.MaxPhotoBytes+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Could not read upload")
		return
	}

	var attachErr error
	s.mutate(func(cv types.CVData) (types.CVData, bool) {
		next, err := editor.AttachPhoto(cv, data)
		attachErr = err
		return next, err == nil
	})
	if attachErr != nil {
		s.errorResponse(w, HTTPStatus(attachErr), attachErr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.store.CV().PersonalInfo)
}

func (s *Server) handleRemovePhoto(w http.ResponseWriter, _ *http.Request) {
	s.mutate(func(cv types.CVData) (types.CVData, bool) {
		return editor.RemovePhoto(cv), true
	})
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "removed"})
}

// ---------------------------------------------------------------------
// Repeatable sections
// ---------------------------------------------------------------------

func (s *Server) handleAddEntity(w http.ResponseWriter, r *http.Request) {
	section := editor.Section(r.PathValue("section"))

	if section == editor.SectionHobbies {
		s.mutate(func(cv types.CVData) (types.CVData, bool) {
			return editor.AddHobby(cv), true
		})
		s.jsonResponse(w, http.StatusCreated, s.store.CV().Hobbies)
		return
	}

	ok := s.mutate(func(cv types.CVData) (types.CVData, bool) {
		return editor.Add(cv, section)
	})
	if !ok {
		err := &ErrUnknownSection{Section: string(section)}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, s.store.CV())
}

func (s *Server) handleUpdateEntity(w http.ResponseWriter, r *http.Request) {
	section := editor.Section(r.PathValue("section"))
	id := r.PathValue("id")

	var req FieldUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if section == editor.SectionHobbies {
		s.updateHobby(w, id, req)
		return
	}

	if req.Field == "" {
		s.errorResponse(w, http.StatusBadRequest, "Field is required")
		return
	}

	ok := s.mutate(func(cv types.CVData) (types.CVData, bool) {
		return editor.UpdateEntity(cv, section, id, req.Field, req.Value)
	})
	if !ok {
		err := &ErrUnknownSection{Section: string(section)}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.store.CV())
}

func (s *Server) handleRemoveEntity(w http.ResponseWriter, r *http.Request) {
	section := editor.Section(r.PathValue("section"))
	id := r.PathValue("id")

	if section == editor.SectionHobbies {
		index, err := strconv.Atoi(id)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid hobby index")
			return
		}
		s.mutate(func(cv types.CVData) (types.CVData, bool) {
			return editor.RemoveHobby(cv, index), true
		})
		s.jsonResponse(w, http.StatusOK, s.store.CV().Hobbies)
		return
	}

	ok := s.mutate(func(cv types.CVData) (types.CVData, bool) {
		return editor.RemoveEntity(cv, section, id)
	})
	if !ok {
		err := &ErrUnknownSection{Section: string(section)}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.store.CV())
}

// updateHobby handles the index-addressed hobby sequence.
func (s *Server) updateHobby(w http.ResponseWriter, id string, req FieldUpdateRequest) {
	index, err := strconv.Atoi(id)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid hobby index")
		return
	}
	value, ok := req.Value.(string)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Hobby values must be strings")
		return
	}

	s.mutate(func(cv types.CVData) (types.CVData, bool) {
		return editor.UpdateHobby(cv, index, value), true
	})
	s.jsonResponse(w, http.StatusOK, s.store.CV().Hobbies)
}

// ---------------------------------------------------------------------
// Bullet points
// ---------------------------------------------------------------------

func (s *Server) handleAddBullet(w http.ResponseWriter, r *http.Request) {
	section := editor.Section(r.PathValue("section"))
	id := r.PathValue("id")

	ok := s.mutate(func(cv types.CVData) (types.CVData, bool) {
		return editor.AddBulletPoint(cv, section, id)
	})
	if !ok {
		err := &ErrUnknownSection{Section: string(section)}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, s.store.CV())
}

func (s *Server) handleUpdateBullet(w http.ResponseWriter, r *http.Request) {
	section := editor.Section(r.PathValue("section"))
	id := r.PathValue("id")

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid bullet index")
		return
	}

	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ok := s.mutate(func(cv types.CVData) (types.CVData, bool) {
		return editor.UpdateBulletPoint(cv, section, id, index, req.Value)
	})
	if !ok {
		err := &ErrUnknownSection{Section: string(section)}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.store.CV())
}

func (s *Server) handleRemoveBullet(w http.ResponseWriter, r *http.Request) {
	section := editor.Section(r.PathValue("section"))
	id := r.PathValue("id")

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid bullet index")
		return
	}

	ok := s.mutate(func(cv types.CVData) (types.CVData, bool) {
		return editor.RemoveBulletPoint(cv, section, id, index)
	})
	if !ok {
		err := &ErrUnknownSection{Section: string(section)}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.store.CV())
}
