package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flowtel/admin-backend/internal/model"
	"github.com/flowtel/admin-backend/internal/repository"
	"github.com/flowtel/admin-backend/internal/service"
)

// DemoHandler holds the HTTP handlers for demo requests.
type DemoHandler struct {
	svc *service.DemoService
}

// NewDemoHandler constructs a DemoHandler.
func NewDemoHandler(svc *service.DemoService) *DemoHandler {
	return &DemoHandler{svc: svc}
}

// List handles GET /api/demo
func (h *DemoHandler) List(w http.ResponseWriter, r *http.Request) {
	demos, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list demo requests")
		return
	}
	if demos == nil {
		demos = []model.DemoRequest{}
	}
	writeList(w, demos)
}

// Create handles POST /api/demo
// Public endpoint for the demo request form.
func (h *DemoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateDemoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	d, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

// Update handles PUT /api/demo/{id}
func (h *DemoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.UpdateDemoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	d, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "demo request not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Delete handles DELETE /api/demo/{id}
func (h *DemoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "demo request not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete demo request")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "demo request deleted"})
}
