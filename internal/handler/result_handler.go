package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flowtel/admin-backend/internal/model"
	"github.com/flowtel/admin-backend/internal/repository"
	"github.com/flowtel/admin-backend/internal/service"
)

// ResultHandler holds the HTTP handlers for meeting results.
type ResultHandler struct {
	svc *service.ResultService
}

// NewResultHandler constructs a ResultHandler.
func NewResultHandler(svc *service.ResultService) *ResultHandler {
	return &ResultHandler{svc: svc}
}

// List handles GET /api/meeting-results
func (h *ResultHandler) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list meeting results")
		return
	}
	if results == nil {
		results = []model.MeetingResult{}
	}
	writeList(w, results)
}

// Create handles POST /api/meeting-results
// Records the outcome of a completed meeting. One result per meeting.
func (h *ResultHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateResultRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.svc.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "meeting not found")
		case errors.Is(err, repository.ErrResultExists):
			writeError(w, http.StatusConflict, "a result already exists for this meeting")
		case errors.Is(err, service.ErrMeetingNotCompleted):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// FollowUp handles PUT /api/meeting-results/{id}/follow-up
func (h *ResultHandler) FollowUp(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.FollowUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.svc.SetFollowUp(r.Context(), id, req.FollowUpCompleted)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "meeting result not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update follow-up")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Stats handles GET /api/meeting-results/stats
func (h *ResultHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to aggregate result stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
