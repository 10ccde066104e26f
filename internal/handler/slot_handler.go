package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flowtel/admin-backend/internal/model"
	"github.com/flowtel/admin-backend/internal/repository"
	"github.com/flowtel/admin-backend/internal/service"
)

// SlotHandler holds the HTTP handlers for the slot roster.
type SlotHandler struct {
	svc *service.SlotService
}

// NewSlotHandler constructs a SlotHandler.
func NewSlotHandler(svc *service.SlotService) *SlotHandler {
	return &SlotHandler{svc: svc}
}

// Roster handles GET /api/meetings/date/{date}
// Returns the fixed roster for the date with each time's derived state.
func (h *SlotHandler) Roster(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	entries, err := h.svc.Roster(r.Context(), date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeList(w, entries)
}

// Create handles POST /api/meetings/slots
// Opens available slots for a date; all-or-nothing on duplicates.
func (h *SlotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSlotsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	slots, err := h.svc.CreateSlots(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrSlotExists) {
			writeError(w, http.StatusConflict, "a slot already exists for one of these times")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, listResponse{Data: slots})
}

// Update handles PUT /api/meetings/slots/{id}
func (h *SlotHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.UpdateSlotRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	slot, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "slot not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, slot)
}

// Delete handles DELETE /api/meetings/slots/{id}
// Only available slots can be removed.
func (h *SlotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "slot not found")
		case errors.Is(err, service.ErrSlotBooked):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete slot")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "slot deleted"})
}

// DeleteByDate handles DELETE /api/meetings/slots/date/{date}
// Clears the open slots for a date, leaving booked slots in place.
func (h *SlotHandler) DeleteByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	removed, err := h.svc.DeleteAvailableForDate(r.Context(), date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": removed})
}
