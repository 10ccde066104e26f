package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/flowtel/admin-backend/internal/mailer"
	"github.com/flowtel/admin-backend/internal/model"
	"github.com/flowtel/admin-backend/internal/repository"
	"github.com/flowtel/admin-backend/internal/service"
)

// MeetingHandler holds the HTTP handlers for meeting requests.
type MeetingHandler struct {
	svc    *service.MeetingService
	mail   *mailer.Mailer
	logger *zap.Logger
}

// NewMeetingHandler constructs a MeetingHandler.
func NewMeetingHandler(svc *service.MeetingService, mail *mailer.Mailer, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{svc: svc, mail: mail, logger: logger}
}

func parseFilter(r *http.Request) model.RequestFilter {
	q := r.URL.Query()
	f := model.RequestFilter{
		Search:     q.Get("search"),
		Status:     q.Get("status"),
		DateFilter: model.DateFilter(q.Get("dateFilter")),
		Date:       q.Get("date"),
		Page:       1,
		Limit:      model.DefaultPageSize,
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		f.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		f.Limit = limit
	}
	return f
}

// List handles GET /api/meetings/requests
// Supports status, search, dateFilter, date, page, and limit query
// parameters. With export=csv the full filtered set is streamed as a CSV
// download instead of a JSON page.
func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
	f := parseFilter(r)

	if r.URL.Query().Get("export") == "csv" {
		h.exportCSV(w, r, f)
		return
	}

	requests, total, err := h.svc.List(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if requests == nil {
		requests = []model.MeetingRequest{}
	}

	counts, err := h.svc.Counts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to count requests")
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Data: requests, Total: &total, Counts: &counts})
}

func (h *MeetingHandler) exportCSV(w http.ResponseWriter, r *http.Request, f model.RequestFilter) {
	// Limit 0 disables pagination so the export matches the filter exactly.
	f.Limit = 0
	requests, _, err := h.svc.List(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	name := service.ExportFileName(f.Status, time.Now())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if err := service.WriteCSV(w, requests); err != nil {
		h.logger.Error("csv export failed", zap.Error(err))
	}
}

// Counts handles GET /api/meetings/requests/counts
func (h *MeetingHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Counts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to count requests")
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// Book handles POST /api/meetings/requests
// Public endpoint: claims a slot and creates the pending request.
func (h *MeetingHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMeetingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	m, err := h.svc.Book(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrSlotUnavailable) {
			writeError(w, http.StatusConflict, "this slot is no longer available")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// UpdateStatus handles PUT /api/meetings/requests/{id}/status
func (h *MeetingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.StatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	m, err := h.svc.UpdateStatus(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "meeting request not found")
		case errors.Is(err, service.ErrInvalidTransition):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrReasonRequired):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Update handles PUT /api/meetings/requests/{id}
// When the edit changes the date or time, the client is notified by e-mail.
func (h *MeetingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req model.UpdateMeetingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Empty() {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	before, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "meeting request not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load meeting request")
		return
	}

	m, rescheduled, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "meeting request not found")
		case errors.Is(err, service.ErrNotEditable):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	if rescheduled {
		notice := model.UpdateEmailRequest{
			Email:   m.ClientEmail,
			Name:    m.ClientName,
			OldDate: before.Date,
			OldTime: before.Time,
			NewDate: m.Date,
			NewTime: m.Time,
		}
		if err := h.mail.SendRescheduleNotice(r.Context(), notice); err != nil {
			// The edit succeeded; a failed notice is logged, not surfaced.
			h.logger.Error("reschedule notice failed",
				zap.String("meeting", id), zap.Error(err))
		}
	}
	writeJSON(w, http.StatusOK, m)
}

// Delete handles DELETE /api/meetings/requests/{id}
func (h *MeetingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "meeting request not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete meeting request")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "meeting request deleted"})
}

// SendUpdateEmail handles POST /api/meetings/send-update-email
// Explicitly re-sends the reschedule notice for a moved meeting.
func (h *MeetingHandler) SendUpdateEmail(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.mail.SendRescheduleNotice(r.Context(), req); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to send update email")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "update email sent"})
}
