package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flowtel/admin-backend/internal/model"
	"github.com/flowtel/admin-backend/internal/service"
)

// NotificationHandler holds the HTTP handlers for the notification feed.
type NotificationHandler struct {
	svc *service.NotificationService
}

// NewNotificationHandler constructs a NotificationHandler.
func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List handles GET /api/notifications
// Supports search, type, and read query parameters.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := model.NotificationFilter{
		Search: q.Get("search"),
		Type:   q.Get("type"),
		Read:   q.Get("read"),
	}

	feed, err := h.svc.Feed(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build notification feed")
		return
	}
	writeList(w, feed)
}

// Recent handles GET /api/notifications/recent
// Returns the popover snapshot and the unread count.
func (h *NotificationHandler) Recent(w http.ResponseWriter, r *http.Request) {
	recent, unread, err := h.svc.Recent(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build notification feed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data":        recent,
		"unreadCount": unread,
	})
}

// MarkViewed handles POST /api/notifications/viewed
// Marks the current popover snapshot as read.
func (h *NotificationHandler) MarkViewed(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.MarkSnapshotViewed(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to mark notifications viewed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "notifications marked viewed"})
}

// Dismiss handles DELETE /api/notifications/{type}/{id}
func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	t := model.NotificationType(chi.URLParam(r, "type"))
	id := chi.URLParam(r, "id")

	if err := h.svc.Dismiss(t, id); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "notification dismissed"})
}

// DismissAll handles DELETE /api/notifications
func (h *NotificationHandler) DismissAll(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DismissAll(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear notifications")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "notifications cleared"})
}
