package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flowtel/admin-backend/internal/model"
	"github.com/flowtel/admin-backend/internal/repository"
	"github.com/flowtel/admin-backend/internal/service"
)

// NewsletterHandler holds the HTTP handlers for newsletter subscribers.
type NewsletterHandler struct {
	svc *service.NewsletterService
}

// NewNewsletterHandler constructs a NewsletterHandler.
func NewNewsletterHandler(svc *service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{svc: svc}
}

// List handles GET /api/newsletter
func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list subscribers")
		return
	}
	if subs == nil {
		subs = []model.NewsletterSubscriber{}
	}
	writeList(w, subs)
}

// Subscribe handles POST /api/newsletter
// Public endpoint for the newsletter signup form.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req model.SubscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	sub, err := h.svc.Subscribe(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadySubscribed) {
			writeError(w, http.StatusConflict, "this email is already subscribed")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

// Unsubscribe handles DELETE /api/newsletter/{id}
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Unsubscribe(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "subscriber not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to remove subscriber")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "subscriber removed"})
}
