package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/flowtel/admin-backend/internal/service"
)

// corsOptions builds the CORS policy for the given origins. Browsers refuse
// credentialed responses for the wildcard origin, so credentials are only
// allowed when concrete origins are configured.
func corsOptions(origins []string) cors.Options {
	allowCredentials := len(origins) > 0
	for _, o := range origins {
		if o == "*" {
			allowCredentials = false
		}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: allowCredentials,
	}
}

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth          *AuthHandler
	Meetings      *MeetingHandler
	Slots         *SlotHandler
	Results       *ResultHandler
	Demos         *DemoHandler
	Newsletter    *NewsletterHandler
	Notifications *NotificationHandler

	AuthService    *service.AuthService
	Logger         *zap.Logger
	AllowedOrigins []string
}

// NewRouter builds the full route tree. Public endpoints cover the booking
// site forms and login; everything else requires a bearer token.
//
// The public and admin sides share paths (POST /api/demo is public, GET
// /api/demo is admin), so routes are registered explicitly per method
// rather than through nested mounts.
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(AccessLog(h.Logger))

	r.Use(cors.New(corsOptions(h.AllowedOrigins)).Handler)

	r.Get("/health", HealthCheck)

	// Public endpoints used by the booking site.
	r.Post("/api/auth/login", h.Auth.Login)
	r.Post("/api/meetings/requests", h.Meetings.Book)
	r.Post("/api/demo", h.Demos.Create)
	r.Post("/api/newsletter", h.Newsletter.Subscribe)

	// Admin endpoints.
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(h.AuthService))

		r.Get("/api/meetings/requests", h.Meetings.List)
		r.Get("/api/meetings/requests/counts", h.Meetings.Counts)
		r.Put("/api/meetings/requests/{id}/status", h.Meetings.UpdateStatus)
		r.Put("/api/meetings/requests/{id}", h.Meetings.Update)
		r.Delete("/api/meetings/requests/{id}", h.Meetings.Delete)
		r.Post("/api/meetings/send-update-email", h.Meetings.SendUpdateEmail)

		r.Get("/api/meetings/date/{date}", h.Slots.Roster)
		r.Post("/api/meetings/slots", h.Slots.Create)
		r.Put("/api/meetings/slots/{id}", h.Slots.Update)
		r.Delete("/api/meetings/slots/{id}", h.Slots.Delete)
		r.Delete("/api/meetings/slots/date/{date}", h.Slots.DeleteByDate)

		r.Get("/api/meeting-results", h.Results.List)
		r.Post("/api/meeting-results", h.Results.Create)
		r.Get("/api/meeting-results/stats", h.Results.Stats)
		r.Put("/api/meeting-results/{id}/follow-up", h.Results.FollowUp)

		r.Get("/api/demo", h.Demos.List)
		r.Put("/api/demo/{id}", h.Demos.Update)
		r.Delete("/api/demo/{id}", h.Demos.Delete)

		r.Get("/api/newsletter", h.Newsletter.List)
		r.Delete("/api/newsletter/{id}", h.Newsletter.Unsubscribe)

		r.Get("/api/notifications", h.Notifications.List)
		r.Get("/api/notifications/recent", h.Notifications.Recent)
		r.Post("/api/notifications/viewed", h.Notifications.MarkViewed)
		r.Delete("/api/notifications/{type}/{id}", h.Notifications.Dismiss)
		r.Delete("/api/notifications", h.Notifications.DismissAll)
	})

	return r
}
