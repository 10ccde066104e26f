package model

import "time"

// NewsletterSubscriber is a newsletter signup from the public site.
type NewsletterSubscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	IsActive     bool      `json:"isActive"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

// SubscribeRequest is the public signup payload.
type SubscribeRequest struct {
	Email string `json:"email"`
}
