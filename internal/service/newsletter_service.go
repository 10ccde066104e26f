package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/flowtel/admin-backend/internal/model"
)

// NewsletterStore is the persistence surface the newsletter service needs.
type NewsletterStore interface {
	List(ctx context.Context) ([]model.NewsletterSubscriber, error)
	Create(ctx context.Context, email string) (*model.NewsletterSubscriber, error)
	Delete(ctx context.Context, id string) error
}

// NewsletterService manages newsletter signups.
type NewsletterService struct {
	subscribers NewsletterStore
}

// NewNewsletterService constructs a NewsletterService.
func NewNewsletterService(subscribers NewsletterStore) *NewsletterService {
	return &NewsletterService{subscribers: subscribers}
}

// List returns all subscribers, newest first.
func (s *NewsletterService) List(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	return s.subscribers.List(ctx)
}

// Subscribe validates the address and stores the signup. Addresses are
// normalized to lower case so the unique constraint catches case variants.
func (s *NewsletterService) Subscribe(ctx context.Context, req model.SubscribeRequest) (*model.NewsletterSubscriber, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("a valid email is required")
	}
	return s.subscribers.Create(ctx, email)
}

// Unsubscribe removes a subscriber.
func (s *NewsletterService) Unsubscribe(ctx context.Context, id string) error {
	return s.subscribers.Delete(ctx, id)
}
