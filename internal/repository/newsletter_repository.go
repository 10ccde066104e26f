package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flowtel/admin-backend/internal/model"
)

// NewsletterRepository handles persistence for newsletter subscribers.
type NewsletterRepository struct {
	db *pgxpool.Pool
}

// NewNewsletterRepository constructs a NewsletterRepository.
func NewNewsletterRepository(db *pgxpool.Pool) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// List returns all subscribers, newest first.
func (r *NewsletterRepository) List(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, email, is_active, subscribed_at
		 FROM newsletter_subscribers ORDER BY subscribed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	var subs []model.NewsletterSubscriber
	for rows.Next() {
		var s model.NewsletterSubscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.IsActive, &s.SubscribedAt); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// Create inserts a new active subscriber.
func (r *NewsletterRepository) Create(ctx context.Context, email string) (*model.NewsletterSubscriber, error) {
	s := &model.NewsletterSubscriber{
		ID:           uuid.New().String(),
		Email:        email,
		IsActive:     true,
		SubscribedAt: time.Now().UTC(),
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO newsletter_subscribers (id, email, is_active, subscribed_at)
		 VALUES ($1, $2, $3, $4)`,
		s.ID, s.Email, s.IsActive, s.SubscribedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("insert subscriber: %w", err)
	}
	return s, nil
}

// Delete removes a subscriber.
func (r *NewsletterRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM newsletter_subscribers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
