package repository

import (
	"context"

	"github.com/flowtel/admin-backend/internal/model"
)

// FeedSources bundles the read queries the notification feed is built from.
type FeedSources struct {
	meetings    *MeetingRepository
	demos       *DemoRepository
	newsletters *NewsletterRepository
}

// NewFeedSources constructs a FeedSources over the three repositories.
func NewFeedSources(m *MeetingRepository, d *DemoRepository, n *NewsletterRepository) *FeedSources {
	return &FeedSources{meetings: m, demos: d, newsletters: n}
}

// RecentMeetings returns the newest meeting requests.
func (s *FeedSources) RecentMeetings(ctx context.Context, limit int) ([]model.MeetingRequest, error) {
	return s.meetings.Recent(ctx, limit)
}

// ListDemos returns all demo requests, newest first.
func (s *FeedSources) ListDemos(ctx context.Context) ([]model.DemoRequest, error) {
	return s.demos.List(ctx)
}

// ListSubscribers returns all newsletter subscribers, newest first.
func (s *FeedSources) ListSubscribers(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	return s.newsletters.List(ctx)
}
