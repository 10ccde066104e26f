package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/flowtel/admin-backend/internal/model"
)

const (
	// recentNewsletterCap limits how many subscribers feed the popover.
	recentNewsletterCap = 5
	// pageNewsletterCap limits how many subscribers feed the full page.
	pageNewsletterCap = 10
	// recentSize is how many items the popover shows.
	recentSize = 2
)

// NotificationSources are the read-side stores the feed is synthesized from.
type NotificationSources interface {
	RecentMeetings(ctx context.Context, limit int) ([]model.MeetingRequest, error)
	ListDemos(ctx context.Context) ([]model.DemoRequest, error)
	ListSubscribers(ctx context.Context) ([]model.NewsletterSubscriber, error)
}

// NotificationService synthesizes the admin notification feed. Nothing is
// persisted: read and dismissed state live in memory for the lifetime of the
// process and reset on restart.
type NotificationService struct {
	sources NotificationSources

	mu        sync.RWMutex
	viewed    map[string]bool
	dismissed map[string]bool
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(sources NotificationSources) *NotificationService {
	return &NotificationService{
		sources:   sources,
		viewed:    make(map[string]bool),
		dismissed: make(map[string]bool),
	}
}

// synthesize builds the raw feed, newest first, with the given cap on how
// many newsletter subscribers contribute. The popover variant only surfaces
// meeting requests that are still pending.
func (s *NotificationService) synthesize(ctx context.Context, newsletterCap int, popover bool) ([]model.Notification, error) {
	meetings, err := s.sources.RecentMeetings(ctx, 20)
	if err != nil {
		return nil, err
	}
	demos, err := s.sources.ListDemos(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.sources.ListSubscribers(ctx)
	if err != nil {
		return nil, err
	}
	if len(subs) > newsletterCap {
		subs = subs[:newsletterCap]
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	feed := make([]model.Notification, 0, len(meetings)+len(demos)+len(subs))
	add := func(n model.Notification) {
		key := n.Key()
		if s.dismissed[key] {
			return
		}
		n.Read = s.viewed[key]
		feed = append(feed, n)
	}

	for _, m := range meetings {
		if popover && m.Status != model.StatusPending {
			continue
		}
		add(model.Notification{
			ID:          m.ID,
			Type:        model.NotifyMeeting,
			Title:       "New meeting request",
			Description: fmt.Sprintf("%s requested a meeting", m.ClientName),
			Details:     fmt.Sprintf("%s at %s", m.Date, m.Time),
			Status:      string(m.Status),
			CreatedAt:   m.CreatedAt,
		})
	}
	for _, d := range demos {
		add(model.Notification{
			ID:          d.ID,
			Type:        model.NotifyDemo,
			Title:       "New demo request",
			Description: fmt.Sprintf("%s from %s", d.Name, d.Hotel),
			Details:     d.Email,
			Status:      "new",
			CreatedAt:   d.CreatedAt,
		})
	}
	for _, sub := range subs {
		status := "inactive"
		if sub.IsActive {
			status = "active"
		}
		add(model.Notification{
			ID:          sub.ID,
			Type:        model.NotifyNewsletter,
			Title:       "New newsletter subscriber",
			Description: sub.Email,
			Status:      status,
			CreatedAt:   sub.SubscribedAt,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})
	return feed, nil
}

// Feed returns the full notification page, optionally narrowed by filter.
func (s *NotificationService) Feed(ctx context.Context, f model.NotificationFilter) ([]model.Notification, error) {
	feed, err := s.synthesize(ctx, pageNewsletterCap, false)
	if err != nil {
		return nil, err
	}
	return filterFeed(feed, f), nil
}

func filterFeed(feed []model.Notification, f model.NotificationFilter) []model.Notification {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]model.Notification, 0, len(feed))
	for _, n := range feed {
		if f.Type != "" && f.Type != "all" && string(n.Type) != f.Type {
			continue
		}
		if f.Read == "read" && !n.Read {
			continue
		}
		if f.Read == "unread" && n.Read {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(n.Title), search) &&
			!strings.Contains(strings.ToLower(n.Description), search) &&
			!strings.Contains(strings.ToLower(n.Details), search) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Recent returns the popover snapshot: the two most recent unread items, or
// the two most recent overall when everything has been seen, plus the unread
// count across the whole snapshot.
func (s *NotificationService) Recent(ctx context.Context) ([]model.Notification, int, error) {
	feed, err := s.synthesize(ctx, recentNewsletterCap, true)
	if err != nil {
		return nil, 0, err
	}

	unread := make([]model.Notification, 0, len(feed))
	for _, n := range feed {
		if !n.Read {
			unread = append(unread, n)
		}
	}

	pick := unread
	if len(pick) == 0 {
		pick = feed
	}
	if len(pick) > recentSize {
		pick = pick[:recentSize]
	}
	return pick, len(unread), nil
}

// MarkSnapshotViewed marks the current popover snapshot as read.
func (s *NotificationService) MarkSnapshotViewed(ctx context.Context) error {
	feed, err := s.synthesize(ctx, recentNewsletterCap, true)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range feed {
		s.viewed[n.Key()] = true
	}
	return nil
}

// Dismiss removes one notification from the feed for this session.
func (s *NotificationService) Dismiss(t model.NotificationType, id string) error {
	if !t.Valid() {
		return fmt.Errorf("unknown notification type %q", t)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dismissed[model.NotificationKey(t, id)] = true
	return nil
}

// DismissAll clears the entire current feed for this session.
func (s *NotificationService) DismissAll(ctx context.Context) error {
	feed, err := s.synthesize(ctx, pageNewsletterCap, false)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range feed {
		s.dismissed[n.Key()] = true
	}
	return nil
}
