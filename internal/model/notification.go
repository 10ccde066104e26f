package model

import (
	"fmt"
	"time"
)

// NotificationType tags which source list a notification was synthesized from.
type NotificationType string

const (
	NotifyMeeting    NotificationType = "meeting"
	NotifyDemo       NotificationType = "demo"
	NotifyNewsletter NotificationType = "newsletter"
)

// Valid reports whether t is a known notification type.
func (t NotificationType) Valid() bool {
	switch t {
	case NotifyMeeting, NotifyDemo, NotifyNewsletter:
		return true
	}
	return false
}

// Notification is a derived feed item. It is never persisted: the feed is
// synthesized at read time from meeting requests, demo requests, and
// newsletter subscribers, and the read flag lives in session memory only.
type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Details     string           `json:"details,omitempty"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	Read        bool             `json:"read"`
}

// Key is the composite id used by the session viewed-set.
func (n Notification) Key() string {
	return NotificationKey(n.Type, n.ID)
}

// NotificationKey builds the composite "type-id" key.
func NotificationKey(t NotificationType, id string) string {
	return fmt.Sprintf("%s-%s", t, id)
}

// NotificationFilter narrows the full-page feed. Read is "all", "read",
// or "unread".
type NotificationFilter struct {
	Search string
	Type   string
	Read   string
}
