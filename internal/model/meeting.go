// Package model defines the core domain types for the meeting-booking admin backend.
package model

import (
	"encoding/json"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates (date-only, no zone).
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for slot times of day.
const TimeLayout = "15:04"

// MeetingStatus is the lifecycle state of a meeting request.
type MeetingStatus string

const (
	StatusPending   MeetingStatus = "pending"
	StatusConfirmed MeetingStatus = "confirmed"
	StatusCompleted MeetingStatus = "completed"
	StatusCancelled MeetingStatus = "cancelled"
)

// Valid reports whether s is one of the four known statuses.
func (s MeetingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> target is allowed.
// Completed is terminal; pending can be restored from confirmed or cancelled.
func (s MeetingStatus) CanTransitionTo(target MeetingStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled || target == StatusPending
	case StatusCancelled:
		return target == StatusPending
	}
	return false
}

// CancellationReasons is the canned list offered by the admin UI. A free-text
// reason is equally acceptable; the server only requires a non-empty string.
var CancellationReasons = []string{
	"Schedule conflict",
	"Client unavailable",
	"Technical issues",
	"Emergency situation",
	"Resource unavailable",
	"Other",
}

// MeetingRequest is a client's request for a meeting in a bookable slot.
type MeetingRequest struct {
	ID                 string        `json:"id"`
	ClientName         string        `json:"clientName"`
	ClientEmail        string        `json:"clientEmail"`
	ClientPhone        string        `json:"clientPhone"`
	Date               string        `json:"date"`
	Time               string        `json:"time"`
	Message            string        `json:"message,omitempty"`
	Status             MeetingStatus `json:"status"`
	CancellationReason string        `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
}

// Editable reports whether the request may still be edited by the admin.
// Completed meetings are frozen.
func (m *MeetingRequest) Editable() bool {
	return m.Status != StatusCompleted
}

// CreateMeetingRequest is the public booking payload. The public site has
// historically sent either the clientName/clientEmail/clientPhone keys or the
// older name/email/phone keys, so decoding resolves the fallback once here and
// the rest of the system only ever sees the canonical fields.
type CreateMeetingRequest struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	Date        string
	Time        string
	Message     string
}

// UnmarshalJSON resolves the legacy field names into the canonical ones.
func (r *CreateMeetingRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		ClientName  string `json:"clientName"`
		ClientEmail string `json:"clientEmail"`
		ClientPhone string `json:"clientPhone"`
		Name        string `json:"name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Date        string `json:"date"`
		Time        string `json:"time"`
		Message     string `json:"message"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.ClientName = firstNonEmpty(raw.ClientName, raw.Name)
	r.ClientEmail = firstNonEmpty(raw.ClientEmail, raw.Email)
	r.ClientPhone = firstNonEmpty(raw.ClientPhone, raw.Phone)
	r.Date = raw.Date
	r.Time = raw.Time
	r.Message = raw.Message
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// UpdateMeetingRequest is the admin's partial edit payload. Nil means
// "leave unchanged"; an empty string clears the field.
type UpdateMeetingRequest struct {
	ClientName  *string `json:"clientName,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Message     *string `json:"message,omitempty"`
}

// Empty reports whether the payload carries no changes at all.
func (u UpdateMeetingRequest) Empty() bool {
	return u.ClientName == nil && u.ClientEmail == nil && u.ClientPhone == nil &&
		u.Date == nil && u.Time == nil && u.Message == nil
}

// Reschedules reports whether the edit moves the meeting to a different
// date or time, which is what triggers the client notification e-mail.
func (u UpdateMeetingRequest) Reschedules(current *MeetingRequest) bool {
	if u.Date != nil && *u.Date != current.Date {
		return true
	}
	if u.Time != nil && *u.Time != current.Time {
		return true
	}
	return false
}

// StatusUpdateRequest is the payload for PUT /api/meetings/requests/{id}/status.
type StatusUpdateRequest struct {
	Status             MeetingStatus `json:"status"`
	CancellationReason string        `json:"cancellationReason,omitempty"`
}

// StatusCounts is the per-tab tally shown above the request list.
type StatusCounts struct {
	All       int `json:"all"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// UpdateEmailRequest is the payload for POST /api/meetings/send-update-email,
// fired when an edit changes a meeting's date or time.
type UpdateEmailRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	OldDate string `json:"oldDate"`
	OldTime string `json:"oldTime"`
	NewDate string `json:"newDate"`
	NewTime string `json:"newTime"`
}

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
