package model

import "time"

// Outcome is the qualitative result recorded for a completed meeting.
type Outcome string

const (
	OutcomeInterested    Outcome = "Interested"
	OutcomeNotInterested Outcome = "Not Interested"
	OutcomeNeedTime      Outcome = "Need Time"
	OutcomeDealClosed    Outcome = "Deal Closed"
)

// Valid reports whether o is one of the four known outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeInterested, OutcomeNotInterested, OutcomeNeedTime, OutcomeDealClosed:
		return true
	}
	return false
}

// NextAction is the follow-up task scheduled after a completed meeting.
type NextAction string

const (
	ActionFollowUpCall NextAction = "Follow-up Call"
	ActionProposalSend NextAction = "Proposal Send"
	ActionDemoRequired NextAction = "Demo Required"
	ActionNone         NextAction = "None"
)

// Valid reports whether a is one of the four known actions.
func (a NextAction) Valid() bool {
	switch a {
	case ActionFollowUpCall, ActionProposalSend, ActionDemoRequired, ActionNone:
		return true
	}
	return false
}

// RecordingType distinguishes audio from video meeting recordings.
type RecordingType string

const (
	RecordingAudio RecordingType = "audio"
	RecordingVideo RecordingType = "video"
)

// MeetingResult captures what happened in a completed meeting.
type MeetingResult struct {
	ID                string        `json:"id"`
	MeetingID         string        `json:"meetingId"`
	MeetingSummary    string        `json:"meetingSummary"`
	ClientRequirement string        `json:"clientRequirement"`
	Outcome           Outcome       `json:"outcome"`
	NextAction        NextAction    `json:"nextAction"`
	FollowUpDate      string        `json:"followUpDate,omitempty"`
	FollowUpCompleted bool          `json:"followUpCompleted"`
	AdminNotes        string        `json:"adminNotes,omitempty"`
	RecordingURL      string        `json:"recordingUrl,omitempty"`
	RecordingType     RecordingType `json:"recordingType,omitempty"`
	RecordingDuration int           `json:"recordingDuration,omitempty"` // minutes
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// CreateResultRequest is the payload for POST /api/meeting-results.
type CreateResultRequest struct {
	MeetingID         string        `json:"meetingId"`
	MeetingSummary    string        `json:"meetingSummary"`
	ClientRequirement string        `json:"clientRequirement"`
	Outcome           Outcome       `json:"outcome"`
	NextAction        NextAction    `json:"nextAction"`
	FollowUpDate      string        `json:"followUpDate,omitempty"`
	AdminNotes        string        `json:"adminNotes,omitempty"`
	RecordingURL      string        `json:"recordingUrl,omitempty"`
	RecordingType     RecordingType `json:"recordingType,omitempty"`
	RecordingDuration int           `json:"recordingDuration,omitempty"`
}

// FollowUpRequest toggles a result's follow-up-completed flag.
type FollowUpRequest struct {
	FollowUpCompleted bool `json:"followUpCompleted"`
}

// ResultStats aggregates results for the dashboard.
type ResultStats struct {
	Total              int `json:"total"`
	Interested         int `json:"interested"`
	NotInterested      int `json:"notInterested"`
	NeedTime           int `json:"needTime"`
	DealClosed         int `json:"dealClosed"`
	PendingFollowUps   int `json:"pendingFollowUps"`
	CompletedFollowUps int `json:"completedFollowUps"`
}
