package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/flowtel/admin-backend/internal/model"
)

// ResultStore is the persistence surface the result service needs.
type ResultStore interface {
	List(ctx context.Context) ([]model.MeetingResult, error)
	Create(ctx context.Context, req model.CreateResultRequest) (*model.MeetingResult, error)
	SetFollowUpCompleted(ctx context.Context, id string, completed bool) (*model.MeetingResult, error)
	Stats(ctx context.Context) (model.ResultStats, error)
}

// MeetingLookup is the read-only slice of the meeting store the result
// service uses to check the parent meeting.
type MeetingLookup interface {
	GetByID(ctx context.Context, id string) (*model.MeetingRequest, error)
}

// ResultService records and aggregates meeting outcomes.
type ResultService struct {
	results  ResultStore
	meetings MeetingLookup
}

// NewResultService constructs a ResultService.
func NewResultService(results ResultStore, meetings MeetingLookup) *ResultService {
	return &ResultService{results: results, meetings: meetings}
}

// List returns all recorded results, newest first.
func (s *ResultService) List(ctx context.Context) ([]model.MeetingResult, error) {
	return s.results.List(ctx)
}

// Create records the outcome of a completed meeting. The summary and client
// requirement are mandatory, the enums must be known values, and a follow-up
// date only makes sense with a real next action and may not lie in the past.
func (s *ResultService) Create(ctx context.Context, req model.CreateResultRequest) (*model.MeetingResult, error) {
	req.MeetingSummary = strings.TrimSpace(req.MeetingSummary)
	req.ClientRequirement = strings.TrimSpace(req.ClientRequirement)
	if req.MeetingID == "" {
		return nil, fmt.Errorf("meetingId is required")
	}
	if req.MeetingSummary == "" {
		return nil, fmt.Errorf("meetingSummary is required")
	}
	if req.ClientRequirement == "" {
		return nil, fmt.Errorf("clientRequirement is required")
	}
	if !req.Outcome.Valid() {
		return nil, fmt.Errorf("unknown outcome %q", req.Outcome)
	}
	if !req.NextAction.Valid() {
		return nil, fmt.Errorf("unknown next action %q", req.NextAction)
	}
	if req.RecordingType != "" &&
		req.RecordingType != model.RecordingAudio && req.RecordingType != model.RecordingVideo {
		return nil, fmt.Errorf("unknown recording type %q", req.RecordingType)
	}

	if req.NextAction == model.ActionNone {
		req.FollowUpDate = ""
	} else if req.FollowUpDate != "" {
		d, err := time.Parse(model.DateLayout, req.FollowUpDate)
		if err != nil {
			return nil, fmt.Errorf("followUpDate must be YYYY-MM-DD: %q", req.FollowUpDate)
		}
		today := time.Now().Format(model.DateLayout)
		if d.Format(model.DateLayout) < today {
			return nil, fmt.Errorf("followUpDate may not be in the past")
		}
	}

	meeting, err := s.meetings.GetByID(ctx, req.MeetingID)
	if err != nil {
		return nil, err
	}
	if meeting.Status != model.StatusCompleted {
		return nil, ErrMeetingNotCompleted
	}

	return s.results.Create(ctx, req)
}

// SetFollowUp toggles a result's follow-up-completed flag.
func (s *ResultService) SetFollowUp(ctx context.Context, id string, completed bool) (*model.MeetingResult, error) {
	return s.results.SetFollowUpCompleted(ctx, id, completed)
}

// Stats returns the dashboard aggregates.
func (s *ResultService) Stats(ctx context.Context) (model.ResultStats, error) {
	return s.results.Stats(ctx)
}
