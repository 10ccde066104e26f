package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/flowtel/admin-backend/internal/model"
)

// MeetingStore is the persistence surface the meeting service needs.
type MeetingStore interface {
	List(ctx context.Context, f model.RequestFilter, now time.Time) ([]model.MeetingRequest, int, error)
	Counts(ctx context.Context) (model.StatusCounts, error)
	GetByID(ctx context.Context, id string) (*model.MeetingRequest, error)
	Create(ctx context.Context, req model.CreateMeetingRequest) (*model.MeetingRequest, error)
	Update(ctx context.Context, id string, u model.UpdateMeetingRequest) (*model.MeetingRequest, error)
	UpdateStatus(ctx context.Context, id string, status model.MeetingStatus, reason string) (*model.MeetingRequest, error)
	Delete(ctx context.Context, id string) error
}

// SlotSync is the slice of the slot store the meeting service uses to keep
// slot state in step with request status changes.
type SlotSync interface {
	Book(ctx context.Context, date, t string, req model.CreateMeetingRequest) (*model.MeetingSlot, error)
	SetStatusByDateTime(ctx context.Context, date, t string, status model.SlotStatus) error
	Release(ctx context.Context, date, t string) error
}

// MeetingService orchestrates meeting-request operations.
type MeetingService struct {
	meetings MeetingStore
	slots    SlotSync
	logger   *zap.Logger
}

// NewMeetingService constructs a MeetingService with its dependencies.
func NewMeetingService(meetings MeetingStore, slots SlotSync, logger *zap.Logger) *MeetingService {
	return &MeetingService{meetings: meetings, slots: slots, logger: logger}
}

// List returns the filtered page of requests and the total match count.
func (s *MeetingService) List(ctx context.Context, f model.RequestFilter) ([]model.MeetingRequest, int, error) {
	if f.FiltersStatus() && !model.MeetingStatus(f.Status).Valid() {
		return nil, 0, fmt.Errorf("unknown status %q", f.Status)
	}
	return s.meetings.List(ctx, f, time.Now())
}

// Counts returns the per-status tallies.
func (s *MeetingService) Counts(ctx context.Context) (model.StatusCounts, error) {
	return s.meetings.Counts(ctx)
}

// Get returns a single request by id.
func (s *MeetingService) Get(ctx context.Context, id string) (*model.MeetingRequest, error) {
	return s.meetings.GetByID(ctx, id)
}

// Book claims an available slot for the client and creates the pending
// request. This is the public booking entry point.
func (s *MeetingService) Book(ctx context.Context, req model.CreateMeetingRequest) (*model.MeetingRequest, error) {
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.ClientEmail = strings.TrimSpace(strings.ToLower(req.ClientEmail))
	if req.ClientName == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.ClientEmail == "" {
		return nil, fmt.Errorf("email is required")
	}
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if err := validateTime(req.Time); err != nil {
		return nil, err
	}

	if _, err := s.slots.Book(ctx, req.Date, req.Time, req); err != nil {
		return nil, err
	}
	m, err := s.meetings.Create(ctx, req)
	if err != nil {
		// The slot was claimed but the request row failed; hand the slot
		// back so it is not stranded.
		if relErr := s.slots.Release(ctx, req.Date, req.Time); relErr != nil {
			s.logger.Warn("failed to release slot after booking error",
				zap.String("date", req.Date), zap.String("time", req.Time), zap.Error(relErr))
		}
		return nil, err
	}
	return m, nil
}

// UpdateStatus applies a status transition. The transition table and the
// cancellation-reason rule are enforced before any write, and the matching
// slot is kept in step afterwards.
func (s *MeetingService) UpdateStatus(ctx context.Context, id string, req model.StatusUpdateRequest) (*model.MeetingRequest, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("unknown status %q", req.Status)
	}

	current, err := s.meetings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(req.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, req.Status)
	}

	reason := strings.TrimSpace(req.CancellationReason)
	if req.Status == model.StatusCancelled && reason == "" {
		return nil, ErrReasonRequired
	}
	if req.Status != model.StatusCancelled {
		// Reason only survives on cancelled requests; a reset wipes it.
		reason = ""
	}

	updated, err := s.meetings.UpdateStatus(ctx, id, req.Status, reason)
	if err != nil {
		return nil, err
	}
	s.syncSlot(ctx, updated)
	return updated, nil
}

// syncSlot mirrors the request's status onto its slot. Failures are logged,
// not surfaced: the request transition already happened and the slot view
// self-corrects on the next booking or release.
func (s *MeetingService) syncSlot(ctx context.Context, m *model.MeetingRequest) {
	var err error
	switch m.Status {
	case model.StatusCancelled:
		err = s.slots.Release(ctx, m.Date, m.Time)
	case model.StatusConfirmed:
		err = s.slots.SetStatusByDateTime(ctx, m.Date, m.Time, model.SlotConfirmed)
	case model.StatusPending:
		err = s.slots.SetStatusByDateTime(ctx, m.Date, m.Time, model.SlotPending)
	}
	if err != nil {
		s.logger.Warn("slot sync failed",
			zap.String("meeting", m.ID), zap.String("status", string(m.Status)), zap.Error(err))
	}
}

// Update applies a partial edit to a request. Completed requests are frozen.
// The second return value reports whether the edit changed date or time, so
// the caller can trigger the reschedule e-mail.
func (s *MeetingService) Update(ctx context.Context, id string, u model.UpdateMeetingRequest) (*model.MeetingRequest, bool, error) {
	current, err := s.meetings.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !current.Editable() {
		return nil, false, ErrNotEditable
	}
	if u.Date != nil {
		if err := validateDate(*u.Date); err != nil {
			return nil, false, err
		}
	}
	if u.Time != nil {
		if err := validateTime(*u.Time); err != nil {
			return nil, false, err
		}
	}

	rescheduled := u.Reschedules(current)
	updated, err := s.meetings.Update(ctx, id, u)
	if err != nil {
		return nil, false, err
	}
	return updated, rescheduled, nil
}

// Delete removes a request, releasing its slot when the request still held
// one.
func (s *MeetingService) Delete(ctx context.Context, id string) error {
	current, err := s.meetings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.meetings.Delete(ctx, id); err != nil {
		return err
	}
	if current.Status == model.StatusPending || current.Status == model.StatusConfirmed {
		if err := s.slots.Release(ctx, current.Date, current.Time); err != nil {
			s.logger.Warn("slot release failed after delete",
				zap.String("meeting", id), zap.Error(err))
		}
	}
	return nil
}

func validateDate(date string) error {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %q", date)
	}
	return nil
}

func validateTime(t string) error {
	if _, err := time.Parse(model.TimeLayout, t); err != nil {
		return fmt.Errorf("time must be HH:MM: %q", t)
	}
	return nil
}
