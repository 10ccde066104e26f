package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/flowtel/admin-backend/internal/model"
)

// SlotStore is the persistence surface the slot service needs.
type SlotStore interface {
	ListByDate(ctx context.Context, date string) ([]model.MeetingSlot, error)
	GetByID(ctx context.Context, id string) (*model.MeetingSlot, error)
	CreateMany(ctx context.Context, date string, times []string) ([]model.MeetingSlot, error)
	Update(ctx context.Context, id string, u model.UpdateSlotRequest) (*model.MeetingSlot, error)
	Delete(ctx context.Context, id string) error
	DeleteAvailableByDate(ctx context.Context, date string) (int64, error)
}

// SlotService manages the per-date slot roster.
type SlotService struct {
	slots  SlotStore
	logger *zap.Logger
}

// NewSlotService constructs a SlotService.
func NewSlotService(slots SlotStore, logger *zap.Logger) *SlotService {
	return &SlotService{slots: slots, logger: logger}
}

// CreateSlots opens available slots for a date. Times are validated and
// deduplicated; a duplicate against an existing slot surfaces as
// repository.ErrSlotExists from the store.
func (s *SlotService) CreateSlots(ctx context.Context, req model.CreateSlotsRequest) ([]model.MeetingSlot, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if len(req.Slots) == 0 {
		return nil, fmt.Errorf("at least one slot time is required")
	}

	seen := make(map[string]bool, len(req.Slots))
	times := make([]string, 0, len(req.Slots))
	for _, t := range req.Slots {
		if err := validateTime(t); err != nil {
			return nil, err
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		times = append(times, t)
	}
	return s.slots.CreateMany(ctx, req.Date, times)
}

// Roster returns the fixed roster for a date with each time's derived state.
func (s *SlotService) Roster(ctx context.Context, date string) ([]model.RosterEntry, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	slots, err := s.slots.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return BuildRoster(slots), nil
}

// BuildRoster maps the slot records for one date onto the fixed roster
// times. Times with no record are not_created; everything else collapses to
// available or booked.
func BuildRoster(slots []model.MeetingSlot) []model.RosterEntry {
	byTime := make(map[string]*model.MeetingSlot, len(slots))
	for i := range slots {
		byTime[slots[i].Time] = &slots[i]
	}

	entries := make([]model.RosterEntry, 0, len(model.RosterTimes))
	for _, t := range model.RosterTimes {
		e := model.RosterEntry{Time: t, State: model.RosterNotCreated}
		if slot, ok := byTime[t]; ok {
			e.State = slot.DisplayStatus()
			e.Slot = slot
		}
		entries = append(entries, e)
	}
	return entries
}

// Update applies a partial edit to a slot.
func (s *SlotService) Update(ctx context.Context, id string, u model.UpdateSlotRequest) (*model.MeetingSlot, error) {
	if u.Status != nil {
		switch *u.Status {
		case model.SlotAvailable, model.SlotBooked, model.SlotPending, model.SlotConfirmed:
		default:
			return nil, fmt.Errorf("unknown slot status %q", *u.Status)
		}
	}
	return s.slots.Update(ctx, id, u)
}

// Delete removes a single slot. Slots holding a booking are protected.
func (s *SlotService) Delete(ctx context.Context, id string) error {
	slot, err := s.slots.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if slot.Status != model.SlotAvailable {
		return ErrSlotBooked
	}
	return s.slots.Delete(ctx, id)
}

// DeleteAvailableForDate clears the open slots for a date and reports how
// many were removed. Booked slots stay.
func (s *SlotService) DeleteAvailableForDate(ctx context.Context, date string) (int64, error) {
	if err := validateDate(date); err != nil {
		return 0, err
	}
	n, err := s.slots.DeleteAvailableByDate(ctx, date)
	if err != nil {
		return 0, err
	}
	s.logger.Info("cleared available slots", zap.String("date", date), zap.Int64("removed", n))
	return n, nil
}
