package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/flowtel/admin-backend/internal/model"
	"github.com/flowtel/admin-backend/internal/repository"
)

type fakeSlotStore struct {
	byID    map[string]*model.MeetingSlot
	created [][]string
}

func newFakeSlotStore(slots ...*model.MeetingSlot) *fakeSlotStore {
	s := &fakeSlotStore{byID: make(map[string]*model.MeetingSlot)}
	for _, slot := range slots {
		s.byID[slot.ID] = slot
	}
	return s
}

func (s *fakeSlotStore) ListByDate(_ context.Context, date string) ([]model.MeetingSlot, error) {
	var out []model.MeetingSlot
	for _, slot := range s.byID {
		if slot.Date == date {
			out = append(out, *slot)
		}
	}
	return out, nil
}

func (s *fakeSlotStore) GetByID(_ context.Context, id string) (*model.MeetingSlot, error) {
	slot, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *slot
	return &copied, nil
}

func (s *fakeSlotStore) CreateMany(_ context.Context, date string, times []string) ([]model.MeetingSlot, error) {
	s.created = append(s.created, times)
	slots := make([]model.MeetingSlot, 0, len(times))
	for _, t := range times {
		slots = append(slots, model.MeetingSlot{Date: date, Time: t, Status: model.SlotAvailable})
	}
	return slots, nil
}

func (s *fakeSlotStore) Update(_ context.Context, id string, u model.UpdateSlotRequest) (*model.MeetingSlot, error) {
	slot, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if u.Status != nil {
		slot.Status = *u.Status
	}
	copied := *slot
	return &copied, nil
}

func (s *fakeSlotStore) Delete(_ context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

func (s *fakeSlotStore) DeleteAvailableByDate(_ context.Context, date string) (int64, error) {
	var n int64
	for id, slot := range s.byID {
		if slot.Date == date && slot.Status == model.SlotAvailable {
			delete(s.byID, id)
			n++
		}
	}
	return n, nil
}

func newTestSlotService(store *fakeSlotStore) *SlotService {
	return NewSlotService(store, zap.NewNop())
}

func TestCreateSlotsValidatesAndDeduplicates(t *testing.T) {
	store := newFakeSlotStore()
	svc := newTestSlotService(store)

	slots, err := svc.CreateSlots(context.Background(), model.CreateSlotsRequest{
		Date:  "2026-09-01",
		Slots: []string{"10:00", "10:30", "10:00"},
	})
	require.NoError(t, err)

	assert.Len(t, slots, 2)
	require.Len(t, store.created, 1)
	assert.Equal(t, []string{"10:00", "10:30"}, store.created[0])
}

func TestCreateSlotsRejectsBadInput(t *testing.T) {
	svc := newTestSlotService(newFakeSlotStore())

	_, err := svc.CreateSlots(context.Background(), model.CreateSlotsRequest{
		Date: "2026-09-01",
	})
	assert.Error(t, err, "empty slot list")

	_, err = svc.CreateSlots(context.Background(), model.CreateSlotsRequest{
		Date: "bad-date", Slots: []string{"10:00"},
	})
	assert.Error(t, err)

	_, err = svc.CreateSlots(context.Background(), model.CreateSlotsRequest{
		Date: "2026-09-01", Slots: []string{"10am"},
	})
	assert.Error(t, err)
}

func TestBuildRoster(t *testing.T) {
	slots := []model.MeetingSlot{
		{ID: "s1", Date: "2026-06-01", Time: "10:00", Status: model.SlotAvailable},
		{ID: "s2", Date: "2026-06-01", Time: "10:30", Status: model.SlotPending},
		{ID: "s3", Date: "2026-06-01", Time: "11:00", Status: model.SlotConfirmed},
		{ID: "s4", Date: "2026-06-01", Time: "11:30", Status: model.SlotBooked},
	}

	roster := BuildRoster(slots)
	require.Len(t, roster, len(model.RosterTimes))

	byTime := make(map[string]model.RosterEntry)
	for _, e := range roster {
		byTime[e.Time] = e
	}

	assert.Equal(t, model.RosterAvailable, byTime["10:00"].State)
	assert.Equal(t, model.RosterBooked, byTime["10:30"].State, "pending collapses to booked")
	assert.Equal(t, model.RosterBooked, byTime["11:00"].State, "confirmed collapses to booked")
	assert.Equal(t, model.RosterBooked, byTime["11:30"].State)
	assert.Equal(t, model.RosterNotCreated, byTime["12:00"].State)
	assert.Nil(t, byTime["12:00"].Slot)
	require.NotNil(t, byTime["10:00"].Slot)
	assert.Equal(t, "s1", byTime["10:00"].Slot.ID)

	// Roster order follows the fixed times, not the input order.
	assert.Equal(t, model.RosterTimes[0], roster[0].Time)
	assert.Equal(t, model.RosterTimes[len(model.RosterTimes)-1], roster[len(roster)-1].Time)
}

func TestBuildRosterEmptyDate(t *testing.T) {
	roster := BuildRoster(nil)
	require.Len(t, roster, len(model.RosterTimes))
	for _, e := range roster {
		assert.Equal(t, model.RosterNotCreated, e.State)
	}
}

func TestDeleteRefusesBookedSlot(t *testing.T) {
	store := newFakeSlotStore(
		&model.MeetingSlot{ID: "s1", Date: "2026-09-01", Time: "10:00", Status: model.SlotPending},
	)
	svc := newTestSlotService(store)

	err := svc.Delete(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrSlotBooked)
	assert.Contains(t, store.byID, "s1")
}

func TestDeleteAvailableSlot(t *testing.T) {
	store := newFakeSlotStore(
		&model.MeetingSlot{ID: "s1", Date: "2026-09-01", Time: "10:00", Status: model.SlotAvailable},
	)
	svc := newTestSlotService(store)

	require.NoError(t, svc.Delete(context.Background(), "s1"))
	assert.NotContains(t, store.byID, "s1")
}

func TestDeleteAvailableForDateLeavesBookings(t *testing.T) {
	store := newFakeSlotStore(
		&model.MeetingSlot{ID: "s1", Date: "2026-09-01", Time: "10:00", Status: model.SlotAvailable},
		&model.MeetingSlot{ID: "s2", Date: "2026-09-01", Time: "10:30", Status: model.SlotConfirmed},
		&model.MeetingSlot{ID: "s3", Date: "2026-09-02", Time: "10:00", Status: model.SlotAvailable},
	)
	svc := newTestSlotService(store)

	n, err := svc.DeleteAvailableForDate(context.Background(), "2026-09-01")
	require.NoError(t, err)

	assert.Equal(t, int64(1), n)
	assert.Contains(t, store.byID, "s2", "booked slot survives")
	assert.Contains(t, store.byID, "s3", "other dates untouched")
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc := newTestSlotService(newFakeSlotStore())
	bad := model.SlotStatus("reserved")
	_, err := svc.Update(context.Background(), "s1", model.UpdateSlotRequest{Status: &bad})
	assert.Error(t, err)
}
