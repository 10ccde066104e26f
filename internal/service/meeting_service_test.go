package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/flowtel/admin-backend/internal/model"
	"github.com/flowtel/admin-backend/internal/repository"
)

type fakeMeetingStore struct {
	byID      map[string]*model.MeetingRequest
	createErr error
	deleted   []string
}

func newFakeMeetingStore(requests ...*model.MeetingRequest) *fakeMeetingStore {
	s := &fakeMeetingStore{byID: make(map[string]*model.MeetingRequest)}
	for _, m := range requests {
		s.byID[m.ID] = m
	}
	return s
}

func (s *fakeMeetingStore) List(_ context.Context, _ model.RequestFilter, _ time.Time) ([]model.MeetingRequest, int, error) {
	var out []model.MeetingRequest
	for _, m := range s.byID {
		out = append(out, *m)
	}
	return out, len(out), nil
}

func (s *fakeMeetingStore) Counts(_ context.Context) (model.StatusCounts, error) {
	return model.StatusCounts{All: len(s.byID)}, nil
}

func (s *fakeMeetingStore) GetByID(_ context.Context, id string) (*model.MeetingRequest, error) {
	m, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (s *fakeMeetingStore) Create(_ context.Context, req model.CreateMeetingRequest) (*model.MeetingRequest, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	m := &model.MeetingRequest{
		ID:          "generated",
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Date:        req.Date,
		Time:        req.Time,
		Message:     req.Message,
		Status:      model.StatusPending,
	}
	s.byID[m.ID] = m
	return m, nil
}

func (s *fakeMeetingStore) Update(_ context.Context, id string, u model.UpdateMeetingRequest) (*model.MeetingRequest, error) {
	m, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if u.ClientName != nil {
		m.ClientName = *u.ClientName
	}
	if u.Date != nil {
		m.Date = *u.Date
	}
	if u.Time != nil {
		m.Time = *u.Time
	}
	copied := *m
	return &copied, nil
}

func (s *fakeMeetingStore) UpdateStatus(_ context.Context, id string, status model.MeetingStatus, reason string) (*model.MeetingRequest, error) {
	m, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	m.Status = status
	m.CancellationReason = reason
	copied := *m
	return &copied, nil
}

func (s *fakeMeetingStore) Delete(_ context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.byID, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type slotCall struct {
	op     string
	date   string
	time   string
	status model.SlotStatus
}

type fakeSlotSync struct {
	calls   []slotCall
	bookErr error
}

func (s *fakeSlotSync) Book(_ context.Context, date, t string, _ model.CreateMeetingRequest) (*model.MeetingSlot, error) {
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	s.calls = append(s.calls, slotCall{op: "book", date: date, time: t})
	return &model.MeetingSlot{Date: date, Time: t, Status: model.SlotPending}, nil
}

func (s *fakeSlotSync) SetStatusByDateTime(_ context.Context, date, t string, status model.SlotStatus) error {
	s.calls = append(s.calls, slotCall{op: "set", date: date, time: t, status: status})
	return nil
}

func (s *fakeSlotSync) Release(_ context.Context, date, t string) error {
	s.calls = append(s.calls, slotCall{op: "release", date: date, time: t})
	return nil
}

func pendingRequest() *model.MeetingRequest {
	return &model.MeetingRequest{
		ID:          "m1",
		ClientName:  "Asha Rao",
		ClientEmail: "asha@example.com",
		Date:        "2026-09-01",
		Time:        "10:30",
		Status:      model.StatusPending,
	}
}

func newTestMeetingService(store *fakeMeetingStore, slots *fakeSlotSync) *MeetingService {
	return NewMeetingService(store, slots, zap.NewNop())
}

func TestBookClaimsSlotAndCreatesRequest(t *testing.T) {
	store := newFakeMeetingStore()
	slots := &fakeSlotSync{}
	svc := newTestMeetingService(store, slots)

	m, err := svc.Book(context.Background(), model.CreateMeetingRequest{
		ClientName:  "Asha Rao",
		ClientEmail: "Asha@Example.com",
		Date:        "2026-09-01",
		Time:        "10:30",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, m.Status)
	assert.Equal(t, "asha@example.com", m.ClientEmail, "email should be normalized")
	require.Len(t, slots.calls, 1)
	assert.Equal(t, "book", slots.calls[0].op)
}

func TestBookRejectsBadInput(t *testing.T) {
	svc := newTestMeetingService(newFakeMeetingStore(), &fakeSlotSync{})

	tests := []struct {
		name string
		req  model.CreateMeetingRequest
	}{
		{"missing name", model.CreateMeetingRequest{ClientEmail: "a@b.com", Date: "2026-09-01", Time: "10:30"}},
		{"missing email", model.CreateMeetingRequest{ClientName: "A", Date: "2026-09-01", Time: "10:30"}},
		{"bad date", model.CreateMeetingRequest{ClientName: "A", ClientEmail: "a@b.com", Date: "01/09/2026", Time: "10:30"}},
		{"bad time", model.CreateMeetingRequest{ClientName: "A", ClientEmail: "a@b.com", Date: "2026-09-01", Time: "10:30am"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Book(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestBookSlotUnavailable(t *testing.T) {
	store := newFakeMeetingStore()
	slots := &fakeSlotSync{bookErr: repository.ErrSlotUnavailable}
	svc := newTestMeetingService(store, slots)

	_, err := svc.Book(context.Background(), model.CreateMeetingRequest{
		ClientName: "A", ClientEmail: "a@b.com", Date: "2026-09-01", Time: "10:30",
	})
	assert.ErrorIs(t, err, repository.ErrSlotUnavailable)
	assert.Empty(t, store.byID, "no request row should be created")
}

func TestBookReleasesSlotWhenCreateFails(t *testing.T) {
	store := newFakeMeetingStore()
	store.createErr = errors.New("insert failed")
	slots := &fakeSlotSync{}
	svc := newTestMeetingService(store, slots)

	_, err := svc.Book(context.Background(), model.CreateMeetingRequest{
		ClientName: "A", ClientEmail: "a@b.com", Date: "2026-09-01", Time: "10:30",
	})
	require.Error(t, err)

	require.Len(t, slots.calls, 2)
	assert.Equal(t, "release", slots.calls[1].op, "claimed slot must be handed back")
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	store := newFakeMeetingStore(pendingRequest())
	svc := newTestMeetingService(store, &fakeSlotSync{})

	_, err := svc.UpdateStatus(context.Background(), "m1",
		model.StatusUpdateRequest{Status: model.StatusCompleted})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, model.StatusPending, store.byID["m1"].Status, "status must be unchanged")
}

func TestUpdateStatusCompletedIsTerminal(t *testing.T) {
	done := pendingRequest()
	done.Status = model.StatusCompleted
	svc := newTestMeetingService(newFakeMeetingStore(done), &fakeSlotSync{})

	for _, target := range []model.MeetingStatus{model.StatusPending, model.StatusConfirmed, model.StatusCancelled} {
		_, err := svc.UpdateStatus(context.Background(), "m1",
			model.StatusUpdateRequest{Status: target})
		assert.ErrorIs(t, err, ErrInvalidTransition, target)
	}
}

func TestUpdateStatusCancelRequiresReason(t *testing.T) {
	store := newFakeMeetingStore(pendingRequest())
	svc := newTestMeetingService(store, &fakeSlotSync{})

	_, err := svc.UpdateStatus(context.Background(), "m1",
		model.StatusUpdateRequest{Status: model.StatusCancelled})
	assert.ErrorIs(t, err, ErrReasonRequired)

	_, err = svc.UpdateStatus(context.Background(), "m1",
		model.StatusUpdateRequest{Status: model.StatusCancelled, CancellationReason: "   "})
	assert.ErrorIs(t, err, ErrReasonRequired, "whitespace-only reason does not count")
}

func TestUpdateStatusCancelReleasesSlot(t *testing.T) {
	store := newFakeMeetingStore(pendingRequest())
	slots := &fakeSlotSync{}
	svc := newTestMeetingService(store, slots)

	m, err := svc.UpdateStatus(context.Background(), "m1",
		model.StatusUpdateRequest{Status: model.StatusCancelled, CancellationReason: "Schedule conflict"})
	require.NoError(t, err)

	assert.Equal(t, model.StatusCancelled, m.Status)
	assert.Equal(t, "Schedule conflict", m.CancellationReason)
	require.Len(t, slots.calls, 1)
	assert.Equal(t, slotCall{op: "release", date: "2026-09-01", time: "10:30"}, slots.calls[0])
}

func TestUpdateStatusConfirmMarksSlot(t *testing.T) {
	store := newFakeMeetingStore(pendingRequest())
	slots := &fakeSlotSync{}
	svc := newTestMeetingService(store, slots)

	_, err := svc.UpdateStatus(context.Background(), "m1",
		model.StatusUpdateRequest{Status: model.StatusConfirmed})
	require.NoError(t, err)

	require.Len(t, slots.calls, 1)
	assert.Equal(t, slotCall{op: "set", date: "2026-09-01", time: "10:30", status: model.SlotConfirmed}, slots.calls[0])
}

func TestUpdateStatusRestoreClearsReason(t *testing.T) {
	cancelled := pendingRequest()
	cancelled.Status = model.StatusCancelled
	cancelled.CancellationReason = "Other"
	store := newFakeMeetingStore(cancelled)
	svc := newTestMeetingService(store, &fakeSlotSync{})

	m, err := svc.UpdateStatus(context.Background(), "m1",
		model.StatusUpdateRequest{Status: model.StatusPending})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, m.Status)
	assert.Empty(t, m.CancellationReason)
}

func TestUpdateRejectsCompletedMeeting(t *testing.T) {
	done := pendingRequest()
	done.Status = model.StatusCompleted
	svc := newTestMeetingService(newFakeMeetingStore(done), &fakeSlotSync{})

	name := "New Name"
	_, _, err := svc.Update(context.Background(), "m1", model.UpdateMeetingRequest{ClientName: &name})
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestUpdateReportsReschedule(t *testing.T) {
	store := newFakeMeetingStore(pendingRequest())
	svc := newTestMeetingService(store, &fakeSlotSync{})

	name := "New Name"
	_, rescheduled, err := svc.Update(context.Background(), "m1",
		model.UpdateMeetingRequest{ClientName: &name})
	require.NoError(t, err)
	assert.False(t, rescheduled)

	newDate := "2026-09-02"
	m, rescheduled, err := svc.Update(context.Background(), "m1",
		model.UpdateMeetingRequest{Date: &newDate})
	require.NoError(t, err)
	assert.True(t, rescheduled)
	assert.Equal(t, "2026-09-02", m.Date)
}

func TestDeleteReleasesHeldSlot(t *testing.T) {
	store := newFakeMeetingStore(pendingRequest())
	slots := &fakeSlotSync{}
	svc := newTestMeetingService(store, slots)

	require.NoError(t, svc.Delete(context.Background(), "m1"))

	assert.Equal(t, []string{"m1"}, store.deleted)
	require.Len(t, slots.calls, 1)
	assert.Equal(t, "release", slots.calls[0].op)
}

func TestDeleteCancelledDoesNotTouchSlot(t *testing.T) {
	cancelled := pendingRequest()
	cancelled.Status = model.StatusCancelled
	store := newFakeMeetingStore(cancelled)
	slots := &fakeSlotSync{}
	svc := newTestMeetingService(store, slots)

	require.NoError(t, svc.Delete(context.Background(), "m1"))
	assert.Empty(t, slots.calls)
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc := newTestMeetingService(newFakeMeetingStore(), &fakeSlotSync{})
	_, _, err := svc.List(context.Background(), model.RequestFilter{Status: "archived"})
	assert.Error(t, err)
}
