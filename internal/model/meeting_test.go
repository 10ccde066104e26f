package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingStatusTransitions(t *testing.T) {
	tests := []struct {
		from    MeetingStatus
		to      MeetingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, true},
		{StatusCancelled, StatusPending, true},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestMeetingStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, MeetingStatus("archived").Valid())
	assert.False(t, MeetingStatus("").Valid())
}

func TestCreateMeetingRequestDecodeLegacyFields(t *testing.T) {
	var req CreateMeetingRequest
	err := json.Unmarshal([]byte(`{
		"name": "Asha Rao",
		"email": "asha@example.com",
		"phone": "555-0101",
		"date": "2026-09-01",
		"time": "10:30",
		"message": "interested in the suite package"
	}`), &req)
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", req.ClientName)
	assert.Equal(t, "asha@example.com", req.ClientEmail)
	assert.Equal(t, "555-0101", req.ClientPhone)
	assert.Equal(t, "2026-09-01", req.Date)
	assert.Equal(t, "10:30", req.Time)
}

func TestCreateMeetingRequestDecodePrefersCanonicalFields(t *testing.T) {
	var req CreateMeetingRequest
	err := json.Unmarshal([]byte(`{
		"clientName": "Asha Rao",
		"name": "ignored",
		"clientEmail": "asha@example.com",
		"email": "ignored@example.com",
		"date": "2026-09-01",
		"time": "10:30"
	}`), &req)
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", req.ClientName)
	assert.Equal(t, "asha@example.com", req.ClientEmail)
}

func TestEditable(t *testing.T) {
	for _, status := range []MeetingStatus{StatusPending, StatusConfirmed, StatusCancelled} {
		m := MeetingRequest{Status: status}
		assert.True(t, m.Editable(), status)
	}
	m := MeetingRequest{Status: StatusCompleted}
	assert.False(t, m.Editable())
}

func TestUpdateReschedules(t *testing.T) {
	current := &MeetingRequest{Date: "2026-09-01", Time: "10:30"}
	str := func(s string) *string { return &s }

	assert.False(t, UpdateMeetingRequest{}.Reschedules(current))
	assert.False(t, UpdateMeetingRequest{ClientName: str("New Name")}.Reschedules(current))
	assert.False(t, UpdateMeetingRequest{Date: str("2026-09-01"), Time: str("10:30")}.Reschedules(current))
	assert.True(t, UpdateMeetingRequest{Date: str("2026-09-02")}.Reschedules(current))
	assert.True(t, UpdateMeetingRequest{Time: str("11:00")}.Reschedules(current))
}

func TestUpdateEmpty(t *testing.T) {
	str := func(s string) *string { return &s }
	assert.True(t, UpdateMeetingRequest{}.Empty())
	assert.False(t, UpdateMeetingRequest{Message: str("")}.Empty())
}
