package model

import "time"

// SlotStatus is the backend state of a meeting slot. The admin UI collapses
// the booked/pending/confirmed states into a single "booked" bucket.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotPending   SlotStatus = "pending"
	SlotConfirmed SlotStatus = "confirmed"
)

// RosterState is the derived display state of a roster entry.
type RosterState string

const (
	RosterNotCreated RosterState = "not_created"
	RosterAvailable  RosterState = "available"
	RosterBooked     RosterState = "booked"
)

// RosterTimes is the fixed half-hour roster offered for every date.
var RosterTimes = []string{
	"10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30",
	"14:00", "14:30", "15:00", "15:30",
}

// MeetingSlot is a bookable half-hour window on a calendar date. Occupant
// fields are set only once the slot has been taken.
type MeetingSlot struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Status      SlotStatus `json:"status"`
	ClientName  string     `json:"clientName,omitempty"`
	ClientEmail string     `json:"clientEmail,omitempty"`
	ClientPhone string     `json:"clientPhone,omitempty"`
	Message     string     `json:"message,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// DisplayStatus collapses the backend status set to the two-way UI enum.
func (s *MeetingSlot) DisplayStatus() RosterState {
	if s.Status == SlotAvailable {
		return RosterAvailable
	}
	return RosterBooked
}

// RosterEntry pairs a roster time with its derived state and, when a slot
// record exists, the slot itself.
type RosterEntry struct {
	Time  string       `json:"time"`
	State RosterState  `json:"state"`
	Slot  *MeetingSlot `json:"slot,omitempty"`
}

// CreateSlotsRequest is the payload for POST /api/meetings/slots. Slots holds
// the times to create; the admin UI sends either one time or the full roster.
type CreateSlotsRequest struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// UpdateSlotRequest is a partial slot update.
type UpdateSlotRequest struct {
	Status      *SlotStatus `json:"status,omitempty"`
	ClientName  *string     `json:"clientName,omitempty"`
	ClientEmail *string     `json:"clientEmail,omitempty"`
	ClientPhone *string     `json:"clientPhone,omitempty"`
	Message     *string     `json:"message,omitempty"`
}
