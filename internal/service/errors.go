// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
package service

import "errors"

// ErrInvalidTransition is returned when a status change is not allowed from
// the request's current status.
var ErrInvalidTransition = errors.New("status transition not allowed")

// ErrReasonRequired is returned when a cancellation carries no reason.
var ErrReasonRequired = errors.New("cancellation reason is required")

// ErrNotEditable is returned when editing a completed meeting request.
var ErrNotEditable = errors.New("completed meetings cannot be edited")

// ErrMeetingNotCompleted is returned when recording a result for a meeting
// that has not been marked completed.
var ErrMeetingNotCompleted = errors.New("meeting is not completed")

// ErrSlotBooked is returned when deleting a slot that has a booking.
var ErrSlotBooked = errors.New("booked slots cannot be deleted")

// ErrInvalidCredentials is returned on a failed admin login.
var ErrInvalidCredentials = errors.New("invalid credentials")
