// Package repository implements all database queries for the meeting-booking
// backend. It uses pgx directly (no ORM) for transparency and performance.
package repository

import "errors"

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrSlotExists is returned when creating a slot that already exists for its
// date and time.
var ErrSlotExists = errors.New("slot already exists")

// ErrSlotUnavailable is returned when booking a slot that is not available.
var ErrSlotUnavailable = errors.New("slot is not available")

// ErrResultExists is returned when a meeting already has a result recorded.
var ErrResultExists = errors.New("meeting result already exists")

// ErrAlreadySubscribed is returned when an email subscribes twice.
var ErrAlreadySubscribed = errors.New("email already subscribed")
