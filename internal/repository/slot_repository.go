package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flowtel/admin-backend/internal/model"
)

const slotColumns = `id, to_char(date, 'YYYY-MM-DD'), time, status,
	client_name, client_email, client_phone, message, created_at`

// SlotRepository handles persistence for meeting slots.
type SlotRepository struct {
	db *pgxpool.Pool
}

// NewSlotRepository constructs a SlotRepository.
func NewSlotRepository(db *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{db: db}
}

func scanSlot(row pgx.Row) (model.MeetingSlot, error) {
	var s model.MeetingSlot
	err := row.Scan(&s.ID, &s.Date, &s.Time, &s.Status,
		&s.ClientName, &s.ClientEmail, &s.ClientPhone, &s.Message, &s.CreatedAt)
	if err != nil {
		return s, fmt.Errorf("scan slot: %w", err)
	}
	return s, nil
}

// ListByDate returns all slots for a calendar date ordered by time.
func (r *SlotRepository) ListByDate(ctx context.Context, date string) ([]model.MeetingSlot, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+slotColumns+" FROM meeting_slots WHERE date = $1 ORDER BY time ASC", date)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var slots []model.MeetingSlot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// GetByID returns a single slot or ErrNotFound.
func (r *SlotRepository) GetByID(ctx context.Context, id string) (*model.MeetingSlot, error) {
	s, err := scanSlot(r.db.QueryRow(ctx,
		"SELECT "+slotColumns+" FROM meeting_slots WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return &s, nil
}

// CreateMany inserts available slots for the given date and times inside one
// transaction. A duplicate date+time aborts the whole batch with
// ErrSlotExists so a partial roster is never left behind.
func (r *SlotRepository) CreateMany(ctx context.Context, date string, times []string) ([]model.MeetingSlot, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now().UTC()
	slots := make([]model.MeetingSlot, 0, len(times))
	for _, t := range times {
		s := model.MeetingSlot{
			ID:        uuid.New().String(),
			Date:      date,
			Time:      t,
			Status:    model.SlotAvailable,
			CreatedAt: now,
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO meeting_slots (id, date, time, status, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			s.ID, s.Date, s.Time, s.Status, s.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, ErrSlotExists
			}
			return nil, fmt.Errorf("insert slot %s %s: %w", date, t, err)
		}
		slots = append(slots, s)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return slots, nil
}

// Update applies a partial slot edit. Nil fields are left unchanged.
func (r *SlotRepository) Update(ctx context.Context, id string, u model.UpdateSlotRequest) (*model.MeetingSlot, error) {
	var sets []string
	var args []any

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if u.Status != nil {
		set("status", *u.Status)
	}
	if u.ClientName != nil {
		set("client_name", *u.ClientName)
	}
	if u.ClientEmail != nil {
		set("client_email", *u.ClientEmail)
	}
	if u.ClientPhone != nil {
		set("client_phone", *u.ClientPhone)
	}
	if u.Message != nil {
		set("message", *u.Message)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE meeting_slots SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), slotColumns)

	s, err := scanSlot(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update slot: %w", err)
	}
	return &s, nil
}

// Delete removes a single slot.
func (r *SlotRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM meeting_slots WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAvailableByDate bulk-deletes the available slots for a date, leaving
// booked slots untouched, and returns how many rows were removed.
func (r *SlotRepository) DeleteAvailableByDate(ctx context.Context, date string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM meeting_slots WHERE date = $1 AND status = $2", date, model.SlotAvailable)
	if err != nil {
		return 0, fmt.Errorf("delete available slots: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Book claims an available slot for a client. The status guard in the WHERE
// clause makes concurrent bookings of the same slot safe: only one update
// can flip the row out of 'available'.
func (r *SlotRepository) Book(ctx context.Context, date, t string, req model.CreateMeetingRequest) (*model.MeetingSlot, error) {
	s, err := scanSlot(r.db.QueryRow(ctx,
		`UPDATE meeting_slots
		 SET status = $1, client_name = $2, client_email = $3, client_phone = $4, message = $5
		 WHERE date = $6 AND time = $7 AND status = $8
		 RETURNING `+slotColumns,
		model.SlotPending, req.ClientName, req.ClientEmail, req.ClientPhone, req.Message,
		date, t, model.SlotAvailable))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("book slot: %w", err)
	}
	return &s, nil
}

// SetStatusByDateTime moves the slot for date+time into status. Used when a
// meeting request is confirmed so the slot mirrors the request state.
func (r *SlotRepository) SetStatusByDateTime(ctx context.Context, date, t string, status model.SlotStatus) error {
	_, err := r.db.Exec(ctx,
		"UPDATE meeting_slots SET status = $1 WHERE date = $2 AND time = $3", status, date, t)
	if err != nil {
		return fmt.Errorf("set slot status: %w", err)
	}
	return nil
}

// Release returns the slot for date+time to the available pool and clears
// the occupant. Used when a meeting request is cancelled or deleted.
func (r *SlotRepository) Release(ctx context.Context, date, t string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE meeting_slots
		 SET status = $1, client_name = '', client_email = '', client_phone = '', message = ''
		 WHERE date = $2 AND time = $3`,
		model.SlotAvailable, date, t)
	if err != nil {
		return fmt.Errorf("release slot: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
