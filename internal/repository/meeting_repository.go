package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flowtel/admin-backend/internal/model"
)

const meetingColumns = `id, client_name, client_email, client_phone,
	to_char(date, 'YYYY-MM-DD'), time, message, status, cancellation_reason, created_at`

// MeetingRepository handles persistence for meeting requests.
type MeetingRepository struct {
	db *pgxpool.Pool
}

// NewMeetingRepository constructs a MeetingRepository.
func NewMeetingRepository(db *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// buildRequestWhere translates a RequestFilter into a SQL WHERE clause and
// its arguments. Kept as a pure function so the filter semantics are
// testable without a database: same inputs always produce the same clause.
func buildRequestWhere(f model.RequestFilter, now time.Time) (string, []any) {
	var conds []string
	var args []any

	if f.FiltersStatus() {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(client_name ILIKE $%d OR client_email ILIKE $%d OR client_phone ILIKE $%d)", n, n, n))
	}
	if from, to, ok := f.DateRange(now); ok {
		args = append(args, from)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
		args = append(args, to)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns the filtered page of meeting requests, newest first, along
// with the total number of rows matching the filter. Limit 0 disables
// pagination.
func (r *MeetingRepository) List(ctx context.Context, f model.RequestFilter, now time.Time) ([]model.MeetingRequest, int, error) {
	where, args := buildRequestWhere(f, now)

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM meeting_requests"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count meeting requests: %w", err)
	}

	query := "SELECT " + meetingColumns + " FROM meeting_requests" + where + " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, f.Offset())
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list meeting requests: %w", err)
	}
	defer rows.Close()

	var requests []model.MeetingRequest
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, m)
	}
	return requests, total, rows.Err()
}

func scanMeeting(row pgx.Row) (model.MeetingRequest, error) {
	var m model.MeetingRequest
	err := row.Scan(&m.ID, &m.ClientName, &m.ClientEmail, &m.ClientPhone,
		&m.Date, &m.Time, &m.Message, &m.Status, &m.CancellationReason, &m.CreatedAt)
	if err != nil {
		return m, fmt.Errorf("scan meeting request: %w", err)
	}
	return m, nil
}

// Counts returns the per-status tallies for the tab bar.
func (r *MeetingRepository) Counts(ctx context.Context) (model.StatusCounts, error) {
	var c model.StatusCounts
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'pending'),
		        COUNT(*) FILTER (WHERE status = 'confirmed'),
		        COUNT(*) FILTER (WHERE status = 'completed'),
		        COUNT(*) FILTER (WHERE status = 'cancelled')
		 FROM meeting_requests`,
	).Scan(&c.All, &c.Pending, &c.Confirmed, &c.Completed, &c.Cancelled)
	if err != nil {
		return c, fmt.Errorf("count by status: %w", err)
	}
	return c, nil
}

// GetByID returns a single meeting request or ErrNotFound.
func (r *MeetingRepository) GetByID(ctx context.Context, id string) (*model.MeetingRequest, error) {
	m, err := scanMeeting(r.db.QueryRow(ctx,
		"SELECT "+meetingColumns+" FROM meeting_requests WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get meeting request: %w", err)
	}
	return &m, nil
}

// Create inserts a new pending meeting request with a generated UUID.
func (r *MeetingRepository) Create(ctx context.Context, req model.CreateMeetingRequest) (*model.MeetingRequest, error) {
	m := &model.MeetingRequest{
		ID:          uuid.New().String(),
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Date:        req.Date,
		Time:        req.Time,
		Message:     req.Message,
		Status:      model.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO meeting_requests
		   (id, client_name, client_email, client_phone, date, time, message, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.ClientName, m.ClientEmail, m.ClientPhone, m.Date, m.Time, m.Message, m.Status, m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert meeting request: %w", err)
	}
	return m, nil
}

// Update applies a partial edit. Nil fields are left unchanged.
func (r *MeetingRepository) Update(ctx context.Context, id string, u model.UpdateMeetingRequest) (*model.MeetingRequest, error) {
	var sets []string
	var args []any

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
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
	if u.Date != nil {
		set("date", *u.Date)
	}
	if u.Time != nil {
		set("time", *u.Time)
	}
	if u.Message != nil {
		set("message", *u.Message)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE meeting_requests SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), meetingColumns)

	m, err := scanMeeting(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update meeting request: %w", err)
	}
	return &m, nil
}

// UpdateStatus sets the request's status and, for cancellations, the reason.
func (r *MeetingRepository) UpdateStatus(ctx context.Context, id string, status model.MeetingStatus, reason string) (*model.MeetingRequest, error) {
	m, err := scanMeeting(r.db.QueryRow(ctx,
		`UPDATE meeting_requests SET status = $1, cancellation_reason = $2
		 WHERE id = $3
		 RETURNING `+meetingColumns,
		status, reason, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update meeting status: %w", err)
	}
	return &m, nil
}

// Delete removes a meeting request (and, via cascade, its result).
func (r *MeetingRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM meeting_requests WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete meeting request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Recent returns the newest requests for the notification feed.
func (r *MeetingRepository) Recent(ctx context.Context, limit int) ([]model.MeetingRequest, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+meetingColumns+" FROM meeting_requests ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("recent meeting requests: %w", err)
	}
	defer rows.Close()

	var requests []model.MeetingRequest
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, m)
	}
	return requests, rows.Err()
}
