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

// DemoRepository handles persistence for demo requests.
type DemoRepository struct {
	db *pgxpool.Pool
}

// NewDemoRepository constructs a DemoRepository.
func NewDemoRepository(db *pgxpool.Pool) *DemoRepository {
	return &DemoRepository{db: db}
}

// List returns all demo requests, newest first.
func (r *DemoRepository) List(ctx context.Context) ([]model.DemoRequest, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, phone, hotel, rooms, created_at
		 FROM demo_requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list demo requests: %w", err)
	}
	defer rows.Close()

	var demos []model.DemoRequest
	for rows.Next() {
		var d model.DemoRequest
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.Phone, &d.Hotel, &d.Rooms, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan demo request: %w", err)
		}
		demos = append(demos, d)
	}
	return demos, rows.Err()
}

// Create inserts a new demo request from the public form.
func (r *DemoRepository) Create(ctx context.Context, req model.CreateDemoRequest) (*model.DemoRequest, error) {
	d := &model.DemoRequest{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Hotel:     req.Hotel,
		Rooms:     req.Rooms,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO demo_requests (id, name, email, phone, hotel, rooms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.Name, d.Email, d.Phone, d.Hotel, d.Rooms, d.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert demo request: %w", err)
	}
	return d, nil
}

// Update applies a partial edit to a demo request.
func (r *DemoRepository) Update(ctx context.Context, id string, u model.UpdateDemoRequest) (*model.DemoRequest, error) {
	var sets []string
	var args []any

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if u.Name != nil {
		set("name", *u.Name)
	}
	if u.Email != nil {
		set("email", *u.Email)
	}
	if u.Phone != nil {
		set("phone", *u.Phone)
	}
	if u.Hotel != nil {
		set("hotel", *u.Hotel)
	}
	if u.Rooms != nil {
		set("rooms", *u.Rooms)
	}
	if len(sets) == 0 {
		return r.getByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE demo_requests SET %s WHERE id = $%d RETURNING id, name, email, phone, hotel, rooms, created_at",
		strings.Join(sets, ", "), len(args))

	var d model.DemoRequest
	err := r.db.QueryRow(ctx, query, args...).
		Scan(&d.ID, &d.Name, &d.Email, &d.Phone, &d.Hotel, &d.Rooms, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update demo request: %w", err)
	}
	return &d, nil
}

func (r *DemoRepository) getByID(ctx context.Context, id string) (*model.DemoRequest, error) {
	var d model.DemoRequest
	err := r.db.QueryRow(ctx,
		"SELECT id, name, email, phone, hotel, rooms, created_at FROM demo_requests WHERE id = $1", id).
		Scan(&d.ID, &d.Name, &d.Email, &d.Phone, &d.Hotel, &d.Rooms, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get demo request: %w", err)
	}
	return &d, nil
}

// Delete removes a demo request.
func (r *DemoRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM demo_requests WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete demo request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
