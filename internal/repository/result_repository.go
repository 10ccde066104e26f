package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flowtel/admin-backend/internal/model"
)

const resultColumns = `id, meeting_id, meeting_summary, client_requirement, outcome, next_action,
	COALESCE(to_char(follow_up_date, 'YYYY-MM-DD'), ''), follow_up_completed,
	admin_notes, recording_url, recording_type, recording_duration, created_at, updated_at`

// ResultRepository handles persistence for meeting results.
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository constructs a ResultRepository.
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{db: db}
}

func scanResult(row pgx.Row) (model.MeetingResult, error) {
	var res model.MeetingResult
	err := row.Scan(&res.ID, &res.MeetingID, &res.MeetingSummary, &res.ClientRequirement,
		&res.Outcome, &res.NextAction, &res.FollowUpDate, &res.FollowUpCompleted,
		&res.AdminNotes, &res.RecordingURL, &res.RecordingType, &res.RecordingDuration,
		&res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return res, fmt.Errorf("scan meeting result: %w", err)
	}
	return res, nil
}

// List returns all results ordered by creation time descending.
func (r *ResultRepository) List(ctx context.Context) ([]model.MeetingResult, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+resultColumns+" FROM meeting_results ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list meeting results: %w", err)
	}
	defer rows.Close()

	var results []model.MeetingResult
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// Create inserts a result for a meeting. Each meeting may have one result.
func (r *ResultRepository) Create(ctx context.Context, req model.CreateResultRequest) (*model.MeetingResult, error) {
	now := time.Now().UTC()
	res := &model.MeetingResult{
		ID:                uuid.New().String(),
		MeetingID:         req.MeetingID,
		MeetingSummary:    req.MeetingSummary,
		ClientRequirement: req.ClientRequirement,
		Outcome:           req.Outcome,
		NextAction:        req.NextAction,
		FollowUpDate:      req.FollowUpDate,
		AdminNotes:        req.AdminNotes,
		RecordingURL:      req.RecordingURL,
		RecordingType:     req.RecordingType,
		RecordingDuration: req.RecordingDuration,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	var followUp any
	if res.FollowUpDate != "" {
		followUp = res.FollowUpDate
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO meeting_results
		   (id, meeting_id, meeting_summary, client_requirement, outcome, next_action,
		    follow_up_date, admin_notes, recording_url, recording_type, recording_duration,
		    created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		res.ID, res.MeetingID, res.MeetingSummary, res.ClientRequirement, res.Outcome,
		res.NextAction, followUp, res.AdminNotes, res.RecordingURL, res.RecordingType,
		res.RecordingDuration, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrResultExists
		}
		return nil, fmt.Errorf("insert meeting result: %w", err)
	}
	return res, nil
}

// SetFollowUpCompleted toggles the follow-up flag on a result.
func (r *ResultRepository) SetFollowUpCompleted(ctx context.Context, id string, completed bool) (*model.MeetingResult, error) {
	res, err := scanResult(r.db.QueryRow(ctx,
		`UPDATE meeting_results SET follow_up_completed = $1, updated_at = $2
		 WHERE id = $3
		 RETURNING `+resultColumns,
		completed, time.Now().UTC(), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update follow-up: %w", err)
	}
	return &res, nil
}

// Stats aggregates result outcomes and follow-up progress.
func (r *ResultRepository) Stats(ctx context.Context) (model.ResultStats, error) {
	var s model.ResultStats
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE outcome = 'Interested'),
		        COUNT(*) FILTER (WHERE outcome = 'Not Interested'),
		        COUNT(*) FILTER (WHERE outcome = 'Need Time'),
		        COUNT(*) FILTER (WHERE outcome = 'Deal Closed'),
		        COUNT(*) FILTER (WHERE next_action <> 'None' AND NOT follow_up_completed),
		        COUNT(*) FILTER (WHERE follow_up_completed)
		 FROM meeting_results`,
	).Scan(&s.Total, &s.Interested, &s.NotInterested, &s.NeedTime, &s.DealClosed,
		&s.PendingFollowUps, &s.CompletedFollowUps)
	if err != nil {
		return s, fmt.Errorf("result stats: %w", err)
	}
	return s, nil
}
