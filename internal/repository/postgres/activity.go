package postgres

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
	"github.com/jmoiron/sqlx"
)

// ActivityRepository persists the auxiliary contribution signals. Attendance
// is keyed by (user, day) and upserted; everything else is append-only.
type ActivityRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewActivityRepository(db *sqlx.DB, log *slog.Logger) *ActivityRepository {
	return &ActivityRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (ar *ActivityRepository) MarkAttendance(ctx context.Context, rec domain.AttendanceRecord) error {
	const op = "internal.repository.postgres.MarkAttendance"
	log := ar.log.With(slog.String("op", op), slog.String("user_id", rec.UserID))
	log.Info("marking attendance", slog.String("status", string(rec.Status)))

	query, args, err := ar.sq.Insert("attendance").
		Columns("user_id", "day", "status").
		Values(rec.UserID, rec.Day, rec.Status).
		Suffix(`ON CONFLICT (user_id, day) DO UPDATE SET status = EXCLUDED.status`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build upsert query: %w", op, err)
	}

	if _, err := ar.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to execute upsert: %w", op, err)
	}

	return nil
}

func (ar *ActivityRepository) ListAttendance(ctx context.Context) ([]domain.AttendanceRecord, error) {
	const op = "internal.repository.postgres.ListAttendance"

	query, args, err := ar.sq.Select("user_id", "day", "status").
		From("attendance").
		OrderBy("user_id", "day").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var records []domain.AttendanceRecord
	if err := ar.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return records, nil
}

func (ar *ActivityRepository) AddNonTechActivity(ctx context.Context, act domain.NonTechActivity) error {
	const op = "internal.repository.postgres.AddNonTechActivity"

	query, args, err := ar.sq.Insert("non_tech_activities").
		Columns("id", "user_id", "type", "description", "impact_points").
		Values(act.ID, act.UserID, act.Type, act.Description, act.ImpactPoints).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := ar.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return nil
}

func (ar *ActivityRepository) ListNonTechActivities(ctx context.Context) ([]domain.NonTechActivity, error) {
	const op = "internal.repository.postgres.ListNonTechActivities"

	query, args, err := ar.sq.Select("id", "user_id", "type", "description", "impact_points").
		From("non_tech_activities").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var activities []domain.NonTechActivity
	if err := ar.db.SelectContext(ctx, &activities, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return activities, nil
}

func (ar *ActivityRepository) AddFeedback(ctx context.Context, fb domain.ClientFeedback) error {
	const op = "internal.repository.postgres.AddFeedback"

	query, args, err := ar.sq.Insert("client_feedback").
		Columns("id", "user_id", "description", "date").
		Values(fb.ID, fb.UserID, fb.Description, fb.Date).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := ar.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return nil
}

func (ar *ActivityRepository) ListFeedback(ctx context.Context) ([]domain.ClientFeedback, error) {
	const op = "internal.repository.postgres.ListFeedback"

	query, args, err := ar.sq.Select("id", "user_id", "description", "date").
		From("client_feedback").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var feedback []domain.ClientFeedback
	if err := ar.db.SelectContext(ctx, &feedback, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return feedback, nil
}

func (ar *ActivityRepository) AddWorkSubmission(ctx context.Context, ws domain.WorkSubmission) error {
	const op = "internal.repository.postgres.AddWorkSubmission"

	query, args, err := ar.sq.Insert("work_submissions").
		Columns("id", "user_id", "title", "description", "link", "submitted_at").
		Values(ws.ID, ws.UserID, ws.Title, ws.Description, ws.Link, ws.SubmittedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := ar.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return nil
}
