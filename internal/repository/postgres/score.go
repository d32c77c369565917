package postgres

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
	"github.com/jmoiron/sqlx"
)

// ScoreRepository is the snapshot store. A team's rows are only ever written
// through ReplaceTeamScores inside one transaction, so a reader sees either
// the previous complete snapshot or the new one, never a mix.
type ScoreRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewScoreRepository(db *sqlx.DB, log *slog.Logger) *ScoreRepository {
	return &ScoreRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var scoreColumns = []string{
	"user_id", "team_id",
	"avg_impact", "avg_activity", "avg_collaboration", "avg_visibility",
	"non_tech_score", "final_contribution_score", "rank", "badge",
}

func (sr *ScoreRepository) ReplaceTeamScores(ctx context.Context, tx *sqlx.Tx, teamID int, scores []domain.ScoreMetrics) error {
	const op = "internal.repository.postgres.ReplaceTeamScores"
	log := sr.log.With(slog.String("op", op), slog.Int("team_id", teamID))
	log.Info("replacing team score snapshot", slog.Int("count", len(scores)))

	deleteQuery, args, err := sr.sq.Delete("score_metrics").
		Where(sq.Eq{"team_id": teamID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, deleteQuery, args...); err != nil {
		return fmt.Errorf("%s: failed to delete team scores: %w", op, err)
	}

	if len(scores) == 0 {
		return nil
	}

	insertBuilder := sr.sq.Insert("score_metrics").Columns(scoreColumns...)
	for _, s := range scores {
		insertBuilder = insertBuilder.Values(
			s.UserID, teamID,
			s.AvgImpact, s.AvgActivity, s.AvgCollaboration, s.AvgVisibility,
			s.NonTechScore, s.FinalContributionScore, s.Rank, s.Badge,
		)
	}

	insertQuery, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, insertQuery, args...); err != nil {
		return fmt.Errorf("%s: failed to insert team scores: %w", op, err)
	}

	return nil
}

func (sr *ScoreRepository) GetTeamScores(ctx context.Context, teamID int) ([]domain.ScoreMetrics, error) {
	const op = "internal.repository.postgres.GetTeamScores"

	query, args, err := sr.sq.Select(scoreColumns...).
		From("score_metrics").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("rank").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var scores []domain.ScoreMetrics
	if err := sr.db.SelectContext(ctx, &scores, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return scores, nil
}

func (sr *ScoreRepository) GetAllScores(ctx context.Context) ([]domain.ScoreMetrics, error) {
	const op = "internal.repository.postgres.GetAllScores"

	query, args, err := sr.sq.Select(scoreColumns...).
		From("score_metrics").
		OrderBy("team_id", "rank").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var scores []domain.ScoreMetrics
	if err := sr.db.SelectContext(ctx, &scores, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return scores, nil
}
