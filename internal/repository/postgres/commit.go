package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
	"github.com/jmoiron/sqlx"
)

type CommitRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewCommitRepository(db *sqlx.DB, log *slog.Logger) *CommitRepository {
	return &CommitRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// commitRow flattens CommitRecord with its metrics for scanning.
type commitRow struct {
	Hash           string  `db:"hash"`
	TeamID         int     `db:"team_id"`
	AuthorUsername string  `db:"author_username"`
	CommittedAt    time.Time `db:"committed_at"`
	Message        string  `db:"message"`
	FilesChanged   int     `db:"files_changed"`
	IsBugFix       bool    `db:"is_bug_fix"`
	IsPRMerged     bool    `db:"is_pr_merged"`
	PRReviewsGiven int     `db:"pr_reviews_given"`
	ReviewComments int     `db:"review_comments"`
	IssueComments  int     `db:"issue_comments"`
	SlackMessages  int     `db:"slack_messages"`
	SlackThreads   int     `db:"slack_threads"`
	SlackMentions  int     `db:"slack_mentions"`
	Activity       float64 `db:"activity_score"`
	Impact         float64 `db:"impact_score"`
	Collaboration  float64 `db:"collaboration_score"`
	Visibility     float64 `db:"visibility_score"`
	Final          float64 `db:"final_score"`
}

func (cr *CommitRepository) ReplaceTeamCommits(ctx context.Context, tx *sqlx.Tx, teamID int, commits []domain.CommitRecord) error {
	const op = "internal.repository.postgres.ReplaceTeamCommits"
	log := cr.log.With(slog.String("op", op), slog.Int("team_id", teamID))
	log.Info("replacing team commits", slog.Int("count", len(commits)))

	deleteQuery, args, err := cr.sq.Delete("commits").
		Where(sq.Eq{"team_id": teamID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, deleteQuery, args...); err != nil {
		return fmt.Errorf("%s: failed to delete team commits: %w", op, err)
	}

	if len(commits) == 0 {
		return nil
	}

	insertBuilder := cr.sq.Insert("commits").
		Columns(
			"hash", "team_id", "author_username", "committed_at", "message",
			"files_changed", "is_bug_fix", "is_pr_merged",
			"pr_reviews_given", "review_comments", "issue_comments",
			"slack_messages", "slack_threads", "slack_mentions",
			"activity_score", "impact_score", "collaboration_score", "visibility_score", "final_score",
		)

	for _, c := range commits {
		insertBuilder = insertBuilder.Values(
			c.Hash, teamID, c.AuthorUsername, c.Timestamp, c.Message,
			c.FilesChanged, c.IsBugFix, c.IsPRMerged,
			c.PRReviewsGiven, c.ReviewComments, c.IssueComments,
			c.SlackMessages, c.SlackThreads, c.SlackMentions,
			c.Metrics.Activity, c.Metrics.Impact, c.Metrics.Collaboration, c.Metrics.Visibility, c.Metrics.Final,
		)
	}

	insertQuery, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, insertQuery, args...); err != nil {
		return fmt.Errorf("%s: failed to insert team commits: %w", op, err)
	}

	return nil
}

func (cr *CommitRepository) GetTeamCommits(ctx context.Context, teamID int) ([]domain.CommitRecord, error) {
	const op = "internal.repository.postgres.GetTeamCommits"

	query, args, err := cr.sq.Select(
		"hash", "team_id", "author_username", "committed_at", "message",
		"files_changed", "is_bug_fix", "is_pr_merged",
		"pr_reviews_given", "review_comments", "issue_comments",
		"slack_messages", "slack_threads", "slack_mentions",
		"activity_score", "impact_score", "collaboration_score", "visibility_score", "final_score",
	).
		From("commits").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("committed_at", "hash").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var rows []commitRow
	if err := cr.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	commits := make([]domain.CommitRecord, len(rows))
	for i, r := range rows {
		commits[i] = domain.CommitRecord{
			Hash:           r.Hash,
			TeamID:         r.TeamID,
			AuthorUsername: r.AuthorUsername,
			Timestamp:      r.CommittedAt,
			Message:        r.Message,
			FilesChanged:   r.FilesChanged,
			IsBugFix:       r.IsBugFix,
			IsPRMerged:     r.IsPRMerged,
			PRReviewsGiven: r.PRReviewsGiven,
			ReviewComments: r.ReviewComments,
			IssueComments:  r.IssueComments,
			SlackMessages:  r.SlackMessages,
			SlackThreads:   r.SlackThreads,
			SlackMentions:  r.SlackMentions,
			Metrics: domain.CommitMetrics{
				Activity:      r.Activity,
				Impact:        r.Impact,
				Collaboration: r.Collaboration,
				Visibility:    r.Visibility,
				Final:         r.Final,
			},
		}
	}

	return commits, nil
}
