// package repository defines the interfaces for the data persistence layer.
// These interfaces abstract the underlying database implementation from the
// service layer; postgres is the only implementation today.
package repository

import (
	"context"

	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
	"github.com/Jothi-Sri-K/ImpactLens/pkg/api"
	"github.com/jmoiron/sqlx"
)

// TeamRepository defines the contract for interacting with team and roster data.
type TeamRepository interface {
	// CreateTeamWithUsers creates a new team and upserts its members.
	// This operation is expected to be transactional.
	// It returns apperrors.ErrAlreadyExists if a team with the same name already exists.
	CreateTeamWithUsers(ctx context.Context, team api.Team) (*domain.TeamWithMembers, error)

	// GetTeamByName retrieves a team by its unique name, along with its members.
	// The ext argument allows this method to be executed within a transaction (*sqlx.Tx)
	// or directly on a DB connection (*sqlx.DB).
	// It returns apperrors.ErrNotFound if the team is not found.
	GetTeamByName(ctx context.Context, ext sqlx.ExtContext, name string) (*domain.TeamWithMembers, error)

	// GetTeam retrieves the bare team record including its repo URL and token,
	// as needed by the sync pipeline. Returns apperrors.ErrNotFound when unknown.
	GetTeam(ctx context.Context, name string) (*domain.Team, error)

	// ListTeams returns all teams without members or tokens.
	ListTeams(ctx context.Context) ([]domain.Team, error)
}

// UserRepository defines the contract for roster-level user operations.
type UserRepository interface {
	// SetIsActive updates the active status of a user.
	// It returns apperrors.ErrNotFound if the user does not exist.
	SetIsActive(ctx context.Context, userID string, isActive bool) (*api.User, error)

	// ListUsers returns the whole roster across teams.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpsertCollaborators reconciles repository collaborators into the roster:
	// unknown logins become technical members of the team, known ones are
	// reassigned to it. Intended to run within a transaction.
	UpsertCollaborators(ctx context.Context, tx *sqlx.Tx, teamID int, collaborators []domain.Collaborator) ([]domain.User, error)
}

// CommitRepository stores the normalized commit set per team. The set is
// fully replaced on each sync, never merged.
type CommitRepository interface {
	// ReplaceTeamCommits deletes the team's commit set and inserts the given
	// one. Intended to run within a transaction.
	ReplaceTeamCommits(ctx context.Context, tx *sqlx.Tx, teamID int, commits []domain.CommitRecord) error

	// GetTeamCommits returns the team's current commit set with metrics.
	GetTeamCommits(ctx context.Context, teamID int) ([]domain.CommitRecord, error)
}

// ActivityRepository covers the auxiliary contribution signals: attendance,
// non-technical activities, client feedback and work submissions.
type ActivityRepository interface {
	// MarkAttendance upserts the status for (user, day); a second mark on the
	// same day overwrites the status rather than appending a record.
	MarkAttendance(ctx context.Context, rec domain.AttendanceRecord) error

	// ListAttendance returns all attendance records across users.
	ListAttendance(ctx context.Context) ([]domain.AttendanceRecord, error)

	// AddNonTechActivity appends one activity log entry.
	AddNonTechActivity(ctx context.Context, act domain.NonTechActivity) error

	// ListNonTechActivities returns all activity entries across users.
	ListNonTechActivities(ctx context.Context) ([]domain.NonTechActivity, error)

	// AddFeedback appends one client feedback entry.
	AddFeedback(ctx context.Context, fb domain.ClientFeedback) error

	// ListFeedback returns all feedback entries across users.
	ListFeedback(ctx context.Context) ([]domain.ClientFeedback, error)

	// AddWorkSubmission appends one work submission.
	AddWorkSubmission(ctx context.Context, ws domain.WorkSubmission) error
}

// ScoreRepository is the snapshot store for computed team rankings.
type ScoreRepository interface {
	// ReplaceTeamScores deletes the team's snapshot and inserts the given one
	// in a single transaction, so readers never observe a partial snapshot.
	ReplaceTeamScores(ctx context.Context, tx *sqlx.Tx, teamID int, scores []domain.ScoreMetrics) error

	// GetTeamScores returns the team's current snapshot ordered by rank.
	GetTeamScores(ctx context.Context, teamID int) ([]domain.ScoreMetrics, error)

	// GetAllScores returns every team's snapshot, ordered by team then rank.
	GetAllScores(ctx context.Context) ([]domain.ScoreMetrics, error)
}
