package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jothi-Sri-K/ImpactLens/internal/apperrors"
	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
	"github.com/Jothi-Sri-K/ImpactLens/internal/ingest"
	"github.com/Jothi-Sri-K/ImpactLens/internal/repository"
	"github.com/Jothi-Sri-K/ImpactLens/internal/scoring"
	"github.com/Jothi-Sri-K/ImpactLens/pkg/api"
	"github.com/jmoiron/sqlx"
)

type ScoreService interface {
	// SyncAndScore pulls the team's commits from the selected source,
	// normalizes and stores them, recomputes the score snapshot and replaces
	// it. An empty user pool leaves any previous snapshot untouched.
	SyncAndScore(ctx context.Context, teamName string, useDemo bool) (*api.SyncResponse, error)

	// SyncMembers reconciles the team roster with the repo collaborators.
	SyncMembers(ctx context.Context, teamName string) ([]api.User, error)

	GetTeamScores(ctx context.Context, teamName string) ([]api.ScoreMetrics, error)
	GetAllScores(ctx context.Context) ([]api.ScoreMetrics, error)
}

type ScoreServiceImpl struct {
	BaseService
	teams         repository.TeamRepository
	users         repository.UserRepository
	commits       repository.CommitRepository
	activities    repository.ActivityRepository
	scores        repository.ScoreRepository
	live          ingest.CommitSource
	demo          ingest.CommitSource
	collaborators ingest.CollaboratorSource
}

func NewScoreService(
	base BaseService,
	teams repository.TeamRepository,
	users repository.UserRepository,
	commits repository.CommitRepository,
	activities repository.ActivityRepository,
	scores repository.ScoreRepository,
	live ingest.CommitSource,
	demo ingest.CommitSource,
	collaborators ingest.CollaboratorSource,
) *ScoreServiceImpl {
	return &ScoreServiceImpl{
		BaseService:   base,
		teams:         teams,
		users:         users,
		commits:       commits,
		activities:    activities,
		scores:        scores,
		live:          live,
		demo:          demo,
		collaborators: collaborators,
	}
}

func (s *ScoreServiceImpl) SyncAndScore(ctx context.Context, teamName string, useDemo bool) (*api.SyncResponse, error) {
	const op = "internal.service.score.SyncAndScore"
	log := s.log.With(slog.String("op", op), slog.String("team_name", teamName), slog.Bool("use_demo", useDemo))

	team, err := s.teams.GetTeam(ctx, teamName)
	if err != nil {
		return nil, fmt.Errorf("repo.GetTeam failed: %w", err)
	}

	source := s.live
	if useDemo {
		source = s.demo
	}

	raw, err := source.Fetch(ctx, team.RepoURL, team.GithubToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFetchCommits, err)
	}

	for i := range raw {
		raw[i].TeamID = team.ID
		raw[i].Metrics = scoring.Normalize(raw[i])
	}

	err = s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		return s.commits.ReplaceTeamCommits(ctx, tx, team.ID, raw)
	})
	if err != nil {
		return nil, err
	}

	log.Info("commits replaced", slog.Int("count", len(raw)))

	snapshot, err := s.recompute(ctx, op, team.ID, raw)
	if err != nil {
		return nil, err
	}

	return &api.SyncResponse{
		TeamName:     team.Name,
		CommitsCount: len(raw),
		Scores:       toAPIScores(snapshot, team.Name),
	}, nil
}

// recompute runs the pure scoring pipeline over the stored inputs and
// replaces the team snapshot. An empty pool performs no write: the previous
// snapshot, if any, stays in place.
func (s *ScoreServiceImpl) recompute(ctx context.Context, op string, teamID int, commits []domain.CommitRecord) ([]domain.ScoreMetrics, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListUsers failed: %w", err)
	}

	attendance, err := s.activities.ListAttendance(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListAttendance failed: %w", err)
	}

	nonTech, err := s.activities.ListNonTechActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListNonTechActivities failed: %w", err)
	}

	feedback, err := s.activities.ListFeedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListFeedback failed: %w", err)
	}

	snapshot := scoring.ComputeTeamScores(scoring.Inputs{
		TeamID:     teamID,
		Users:      users,
		Commits:    commits,
		Attendance: attendance,
		Activities: nonTech,
		Feedback:   feedback,
	})

	if len(snapshot) == 0 {
		s.log.Info("no users qualified for scoring, keeping previous snapshot",
			slog.String("op", op), slog.Int("team_id", teamID))

		return nil, nil
	}

	err = s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		return s.scores.ReplaceTeamScores(ctx, tx, teamID, snapshot)
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (s *ScoreServiceImpl) SyncMembers(ctx context.Context, teamName string) ([]api.User, error) {
	const op = "internal.service.score.SyncMembers"
	log := s.log.With(slog.String("op", op), slog.String("team_name", teamName))

	team, err := s.teams.GetTeam(ctx, teamName)
	if err != nil {
		return nil, fmt.Errorf("repo.GetTeam failed: %w", err)
	}

	collaborators, err := s.collaborators.FetchCollaborators(ctx, team.RepoURL, team.GithubToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFetchCommits, err)
	}

	var updated []domain.User
	err = s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		updated, err = s.users.UpsertCollaborators(ctx, tx, team.ID, collaborators)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info("roster synced", slog.Int("count", len(updated)))

	apiUsers := make([]api.User, len(updated))
	for i, u := range updated {
		apiUsers[i] = api.User{
			UserId:      u.ID,
			Username:    u.Name,
			TeamName:    team.Name,
			IsTechnical: u.IsTechnical,
			IsActive:    u.IsActive,
		}
	}

	return apiUsers, nil
}

func (s *ScoreServiceImpl) GetTeamScores(ctx context.Context, teamName string) ([]api.ScoreMetrics, error) {
	team, err := s.teams.GetTeam(ctx, teamName)
	if err != nil {
		return nil, fmt.Errorf("repo.GetTeam failed: %w", err)
	}

	scores, err := s.scores.GetTeamScores(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("repo.GetTeamScores failed: %w", err)
	}

	return toAPIScores(scores, team.Name), nil
}

func (s *ScoreServiceImpl) GetAllScores(ctx context.Context) ([]api.ScoreMetrics, error) {
	teams, err := s.teams.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListTeams failed: %w", err)
	}

	namesByID := make(map[int]string, len(teams))
	for _, t := range teams {
		namesByID[t.ID] = t.Name
	}

	scores, err := s.scores.GetAllScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.GetAllScores failed: %w", err)
	}

	apiScores := make([]api.ScoreMetrics, len(scores))
	for i, m := range scores {
		apiScores[i] = toAPIScore(m, namesByID[m.TeamID])
	}

	return apiScores, nil
}

func toAPIScore(m domain.ScoreMetrics, teamName string) api.ScoreMetrics {
	return api.ScoreMetrics{
		UserId:                 m.UserID,
		TeamName:               teamName,
		AvgImpact:              m.AvgImpact,
		AvgActivity:            m.AvgActivity,
		AvgCollaboration:       m.AvgCollaboration,
		AvgVisibility:          m.AvgVisibility,
		NonTechScore:           m.NonTechScore,
		FinalContributionScore: m.FinalContributionScore,
		Rank:                   m.Rank,
		Badge:                  string(m.Badge),
	}
}

func toAPIScores(scores []domain.ScoreMetrics, teamName string) []api.ScoreMetrics {
	apiScores := make([]api.ScoreMetrics, len(scores))
	for i, m := range scores {
		apiScores[i] = toAPIScore(m, teamName)
	}

	return apiScores
}
