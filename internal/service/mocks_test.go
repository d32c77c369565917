package service

import (
	"context"
	"database/sql"

	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
	"github.com/Jothi-Sri-K/ImpactLens/internal/ingest"
	"github.com/Jothi-Sri-K/ImpactLens/internal/repository"
	"github.com/Jothi-Sri-K/ImpactLens/pkg/api"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

type TransactorMock struct {
	mock.Mock
}

var _ Transactor = (*TransactorMock)(nil)

func (m *TransactorMock) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*sqlx.Tx), args.Error(1)
}

type TeamRepositoryMock struct {
	mock.Mock
}

var _ repository.TeamRepository = (*TeamRepositoryMock)(nil)

func (m *TeamRepositoryMock) CreateTeamWithUsers(ctx context.Context, team api.Team) (*domain.TeamWithMembers, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.TeamWithMembers), args.Error(1)
}

func (m *TeamRepositoryMock) GetTeamByName(ctx context.Context, ext sqlx.ExtContext, name string) (*domain.TeamWithMembers, error) {
	args := m.Called(ctx, ext, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.TeamWithMembers), args.Error(1)
}

func (m *TeamRepositoryMock) GetTeam(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *TeamRepositoryMock) ListTeams(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Team), args.Error(1)
}

type UserRepositoryMock struct {
	mock.Mock
}

var _ repository.UserRepository = (*UserRepositoryMock)(nil)

func (m *UserRepositoryMock) SetIsActive(ctx context.Context, userID string, isActive bool) (*api.User, error) {
	args := m.Called(ctx, userID, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.User), args.Error(1)
}

func (m *UserRepositoryMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *UserRepositoryMock) UpsertCollaborators(ctx context.Context, tx *sqlx.Tx, teamID int, collaborators []domain.Collaborator) ([]domain.User, error) {
	args := m.Called(ctx, tx, teamID, collaborators)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.User), args.Error(1)
}

type CommitRepositoryMock struct {
	mock.Mock
}

var _ repository.CommitRepository = (*CommitRepositoryMock)(nil)

func (m *CommitRepositoryMock) ReplaceTeamCommits(ctx context.Context, tx *sqlx.Tx, teamID int, commits []domain.CommitRecord) error {
	args := m.Called(ctx, tx, teamID, commits)
	return args.Error(0)
}

func (m *CommitRepositoryMock) GetTeamCommits(ctx context.Context, teamID int) ([]domain.CommitRecord, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.CommitRecord), args.Error(1)
}

type ActivityRepositoryMock struct {
	mock.Mock
}

var _ repository.ActivityRepository = (*ActivityRepositoryMock)(nil)

func (m *ActivityRepositoryMock) MarkAttendance(ctx context.Context, rec domain.AttendanceRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *ActivityRepositoryMock) ListAttendance(ctx context.Context) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func (m *ActivityRepositoryMock) AddNonTechActivity(ctx context.Context, act domain.NonTechActivity) error {
	args := m.Called(ctx, act)
	return args.Error(0)
}

func (m *ActivityRepositoryMock) ListNonTechActivities(ctx context.Context) ([]domain.NonTechActivity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.NonTechActivity), args.Error(1)
}

func (m *ActivityRepositoryMock) AddFeedback(ctx context.Context, fb domain.ClientFeedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}

func (m *ActivityRepositoryMock) ListFeedback(ctx context.Context) ([]domain.ClientFeedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.ClientFeedback), args.Error(1)
}

func (m *ActivityRepositoryMock) AddWorkSubmission(ctx context.Context, ws domain.WorkSubmission) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

type ScoreRepositoryMock struct {
	mock.Mock
}

var _ repository.ScoreRepository = (*ScoreRepositoryMock)(nil)

func (m *ScoreRepositoryMock) ReplaceTeamScores(ctx context.Context, tx *sqlx.Tx, teamID int, scores []domain.ScoreMetrics) error {
	args := m.Called(ctx, tx, teamID, scores)
	return args.Error(0)
}

func (m *ScoreRepositoryMock) GetTeamScores(ctx context.Context, teamID int) ([]domain.ScoreMetrics, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.ScoreMetrics), args.Error(1)
}

func (m *ScoreRepositoryMock) GetAllScores(ctx context.Context) ([]domain.ScoreMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.ScoreMetrics), args.Error(1)
}

type CommitSourceMock struct {
	mock.Mock
}

var _ ingest.CommitSource = (*CommitSourceMock)(nil)

func (m *CommitSourceMock) Fetch(ctx context.Context, repo string, token string) ([]domain.CommitRecord, error) {
	args := m.Called(ctx, repo, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.CommitRecord), args.Error(1)
}

type CollaboratorSourceMock struct {
	mock.Mock
}

var _ ingest.CollaboratorSource = (*CollaboratorSourceMock)(nil)

func (m *CollaboratorSourceMock) FetchCollaborators(ctx context.Context, repo string, token string) ([]domain.Collaborator, error) {
	args := m.Called(ctx, repo, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Collaborator), args.Error(1)
}
