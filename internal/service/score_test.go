package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Jothi-Sri-K/ImpactLens/internal/apperrors"
	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scoreServiceMocks struct {
	transactor    *TransactorMock
	teams         *TeamRepositoryMock
	users         *UserRepositoryMock
	commits       *CommitRepositoryMock
	activities    *ActivityRepositoryMock
	scores        *ScoreRepositoryMock
	live          *CommitSourceMock
	demo          *CommitSourceMock
	collaborators *CollaboratorSourceMock
}

func newScoreServiceMocks() *scoreServiceMocks {
	return &scoreServiceMocks{
		transactor:    new(TransactorMock),
		teams:         new(TeamRepositoryMock),
		users:         new(UserRepositoryMock),
		commits:       new(CommitRepositoryMock),
		activities:    new(ActivityRepositoryMock),
		scores:        new(ScoreRepositoryMock),
		live:          new(CommitSourceMock),
		demo:          new(CommitSourceMock),
		collaborators: new(CollaboratorSourceMock),
	}
}

func (m *scoreServiceMocks) service() *ScoreServiceImpl {
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewScoreService(
		NewBaseService(m.transactor, log),
		m.teams,
		m.users,
		m.commits,
		m.activities,
		m.scores,
		m.live,
		m.demo,
		m.collaborators,
	)
}

func (m *scoreServiceMocks) assertExpectations(t *testing.T) {
	m.transactor.AssertExpectations(t)
	m.teams.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.commits.AssertExpectations(t)
	m.activities.AssertExpectations(t)
	m.scores.AssertExpectations(t)
	m.live.AssertExpectations(t)
	m.demo.AssertExpectations(t)
	m.collaborators.AssertExpectations(t)
}

func TestScoreServiceImpl_SyncAndScore(t *testing.T) {
	ctx := context.Background()

	team := &domain.Team{ID: 1, Name: "core", RepoURL: "acme/widgets", GithubToken: "tok"}
	fetched := []domain.CommitRecord{
		{Hash: "c1", AuthorUsername: "dev-one", IsPRMerged: true},
	}
	roster := []domain.User{
		{ID: "u1", Name: "Dev One", GithubUsername: "dev-one", TeamID: 1, IsTechnical: true, IsActive: true},
	}

	t.Run("Success: commits stored and snapshot replaced", func(t *testing.T) {
		m := newScoreServiceMocks()

		_, commitsTx, commitsSmock := newMockDBAndTx(t)
		commitsSmock.ExpectCommit()
		_, scoresTx, scoresSmock := newMockDBAndTx(t)
		scoresSmock.ExpectCommit()

		m.teams.On("GetTeam", ctx, "core").Return(team, nil).Once()
		m.live.On("Fetch", mock.Anything, "acme/widgets", "tok").Return(fetched, nil).Once()
		m.transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(commitsTx, nil).Once()
		m.commits.On("ReplaceTeamCommits", mock.Anything, commitsTx, 1, mock.AnythingOfType("[]domain.CommitRecord")).Return(nil).Once()
		m.users.On("ListUsers", ctx).Return(roster, nil).Once()
		m.activities.On("ListAttendance", ctx).Return([]domain.AttendanceRecord{}, nil).Once()
		m.activities.On("ListNonTechActivities", ctx).Return([]domain.NonTechActivity{}, nil).Once()
		m.activities.On("ListFeedback", ctx).Return([]domain.ClientFeedback{}, nil).Once()
		m.transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(scoresTx, nil).Once()
		m.scores.On("ReplaceTeamScores", mock.Anything, scoresTx, 1, mock.AnythingOfType("[]domain.ScoreMetrics")).Return(nil).Once()

		resp, err := m.service().SyncAndScore(ctx, "core", false)

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, "core", resp.TeamName)
		assert.Equal(t, 1, resp.CommitsCount)
		require.Len(t, resp.Scores, 1)
		assert.Equal(t, "u1", resp.Scores[0].UserId)
		assert.Equal(t, "core", resp.Scores[0].TeamName)
		assert.Equal(t, 1, resp.Scores[0].Rank)
		assert.NotEmpty(t, resp.Scores[0].Badge)

		m.assertExpectations(t)
	})

	t.Run("Demo mode uses the fixture source", func(t *testing.T) {
		m := newScoreServiceMocks()

		_, commitsTx, commitsSmock := newMockDBAndTx(t)
		commitsSmock.ExpectCommit()
		_, scoresTx, scoresSmock := newMockDBAndTx(t)
		scoresSmock.ExpectCommit()

		m.teams.On("GetTeam", ctx, "core").Return(team, nil).Once()
		m.demo.On("Fetch", mock.Anything, "acme/widgets", "tok").Return(fetched, nil).Once()
		m.transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(commitsTx, nil).Once()
		m.commits.On("ReplaceTeamCommits", mock.Anything, commitsTx, 1, mock.AnythingOfType("[]domain.CommitRecord")).Return(nil).Once()
		m.users.On("ListUsers", ctx).Return(roster, nil).Once()
		m.activities.On("ListAttendance", ctx).Return([]domain.AttendanceRecord{}, nil).Once()
		m.activities.On("ListNonTechActivities", ctx).Return([]domain.NonTechActivity{}, nil).Once()
		m.activities.On("ListFeedback", ctx).Return([]domain.ClientFeedback{}, nil).Once()
		m.transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(scoresTx, nil).Once()
		m.scores.On("ReplaceTeamScores", mock.Anything, scoresTx, 1, mock.AnythingOfType("[]domain.ScoreMetrics")).Return(nil).Once()

		resp, err := m.service().SyncAndScore(ctx, "core", true)

		require.NoError(t, err)
		require.NotNil(t, resp)
		m.live.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("Empty pool keeps previous snapshot", func(t *testing.T) {
		m := newScoreServiceMocks()

		_, commitsTx, commitsSmock := newMockDBAndTx(t)
		commitsSmock.ExpectCommit()

		m.teams.On("GetTeam", ctx, "core").Return(team, nil).Once()
		m.live.On("Fetch", mock.Anything, "acme/widgets", "tok").Return(fetched, nil).Once()
		m.transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(commitsTx, nil).Once()
		m.commits.On("ReplaceTeamCommits", mock.Anything, commitsTx, 1, mock.AnythingOfType("[]domain.CommitRecord")).Return(nil).Once()
		m.users.On("ListUsers", ctx).Return([]domain.User{}, nil).Once()
		m.activities.On("ListAttendance", ctx).Return([]domain.AttendanceRecord{}, nil).Once()
		m.activities.On("ListNonTechActivities", ctx).Return([]domain.NonTechActivity{}, nil).Once()
		m.activities.On("ListFeedback", ctx).Return([]domain.ClientFeedback{}, nil).Once()

		resp, err := m.service().SyncAndScore(ctx, "core", false)

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, 1, resp.CommitsCount)
		assert.Empty(t, resp.Scores)
		m.scores.AssertNotCalled(t, "ReplaceTeamScores", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("Failure: team not found", func(t *testing.T) {
		m := newScoreServiceMocks()

		m.teams.On("GetTeam", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

		resp, err := m.service().SyncAndScore(ctx, "ghost", false)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		m.assertExpectations(t)
	})

	t.Run("Failure: fetch wraps ErrFetchCommits", func(t *testing.T) {
		m := newScoreServiceMocks()

		m.teams.On("GetTeam", ctx, "core").Return(team, nil).Once()
		m.live.On("Fetch", mock.Anything, "acme/widgets", "tok").Return(nil, errors.New("rate limited")).Once()

		resp, err := m.service().SyncAndScore(ctx, "core", false)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrFetchCommits)
		m.assertExpectations(t)
	})

	t.Run("Failure: replacing commits fails", func(t *testing.T) {
		m := newScoreServiceMocks()

		_, commitsTx, commitsSmock := newMockDBAndTx(t)
		commitsSmock.ExpectRollback()

		m.teams.On("GetTeam", ctx, "core").Return(team, nil).Once()
		m.live.On("Fetch", mock.Anything, "acme/widgets", "tok").Return(fetched, nil).Once()
		m.transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(commitsTx, nil).Once()
		m.commits.On("ReplaceTeamCommits", mock.Anything, commitsTx, 1, mock.AnythingOfType("[]domain.CommitRecord")).Return(errors.New("insert failed")).Once()

		resp, err := m.service().SyncAndScore(ctx, "core", false)

		assert.Nil(t, resp)
		assert.Error(t, err)
		m.assertExpectations(t)
	})
}

func TestScoreServiceImpl_SyncMembers(t *testing.T) {
	ctx := context.Background()

	team := &domain.Team{ID: 1, Name: "core", RepoURL: "acme/widgets", GithubToken: "tok"}
	collaborators := []domain.Collaborator{
		{Login: "dev-one"},
		{Login: "dev-two"},
	}
	updated := []domain.User{
		{ID: "dev-one", Name: "dev-one", GithubUsername: "dev-one", TeamID: 1, IsTechnical: true, IsActive: true},
		{ID: "dev-two", Name: "dev-two", GithubUsername: "dev-two", TeamID: 1, IsTechnical: true, IsActive: true},
	}

	t.Run("Success: roster reconciled", func(t *testing.T) {
		m := newScoreServiceMocks()

		_, tx, smock := newMockDBAndTx(t)
		smock.ExpectCommit()

		m.teams.On("GetTeam", ctx, "core").Return(team, nil).Once()
		m.collaborators.On("FetchCollaborators", mock.Anything, "acme/widgets", "tok").Return(collaborators, nil).Once()
		m.transactor.On("BeginTxx", mock.Anything, (*sql.TxOptions)(nil)).Return(tx, nil).Once()
		m.users.On("UpsertCollaborators", mock.Anything, tx, 1, collaborators).Return(updated, nil).Once()

		users, err := m.service().SyncMembers(ctx, "core")

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "dev-one", users[0].UserId)
		assert.Equal(t, "core", users[0].TeamName)
		assert.True(t, users[0].IsTechnical)
		m.assertExpectations(t)
	})

	t.Run("Failure: collaborator fetch wraps ErrFetchCommits", func(t *testing.T) {
		m := newScoreServiceMocks()

		m.teams.On("GetTeam", ctx, "core").Return(team, nil).Once()
		m.collaborators.On("FetchCollaborators", mock.Anything, "acme/widgets", "tok").Return(nil, errors.New("forbidden")).Once()

		users, err := m.service().SyncMembers(ctx, "core")

		assert.Nil(t, users)
		assert.ErrorIs(t, err, apperrors.ErrFetchCommits)
		m.assertExpectations(t)
	})
}

func TestScoreServiceImpl_GetTeamScores(t *testing.T) {
	ctx := context.Background()

	team := &domain.Team{ID: 1, Name: "core"}
	snapshot := []domain.ScoreMetrics{
		{UserID: "u1", TeamID: 1, FinalContributionScore: 3.5, Rank: 1, Badge: domain.BadgeStarPerformer},
		{UserID: "u2", TeamID: 1, FinalContributionScore: 1.5, Rank: 2, Badge: domain.BadgeBalancedContributor},
	}

	t.Run("Success: snapshot returned in rank order", func(t *testing.T) {
		m := newScoreServiceMocks()

		m.teams.On("GetTeam", ctx, "core").Return(team, nil).Once()
		m.scores.On("GetTeamScores", ctx, 1).Return(snapshot, nil).Once()

		scores, err := m.service().GetTeamScores(ctx, "core")

		require.NoError(t, err)
		require.Len(t, scores, 2)
		assert.Equal(t, "u1", scores[0].UserId)
		assert.Equal(t, "core", scores[0].TeamName)
		assert.Equal(t, string(domain.BadgeStarPerformer), scores[0].Badge)
		m.assertExpectations(t)
	})

	t.Run("Failure: unknown team", func(t *testing.T) {
		m := newScoreServiceMocks()

		m.teams.On("GetTeam", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

		scores, err := m.service().GetTeamScores(ctx, "ghost")

		assert.Nil(t, scores)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		m.assertExpectations(t)
	})
}

func TestScoreServiceImpl_GetAllScores(t *testing.T) {
	ctx := context.Background()

	teams := []domain.Team{
		{ID: 1, Name: "core"},
		{ID: 2, Name: "platform"},
	}
	snapshot := []domain.ScoreMetrics{
		{UserID: "u1", TeamID: 1, Rank: 1},
		{UserID: "u2", TeamID: 2, Rank: 1},
	}

	m := newScoreServiceMocks()

	m.teams.On("ListTeams", ctx).Return(teams, nil).Once()
	m.scores.On("GetAllScores", ctx).Return(snapshot, nil).Once()

	scores, err := m.service().GetAllScores(ctx)

	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, "core", scores[0].TeamName)
	assert.Equal(t, "platform", scores[1].TeamName)
	m.assertExpectations(t)
}
