package http

import (
	"context"
	"time"

	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
	"github.com/Jothi-Sri-K/ImpactLens/internal/service"
	"github.com/Jothi-Sri-K/ImpactLens/pkg/api"
	"github.com/stretchr/testify/mock"
)

type TeamServiceMock struct {
	mock.Mock
}

var _ service.TeamService = (*TeamServiceMock)(nil)

func (m *TeamServiceMock) CreateTeamWithUsers(ctx context.Context, team api.Team) (*api.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Team), args.Error(1)
}

func (m *TeamServiceMock) GetTeam(ctx context.Context, name string) (*api.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.Team), args.Error(1)
}

type UserServiceMock struct {
	mock.Mock
}

var _ service.UserService = (*UserServiceMock)(nil)

func (m *UserServiceMock) SetIsActive(ctx context.Context, userID string, isActive bool) (*api.User, error) {
	args := m.Called(ctx, userID, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.User), args.Error(1)
}

type ActivityServiceMock struct {
	mock.Mock
}

var _ service.ActivityService = (*ActivityServiceMock)(nil)

func (m *ActivityServiceMock) MarkAttendance(ctx context.Context, userID string, day time.Time, status domain.AttendanceStatus) error {
	args := m.Called(ctx, userID, day, status)
	return args.Error(0)
}

func (m *ActivityServiceMock) AddNonTechActivity(ctx context.Context, userID, actType, description string, impactPoints float64) (*domain.NonTechActivity, error) {
	args := m.Called(ctx, userID, actType, description, impactPoints)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.NonTechActivity), args.Error(1)
}

func (m *ActivityServiceMock) AddFeedback(ctx context.Context, userID, description string) (*domain.ClientFeedback, error) {
	args := m.Called(ctx, userID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.ClientFeedback), args.Error(1)
}

func (m *ActivityServiceMock) AddWorkSubmission(ctx context.Context, userID, title, description, link string) (*domain.WorkSubmission, error) {
	args := m.Called(ctx, userID, title, description, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.WorkSubmission), args.Error(1)
}

type ScoreServiceMock struct {
	mock.Mock
}

var _ service.ScoreService = (*ScoreServiceMock)(nil)

func (m *ScoreServiceMock) SyncAndScore(ctx context.Context, teamName string, useDemo bool) (*api.SyncResponse, error) {
	args := m.Called(ctx, teamName, useDemo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*api.SyncResponse), args.Error(1)
}

func (m *ScoreServiceMock) SyncMembers(ctx context.Context, teamName string) ([]api.User, error) {
	args := m.Called(ctx, teamName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.User), args.Error(1)
}

func (m *ScoreServiceMock) GetTeamScores(ctx context.Context, teamName string) ([]api.ScoreMetrics, error) {
	args := m.Called(ctx, teamName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.ScoreMetrics), args.Error(1)
}

func (m *ScoreServiceMock) GetAllScores(ctx context.Context) ([]api.ScoreMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]api.ScoreMetrics), args.Error(1)
}
