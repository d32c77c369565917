package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newActivityService(repo *ActivityRepositoryMock, now time.Time) *ActivityServiceImpl {
	service := NewActivityService(repo)
	service.now = func() time.Time { return now }

	return service
}

func TestActivityServiceImpl_MarkAttendance(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.March, 5, 17, 45, 12, 0, time.FixedZone("IST", 5*3600+1800))

	testCases := []struct {
		name        string
		day         time.Time
		status      domain.AttendanceStatus
		expectedDay time.Time
		setupMock   func(repoMock *ActivityRepositoryMock, expected domain.AttendanceRecord)
		expectError bool
	}{
		{
			name:        "Success: explicit day is truncated to UTC midnight",
			day:         time.Date(2025, time.March, 4, 23, 10, 0, 0, time.UTC),
			status:      domain.AttendancePresent,
			expectedDay: time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC),
			setupMock: func(repoMock *ActivityRepositoryMock, expected domain.AttendanceRecord) {
				repoMock.On("MarkAttendance", ctx, expected).Return(nil).Once()
			},
		},
		{
			name:        "Success: zero day means today",
			day:         time.Time{},
			status:      domain.AttendanceLeave,
			expectedDay: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
			setupMock: func(repoMock *ActivityRepositoryMock, expected domain.AttendanceRecord) {
				repoMock.On("MarkAttendance", ctx, expected).Return(nil).Once()
			},
		},
		{
			name:        "Failure: repository error is propagated",
			day:         time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC),
			status:      domain.AttendanceHalfDay,
			expectedDay: time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC),
			setupMock: func(repoMock *ActivityRepositoryMock, expected domain.AttendanceRecord) {
				repoMock.On("MarkAttendance", ctx, expected).Return(errors.New("constraint violation")).Once()
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repoMock := new(ActivityRepositoryMock)
			expected := domain.AttendanceRecord{
				UserID: "u1",
				Day:    tc.expectedDay,
				Status: tc.status,
			}
			tc.setupMock(repoMock, expected)

			service := newActivityService(repoMock, now)

			err := service.MarkAttendance(ctx, "u1", tc.day, tc.status)

			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			repoMock.AssertExpectations(t)
		})
	}
}

func TestActivityServiceImpl_AddNonTechActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: activity stored with generated ID", func(t *testing.T) {
		repoMock := new(ActivityRepositoryMock)
		repoMock.On("AddNonTechActivity", ctx, mock.AnythingOfType("domain.NonTechActivity")).Return(nil).Once()

		service := NewActivityService(repoMock)

		act, err := service.AddNonTechActivity(ctx, "u1", "Documentation", "wrote onboarding guide", 2.5)

		require.NoError(t, err)
		require.NotNil(t, act)
		assert.NotEmpty(t, act.ID)
		assert.Equal(t, "u1", act.UserID)
		assert.Equal(t, "Documentation", act.Type)
		assert.InDelta(t, 2.5, act.ImpactPoints, 1e-9)
		repoMock.AssertExpectations(t)
	})

	t.Run("Failure: repository error is propagated", func(t *testing.T) {
		repoMock := new(ActivityRepositoryMock)
		repoMock.On("AddNonTechActivity", ctx, mock.AnythingOfType("domain.NonTechActivity")).
			Return(errors.New("insert failed")).Once()

		service := NewActivityService(repoMock)

		act, err := service.AddNonTechActivity(ctx, "u1", "Documentation", "", 1)

		assert.Error(t, err)
		assert.Nil(t, act)
		repoMock.AssertExpectations(t)
	})
}

func TestActivityServiceImpl_AddFeedback(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)

	repoMock := new(ActivityRepositoryMock)
	repoMock.On("AddFeedback", ctx, mock.AnythingOfType("domain.ClientFeedback")).Return(nil).Once()

	service := newActivityService(repoMock, now)

	fb, err := service.AddFeedback(ctx, "u1", "great delivery")

	require.NoError(t, err)
	require.NotNil(t, fb)
	assert.NotEmpty(t, fb.ID)
	assert.Equal(t, "u1", fb.UserID)
	assert.Equal(t, now, fb.Date)
	repoMock.AssertExpectations(t)
}

func TestActivityServiceImpl_AddWorkSubmission(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)

	repoMock := new(ActivityRepositoryMock)
	repoMock.On("AddWorkSubmission", ctx, mock.AnythingOfType("domain.WorkSubmission")).Return(nil).Once()

	service := newActivityService(repoMock, now)

	ws, err := service.AddWorkSubmission(ctx, "u1", "Q1 report", "full writeup", "https://docs.example.com/q1")

	require.NoError(t, err)
	require.NotNil(t, ws)
	assert.NotEmpty(t, ws.ID)
	assert.Equal(t, "Q1 report", ws.Title)
	assert.Equal(t, now, ws.SubmittedAt)
	repoMock.AssertExpectations(t)
}
