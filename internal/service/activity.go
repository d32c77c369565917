package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
	"github.com/Jothi-Sri-K/ImpactLens/internal/repository"
	"github.com/google/uuid"
)

// ActivityService records the auxiliary contribution signals that feed the
// non-technical side of the composite score.
type ActivityService interface {
	MarkAttendance(ctx context.Context, userID string, day time.Time, status domain.AttendanceStatus) error
	AddNonTechActivity(ctx context.Context, userID, actType, description string, impactPoints float64) (*domain.NonTechActivity, error)
	AddFeedback(ctx context.Context, userID, description string) (*domain.ClientFeedback, error)
	AddWorkSubmission(ctx context.Context, userID, title, description, link string) (*domain.WorkSubmission, error)
}

type ActivityServiceImpl struct {
	repo repository.ActivityRepository
	now  func() time.Time
}

func NewActivityService(repo repository.ActivityRepository) *ActivityServiceImpl {
	return &ActivityServiceImpl{
		repo: repo,
		now:  time.Now,
	}
}

// MarkAttendance upserts the status for the given calendar day. A zero day
// means today. The day is truncated to UTC midnight so one record per (user,
// day) holds regardless of the caller's clock.
func (s *ActivityServiceImpl) MarkAttendance(ctx context.Context, userID string, day time.Time, status domain.AttendanceStatus) error {
	if day.IsZero() {
		day = s.now()
	}

	rec := domain.AttendanceRecord{
		UserID: userID,
		Day:    day.UTC().Truncate(24 * time.Hour),
		Status: status,
	}

	if err := s.repo.MarkAttendance(ctx, rec); err != nil {
		return fmt.Errorf("repo.MarkAttendance failed: %w", err)
	}

	return nil
}

func (s *ActivityServiceImpl) AddNonTechActivity(ctx context.Context, userID, actType, description string, impactPoints float64) (*domain.NonTechActivity, error) {
	act := domain.NonTechActivity{
		ID:           uuid.NewString(),
		UserID:       userID,
		Type:         actType,
		Description:  description,
		ImpactPoints: impactPoints,
	}

	if err := s.repo.AddNonTechActivity(ctx, act); err != nil {
		return nil, fmt.Errorf("repo.AddNonTechActivity failed: %w", err)
	}

	return &act, nil
}

func (s *ActivityServiceImpl) AddFeedback(ctx context.Context, userID, description string) (*domain.ClientFeedback, error) {
	fb := domain.ClientFeedback{
		ID:          uuid.NewString(),
		UserID:      userID,
		Description: description,
		Date:        s.now().UTC(),
	}

	if err := s.repo.AddFeedback(ctx, fb); err != nil {
		return nil, fmt.Errorf("repo.AddFeedback failed: %w", err)
	}

	return &fb, nil
}

func (s *ActivityServiceImpl) AddWorkSubmission(ctx context.Context, userID, title, description, link string) (*domain.WorkSubmission, error) {
	ws := domain.WorkSubmission{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Link:        link,
		SubmittedAt: s.now().UTC(),
	}

	if err := s.repo.AddWorkSubmission(ctx, ws); err != nil {
		return nil, fmt.Errorf("repo.AddWorkSubmission failed: %w", err)
	}

	return &ws, nil
}
