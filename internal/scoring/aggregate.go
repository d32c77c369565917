package scoring

import (
	"strings"

	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
)

const (
	attendanceMaxScore = 5.0
	feedbackBonus      = 1.5
)

// UserSignals bundles everything attributable to one user that feeds the
// scoring pipeline: their matched commits plus the auxiliary logs.
type UserSignals struct {
	User       domain.User
	Commits    []domain.CommitRecord
	Attendance []domain.AttendanceRecord
	Activities []domain.NonTechActivity
	Feedback   []domain.ClientFeedback
}

// UserAggregate holds the measured per-user values before composite scoring.
// Commit-derived means are zero when the user has no commits.
type UserAggregate struct {
	AvgActivity      float64
	AvgImpact        float64
	AvgCollaboration float64
	AvgVisibility    float64
	CommitFinalBase  float64

	AttendanceScore float64
	ActivityImpact  float64
	FeedbackBonus   float64
	NonTechScore    float64
}

// AuthoredBy reports whether the commit author matches the user's ID or
// GitHub handle, case-insensitively.
func AuthoredBy(c domain.CommitRecord, u domain.User) bool {
	author := strings.ToLower(c.AuthorUsername)
	if author == "" {
		return false
	}

	if author == strings.ToLower(u.ID) {
		return true
	}

	return u.GithubUsername != "" && author == strings.ToLower(u.GithubUsername)
}

// AggregateUser reduces one user's signals to measured metrics. All ratio
// computations guard their denominators; empty inputs yield zeros.
func AggregateUser(s UserSignals) UserAggregate {
	var agg UserAggregate

	if n := len(s.Commits); n > 0 {
		for _, c := range s.Commits {
			agg.AvgActivity += c.Metrics.Activity
			agg.AvgImpact += c.Metrics.Impact
			agg.AvgCollaboration += c.Metrics.Collaboration
			agg.AvgVisibility += c.Metrics.Visibility
			agg.CommitFinalBase += c.Metrics.Final
		}

		agg.AvgActivity /= float64(n)
		agg.AvgImpact /= float64(n)
		agg.AvgCollaboration /= float64(n)
		agg.AvgVisibility /= float64(n)
		agg.CommitFinalBase /= float64(n)
	}

	if total := len(s.Attendance); total > 0 {
		present := 0
		for _, a := range s.Attendance {
			if a.Status == domain.AttendancePresent {
				present++
			}
		}

		agg.AttendanceScore = float64(present) / float64(total) * attendanceMaxScore
	}

	for _, a := range s.Activities {
		agg.ActivityImpact += a.ImpactPoints
	}

	agg.FeedbackBonus = feedbackBonus * float64(len(s.Feedback))
	agg.NonTechScore = agg.AttendanceScore + agg.ActivityImpact + agg.FeedbackBonus

	return agg
}
