package scoring

import "github.com/Jothi-Sri-K/ImpactLens/internal/domain"

const (
	technicalShare = 0.7
	nonTechShare   = 0.3
)

// CompositeScore applies the role-aware weighting. Technical users blend the
// commit base with the non-technical score; non-technical users are scored on
// the non-technical signals alone.
func CompositeScore(u domain.User, agg UserAggregate) float64 {
	if u.IsTechnical {
		return technicalShare*agg.CommitFinalBase + nonTechShare*agg.NonTechScore
	}

	return agg.NonTechScore
}

// ChartProjection is the snapshot view of the averaged metrics. For technical
// users it mirrors the measured commit averages; for non-technical users the
// impact and visibility axes are remapped so both populations land on the
// same chart. The measured aggregate is never mutated.
type ChartProjection struct {
	AvgImpact        float64
	AvgActivity      float64
	AvgCollaboration float64
	AvgVisibility    float64
}

// Project maps a user's measured aggregate onto the chart axes.
// Non-technical remapping: visibility carries the attendance score, impact
// carries activity points plus the feedback bonus.
func Project(u domain.User, agg UserAggregate) ChartProjection {
	p := ChartProjection{
		AvgImpact:        agg.AvgImpact,
		AvgActivity:      agg.AvgActivity,
		AvgCollaboration: agg.AvgCollaboration,
		AvgVisibility:    agg.AvgVisibility,
	}

	if !u.IsTechnical {
		p.AvgVisibility = agg.AttendanceScore
		p.AvgImpact = agg.ActivityImpact + agg.FeedbackBonus
	}

	return p
}
