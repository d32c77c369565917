package scoring

import "github.com/Jothi-Sri-K/ImpactLens/internal/domain"

// starPerformerFactor is the margin over the team average impact that a final
// score must clear for the Star Performer badge.
const starPerformerFactor = 1.2

// TeamAverages are the classification baselines, computed once over the full
// just-scored pool. Visibility here is the combined activity+visibility axis.
type TeamAverages struct {
	Impact     float64
	Visibility float64
}

// Averages computes the classification baselines from a team's score rows.
func Averages(pool []domain.ScoreMetrics) TeamAverages {
	var avg TeamAverages

	n := len(pool)
	if n == 0 {
		return avg
	}

	for _, m := range pool {
		avg.Impact += m.AvgImpact
		avg.Visibility += m.AvgActivity + m.AvgVisibility
	}

	avg.Impact /= float64(n)
	avg.Visibility /= float64(n)

	return avg
}

// ClassifyUser assigns exactly one badge, evaluating the rules in priority
// order. The rule order is part of the contract: a user qualifying for both a
// profile badge and Star Performer gets the profile badge.
func ClassifyUser(m domain.ScoreMetrics, avg TeamAverages) domain.Badge {
	combinedVisibility := m.AvgActivity + m.AvgVisibility

	switch {
	case m.AvgImpact > avg.Impact && combinedVisibility < avg.Visibility:
		return domain.BadgeSilentArchitect
	case m.AvgImpact < avg.Impact && combinedVisibility > avg.Visibility:
		return domain.BadgeHighVisLowImpact
	case m.FinalContributionScore > starPerformerFactor*avg.Impact:
		return domain.BadgeStarPerformer
	default:
		return domain.BadgeBalancedContributor
	}
}

// Classify stamps a badge onto every row of the pool in place.
func Classify(pool []domain.ScoreMetrics) {
	avg := Averages(pool)
	for i := range pool {
		pool[i].Badge = ClassifyUser(pool[i], avg)
	}
}
