package scoring

import (
	"sort"

	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
)

// Rank orders the pool by final contribution score, highest first, and
// assigns dense 1-based ranks. The sort is stable so tied scores keep the
// pool's enumeration order, which keeps recomputation idempotent.
func Rank(pool []domain.ScoreMetrics) {
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].FinalContributionScore > pool[j].FinalContributionScore
	})

	for i := range pool {
		pool[i].Rank = i + 1
	}
}
