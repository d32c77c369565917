package scoring

import (
	"strings"

	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
)

// Inputs is the fully materialized source data for one team's recomputation.
// The attendance, activity and feedback slices are organization-wide; the
// pipeline filters them per user.
type Inputs struct {
	TeamID     int
	Users      []domain.User
	Commits    []domain.CommitRecord
	Attendance []domain.AttendanceRecord
	Activities []domain.NonTechActivity
	Feedback   []domain.ClientFeedback
}

// BuildPool applies the team membership reconciliation policy: the pool is
// the union of declared team members and commit authors, where every author
// must resolve to a declared user (by ID or GitHub handle, case-insensitive)
// whose team matches. Commit authors without a matching roster entry are
// excluded from ranking. Each user appears exactly once; enumeration order is
// roster order first, then remaining authors by first appearance, so the
// ranking tie-break is deterministic.
func BuildPool(in Inputs) []domain.User {
	byHandle := make(map[string]domain.User, 2*len(in.Users))
	for _, u := range in.Users {
		byHandle[strings.ToLower(u.ID)] = u
		if u.GithubUsername != "" {
			byHandle[strings.ToLower(u.GithubUsername)] = u
		}
	}

	var pool []domain.User
	seen := make(map[string]struct{})

	add := func(u domain.User) {
		if u.TeamID != in.TeamID {
			return
		}
		if _, ok := seen[u.ID]; ok {
			return
		}

		seen[u.ID] = struct{}{}
		pool = append(pool, u)
	}

	for _, u := range in.Users {
		add(u)
	}

	for _, c := range in.Commits {
		if u, ok := byHandle[strings.ToLower(c.AuthorUsername)]; ok {
			add(u)
		}
	}

	return pool
}

// ComputeTeamScores runs the whole pipeline over already-normalized commits:
// build the pool, aggregate per user, apply the composite score and chart
// projection, classify badges against the team averages and rank. It returns
// the complete snapshot for the team, or an empty slice when no users
// qualify. It performs no I/O.
func ComputeTeamScores(in Inputs) []domain.ScoreMetrics {
	pool := BuildPool(in)
	if len(pool) == 0 {
		return nil
	}

	snapshot := make([]domain.ScoreMetrics, 0, len(pool))

	for _, u := range pool {
		signals := UserSignals{User: u}

		for _, c := range in.Commits {
			if AuthoredBy(c, u) {
				signals.Commits = append(signals.Commits, c)
			}
		}
		for _, a := range in.Attendance {
			if a.UserID == u.ID {
				signals.Attendance = append(signals.Attendance, a)
			}
		}
		for _, a := range in.Activities {
			if a.UserID == u.ID {
				signals.Activities = append(signals.Activities, a)
			}
		}
		for _, f := range in.Feedback {
			if f.UserID == u.ID {
				signals.Feedback = append(signals.Feedback, f)
			}
		}

		agg := AggregateUser(signals)
		proj := Project(u, agg)

		snapshot = append(snapshot, domain.ScoreMetrics{
			UserID:                 u.ID,
			TeamID:                 in.TeamID,
			AvgImpact:              proj.AvgImpact,
			AvgActivity:            proj.AvgActivity,
			AvgCollaboration:       proj.AvgCollaboration,
			AvgVisibility:          proj.AvgVisibility,
			NonTechScore:           agg.NonTechScore,
			FinalContributionScore: CompositeScore(u, agg),
		})
	}

	Classify(snapshot)
	Rank(snapshot)

	return snapshot
}
