// package scoring implements the contribution scoring engine: normalization of
// raw commit signals into derived metrics, per-user aggregation, role-aware
// composite scoring, badge classification and team ranking. Everything here is
// pure computation over in-memory structures; persistence and ingestion live
// in their own layers.
package scoring

import "github.com/Jothi-Sri-K/ImpactLens/internal/domain"

// Fixed normalization weights. Changing any of these changes every historical
// snapshot on the next recomputation, so they are deliberately not configurable.
const (
	prMergedActivityBonus = 2.0
	bugFixImpactBonus     = 5.0
	prMergedImpactBonus   = 3.0
	filesChangedWeight    = 0.5

	reviewsGivenWeight   = 4.0
	reviewCommentsWeight = 2.0
	issueCommentsWeight  = 1.5

	slackMessagesWeight = 1.0
	slackThreadsWeight  = 2.0
	slackMentionsWeight = 1.5

	activityShare      = 0.2
	impactShare        = 0.6
	collaborationShare = 0.2
)

// Normalize derives the per-commit metrics from one raw commit record.
// Visibility is computed but excluded from the commit-level final score; it
// only feeds the classification axis downstream.
func Normalize(c domain.CommitRecord) domain.CommitMetrics {
	activity := 1.0
	if c.IsPRMerged {
		activity += prMergedActivityBonus
	}

	impact := filesChangedWeight * float64(c.FilesChanged)
	if c.IsBugFix {
		impact += bugFixImpactBonus
	}
	if c.IsPRMerged {
		impact += prMergedImpactBonus
	}

	collaboration := reviewsGivenWeight*float64(c.PRReviewsGiven) +
		reviewCommentsWeight*float64(c.ReviewComments) +
		issueCommentsWeight*float64(c.IssueComments)

	visibility := slackMessagesWeight*float64(c.SlackMessages) +
		slackThreadsWeight*float64(c.SlackThreads) +
		slackMentionsWeight*float64(c.SlackMentions)

	return domain.CommitMetrics{
		Activity:      activity,
		Impact:        impact,
		Collaboration: collaboration,
		Visibility:    visibility,
		Final:         activityShare*activity + impactShare*impact + collaborationShare*collaboration,
	}
}
