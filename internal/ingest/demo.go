package ingest

import (
	"context"
	"time"

	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
)

// DemoSource returns a fixed commit dataset so the pipeline can be exercised
// without GitHub access. The fixture is deterministic: same records, same
// order, every call, which keeps recomputation idempotent in demo mode.
type DemoSource struct{}

func NewDemoSource() *DemoSource {
	return &DemoSource{}
}

func (ds *DemoSource) Fetch(_ context.Context, _ string, _ string) ([]domain.CommitRecord, error) {
	base := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

	return []domain.CommitRecord{
		{
			Hash:           "d3m0a1f4c9b2e7d6a5f8c1b4e7d0a3f6c9b2e5d8",
			AuthorUsername: "alice-dev",
			Timestamp:      base,
			Message:        "Fix race in report generator",
			FilesChanged:   4,
			IsBugFix:       true,
			IsPRMerged:     true,
			PRReviewsGiven: 1,
			ReviewComments: 3,
			IssueComments:  2,
			SlackMessages:  5,
			SlackThreads:   1,
			SlackMentions:  2,
		},
		{
			Hash:           "d3m0b2e5d8a1f4c7b0e3d6a9f2c5b8e1d4a7f0c3",
			AuthorUsername: "alice-dev",
			Timestamp:      base.Add(26 * time.Hour),
			Message:        "Add export filters",
			FilesChanged:   9,
			IsPRMerged:     true,
			PRReviewsGiven: 2,
			ReviewComments: 1,
			SlackMessages:  3,
		},
		{
			Hash:           "d3m0c3f6a9b2e5d8c1f4a7b0e3d6c9f2a5b8e1d4",
			AuthorUsername: "bob-codes",
			Timestamp:      base.Add(30 * time.Hour),
			Message:        "Refactor ingestion retries",
			FilesChanged:   12,
			IsPRMerged:     true,
			IssueComments:  4,
			SlackMessages:  14,
			SlackThreads:   4,
			SlackMentions:  6,
		},
		{
			Hash:           "d3m0d4a7b0c3f6e9d2a5b8c1f4e7d0a3b6c9f2e5",
			AuthorUsername: "bob-codes",
			Timestamp:      base.Add(50 * time.Hour),
			Message:        "Tweak dashboard copy",
			FilesChanged:   1,
			SlackMessages:  9,
			SlackThreads:   3,
			SlackMentions:  4,
		},
		{
			Hash:           "d3m0e5b8c1d4a7f0e3b6c9d2f5a8b1e4c7d0f3a6",
			AuthorUsername: "carol-eng",
			Timestamp:      base.Add(75 * time.Hour),
			Message:        "Fix pagination overflow bug",
			FilesChanged:   6,
			IsBugFix:       true,
			IsPRMerged:     true,
			PRReviewsGiven: 3,
			ReviewComments: 5,
			IssueComments:  1,
			SlackMessages:  1,
		},
		{
			Hash:           "d3m0f6c9d2e5b8a1f4c7d0e3a6b9c2f5d8e1a4b7",
			AuthorUsername: "carol-eng",
			Timestamp:      base.Add(98 * time.Hour),
			Message:        "Harden schema migrations",
			FilesChanged:   7,
			IsPRMerged:     true,
			PRReviewsGiven: 2,
			ReviewComments: 2,
		},
	}, nil
}
