// package ingest supplies raw commit records to the scoring pipeline. The
// engine treats every source identically; a source only has to materialize
// the records, attribution and scoring happen downstream.
package ingest

import (
	"context"

	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
)

// CommitSource yields the raw commit set for one repository. Implementations
// own their transport concerns (pagination, rate limits); callers own retry.
type CommitSource interface {
	// Fetch returns the commit records for the repo, author-tagged but not
	// yet normalized. repo is "owner/name"; token may be empty for public
	// repositories or fixture sources.
	Fetch(ctx context.Context, repo string, token string) ([]domain.CommitRecord, error)
}

// CollaboratorSource lists the collaborators of a repository, used to
// reconcile a team's roster with the people actually working on the repo.
type CollaboratorSource interface {
	FetchCollaborators(ctx context.Context, repo string, token string) ([]domain.Collaborator, error)
}
