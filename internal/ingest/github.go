package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Jothi-Sri-K/ImpactLens/internal/config"
	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
	"github.com/Jothi-Sri-K/ImpactLens/pkg/logger/sl"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GithubSource fetches commits through the GitHub API. Review and slack
// signal fields are zero from this source; only the demo fixture carries
// them, since they come from systems this adapter does not integrate.
type GithubSource struct {
	cfg config.Github
	log *slog.Logger
}

func NewGithubSource(cfg config.Github, log *slog.Logger) *GithubSource {
	return &GithubSource{
		cfg: cfg,
		log: log,
	}
}

func newClient(ctx context.Context, token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})

	return github.NewClient(oauth2.NewClient(ctx, ts))
}

func (gs *GithubSource) Fetch(ctx context.Context, repo string, token string) ([]domain.CommitRecord, error) {
	const op = "internal.ingest.github.Fetch"
	log := gs.log.With(slog.String("op", op), slog.String("repo", repo))

	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	if token == "" {
		token = gs.cfg.Token
	}

	ctx, cancel := context.WithTimeout(ctx, gs.cfg.Timeout)
	defer cancel()

	client := newClient(ctx, token)

	var records []domain.CommitRecord
	opt := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: gs.cfg.PerPage},
	}

	for {
		commits, resp, err := client.Repositories.ListCommits(ctx, owner, name, opt)
		if err != nil {
			if resp != nil && resp.StatusCode == 404 {
				return nil, fmt.Errorf("repository '%s' not found or access denied: %w", repo, err)
			}

			return nil, fmt.Errorf("error fetching commits for '%s': %w", repo, err)
		}

		for _, commit := range commits {
			if commit.Commit == nil || commit.Commit.Author == nil {
				continue
			}

			rec := domain.CommitRecord{
				Hash:           commit.GetSHA(),
				AuthorUsername: authorLogin(commit),
				Timestamp:      commit.Commit.Author.GetDate().Time,
				Message:        commit.Commit.GetMessage(),
				IsBugFix:       looksLikeBugFix(commit.Commit.GetMessage()),
				IsPRMerged:     looksLikeMergedPR(commit),
			}

			// files_changed requires the per-commit endpoint; the list
			// endpoint omits stats.
			detail, _, err := client.Repositories.GetCommit(ctx, owner, name, commit.GetSHA(), nil)
			if err != nil {
				log.Warn("failed to fetch commit details, files_changed stays 0",
					slog.String("sha", commit.GetSHA()), sl.Err(err))
			} else if detail != nil {
				rec.FilesChanged = len(detail.Files)
			}

			records = append(records, rec)
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	log.Info("fetched commits", slog.Int("count", len(records)))

	return records, nil
}

func (gs *GithubSource) FetchCollaborators(ctx context.Context, repo string, token string) ([]domain.Collaborator, error) {
	const op = "internal.ingest.github.FetchCollaborators"
	log := gs.log.With(slog.String("op", op), slog.String("repo", repo))

	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	if token == "" {
		token = gs.cfg.Token
	}

	ctx, cancel := context.WithTimeout(ctx, gs.cfg.Timeout)
	defer cancel()

	client := newClient(ctx, token)

	var collaborators []domain.Collaborator
	opt := &github.ListCollaboratorsOptions{
		ListOptions: github.ListOptions{PerPage: gs.cfg.PerPage},
	}

	for {
		users, resp, err := client.Repositories.ListCollaborators(ctx, owner, name, opt)
		if err != nil {
			return nil, fmt.Errorf("error fetching collaborators for '%s': %w", repo, err)
		}

		for _, u := range users {
			if u.GetLogin() == "" {
				continue
			}

			collaborators = append(collaborators, domain.Collaborator{
				Login:     u.GetLogin(),
				AvatarURL: u.GetAvatarURL(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	log.Info("fetched collaborators", slog.Int("count", len(collaborators)))

	return collaborators, nil
}

func splitRepo(repo string) (owner, name string, err error) {
	repo = strings.TrimSuffix(strings.TrimPrefix(repo, "https://github.com/"), ".git")

	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo '%s': expected owner/name", repo)
	}

	return parts[0], parts[1], nil
}

func authorLogin(commit *github.RepositoryCommit) string {
	if commit.Author != nil && commit.Author.GetLogin() != "" {
		return commit.Author.GetLogin()
	}

	return commit.Commit.Author.GetName()
}

var bugFixMarkers = []string{"fix", "bug", "hotfix", "patch"}

func looksLikeBugFix(message string) bool {
	lower := strings.ToLower(message)
	for _, marker := range bugFixMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}

func looksLikeMergedPR(commit *github.RepositoryCommit) bool {
	if len(commit.Parents) > 1 {
		return true
	}

	return strings.HasPrefix(commit.Commit.GetMessage(), "Merge pull request")
}
