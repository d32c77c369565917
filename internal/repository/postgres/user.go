package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/Jothi-Sri-K/ImpactLens/internal/apperrors"
	"github.com/Jothi-Sri-K/ImpactLens/internal/domain"
	"github.com/Jothi-Sri-K/ImpactLens/pkg/api"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type UserRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewUserRepository(db *sqlx.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type userWithTeamName struct {
	UserID      string `db:"user_id"`
	Name        string `db:"name"`
	TeamName    string `db:"team_name"`
	IsTechnical bool   `db:"is_technical"`
	IsActive    bool   `db:"is_active"`
}

func (ur *UserRepository) SetIsActive(ctx context.Context, userID string, isActive bool) (*api.User, error) {
	const op = "internal.repository.postgres.SetIsActive"
	log := ur.log.With(slog.String("op", op))
	log.Info("setting", slog.String("user_id", userID), slog.Bool("is_active", isActive))

	query, args, err := ur.sq.Update("users").
		Set("is_active", isActive).
		Where(sq.Eq{"id": userID}).
		Suffix(`RETURNING
            users.id as user_id,
            users.name,
            (SELECT name FROM teams WHERE id = users.team_id) as team_name,
            users.is_technical,
            users.is_active`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build update user query: %w", err)
	}

	var dbUser userWithTeamName
	if err = ur.db.QueryRowxContext(ctx, query, args...).StructScan(&dbUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user with id '%s'", apperrors.ErrNotFound, userID)
		}

		return nil, fmt.Errorf("failed to execute update user status: %w", err)
	}

	log.Info("setting completed successfully")

	return &api.User{
		UserId:      dbUser.UserID,
		Username:    dbUser.Name,
		TeamName:    dbUser.TeamName,
		IsTechnical: dbUser.IsTechnical,
		IsActive:    dbUser.IsActive,
	}, nil
}

func (ur *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	const op = "internal.repository.postgres.ListUsers"

	query, args, err := ur.sq.Select("id", "name", "github_username", "team_id", "is_technical", "is_active").
		From("users").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var users []domain.User
	if err := ur.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return users, nil
}

func (ur *UserRepository) UpsertCollaborators(ctx context.Context, tx *sqlx.Tx, teamID int, collaborators []domain.Collaborator) ([]domain.User, error) {
	const op = "internal.repository.postgres.UpsertCollaborators"

	if len(collaborators) == 0 {
		return nil, nil
	}

	logins := make([]string, len(collaborators))
	for i, c := range collaborators {
		logins[i] = strings.ToLower(c.Login)
	}

	// A login can belong to an existing user through either the github
	// handle or the user id. Those rows are reassigned, not duplicated.
	query, args, err := ur.sq.Update("users").
		Set("team_id", teamID).
		Set("is_technical", true).
		Where(sq.Or{
			sq.Expr("lower(github_username) = ANY(?)", pq.Array(logins)),
			sq.Expr("lower(id) = ANY(?)", pq.Array(logins)),
		}).
		Suffix("RETURNING id, name, github_username, team_id, is_technical, is_active").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	var users []domain.User
	if err := tx.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute update: %w", op, err)
	}

	matched := make(map[string]struct{}, 2*len(users))
	for _, u := range users {
		matched[strings.ToLower(u.GithubUsername)] = struct{}{}
		matched[strings.ToLower(u.ID)] = struct{}{}
	}

	insertBuilder := ur.sq.Insert("users").
		Columns("id", "name", "github_username", "team_id", "is_technical", "is_active")

	var missing int
	for _, c := range collaborators {
		if _, ok := matched[strings.ToLower(c.Login)]; ok {
			continue
		}

		insertBuilder = insertBuilder.Values(c.Login, c.Login, c.Login, teamID, true, true)
		missing++
	}

	if missing == 0 {
		return users, nil
	}

	query, args, err = insertBuilder.
		Suffix("RETURNING id, name, github_username, team_id, is_technical, is_active").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	var inserted []domain.User
	if err := tx.SelectContext(ctx, &inserted, query, args...); err != nil {
		return nil, fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return append(users, inserted...), nil
}
