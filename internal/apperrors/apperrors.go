package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrAlreadyExists     = errors.New("resource already exists")
	ErrTeamAlreadyExists = errors.New("team already exists")

	ErrInvalidRequest = errors.New("invalid request body")
	ErrValidation     = errors.New("validation failed")

	ErrFetchCommits = errors.New("failed to fetch commits from source")
)

type TeamAlreadyExistsError struct{ TeamName string }

func (e *TeamAlreadyExistsError) Error() string {
	return fmt.Sprintf("team '%s' already exists", e.TeamName)
}
func (e *TeamAlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

type UserNotFoundError struct{ UserID string }

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user '%s' not found", e.UserID)
}
func (e *UserNotFoundError) Is(target error) bool { return target == ErrNotFound }
