package ports

import (
	"context"

	"github.com/quantumstudy/study-api/internal/core/domain"
)

// UserRepository defines persistence operations on user records.
type UserRepository interface {
	// SetTag sets the tag of the user identified by id in a single atomic
	// update and returns the record as it is after the update.
	// Returns domain.ErrUserNotFound when no record matches.
	SetTag(ctx context.Context, id string, tag string) (*domain.User, error)
}
