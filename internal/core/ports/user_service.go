package ports

import (
	"context"

	"github.com/quantumstudy/study-api/internal/core/domain"
)

// UpdateTagInput carries the admin request to change a user's tag.
type UpdateTagInput struct {
	UserID string
	Tag    string
}

// UserService defines use-case operations on user records.
type UserService interface {
	UpdateTag(ctx context.Context, input UpdateTagInput) (*domain.User, error)
}
